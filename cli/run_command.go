package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deanrtaylor1/tagextractor/config"
	"github.com/deanrtaylor1/tagextractor/logger"
	"github.com/deanrtaylor1/tagextractor/pipeline"
	"github.com/deanrtaylor1/tagextractor/source"
	"github.com/deanrtaylor1/tagextractor/util"
)

type runOptions struct {
	document  string
	stopWords string
	output    string
	table     bool
	top       int
	quiet     bool
}

// Replaced in tests, the real picker needs a terminal
var selectFile = util.SelectFile

var errNotInteractive = errors.New("not an interactive terminal")

func newRunCommand(ctx *commandContext) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Tag a document and print its word frequencies",
		Long: `Reads the document and the stop-word list, counts every word of the
document that is not a stop word, and prints one "word : count" line per word
in alphabetical order. Missing --doc or --stop flags are asked for
interactively when running in a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log, err := ctx.ensureLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if !cmd.Flags().Changed("table") {
				opts.table = cfg.Output.Table
			}
			if !cmd.Flags().Changed("top") {
				opts.top = cfg.Output.Top
			}

			err = runTagging(cmd.OutOrStdout(), cfg, log, opts, interactive())
			logger.HandleError(log, err)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.document, "doc", "d", "", "Document to analyze (- for stdin)")
	cmd.Flags().StringVarP(&opts.stopWords, "stop", "s", "", "Stop-word file, one word per line")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Write the report to this file (truncated)")
	cmd.Flags().BoolVar(&opts.table, "table", false, "Render the report as a table")
	cmd.Flags().IntVar(&opts.top, "top", 0, "Also print the N most frequent words")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print the report")

	return cmd
}

var interactive = isInteractiveTerminal

func isInteractiveTerminal() bool {
	return util.IsTerminal(os.Stdin) && util.IsTerminal(os.Stdout)
}

var errNotRegularFile = errors.New("missing or not a regular file")

// Ask for a file the user did not name on the command line, then make sure
// it can be read as a file
func resolveFile(name string, path string, flag string, message string, canPrompt bool) (string, error) {
	if path == "" {
		if !canPrompt {
			return "", fmt.Errorf("--%s is required: %w", flag, errNotInteractive)
		}
		selected, err := selectFile(message, ".")
		if err != nil {
			return "", err
		}
		path = selected
	}
	if path == source.Stdin {
		return path, nil
	}

	ok, err := util.CheckFileIsValid(path)
	if err != nil {
		return "", &util.SourceError{Name: name, Path: path, Err: err}
	}
	if !ok {
		return "", &util.SourceError{Name: name, Path: path, Err: errNotRegularFile}
	}
	return path, nil
}

func runTagging(out io.Writer, cfg *config.Config, log *zap.Logger, opts runOptions, canPrompt bool) error {
	if opts.top < 0 {
		return fmt.Errorf("--top must not be negative, got %d", opts.top)
	}

	docPath, err := resolveFile("document", opts.document, "doc", "Select a file to analyze:", canPrompt)
	if err != nil {
		return err
	}
	stopPath, err := resolveFile("stop words", opts.stopWords, "stop", "Select stop-word file:", canPrompt)
	if err != nil {
		return err
	}
	if docPath == source.Stdin && stopPath == source.Stdin {
		return errors.New("the document and the stop words cannot both be read from stdin")
	}

	runner := pipeline.NewRunner(log, cfg.CounterOptions())
	res, err := runner.RunFiles(docPath, stopPath, cfg.SourceOptions())
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := runner.EmitFile(res, opts.output); err != nil {
			return err
		}
	}

	if !opts.quiet {
		if opts.table {
			if _, err := fmt.Fprintln(out, renderReportTable(res.Table)); err != nil {
				return &util.DestinationError{Err: err}
			}
		} else if err := runner.Emit(res, out); err != nil {
			return err
		}
	}

	if opts.top > 0 {
		color := useColor(cfg.Output.Color, out)
		if _, err := fmt.Fprint(out, renderSummary(res, opts.top, color)); err != nil {
			return &util.DestinationError{Err: err}
		}
	}
	return nil
}
