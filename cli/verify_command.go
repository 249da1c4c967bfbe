package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deanrtaylor1/tagextractor/frequency"
	"github.com/deanrtaylor1/tagextractor/report"
	"github.com/deanrtaylor1/tagextractor/util"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var reportPath string
	var top int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that a report file is well formed",
		Long: `Parses a report written by run and checks that every line is a
"word : count" pair with a positive count, in strictly ascending word order.
With --top the most frequent words of the report are listed as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if top < 0 {
				return fmt.Errorf("--top must not be negative, got %d", top)
			}
			log, err := ctx.ensureLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			f, err := os.Open(reportPath)
			if err != nil {
				return &util.SourceError{Name: "report", Path: reportPath, Err: err}
			}
			defer f.Close()

			entries, err := report.Parse(f)
			if err != nil {
				return fmt.Errorf("%s: %w", reportPath, err)
			}
			if err := report.Verify(entries); err != nil {
				return fmt.Errorf("%s: %w", reportPath, err)
			}

			log.Info("report verified", zap.String("path", reportPath), zap.Int("entries", len(entries)))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d entries OK\n", reportPath, len(entries))
			if top > 0 {
				fmt.Fprintf(out, "Top %d:\n%s\n", top, renderEntries(frequency.FromEntries(entries).Top(top)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&reportPath, "report", "r", "", "Report file to check")
	cmd.Flags().IntVar(&top, "top", 0, "Also print the N most frequent words of the report")
	_ = cmd.MarkFlagRequired("report")

	return cmd
}
