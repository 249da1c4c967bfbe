package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deanrtaylor1/tagextractor/config"
	"github.com/deanrtaylor1/tagextractor/logger"
	"github.com/deanrtaylor1/tagextractor/util"
)

//CLI Interface of tagextractor

// Shared state of one invocation, filled in by the root command's pre-run
type commandContext struct {
	configFlag   string
	logLevelFlag string

	cfg *config.Config
	log *zap.Logger
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, _, err := config.Load(c.configFlag)
	if err != nil {
		return nil, err
	}
	if c.logLevelFlag != "" {
		cfg.Log.Level = c.logLevelFlag
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	c.cfg = cfg
	return cfg, nil
}

// Logs share the command's error stream
func (c *commandContext) ensureLogger(w io.Writer) (*zap.Logger, error) {
	if c.log != nil {
		return c.log, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Log.Level, w)
	if err != nil {
		return nil, err
	}
	c.log = log
	return log, nil
}

// Configuration commands work without a valid configuration file
func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" || c.Name() == "help" {
			return true
		}
	}
	return false
}

// NewRootCommand builds the tagextractor command tree
func NewRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "tagextractor",
		Short:         "Count word frequencies in a document, skipping stop words",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureLogger(cmd.ErrOrStderr())
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path (default ./"+config.DefaultPath+" when present)")
	rootCmd.PersistentFlags().StringVar(&ctx.logLevelFlag, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newVerifyCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// Execute runs the command line and returns the process exit code
func Execute(args []string, stdout io.Writer, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		color := stderr == os.Stderr && util.IsTerminal(os.Stderr)
		fmt.Fprintln(stderr, util.Colorize("Error: "+err.Error(), util.TerminalRed, color))
		return 1
	}
	return 0
}
