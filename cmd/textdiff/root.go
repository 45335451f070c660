package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/textdiff/textdiff/internal/config"
	"github.com/textdiff/textdiff/internal/log"
	"github.com/textdiff/textdiff/internal/session"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	v   = viper.New()
	cfg *config.Config
)

// errTextsDiffer makes the process exit with status 1 without printing an
// error, the way diff(1) reports differences.
var errTextsDiffer = errors.New("texts differ")

var rootCmd = &cobra.Command{
	Use:   "textdiff [left right]",
	Short: "Compare two texts line by line",
	Long: `textdiff compares two texts line by line and lists every added,
deleted and modified run of lines, with the unchanged lines around each one.

Without a subcommand it opens the interactive two-pane editor. Passing two
files preloads them into the panes.`,
	Args:              cobra.RangeArgs(0, 2),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.textdiff/textdiff.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Log file (default: ~/.textdiff/logs/textdiff.log)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int("max-lines", 9999, "Maximum number of lines per text")
	rootCmd.PersistentFlags().Bool("strip-cr", false, "Treat CRLF line endings as LF")

	_ = v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("logging.file", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = v.BindPFlag("limits.max_lines", rootCmd.PersistentFlags().Lookup("max-lines"))
	_ = v.BindPFlag("input.strip_cr", rootCmd.PersistentFlags().Lookup("strip-cr"))
}

// setup loads the configuration and starts logging before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	dir, err := session.DefaultDir()
	if err != nil {
		return err
	}
	cfg, err = config.Load(v, cfgFile, dir)
	if err != nil {
		return err
	}
	if debug {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}
	if cmd.Flags().Changed("log-file") || cmd.Flags().Changed("log-level") {
		cfg.Logging.Enabled = true
	}
	return log.Init(log.Options{
		Enabled: cfg.Logging.Enabled,
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
	})
}

func execute() {
	err := rootCmd.Execute()
	switch {
	case err == nil:
	case errors.Is(err, errTextsDiffer), errors.Is(err, errBatchFailed):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
