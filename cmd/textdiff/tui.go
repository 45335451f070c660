package main

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/textdiff/textdiff/internal/config"
	"github.com/textdiff/textdiff/internal/input"
	"github.com/textdiff/textdiff/internal/log"
	"github.com/textdiff/textdiff/internal/session"
	"github.com/textdiff/textdiff/internal/tui"
	"go.uber.org/zap"
)

var (
	tuiWatch bool
	tuiNvim  bool
)

func init() {
	rootCmd.Flags().BoolVarP(&tuiWatch, "watch", "w", false, "Reload the given files when they change")
	rootCmd.Flags().BoolVar(&tuiNvim, "nvim", false, "Edit the panes in an embedded Neovim")
}

func runTUI(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("expected two files, got one")
	}
	if tuiWatch && len(args) == 0 {
		return fmt.Errorf("--watch needs two files")
	}
	for _, path := range args {
		if path == "-" {
			return fmt.Errorf("the editor cannot read from stdin; use the compare command")
		}
	}

	opts := tui.Options{
		Backend:     cfg.Editor.Backend,
		ContextSize: cfg.Diff.ContextSize,
		MaxLines:    cfg.Limits.MaxLines,
		StripCR:     cfg.Input.StripCR,
	}
	if tuiNvim {
		opts.Backend = config.BackendNvim
	}

	if len(args) == 2 {
		var err error
		if opts.Left, err = input.ReadFile(args[0]); err != nil {
			return err
		}
		if opts.Right, err = input.ReadFile(args[1]); err != nil {
			return err
		}
	}

	if cfg.Session.Restore {
		store, err := session.New(cfg.Session.Dir)
		if err != nil {
			log.Warn("session unavailable", zap.Error(err))
		} else {
			opts.Session = store
		}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if tuiWatch {
		watcher, err := input.NewWatcher(args, input.WatcherConfig{
			DebounceMs: cfg.Input.WatchDebounceMs,
			Logger:     log.Logger(),
		})
		if err != nil {
			return err
		}
		watcher.Start(ctx)
		defer watcher.Stop()

		opts.Changes = watcher.Changes()
		opts.Panes = make(map[string]int, len(args))
		for pane, path := range args {
			abs, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", path, err)
			}
			opts.Panes[abs] = pane
		}
	}

	app, err := tui.NewApp(opts)
	if err != nil {
		return err
	}
	log.Info("starting tui", zap.String("backend", opts.Backend), zap.Bool("watch", tuiWatch))

	final, runErr := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if final == nil {
		final = app
	}
	if err := tui.Shutdown(final); err != nil {
		log.Warn("shutdown failed", zap.Error(err))
	}
	if runErr != nil {
		return fmt.Errorf("running tui: %w", runErr)
	}
	return nil
}
