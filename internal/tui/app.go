package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/textdiff/textdiff/internal/config"
	"github.com/textdiff/textdiff/internal/diff"
	"github.com/textdiff/textdiff/internal/input"
	"github.com/textdiff/textdiff/internal/log"
	"github.com/textdiff/textdiff/internal/session"
	"go.uber.org/zap"
)

type screen int

const (
	screenEdit screen = iota
	screenResults
	screenContext
)

// Options configures the application.
type Options struct {
	// Backend is config.BackendTextarea or config.BackendNvim.
	Backend     string
	ContextSize int
	MaxLines    int
	StripCR     bool

	// Left and Right preload the panes. When both are empty the session
	// drafts are used instead.
	Left  string
	Right string

	// Session stores drafts between runs; nil disables it.
	Session *session.Store

	// Changes delivers reloaded files; Panes maps each watched path to
	// the pane it feeds.
	Changes <-chan input.Change
	Panes   map[string]int
}

// comparison is the outcome of one compare request.
type comparison struct {
	left    []string
	right   []string
	result  diff.Result
	stats   diff.Stats
	elapsed time.Duration
}

type comparedMsg struct {
	cmp *comparison
}

type fileChangedMsg input.Change

// App is the main Bubble Tea model.
type App struct {
	opts        Options
	screen      screen
	editor      editor
	editView    EditView
	resultsView ResultsView
	contextView ContextView
	cmp         *comparison
	startup     tea.Cmd
	width       int
	height      int
}

// NewApp creates the main application model.
func NewApp(opts Options) (*App, error) {
	ed, err := newEditor(opts.Backend)
	if err != nil {
		return nil, err
	}
	if opts.MaxLines <= 0 {
		opts.MaxLines = input.DefaultMaxLines
	}
	if opts.ContextSize < 0 {
		opts.ContextSize = diff.DefaultContextSize
	}

	app := &App{
		opts:     opts,
		screen:   screenEdit,
		editor:   ed,
		editView: NewEditView(ed, opts.MaxLines),
	}

	left, right := opts.Left, opts.Right
	if left == "" && right == "" && opts.Session != nil {
		left, right = opts.Session.Left, opts.Session.Right
	}
	app.startup = tea.Batch(app.editView.load(paneLeft, left), app.editView.load(paneRight, right))

	return app, nil
}

func newEditor(backend string) (editor, error) {
	switch backend {
	case "", config.BackendTextarea:
		return newTextareaEditor(), nil
	case config.BackendNvim:
		return newNvimEditor()
	default:
		return nil, fmt.Errorf("unknown editor backend %q", backend)
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.editView.Init(), a.startup, waitForChange(a.opts.Changes))
}

func waitForChange(ch <-chan input.Change) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		return fileChangedMsg(change)
	}
}

// runCompare diffs the two texts off the event loop.
func runCompare(left, right string, stripCR bool) tea.Cmd {
	return func() tea.Msg {
		if stripCR {
			left, right = input.StripCR(left), input.StripCR(right)
		}
		start := time.Now()
		a, b := diff.SplitLines(left), diff.SplitLines(right)
		res := diff.Compare(a, b)
		cmp := &comparison{
			left:    a,
			right:   b,
			result:  res,
			stats:   diff.Summarize(res.Records, a, b),
			elapsed: time.Since(start),
		}
		log.Info("compared texts",
			zap.Int("left_lines", len(a)),
			zap.Int("right_lines", len(b)),
			zap.Bool("identical", res.Identical),
			zap.Int("records", len(res.Records)),
			zap.Duration("elapsed", cmp.elapsed),
		)
		return comparedMsg{cmp: cmp}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.editView, _ = a.editView.Update(msg)
		a.resultsView, _ = a.resultsView.Update(msg)
		if a.screen == screenContext {
			a.contextView, _ = a.contextView.Update(msg)
		}
		return a, nil

	case tea.KeyMsg:
		// Global quit
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case compareMsg:
		return a, runCompare(msg.left, msg.right, a.opts.StripCR)

	case comparedMsg:
		a.cmp = msg.cmp
		a.editView.setVerdict(msg.cmp.result.Identical)
		if msg.cmp.result.Identical {
			a.screen = screenEdit
			return a, nil
		}
		a.resultsView = NewResultsView(msg.cmp)
		a.resultsView, _ = a.resultsView.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.screen = screenResults
		return a, nil

	case resetMsg:
		a.cmp = nil
		a.screen = screenEdit
		if a.opts.Session != nil {
			if err := a.opts.Session.Reset(); err != nil {
				log.Warn("resetting session failed", zap.Error(err))
			}
		}
		return a, nil

	case fileChangedMsg:
		return a.reload(input.Change(msg))

	case openContextMsg:
		if a.cmp == nil || msg.index >= len(a.cmp.result.Records) {
			return a, nil
		}
		a.contextView = NewContextView(a.cmp, msg.index, a.opts.ContextSize, a.width, a.height)
		a.screen = screenContext
		return a, nil

	case backMsg:
		switch a.screen {
		case screenContext:
			a.resultsView.cursor = a.contextView.index
			a.screen = screenResults
		case screenResults:
			a.screen = screenEdit
		}
		return a, nil

	case toastExpiredMsg, nvimSyncMsg, pasteMsg:
		// Owned by the edit screen whichever screen is showing.
		var cmd tea.Cmd
		a.editView, cmd = a.editView.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.screen {
	case screenEdit:
		a.editView, cmd = a.editView.Update(msg)
	case screenResults:
		a.resultsView, cmd = a.resultsView.Update(msg)
	case screenContext:
		a.contextView, cmd = a.contextView.Update(msg)
	}
	return a, cmd
}

// reload puts a changed file into its pane and, when a comparison is on
// screen, compares again.
func (a App) reload(change input.Change) (tea.Model, tea.Cmd) {
	next := waitForChange(a.opts.Changes)
	if change.Err != nil {
		log.Warn("reloading file failed", zap.String("path", change.Path), zap.Error(change.Err))
		return a, next
	}
	pane, ok := a.opts.Panes[change.Path]
	if !ok {
		return a, next
	}
	log.Debug("file reloaded", zap.String("path", change.Path), zap.Int("pane", pane))

	cmds := []tea.Cmd{next, a.editView.load(pane, change.Text)}
	if a.cmp != nil {
		cmds = append(cmds, runCompare(a.editor.Text(paneLeft), a.editor.Text(paneRight), a.opts.StripCR))
	}
	return a, tea.Batch(cmds...)
}

func (a App) View() string {
	switch a.screen {
	case screenEdit:
		return a.editView.View()
	case screenResults:
		return a.resultsView.View()
	case screenContext:
		return a.contextView.View()
	}

	return ""
}

// Shutdown saves the pane drafts and stops the editor of the final model
// returned by the program.
func Shutdown(m tea.Model) error {
	var a App
	switch m := m.(type) {
	case App:
		a = m
	case *App:
		a = *m
	default:
		return nil
	}

	var errs []error
	if a.opts.Session != nil {
		a.opts.Session.Set(a.editor.Text(paneLeft), a.editor.Text(paneRight))
		if err := a.opts.Session.Save(); err != nil {
			errs = append(errs, fmt.Errorf("saving session: %w", err))
		}
	}
	if err := a.editor.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing editor: %w", err))
	}
	return errors.Join(errs...)
}
