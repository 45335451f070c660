package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textdiff/textdiff/internal/config"
	"github.com/textdiff/textdiff/internal/diff"
	"github.com/textdiff/textdiff/internal/input"
	"github.com/textdiff/textdiff/internal/report"
	"github.com/textdiff/textdiff/internal/session"
)

func newTestApp(t *testing.T, opts Options) App {
	t.Helper()
	opts.Backend = config.BackendTextarea
	app, err := NewApp(opts)
	require.NoError(t, err)
	m, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m.(App)
}

func send(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	return m.(App), cmd
}

// compareNow runs a compare request through the app the way the program would.
func compareNow(t *testing.T, a App) App {
	t.Helper()
	a, cmd := send(t, a, compareMsg{left: a.editor.Text(paneLeft), right: a.editor.Text(paneRight)})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, comparedMsg{}, msg)
	a, _ = send(t, a, msg)
	return a
}

func TestNewAppUnknownBackend(t *testing.T) {
	_, err := NewApp(Options{Backend: "emacs"})
	assert.Error(t, err)
}

func TestAppCompareDifferentTexts(t *testing.T) {
	a := newTestApp(t, Options{Left: "a\nb\nc", Right: "a\nx\nc", ContextSize: 3})
	a = compareNow(t, a)

	assert.Equal(t, screenResults, a.screen)
	require.NotNil(t, a.cmp)
	assert.Equal(t, []diff.Record{{
		Kind:  diff.Modify,
		Left:  diff.Range{Start: 2, End: 2},
		Right: diff.Range{Start: 2, End: 2},
	}}, a.cmp.result.Records)
	assert.Equal(t, 67, a.cmp.stats.Similarity)

	view := a.View()
	assert.Contains(t, view, report.DifferentMessage)
	assert.Contains(t, view, "1. Modify 1 line (2, left text) to 1 line (2, right text)")
}

func TestAppCompareIdenticalTexts(t *testing.T) {
	a := newTestApp(t, Options{Left: "same\ntext", Right: "same\ntext"})
	a = compareNow(t, a)

	assert.Equal(t, screenEdit, a.screen)
	assert.True(t, a.cmp.result.Identical)
	assert.Equal(t, verdictIdentical, a.editView.verdict)
	assert.Contains(t, a.View(), report.IdenticalMessage)
}

func TestAppStripCR(t *testing.T) {
	a := newTestApp(t, Options{Left: "a\nb", Right: "a\nb", StripCR: true})
	_, cmd := send(t, a, compareMsg{left: "a\r\nb", right: "a\nb"})
	msg := cmd().(comparedMsg)
	assert.True(t, msg.cmp.result.Identical)
}

func TestAppNavigatesContext(t *testing.T) {
	a := newTestApp(t, Options{
		Left:        "a\nb\nc\nd",
		Right:       "x\nb\nc",
		ContextSize: 1,
	})
	a = compareNow(t, a)
	require.Len(t, a.cmp.result.Records, 2)

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, a.resultsView.cursor)

	a, cmd := send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	a, _ = send(t, a, cmd())
	assert.Equal(t, screenContext, a.screen)
	assert.Equal(t, 1, a.contextView.index)
	assert.Contains(t, a.View(), "Change 2 of 2")

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	assert.Equal(t, 0, a.contextView.index)

	a, cmd = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	a, _ = send(t, a, cmd())
	assert.Equal(t, screenResults, a.screen)
	assert.Equal(t, 0, a.resultsView.cursor)

	a, cmd = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	a, _ = send(t, a, cmd())
	assert.Equal(t, screenEdit, a.screen)
	assert.Equal(t, verdictDifferent, a.editView.verdict)
}

func TestAppOpenContextOutOfRange(t *testing.T) {
	a := newTestApp(t, Options{Left: "a", Right: "b"})
	a = compareNow(t, a)
	a, _ = send(t, a, openContextMsg{index: 5})
	assert.Equal(t, screenResults, a.screen)
}

func TestAppRestoresAndSavesSession(t *testing.T) {
	dir := t.TempDir()
	store, err := session.New(dir)
	require.NoError(t, err)
	store.Set("draft left", "draft right")

	a := newTestApp(t, Options{Session: store})
	assert.Equal(t, "draft left", a.editor.Text(paneLeft))
	assert.Equal(t, "draft right", a.editor.Text(paneRight))

	a.editor.SetText(paneRight, "edited")
	require.NoError(t, Shutdown(a))

	reloaded, err := session.New(dir)
	require.NoError(t, err)
	assert.Equal(t, "draft left", reloaded.Left)
	assert.Equal(t, "edited", reloaded.Right)
}

func TestAppPreloadedTextsWinOverSession(t *testing.T) {
	store, err := session.New(t.TempDir())
	require.NoError(t, err)
	store.Set("old", "old")

	a := newTestApp(t, Options{Session: store, Left: "new"})
	assert.Equal(t, "new", a.editor.Text(paneLeft))
	assert.Equal(t, "", a.editor.Text(paneRight))
}

func TestAppResetClearsSession(t *testing.T) {
	store, err := session.New(t.TempDir())
	require.NoError(t, err)
	store.Set("l", "r")

	a := newTestApp(t, Options{Session: store})
	a = compareNow(t, a)
	a, _ = send(t, a, resetMsg{})

	assert.Nil(t, a.cmp)
	assert.Equal(t, screenEdit, a.screen)
	assert.True(t, store.Empty())
}

func TestAppReloadsWatchedFile(t *testing.T) {
	left := filepath.Join(t.TempDir(), "left.txt")
	changes := make(chan input.Change, 1)
	a := newTestApp(t, Options{
		Left:    "a",
		Right:   "b",
		Changes: changes,
		Panes:   map[string]int{left: paneLeft},
	})
	a = compareNow(t, a)
	require.False(t, a.cmp.result.Identical)

	a, cmd := send(t, a, fileChangedMsg{Path: left, Text: "b"})
	assert.Equal(t, "b", a.editor.Text(paneLeft))
	require.NotNil(t, cmd)

	a, _ = send(t, a, runCompare(a.editor.Text(paneLeft), a.editor.Text(paneRight), false)())
	assert.True(t, a.cmp.result.Identical)
	assert.Equal(t, screenEdit, a.screen)
}

func TestAppIgnoresUnknownPaths(t *testing.T) {
	a := newTestApp(t, Options{Left: "a"})
	a, _ = send(t, a, fileChangedMsg{Path: "/elsewhere.txt", Text: "zzz"})
	assert.Equal(t, "a", a.editor.Text(paneLeft))
}
