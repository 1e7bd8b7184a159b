package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/consolegrid/internal/watch"
	"github.com/young1lin/consolegrid/table"
)

func smallGrid() *table.Grid {
	g := table.NewGrid()
	g.AddColumn("name")
	g.AddColumn("note")
	g.AddRow("alpha", "the quick brown fox jumps over")
	return g
}

func tallGrid(rows int) *table.Grid {
	g := table.NewGrid()
	g.AddColumn("n")
	for i := 0; i < rows; i++ {
		g.AddRow(fmt.Sprint(i))
	}
	return g
}

func loaderFor(g *table.Grid) Loader {
	return func() (*table.Grid, error) { return g, nil }
}

// loaded returns a model that has received a window size and a grid
func loaded(t *testing.T, g *table.Grid, width, height int, opts ...Option) Model {
	t.Helper()
	m := NewModel("grid.yaml", loaderFor(g), opts...)
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	next, _ = next.(Model).Update(GridLoadedMsg{Grid: g, Time: time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)})
	return next.(Model)
}

func TestNewModel(t *testing.T) {
	model := NewModel("grid.yaml", loaderFor(smallGrid()))

	if model.ready {
		t.Error("NewModel().ready = true, want false")
	}
	if model.quitting {
		t.Error("NewModel().quitting = true, want false")
	}
	if model.fit {
		t.Error("NewModel().fit = true, want false")
	}
	if model.Rendered() != "" {
		t.Errorf("NewModel().Rendered() = %q, want empty", model.Rendered())
	}

	model = NewModel("grid.yaml", loaderFor(smallGrid()), WithFitWidth(true))
	if !model.fit {
		t.Error("WithFitWidth(true) should enable fitting")
	}
}

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	// We can't compare lipgloss.Style directly as it contains functions
	for name, style := range map[string]func(...string) string{
		"StatusBar": styles.StatusBar.Render,
		"Name":      styles.Name.Render,
		"Error":     styles.Error.Render,
		"Help":      styles.Help.Render,
	} {
		if style("test") == "" {
			t.Errorf("DefaultStyles().%s should render something", name)
		}
	}
}

func TestModelInit(t *testing.T) {
	g := smallGrid()
	cmd := NewModel("grid.yaml", loaderFor(g)).Init()
	if cmd == nil {
		t.Fatal("Model.Init() should return a load command")
	}

	msg, ok := cmd().(GridLoadedMsg)
	if !ok {
		t.Fatalf("Init command returned %T, want GridLoadedMsg", cmd())
	}
	if msg.Grid != g {
		t.Error("GridLoadedMsg should carry the loaded grid")
	}
}

func TestModelInitLoadError(t *testing.T) {
	boom := errors.New("boom")
	m := NewModel("grid.yaml", func() (*table.Grid, error) { return nil, boom })

	msg, ok := m.Init()().(ErrorMsg)
	if !ok {
		t.Fatal("failed load should produce ErrorMsg")
	}
	if !errors.Is(msg.Err, boom) {
		t.Errorf("ErrorMsg.Err = %v, want %v", msg.Err, boom)
	}

	next, _ := m.Update(msg)
	view := next.(Model).View()
	if !strings.Contains(view, "boom") {
		t.Errorf("View() = %q, should show the error while loading", view)
	}
}

func TestGridLoaded(t *testing.T) {
	g := smallGrid()
	m := loaded(t, g, 80, 24)

	if !m.ready {
		t.Fatal("model should be ready after WindowSizeMsg")
	}
	if m.lastUpdate != "15:04:05" {
		t.Errorf("lastUpdate = %q, want 15:04:05", m.lastUpdate)
	}
	if m.reloads != 1 {
		t.Errorf("reloads = %d, want 1", m.reloads)
	}
	if m.Rendered() != g.String() {
		t.Error("Rendered() should match the grid output")
	}
	if !strings.Contains(m.View(), "| alpha | the quick brown fox jumps over |") {
		t.Errorf("View() should contain the grid row, got:\n%s", m.View())
	}
}

func TestGridLoadedBeforeWindowSize(t *testing.T) {
	g := smallGrid()
	m := NewModel("grid.yaml", loaderFor(g))
	next, _ := m.Update(GridLoadedMsg{Grid: g, Time: time.Now()})
	m = next.(Model)

	if !strings.Contains(m.View(), "Loading grid.yaml") {
		t.Errorf("View() = %q, want loading text", m.View())
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if !strings.Contains(next.(Model).View(), "alpha") {
		t.Error("grid should appear once the window size is known")
	}
}

func TestFitWidth(t *testing.T) {
	m := loaded(t, smallGrid(), 24, 24, WithFitWidth(true))

	for _, line := range strings.Split(strings.TrimSuffix(m.Rendered(), "\n"), "\n") {
		if n := utf8.RuneCountInString(line); n > 24 {
			t.Errorf("line %q is %d wide, want <= 24", line, n)
		}
	}

	// Toggling fit off restores the grid's own limit
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	m = next.(Model)
	if m.fit {
		t.Error("w should toggle fit off")
	}
	if !strings.Contains(m.Rendered(), "the quick brown fox jumps over") {
		t.Error("unfitted grid should render the note on one line")
	}
}

func TestFitWidthKeepsGridMaximum(t *testing.T) {
	g := smallGrid()
	if err := g.SetMaxWidth(30); err != nil {
		t.Fatal(err)
	}
	m := loaded(t, g, 100, 24, WithFitWidth(true))
	if got := m.grid.MaxWidth(); got != 30 {
		t.Errorf("MaxWidth() = %d, want the grid's own 30", got)
	}
}

func TestFileChanged(t *testing.T) {
	m := loaded(t, smallGrid(), 80, 24)

	_, cmd := m.Update(FileChangedMsg{Event: watch.Event{Path: "grid.yaml"}})
	if cmd == nil {
		t.Fatal("FileChangedMsg should trigger a reload")
	}
	if _, ok := cmd().(GridLoadedMsg); !ok {
		t.Error("reload command should produce GridLoadedMsg")
	}

	next, cmd := m.Update(FileChangedMsg{Event: watch.Event{Path: "grid.yaml", Removed: true}})
	if cmd != nil {
		t.Error("a removed file should not trigger a reload")
	}
	if next.(Model).err == nil {
		t.Error("a removed file should set an error")
	}
}

func TestWatcherMessages(t *testing.T) {
	m := loaded(t, smallGrid(), 80, 24)

	next, _ := m.Update(WatcherStartedMsg{})
	m = next.(Model)
	if !m.watching || !strings.Contains(m.View(), "watching") {
		t.Error("WatcherStartedMsg should show the watching flag")
	}

	next, _ = m.Update(WatcherFailedMsg{Err: errors.New("too many open files")})
	m = next.(Model)
	if !strings.Contains(m.View(), "too many open files") {
		t.Error("WatcherFailedMsg should surface the error")
	}

	next, _ = m.Update(WatcherStoppedMsg{})
	if next.(Model).watching {
		t.Error("WatcherStoppedMsg should clear the watching flag")
	}
}

func TestLoadClearsError(t *testing.T) {
	m := loaded(t, smallGrid(), 80, 24)
	next, _ := m.Update(ErrorMsg{Err: errors.New("bad yaml")})
	m = next.(Model)
	if m.err == nil {
		t.Fatal("ErrorMsg should set err")
	}

	next, _ = m.Update(GridLoadedMsg{Grid: smallGrid(), Time: time.Now()})
	if next.(Model).err != nil {
		t.Error("a successful load should clear err")
	}
}

func TestViewQuitting(t *testing.T) {
	m := loaded(t, smallGrid(), 80, 24)
	m.quitting = true
	if m.View() != "" {
		t.Errorf("View() = %q, want empty after quitting", m.View())
	}
}

func TestStatusBarNarrowTerminal(t *testing.T) {
	m := loaded(t, smallGrid(), 10, 24)
	m.err = errors.New("a very long error message that cannot fit")
	if strings.Contains(m.renderStatusBar(), "cannot fit") {
		t.Error("narrow status bar should drop the state text")
	}
}
