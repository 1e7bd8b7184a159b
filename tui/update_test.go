package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHandleKeyMsgQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", runes("q")},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := NewModel("grid.yaml", loaderFor(smallGrid()))
			result, cmd := model.handleKeyMsg(tt.msg)

			newModel, ok := result.(Model)
			if !ok {
				t.Fatal("handleKeyMsg() should return a Model")
			}
			if !newModel.quitting {
				t.Errorf("handleKeyMsg(%s).quitting should be true", tt.name)
			}
			if cmd == nil {
				t.Errorf("handleKeyMsg(%s) should return tea.Quit cmd", tt.name)
			}
		})
	}
}

func TestHandleKeyMsgReload(t *testing.T) {
	g := smallGrid()
	model := NewModel("grid.yaml", loaderFor(g))

	_, cmd := model.handleKeyMsg(runes("r"))
	if cmd == nil {
		t.Fatal("handleKeyMsg('r') should return a load cmd")
	}
	msg, ok := cmd().(GridLoadedMsg)
	if !ok || msg.Grid != g {
		t.Error("reload should produce GridLoadedMsg with the grid")
	}
}

func TestHandleKeyMsgScroll(t *testing.T) {
	// 40 rows plus borders and header in an 8 line viewport
	m := loaded(t, tallGrid(40), 20, 10)

	if m.viewport.Height != 8 {
		t.Fatalf("viewport.Height = %d, want 8", m.viewport.Height)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	if m.viewport.YOffset != 1 {
		t.Errorf("YOffset after down = %d, want 1", m.viewport.YOffset)
	}

	next, _ = m.Update(runes("k"))
	m = next.(Model)
	if m.viewport.YOffset != 0 {
		t.Errorf("YOffset after up = %d, want 0", m.viewport.YOffset)
	}

	next, _ = m.Update(runes("f"))
	m = next.(Model)
	if m.viewport.YOffset != 8 {
		t.Errorf("YOffset after page down = %d, want 8", m.viewport.YOffset)
	}

	next, _ = m.Update(runes("b"))
	m = next.(Model)
	if m.viewport.YOffset != 0 {
		t.Errorf("YOffset after page up = %d, want 0", m.viewport.YOffset)
	}

	next, _ = m.Update(runes("G"))
	m = next.(Model)
	if !m.viewport.AtBottom() {
		t.Error("G should scroll to the bottom")
	}

	next, _ = m.Update(runes("g"))
	m = next.(Model)
	if !m.viewport.AtTop() {
		t.Error("g should scroll to the top")
	}
}

func TestHandleKeyMsgBeforeReady(t *testing.T) {
	model := NewModel("grid.yaml", loaderFor(smallGrid()))
	result, cmd := model.handleKeyMsg(runes("j"))
	if cmd != nil {
		t.Error("scrolling before the viewport exists should be a no-op")
	}
	if result.(Model).ready {
		t.Error("model should still not be ready")
	}
}

func TestWindowResize(t *testing.T) {
	m := loaded(t, smallGrid(), 80, 24)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	m = next.(Model)

	if m.viewport.Width != 60 || m.viewport.Height != 10 {
		t.Errorf("viewport = %dx%d, want 60x10", m.viewport.Width, m.viewport.Height)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 1})
	if next.(Model).viewport.Height != 1 {
		t.Error("viewport height should never drop below 1")
	}
}

func TestHelpLine(t *testing.T) {
	help := NewModel("grid.yaml", loaderFor(smallGrid())).renderHelp()
	for _, want := range []string{"q quit", "r reload", "w fit width"} {
		if !containsText(help, want) {
			t.Errorf("help line %q should contain %q", help, want)
		}
	}
}
