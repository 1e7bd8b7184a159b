// Package tui is an interactive, scrollable viewer for rendered grids
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/consolegrid/table"
)

// chromeHeight is the number of lines below the viewport (status bar and help)
const chromeHeight = 2

// Loader builds the grid shown by the viewer
type Loader func() (*table.Grid, error)

// Model represents the viewer state
type Model struct {
	name string
	load Loader
	keys KeyMap

	viewport viewport.Model
	grid     *table.Grid
	// maxWidth is the grid's own limit, restored when fitting is turned off
	maxWidth int

	width  int
	height int

	// State
	ready      bool
	quitting   bool
	fit        bool
	watching   bool
	lastUpdate string
	reloads    int

	// Error state
	err error

	styles Styles
}

// Styles contains the Lipgloss styles for the UI
type Styles struct {
	StatusBar lipgloss.Style
	Name      lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Watching  lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the default UI styles
func DefaultStyles() Styles {
	var styles Styles

	// Color palette
	primaryColor := lipgloss.Color("86")    // Green
	secondaryColor := lipgloss.Color("239") // Grey
	errorColor := lipgloss.Color("196")     // Red

	styles.StatusBar = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("250"))

	styles.Name = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(secondaryColor).
		Padding(0, 1)

	styles.Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		Padding(0, 1)

	styles.Error = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true).
		Padding(0, 1)

	styles.Watching = lipgloss.NewStyle().
		Foreground(primaryColor).
		Padding(0, 1)

	styles.Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return styles
}

// Option configures a Model
type Option func(*Model)

// WithFitWidth starts the viewer with the grid limited to the terminal width
func WithFitWidth(fit bool) Option {
	return func(m *Model) { m.fit = fit }
}

// WithKeyMap replaces the default keybindings
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// NewModel creates a viewer for the grid produced by load. name labels the
// status bar, usually the input file.
func NewModel(name string, load Loader, opts ...Option) Model {
	m := Model{
		name:   name,
		load:   load,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init loads the grid
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		g, err := load()
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return GridLoadedMsg{Grid: g, Time: time.Now()}
	}
}

// Rendered returns the text currently shown in the viewport
func (m Model) Rendered() string {
	if m.grid == nil {
		return ""
	}
	return m.grid.String()
}

// refresh applies the width policy to the grid and reloads the viewport
func (m *Model) refresh() {
	if m.grid == nil {
		return
	}

	limit := m.maxWidth
	if m.fit && m.width > 0 && (limit == 0 || m.width < limit) {
		limit = max(m.width, m.grid.MinWidth())
	}
	if err := m.grid.SetMaxWidth(limit); err != nil {
		m.err = err
		return
	}

	if m.ready {
		m.viewport.SetContent(m.Rendered())
	}
}
