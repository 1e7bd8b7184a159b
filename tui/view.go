package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return m.renderLoading()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.renderStatusBar(),
		m.renderHelp(),
	)
}

// renderLoading renders the loading state
func (m Model) renderLoading() string {
	if m.err != nil {
		return m.styles.Error.Render("Error: "+m.err.Error()) + "\n"
	}
	return m.styles.Muted.Render("Loading "+m.name+"...") + "\n"
}

// renderStatusBar renders the file name, state and scroll position
func (m Model) renderStatusBar() string {
	name := m.styles.Name.Render(m.name)

	var state string
	switch {
	case m.err != nil:
		state = m.styles.Error.Render(m.err.Error())
	case m.lastUpdate != "":
		state = m.styles.Muted.Render("updated " + m.lastUpdate)
	}

	var flags []string
	if m.watching {
		flags = append(flags, m.styles.Watching.Render("watching"))
	}
	if m.fit {
		flags = append(flags, m.styles.Muted.Render("fit"))
	}
	flags = append(flags, m.styles.Muted.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)))
	right := strings.Join(flags, "")

	gap := m.width - lipgloss.Width(name) - lipgloss.Width(state) - lipgloss.Width(right)
	if gap < 0 {
		// Narrow terminal, drop the state text first
		state = ""
		gap = max(m.width-lipgloss.Width(name)-lipgloss.Width(right), 0)
	}

	bar := name + state + strings.Repeat(" ", gap) + right
	return m.styles.StatusBar.Render(bar)
}

// renderHelp renders the key help line
func (m Model) renderHelp() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Help.Render(strings.Join(parts, " • "))
}
