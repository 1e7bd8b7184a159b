package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
		m.refresh()
		return m, nil

	case GridLoadedMsg:
		if msg.Grid != m.grid {
			m.maxWidth = msg.Grid.MaxWidth()
		}
		m.grid = msg.Grid
		m.lastUpdate = msg.Time.Format("15:04:05")
		m.reloads++
		m.err = nil
		m.refresh()
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case FileChangedMsg:
		if msg.Event.Removed {
			m.err = fmt.Errorf("%s was removed", msg.Event.Path)
			return m, nil
		}
		return m, m.loadCmd()

	case WatcherStartedMsg:
		m.watching = true
		return m, nil

	case WatcherFailedMsg:
		m.err = msg.Err
		return m, nil

	case WatcherStoppedMsg:
		m.watching = false
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reload):
		return m, m.loadCmd()
	case key.Matches(msg, m.keys.Fit):
		m.fit = !m.fit
		if m.grid != nil {
			// Restore the grid's own limit before re-applying the policy
			if err := m.grid.SetMaxWidth(m.maxWidth); err != nil {
				m.err = err
				return m, nil
			}
		}
		m.refresh()
		return m, nil
	}

	if !m.ready {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	}
	return m, nil
}
