package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbwilding/steam-achievement-manager/internal/achievement"
	"github.com/mbwilding/steam-achievement-manager/internal/logging/events"
)

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	k := m.browse
	switch {
	case key.Matches(msg, k.ForceQuit):
		return m.quit("interrupt")
	case key.Matches(msg, k.Quit):
		return m.quit("quit key")
	case key.Matches(msg, k.SwitchApp):
		m.startEditing()
		return nil
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.syncViewport()
		return nil
	}
	if m.list == nil {
		return nil
	}
	switch {
	case key.Matches(msg, k.Up):
		m.moveCursor(m.list.Previous)
	case key.Matches(msg, k.Down):
		m.moveCursor(m.list.Next)
	case key.Matches(msg, k.Top):
		m.moveCursor(m.list.JumpToTop)
	case key.Matches(msg, k.Bottom):
		m.moveCursor(m.list.JumpToBottom)
	case key.Matches(msg, k.PageUp):
		m.moveCursor(m.list.PageUp)
	case key.Matches(msg, k.PageDown):
		m.moveCursor(m.list.PageDown)
	case key.Matches(msg, k.Toggle):
		m.list.ToggleSelection()
	case key.Matches(msg, k.SelectAll):
		m.list.SelectAll()
	case key.Matches(msg, k.DeselectAll):
		m.list.DeselectAll()
	case key.Matches(msg, k.SortPercent):
		m.setSortColumn(achievement.ByPercentage)
	case key.Matches(msg, k.SortName):
		m.setSortColumn(achievement.ByName)
	case key.Matches(msg, k.ToggleOrder):
		m.list.ToggleSortOrder()
		m.sort = m.list.Sort
		m.syncViewport()
	case key.Matches(msg, k.Commit):
		m.engine.Process(m.ctx, m.list)
	case key.Matches(msg, k.Search):
		m.startSearch()
	}
	return nil
}

func (m *Model) moveCursor(move func()) {
	before := m.list.Cursor
	move()
	if m.list.Cursor != before {
		events.UI.Cursor(m.list.AppID, m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) setSortColumn(col achievement.Column) {
	m.list.SetSortColumn(col)
	m.sort = m.list.Sort
	m.syncViewport()
}

func (m *Model) syncViewport() {
	if m.list == nil {
		return
	}
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedSize {
		m.width = resize.Width
		m.height = resize.Height
		m.help.Width = resize.Width
	}
	m.syncViewport()
	return nil
}
