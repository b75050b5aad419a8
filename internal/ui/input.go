package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbwilding/steam-achievement-manager/internal/logging/events"
	"github.com/mbwilding/steam-achievement-manager/internal/ui/state"
)

func (m *Model) startEditing() {
	m.appIDInput = ""
	m.editStatus = state.Status{}
	m.setMode(ModeEditingAppID)
}

// leaveEditing returns to the list, or quits when there is nothing to return to.
func (m *Model) leaveEditing(reason string) tea.Cmd {
	if m.list == nil {
		return m.quit(reason)
	}
	m.appIDInput = ""
	m.editStatus = state.Status{}
	m.setMode(ModeBrowsing)
	return nil
}

func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	k := m.edit
	switch {
	case key.Matches(msg, k.ForceQuit):
		return m.quit("interrupt")
	case key.Matches(msg, k.Cancel):
		return m.leaveEditing("cancel")
	case key.Matches(msg, k.Clear):
		m.appIDInput = ""
		m.editStatus = state.Status{}
	case key.Matches(msg, k.Delete):
		if n := len(m.appIDInput); n > 0 {
			m.appIDInput = m.appIDInput[:n-1]
		}
		m.editStatus = state.Status{}
	case key.Matches(msg, k.Load):
		return m.submitAppID()
	case msg.Type == tea.KeyRunes && !msg.Alt:
		m.appendDigits(msg.Runes)
	}
	return nil
}

func (m *Model) appendDigits(runes []rune) {
	for _, r := range runes {
		if r < '0' || r > '9' {
			continue
		}
		if len(m.appIDInput) >= maxAppIDDigits {
			return
		}
		m.appIDInput += string(r)
		m.editStatus = state.Status{}
	}
}

func (m *Model) submitAppID() tea.Cmd {
	input := m.appIDInput
	if input == "" {
		return m.leaveEditing("empty app id")
	}
	parsed, err := strconv.ParseUint(input, 10, 32)
	if err != nil {
		m.editStatus = state.Status{Level: state.Error, Text: fmt.Sprintf("Invalid App ID: %s", input)}
		m.appIDInput = ""
		return nil
	}
	if err := m.load(uint32(parsed)); err != nil {
		m.editStatus = state.Status{Level: state.Error, Text: err.Error()}
		m.appIDInput = ""
		return nil
	}
	m.appIDInput = ""
	m.editStatus = state.Status{}
	m.setMode(ModeBrowsing)
	return nil
}

func (m *Model) startSearch() {
	m.searchOrigin = m.list.Cursor
	m.search.Reset()
	m.search.Focus()
	m.setMode(ModeSearching)
	m.syncViewport()
}

func (m *Model) endSearch() {
	m.search.Blur()
	m.search.Reset()
	m.setMode(ModeBrowsing)
	m.syncViewport()
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	k := m.find
	switch {
	case key.Matches(msg, k.ForceQuit):
		return m.quit("interrupt")
	case key.Matches(msg, k.Cancel):
		m.list.JumpTo(m.searchOrigin)
		m.list.ClearStatus()
		events.Search.Cancel(m.list.Cursor)
		m.endSearch()
		return nil
	case key.Matches(msg, k.Accept):
		m.endSearch()
		return nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	query := m.search.Value()
	if query == before {
		return cmd
	}
	m.applySearch(query)
	return cmd
}

func (m *Model) applySearch(query string) {
	if strings.TrimSpace(query) == "" {
		m.list.ClearStatus()
		return
	}
	matched := m.list.SearchFirstMatch(query)
	events.Search.Query(query, matched, m.list.Cursor)
	if matched {
		m.list.ClearStatus()
	} else {
		m.list.SetStatus(state.Info, fmt.Sprintf("No match for %q", strings.TrimSpace(query)))
	}
	m.syncViewport()
}

// SearchQuery returns the text in the search prompt.
func (m *Model) SearchQuery() string {
	return m.search.Value()
}
