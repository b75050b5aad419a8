package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mbwilding/steam-achievement-manager/internal/achievement"
	"github.com/mbwilding/steam-achievement-manager/internal/format/table"
	"github.com/mbwilding/steam-achievement-manager/internal/ui/state"
	"github.com/muesli/reflow/truncate"
)

const (
	appTitle       = "Steam Achievement Manager"
	editingHint    = "Editing App ID - Type the app ID and press Enter to load"
	cursorPrefix   = "▌ "
	noCursorPrefix = "  "
	columnGap      = "  "
)

var columnAlign = []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft}

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text already carries ANSI styling
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	lines := []styledLine{m.headerLine(), m.tableTitleLine()}
	lines = append(lines, m.tableLines()...)
	lines = append(lines, m.statusLine())
	lines = append(lines, m.footerLines()...)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) headerLine() styledLine {
	if m.mode == ModeEditingAppID || m.list == nil {
		return styledLine{text: "App ID: " + m.appIDInput, style: styles.Title}
	}
	return styledLine{text: fmt.Sprintf("%s - App ID: %d", appTitle, m.list.AppID), style: styles.Title}
}

func (m *Model) tableTitleLine() styledLine {
	title := styles.Border.Render(" Achievements ")
	if m.list == nil {
		return styledLine{text: title, raw: true}
	}
	done, total := m.list.Counts()
	counter := fmt.Sprintf("%s/%s ", humanize.Comma(int64(done)), humanize.Comma(int64(total)))
	return styledLine{text: title + counterStyle(done, total).Render(counter), raw: true}
}

func counterStyle(done, total int) *lipgloss.Style {
	if total > 0 && done == total {
		return styles.Complete
	}
	return styles.Tier(achievement.CompletionTier(done, total))
}

func (m *Model) columnHeaders() []string {
	done, global, name := "Done", "Global", "Achievement Name"
	arrow := "↓"
	if m.sort.Order == achievement.Ascending {
		arrow = "↑"
	}
	if m.list != nil {
		if m.sort.Column == achievement.ByPercentage {
			global += " " + arrow
		} else {
			name += " " + arrow
		}
	}
	return []string{done, global, name}
}

func rowCells(item achievement.Item) []string {
	check := "[ ]"
	if item.Selected {
		check = "[✓]"
	}
	return []string{check, fmt.Sprintf("%.1f%%", item.Percentage), item.Name}
}

func (m *Model) visibleRange() (start, end int) {
	if m.list == nil {
		return 0, 0
	}
	total := m.list.Len()
	limit := m.maxVisibleItems()
	start = m.list.ViewportOffset
	if start < 0 || start >= total {
		start = 0
	}
	end = total
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	return start, end
}

func (m *Model) tableLines() []styledLine {
	headers := m.columnHeaders()
	start, end := m.visibleRange()
	plain := [][]string{headers}
	if m.list != nil {
		for _, item := range m.list.Items[start:end] {
			plain = append(plain, rowCells(item))
		}
	}
	widths := table.Widths(plain)

	lines := make([]styledLine, 0, len(plain))
	lines = append(lines, styledLine{
		text:  noCursorPrefix + table.Join(headers, widths, columnAlign),
		style: styles.Header,
	})
	nameWidth := m.width - ansiWidth(noCursorPrefix) - widths[0] - widths[1] - 2*len(columnGap)
	for i, cells := range plain[1:] {
		idx := start + i
		item := m.list.Items[idx]
		lines = append(lines, styledLine{
			text: m.renderRow(item, cells, widths, nameWidth, idx == m.list.Cursor),
			raw:  true,
		})
	}
	return lines
}

func (m *Model) renderRow(item achievement.Item, cells []string, widths []int, nameWidth int, current bool) string {
	checkStyle, nameStyle := styles.Item, styles.Item
	switch item.Status {
	case achievement.Failed:
		checkStyle, nameStyle = styles.Failed, styles.Failed
	case achievement.Success:
		checkStyle, nameStyle = styles.Success, styles.Success
	default:
		if item.Selected {
			checkStyle = styles.Checked
		}
	}
	pctStyle := styles.Tier(achievement.TierFor(item.Percentage))

	name := cells[2]
	if m.width > 0 && nameWidth > 0 && ansiWidth(name) > nameWidth {
		name = truncate.StringWithTail(name, uint(nameWidth), "…")
	}

	paint := func(style *lipgloss.Style, text string) string {
		s := *style
		if current {
			s = s.Inherit(*styles.SelectedItem)
		}
		return s.Render(text)
	}
	prefix := styles.Item.Render(noCursorPrefix)
	if current {
		prefix = styles.ItemIndicator.Inherit(*styles.SelectedItem).Render(cursorPrefix)
	}
	gap := paint(styles.Item, columnGap)
	return prefix +
		paint(checkStyle, table.Pad(cells[0], widths[0], columnAlign[0])) + gap +
		paint(pctStyle, table.Pad(cells[1], widths[1], columnAlign[1])) + gap +
		paint(nameStyle, name)
}

func (m *Model) statusLine() styledLine {
	if m.mode == ModeSearching {
		text := m.search.View()
		if status := m.Status(); !status.Empty() {
			text += columnGap + statusStyle(status.Level).Render(status.Text)
		}
		return styledLine{text: text, raw: true}
	}
	status := m.Status()
	if status.Empty() && (m.mode == ModeEditingAppID || m.list == nil) {
		status = state.Status{Level: state.Info, Text: editingHint}
	}
	return styledLine{text: status.Text, style: statusStyle(status.Level)}
}

func statusStyle(level state.StatusLevel) *lipgloss.Style {
	switch level {
	case state.Success:
		return styles.StatusSuccess
	case state.Error:
		return styles.StatusError
	default:
		return styles.StatusInfo
	}
}

func (m *Model) activeKeyMap() help.KeyMap {
	switch m.mode {
	case ModeEditingAppID:
		return m.edit
	case ModeSearching:
		return m.find
	default:
		return m.browse
	}
}

func (m *Model) footerLines() []styledLine {
	if !m.showFooter {
		return nil
	}
	rendered := m.help.View(m.activeKeyMap())
	if rendered == "" {
		return nil
	}
	parts := strings.Split(rendered, "\n")
	lines := make([]styledLine, len(parts))
	for i, part := range parts {
		lines[i] = styledLine{text: part, raw: true}
	}
	return lines
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 4 // app header, table title, column header, status
	used += len(m.footerLines())
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func ansiWidth(s string) int {
	return lipgloss.Width(s)
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
