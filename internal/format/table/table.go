// Package table pads columns of terminal cells. Cells may carry ANSI styling;
// widths are measured in display cells.
package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Widths returns the display width of the widest cell in each column. The
// column count is taken from the first row.
func Widths(rows [][]string) []int {
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				break
			}
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

// Pad fills cell with spaces up to width display cells.
func Pad(cell string, width int, align Alignment) string {
	gap := width - ansi.StringWidth(cell)
	if gap <= 0 {
		return cell
	}
	if align == AlignRight {
		return strings.Repeat(" ", gap) + cell
	}
	return cell + strings.Repeat(" ", gap)
}

// Join pads each cell of row to widths and separates columns with two spaces.
func Join(row []string, widths []int, alignments []Alignment) string {
	var b strings.Builder
	for c, cell := range row {
		if c > 0 {
			b.WriteString("  ")
		}
		align := AlignLeft
		if c < len(alignments) {
			align = alignments[c]
		}
		width := 0
		if c < len(widths) {
			width = widths[c]
		}
		if c == len(row)-1 && align == AlignLeft {
			b.WriteString(cell)
			continue
		}
		b.WriteString(Pad(cell, width, align))
	}
	return b.String()
}

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := Widths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = Join(row, widths, alignments)
	}
	return out
}
