// Package report ranks tally results and renders the frequency table.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// formatTable lays out header and rows as space-separated columns sized to
// the widest cell. Rows are assumed to have one cell per header.
func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(headers, widths, rightAlignCols))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = padCell(cell, widths[i], rightAlignCols[i])
	}
	return strings.Join(cells, " ")
}

func padCell(value string, width int, rightAlign bool) string {
	padding := width - displayWidth(value)
	if padding <= 0 {
		return value
	}
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

// displayWidth measures terminal cells rather than runes: quoted CJK and
// other wide characters occupy two cells in the Char column.
func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
