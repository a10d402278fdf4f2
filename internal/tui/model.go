// Package tui provides the Bubble Tea frequency browser.
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/charfreq/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	totalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// Model implements the Bubble Tea ranked-frequency browser.
type Model struct {
	rowTable table.Model
	total    int

	width  int
	height int
}

// NewModel builds the browser for precomputed report rows.
func NewModel(rows []model.Row, total int) *Model {
	return &Model{
		rowTable: buildRowTable(rows, 1),
		total:    total,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rowTable.SetWidth(msg.Width)
		m.rowTable.SetHeight(maxInt(1, msg.Height-3))
		return m, nil
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC, msg.Type == tea.KeyEsc, msg.String() == "q":
			return m, tea.Quit
		case msg.String() == "g", msg.Type == tea.KeyHome:
			m.rowTable.GotoTop()
			return m, nil
		case msg.String() == "G", msg.Type == tea.KeyEnd:
			m.rowTable.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.rowTable, cmd = m.rowTable.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := headerStyle.Render("charfreq: character frequencies")
	footer := totalStyle.Render(fmt.Sprintf("total chars: %d", m.total)) +
		footerStyle.Render("  ↑/↓ scroll · g/G top/bottom · q quit")
	return header + "\n" + m.rowTable.View() + "\n" + footer
}

func buildRowTable(rows []model.Row, height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Char", Width: 6},
		{Title: "Count", Width: 8},
		{Title: "%", Width: 8},
	}
	tableRows := buildTableRows(rows)
	for _, row := range tableRows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > columns[i].Width {
				columns[i].Width = w
			}
		}
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithHeight(maxInt(1, height)),
		table.WithFocused(true),
	)
	t.SetStyles(rowTableStyles())
	return t
}

func buildTableRows(rows []model.Row) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, table.Row{
			fmt.Sprintf("#%d", row.Rank),
			strconv.QuoteRune(row.Char),
			strconv.Itoa(row.Count),
			fmt.Sprintf("%.3f", row.Percent),
		})
	}
	return out
}

func rowTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
