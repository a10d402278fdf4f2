package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/charfreq/internal/model"
)

func TestBuildTableRows(t *testing.T) {
	rows := []model.Row{
		{Rank: 1, Char: 'a', Count: 3, Percent: 75.0},
		{Rank: 2, Char: '\n', Count: 1, Percent: 25.0},
	}
	tableRows := buildTableRows(rows)
	if len(tableRows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tableRows))
	}
	want := []string{"#1", "'a'", "3", "75.000"}
	for i, cell := range tableRows[0] {
		if cell != want[i] {
			t.Fatalf("unexpected first row: %v", tableRows[0])
		}
	}
	if tableRows[1][1] != "'\\n'" {
		t.Fatalf("newline should be rendered quoted, got %q", tableRows[1][1])
	}
}

func TestModelViewShowsTotal(t *testing.T) {
	m := NewModel([]model.Row{{Rank: 1, Char: 'a', Count: 3, Percent: 100.0}}, 3)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	view := updated.View()
	if !strings.Contains(view, "total chars: 3") {
		t.Fatalf("view does not show the total:\n%s", view)
	}
}

func TestModelQuitsOnQ(t *testing.T) {
	m := NewModel(nil, 0)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Fatalf("expected quit message, got %T", msg)
	}
}
