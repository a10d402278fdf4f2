package report

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/verte-zerg/charfreq/internal/charset"
	"github.com/verte-zerg/charfreq/internal/model"
	"github.com/verte-zerg/charfreq/internal/tally"
)

func TestBuildRowsDefaultFilter(t *testing.T) {
	hist := tally.Histogram{'a': 2, '1': 1, '!': 1}
	rows, err := BuildRows(hist, charset.DefaultSpec)
	if err != nil {
		t.Fatalf("build rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Char != '!' || rows[1].Char != '1' {
		t.Fatalf("unexpected row order: %+v", rows)
	}
	for _, row := range rows {
		if row.Count != 1 {
			t.Fatalf("unexpected count: %+v", row)
		}
		if math.Abs(row.Percent-25.0) > 1e-9 {
			t.Fatalf("percent should be relative to the full total: %+v", row)
		}
	}
}

func TestBuildRowsTieBreakAscending(t *testing.T) {
	hist := tally.Histogram{'b': 2, 'a': 2, 'c': 5}
	rows, err := BuildRows(hist, "letters")
	if err != nil {
		t.Fatalf("build rows: %v", err)
	}
	got := make([]rune, len(rows))
	for i, row := range rows {
		got[i] = row.Char
	}
	if string(got) != "cab" {
		t.Fatalf("unexpected order: %q", string(got))
	}
	if rows[0].Rank != 1 || rows[1].Rank != 2 || rows[2].Rank != 3 {
		t.Fatalf("ranks must be contiguous from 1: %+v", rows)
	}
}

func TestBuildRowsAllSingleChar(t *testing.T) {
	hist := tally.Histogram{'a': 3}
	rows, err := BuildRows(hist, "all")
	if err != nil {
		t.Fatalf("build rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Rank != 1 || row.Char != 'a' || row.Count != 3 {
		t.Fatalf("unexpected row: %+v", row)
	}
	if math.Abs(row.Percent-100.0) > 1e-9 {
		t.Fatalf("expected 100%%, got %f", row.Percent)
	}
}

func TestBuildRowsPercentAgainstFullTotal(t *testing.T) {
	// "hello world" lowercased: the space counts toward the total even
	// though the letters filter never displays it.
	hist := tally.Histogram{}
	hist.Add("Hello World")
	if hist.Total() != 11 {
		t.Fatalf("expected total 11, got %d", hist.Total())
	}

	rows, err := BuildRows(hist, "letters")
	if err != nil {
		t.Fatalf("build rows: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	if rows[0].Char != 'l' || rows[0].Count != 3 {
		t.Fatalf("unexpected top row: %+v", rows[0])
	}
	if math.Abs(rows[0].Percent-100.0*3.0/11.0) > 1e-9 {
		t.Fatalf("unexpected percent: %+v", rows[0])
	}
	tail := make([]rune, 0, 5)
	for _, row := range rows[2:] {
		tail = append(tail, row.Char)
	}
	if string(tail) != "dehrw" {
		t.Fatalf("unexpected tie-break order: %q", string(tail))
	}
}

func TestBuildRowsUnknownClass(t *testing.T) {
	_, err := BuildRows(tally.Histogram{'a': 1}, "bogus")
	if err == nil {
		t.Fatalf("expected error for unknown class")
	}
	var unknownErr *charset.UnknownClassError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownClassError, got %T", err)
	}
	if unknownErr.Name != "bogus" {
		t.Fatalf("error names %q, want bogus", unknownErr.Name)
	}
}

func TestBuildRowsPercentSumOverAll(t *testing.T) {
	hist := tally.Histogram{'a': 7, 'b': 3, '!': 5, '\n': 2, '0': 1}
	rows, err := BuildRows(hist, "all")
	if err != nil {
		t.Fatalf("build rows: %v", err)
	}
	sum := 0.0
	for _, row := range rows {
		sum += row.Percent
	}
	if math.Abs(sum-100.0) > 1e-9 {
		t.Fatalf("percent sum over all filter is %f, want 100", sum)
	}
}

func TestRenderTable(t *testing.T) {
	rows := []model.Row{
		{Rank: 1, Char: '!', Count: 1, Percent: 25.0},
		{Rank: 2, Char: '1', Count: 1, Percent: 25.0},
	}
	var buf bytes.Buffer
	if err := Render(&buf, rows, 4); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Rank Char Count      %\n" +
		"#1   '!'      1 25.000\n" +
		"#2   '1'      1 25.000\n" +
		"\ntotal chars: 4\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRenderZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, nil, 0); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Rank Char Count %\n\ntotal chars: 0\n"
	if buf.String() != want {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
