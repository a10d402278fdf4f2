// Package report ranks tally results and renders the frequency table.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/verte-zerg/charfreq/internal/charset"
	"github.com/verte-zerg/charfreq/internal/model"
	"github.com/verte-zerg/charfreq/internal/tally"
)

// BuildRows selects, ranks, and annotates histogram entries for display.
// The spec names the filter; "all" means every character observed in the
// tally. Filtered characters with zero count are omitted, and ranks are
// assigned to the remaining rows from 1 with no gaps.
func BuildRows(hist tally.Histogram, spec string) ([]model.Row, error) {
	var eligible []rune
	if charset.IsAll(spec) {
		for r := range hist {
			eligible = append(eligible, r)
		}
	} else {
		set, err := charset.Resolve(spec)
		if err != nil {
			return nil, err
		}
		for r := range set {
			if hist[r] > 0 {
				eligible = append(eligible, r)
			}
		}
	}

	sort.Slice(eligible, func(i, j int) bool {
		if hist[eligible[i]] == hist[eligible[j]] {
			return eligible[i] < eligible[j]
		}
		return hist[eligible[i]] > hist[eligible[j]]
	})

	// Percentages are always relative to the full tally total, not the
	// filtered subtotal. An empty tally yields no rows, so the total is
	// never zero here.
	total := hist.Total()
	rows := make([]model.Row, 0, len(eligible))
	for i, r := range eligible {
		rows = append(rows, model.Row{
			Rank:    i + 1,
			Char:    r,
			Count:   hist[r],
			Percent: 100.0 * float64(hist[r]) / float64(total),
		})
	}
	return rows, nil
}

// Render writes the ranked table and the grand total to w.
func Render(w io.Writer, rows []model.Row, total int) error {
	headers := []string{"Rank", "Char", "Count", "%"}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			fmt.Sprintf("#%d", row.Rank),
			strconv.QuoteRune(row.Char),
			strconv.Itoa(row.Count),
			fmt.Sprintf("%.3f", row.Percent),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true}
	for _, line := range formatTable(headers, cells, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\ntotal chars: %d\n", total); err != nil {
		return err
	}
	return nil
}
