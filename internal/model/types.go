// Package model defines shared data structures.
package model

// Config defines a single counting run.
type Config struct {
	Chars       string
	Files       []string
	Interactive bool
}

// Row is one line of the ranked frequency report.
type Row struct {
	Rank    int
	Char    rune
	Count   int
	Percent float64
}
