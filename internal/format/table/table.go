// Package table pads label/value rows into aligned columns for the
// package info panel and the sync confirmation list.
package table

import (
	"strings"
	"unicode/utf8"
)

// Format left-aligns each column to its widest cell, two spaces between
// columns. The last cell of a row carries no trailing padding.
func Format(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if c < len(row)-1 {
				if pad := widths[c] - utf8.RuneCountInString(cell); pad > 0 {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
		}
		out[i] = b.String()
	}
	return out
}
