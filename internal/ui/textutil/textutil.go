// Package textutil holds width-aware text helpers for terminal rendering.
package textutil

import "github.com/mattn/go-runewidth"

const ellipsis = "…"

// VisualWidth is the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate fits s into max columns, ending with an ellipsis when anything
// was cut. Wide runes never straddle the boundary.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	avail := max - runewidth.StringWidth(ellipsis)
	if avail < 0 {
		return ellipsis
	}
	var (
		out   []rune
		width int
	)
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > avail {
			break
		}
		out = append(out, r)
		width += rw
	}
	return string(out) + ellipsis
}
