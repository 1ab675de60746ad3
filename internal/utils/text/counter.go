// Package text provides small helpers for fitting user-entered text
// into single terminal lines.
package text

import "strings"

// Ellipsis is appended by Truncate when it shortens a string.
const Ellipsis = "..."

// CountRunes counts Unicode characters rather than bytes, so
// "こんにちは" counts as 5.
func CountRunes(s string) int {
	return len([]rune(s))
}

// SingleLine collapses every run of whitespace, newlines included, into
// one space and trims the ends.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most max runes, ending it with Ellipsis when
// anything was cut. A max of zero or less returns s unchanged.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= len(Ellipsis) {
		return string(runes[:max])
	}
	return strings.TrimRight(string(runes[:max-len(Ellipsis)]), " ") + Ellipsis
}

// Excerpt is SingleLine followed by Truncate.
func Excerpt(s string, max int) string {
	return Truncate(SingleLine(s), max)
}
