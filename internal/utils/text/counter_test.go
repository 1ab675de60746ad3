package text_test

import (
	"testing"

	"cmsdesk/internal/utils/text"
)

func TestCountRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "ASCII text", input: "hello", expected: 5},
		{name: "Japanese hiragana", input: "こんにちは", expected: 5},
		{name: "mixed", input: "hello世界", expected: 7},
		{name: "emoji", input: "Hello👋", expected: 6},
		{name: "empty", input: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.CountRunes(tt.input); got != tt.expected {
				t.Errorf("CountRunes(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSingleLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already single", input: "a b", expected: "a b"},
		{name: "newlines", input: "first line\nsecond\r\nthird", expected: "first line second third"},
		{name: "runs of spaces", input: "  a \t\t b  ", expected: "a b"},
		{name: "blank", input: " \n ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.SingleLine(tt.input); got != tt.expected {
				t.Errorf("SingleLine(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{name: "fits", input: "short", max: 10, expected: "short"},
		{name: "exact", input: "12345", max: 5, expected: "12345"},
		{name: "cut", input: "Bali travel guide", max: 10, expected: "Bali tr..."},
		{name: "trailing space trimmed", input: "Bali is nice", max: 8, expected: "Bali..."},
		{name: "multibyte", input: "こんにちは世界", max: 6, expected: "こんに..."},
		{name: "tiny max", input: "abcdef", max: 2, expected: "ab"},
		{name: "no limit", input: "abcdef", max: 0, expected: "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := text.Truncate(tt.input, tt.max)
			if got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
			}
			if tt.max > 0 && text.CountRunes(got) > tt.max {
				t.Errorf("Truncate(%q, %d) returned %d runes", tt.input, tt.max, text.CountRunes(got))
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	got := text.Excerpt("line one\nline two", 12)
	if got != "line one..." {
		t.Errorf("Excerpt() = %q", got)
	}
}
