package parser

import "strings"

// Normalize trims the instruction and collapses every run of spaces, tabs,
// newlines and carriage returns into a single space.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(trimmed))

	inGap := false
	for i := 0; i < len(trimmed); i++ {
		ch := trimmed[i]
		if isCollapsible(ch) {
			if !inGap {
				b.WriteByte(' ')
				inGap = true
			}
			continue
		}
		inGap = false
		b.WriteByte(ch)
	}

	return b.String()
}

func isCollapsible(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// FindKeyword returns the byte offset of the first whole-word,
// case-insensitive occurrence of keyword at or after start, or -1.
// A whole word is bounded by the string edges or a literal space.
func FindKeyword(text, keyword string, start int) int {
	if keyword == "" || start < 0 {
		return -1
	}

	n := len(keyword)
	for i := start; i+n <= len(text); i++ {
		if !strings.EqualFold(text[i:i+n], keyword) {
			continue
		}
		if i > 0 && text[i-1] != ' ' {
			continue
		}
		if end := i + n; end < len(text) && text[end] != ' ' {
			continue
		}
		return i
	}

	return -1
}

// NextWord skips spaces from start and returns the following run of
// non-space bytes together with the offset just past it.
func NextWord(text string, start int) (string, int) {
	if start < 0 {
		start = 0
	}

	i := start
	for i < len(text) && text[i] == ' ' {
		i++
	}

	j := i
	for j < len(text) && text[j] != ' ' {
		j++
	}

	return text[i:j], j
}
