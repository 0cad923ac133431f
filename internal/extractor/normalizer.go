package extractor

import (
	"strings"
	"unicode"
)

// NormalizeWhitespace converts CRLF and CR line endings to LF and collapses
// runs of whitespace within each line to single spaces, trimming the ends.
// Line structure is preserved.
func NormalizeWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}

	return strings.Join(lines, "\n")
}

// FoldCase lowercases the text for case-insensitive comparison
func FoldCase(text string) string {
	return strings.ToLower(text)
}

// StripPunctuation removes every rune that is neither alphanumeric nor
// whitespace, matching word-character semantics.
func StripPunctuation(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			out.WriteRune(r)
		}
	}
	return out.String()
}
