package differ

import (
	"strings"
	"unicode"
)

// Tokenize splits normalized text into comparable tokens for the given
// granularity. The function is pure and total: any input string, including
// the empty string, yields a valid token sequence.
func Tokenize(text string, granularity Granularity) []string {
	if granularity == GranularityLine {
		return tokenizeLines(text)
	}
	return tokenizeWords(text)
}

// tokenizeLines splits on line terminators. CR, LF and CRLF all count as a
// single separator; every line, including empty ones, becomes a token.
func tokenizeLines(text string) []string {
	if text == "" {
		return nil
	}
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.Split(normalized, "\n")
}

// tokenizeWords performs a single left-to-right scan. Alphanumeric runs
// accumulate into word tokens. Every other non-whitespace rune becomes its
// own token so punctuation is individually comparable. Runs of CR/LF
// collapse to one line-break token; any other whitespace run collapses to a
// single space token, which keeps paragraph boundaries visible while making
// adjacent whitespace amounts diff-insensitive.
func tokenizeWords(text string) []string {
	tokens := make([]string, 0, len(text)/4)
	var word strings.Builder

	flushWord := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}

	appendCollapsed := func(tok string) {
		if len(tokens) == 0 || tokens[len(tokens)-1] != tok {
			tokens = append(tokens, tok)
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			word.WriteRune(r)
		case r == '\n' || r == '\r':
			flushWord()
			appendCollapsed("\n")
		case unicode.IsSpace(r):
			flushWord()
			appendCollapsed(" ")
		default:
			flushWord()
			tokens = append(tokens, string(r))
		}
	}
	flushWord()

	return tokens
}
