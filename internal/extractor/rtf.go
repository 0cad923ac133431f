package extractor

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// destinations whose content is formatting metadata, not document text
var skippedDestinations = map[string]bool{
	"fonttbl":    true,
	"colortbl":   true,
	"stylesheet": true,
	"info":       true,
	"pict":       true,
	"header":     true,
	"footer":     true,
	"field":      false, // field results carry visible text
	"object":     true,
	"themedata":  true,
	"datastore":  true,
	"xmlnstbl":   true,
}

// cp1252High maps the 0x80-0x9F range of windows-1252, which hex escapes in
// legacy RTF exports commonly use, onto the corresponding Unicode points.
var cp1252High = map[byte]rune{
	0x80: '€', 0x82: '‚', 0x83: 'ƒ', 0x84: '„',
	0x85: '…', 0x86: '†', 0x87: '‡', 0x88: 'ˆ',
	0x89: '‰', 0x8a: 'Š', 0x8b: '‹', 0x8c: 'Œ',
	0x8e: 'Ž', 0x91: '‘', 0x92: '’', 0x93: '“',
	0x94: '”', 0x95: '•', 0x96: '–', 0x97: '—',
	0x98: '˜', 0x99: '™', 0x9a: 'š', 0x9b: '›',
	0x9c: 'œ', 0x9e: 'ž', 0x9f: 'Ÿ',
}

// RTFExtractor converts RTF markup into plain text
type RTFExtractor struct {
	logger zerolog.Logger
}

// NewRTFExtractor creates a new RTF extractor
func NewRTFExtractor(logger zerolog.Logger) *RTFExtractor {
	return &RTFExtractor{
		logger: logger.With().Str("component", "RTFExtractor").Logger(),
	}
}

// ExtractText walks the RTF token stream and emits the visible text.
// Control words for paragraph and line breaks become newlines, hex escapes
// decode through windows-1252, \uN escapes decode as Unicode, and
// formatting destinations (font tables, color tables, embedded objects)
// are skipped entirely.
func (re *RTFExtractor) ExtractText(content []byte) string {
	var out strings.Builder
	out.Grow(len(content) / 2)

	// skipDepth tracks the group nesting level at which a skipped
	// destination began; 0 means text is currently visible.
	depth := 0
	skipDepth := 0
	pendingUnicodeSkip := 0

	i := 0
	n := len(content)
	for i < n {
		c := content[i]
		switch c {
		case '{':
			depth++
			i++
		case '}':
			if skipDepth > 0 && depth == skipDepth {
				skipDepth = 0
			}
			depth--
			i++
		case '\\':
			i = re.handleControl(content, i, depth, &skipDepth, &pendingUnicodeSkip, &out)
		case '\r', '\n':
			// Raw line breaks in RTF source are not document content
			i++
		default:
			if skipDepth == 0 {
				if pendingUnicodeSkip > 0 {
					pendingUnicodeSkip--
				} else {
					out.WriteByte(c)
				}
			}
			i++
		}
	}

	return out.String()
}

// handleControl consumes one control word or symbol starting at the
// backslash and returns the index just past it.
func (re *RTFExtractor) handleControl(content []byte, i, depth int, skipDepth, pendingUnicodeSkip *int, out *strings.Builder) int {
	n := len(content)
	i++ // past the backslash
	if i >= n {
		return i
	}

	c := content[i]

	// Control symbols
	switch c {
	case '\\', '{', '}':
		if *skipDepth == 0 {
			out.WriteByte(c)
		}
		return i + 1
	case '~':
		if *skipDepth == 0 {
			out.WriteByte(' ')
		}
		return i + 1
	case '-', '_':
		return i + 1
	case '*':
		// \* marks an ignorable destination; skip the enclosing group
		if *skipDepth == 0 {
			*skipDepth = depth
		}
		return i + 1
	case '\'':
		// Hex escape \'hh
		if i+2 < n {
			if b, err := strconv.ParseUint(string(content[i+1:i+3]), 16, 8); err == nil {
				if *skipDepth == 0 {
					out.WriteRune(decodeCP1252(byte(b)))
				}
				return i + 3
			}
		}
		return i + 1
	}

	if !isASCIILetter(c) {
		// Unknown control symbol, drop it
		return i + 1
	}

	// Control word: letters then optional numeric parameter
	wordStart := i
	for i < n && isASCIILetter(content[i]) {
		i++
	}
	word := string(content[wordStart:i])

	paramStart := i
	if i < n && (content[i] == '-' || isASCIIDigit(content[i])) {
		i++
		for i < n && isASCIIDigit(content[i]) {
			i++
		}
	}
	param := string(content[paramStart:i])

	// One space after a control word is a delimiter, not content
	if i < n && content[i] == ' ' {
		i++
	}

	if *skipDepth == 0 {
		re.emitControlWord(word, param, depth, skipDepth, pendingUnicodeSkip, out)
	}
	return i
}

// emitControlWord translates the control words that carry document structure
func (re *RTFExtractor) emitControlWord(word, param string, depth int, skipDepth, pendingUnicodeSkip *int, out *strings.Builder) {
	switch word {
	case "par", "line", "row", "sect", "page":
		out.WriteByte('\n')
	case "tab", "cell":
		out.WriteByte('\t')
	case "emdash":
		out.WriteRune('—')
	case "endash":
		out.WriteRune('–')
	case "lquote":
		out.WriteRune('‘')
	case "rquote":
		out.WriteRune('’')
	case "ldblquote":
		out.WriteRune('“')
	case "rdblquote":
		out.WriteRune('”')
	case "bullet":
		out.WriteRune('•')
	case "u":
		// \uN: signed 16-bit code point followed by a fallback character
		if v, err := strconv.Atoi(param); err == nil {
			if v < 0 {
				v += 65536
			}
			out.WriteRune(rune(v))
			*pendingUnicodeSkip = 1
		}
	default:
		if skippedDestinations[word] {
			*skipDepth = depth
		}
	}
}

func decodeCP1252(b byte) rune {
	if r, ok := cp1252High[b]; ok {
		return r
	}
	return rune(b)
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
