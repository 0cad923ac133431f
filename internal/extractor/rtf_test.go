package extractor

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRTFExtractor_BasicDocument(t *testing.T) {
	re := NewRTFExtractor(zerolog.Nop())

	text := re.ExtractText([]byte(`{\rtf1\ansi Hello World\par}`))
	assert.Equal(t, "Hello World\n", text)
}

func TestRTFExtractor_SkipsFontAndColorTables(t *testing.T) {
	re := NewRTFExtractor(zerolog.Nop())

	rtf := `{\rtf1\ansi{\fonttbl{\f0 Times New Roman;}}{\colortbl;\red0\green0\blue0;}\f0 Visible text\par}`
	text := re.ExtractText([]byte(rtf))
	assert.Equal(t, "Visible text\n", text)
	assert.NotContains(t, text, "Times")
}

func TestRTFExtractor_ParagraphAndLineBreaks(t *testing.T) {
	re := NewRTFExtractor(zerolog.Nop())

	text := re.ExtractText([]byte(`{\rtf1 first\par second\line third\par}`))
	assert.Equal(t, "first\nsecond\nthird\n", text)
}

func TestRTFExtractor_TabsAndTableCells(t *testing.T) {
	re := NewRTFExtractor(zerolog.Nop())

	text := re.ExtractText([]byte(`{\rtf1 a\tab b\cell c\row}`))
	assert.Equal(t, "a\tb\tc\n", text)
}

func TestRTFExtractor_EscapedBracesAndBackslash(t *testing.T) {
	re := NewRTFExtractor(zerolog.Nop())

	text := re.ExtractText([]byte(`{\rtf1 a \{b\} c:\\d}`))
	assert.Equal(t, "a {b} c:\\d", text)
}

func TestRTFExtractor_HexEscapes(t *testing.T) {
	re := NewRTFExtractor(zerolog.Nop())

	text := re.ExtractText([]byte(`{\rtf1 caf\'e9}`))
	assert.Equal(t, "café", text)
}

func TestRTFExtractor_HexEscapesWindows1252Range(t *testing.T) {
	re := NewRTFExtractor(zerolog.Nop())

	// 0x93/0x94 are curly quotes in windows-1252
	text := re.ExtractText([]byte(`{\rtf1 \'93quoted\'94}`))
	assert.Equal(t, "\u201cquoted\u201d", text)
}

func TestRTFExtractor_UnicodeEscapeWithFallback(t *testing.T) {
	re := NewRTFExtractor(zerolog.Nop())

	// The character after \uN is the fallback for legacy readers and must
	// not be emitted.
	text := re.ExtractText([]byte(`{\rtf1 \u8220?x\u8221?}`))
	assert.Equal(t, "\u201cx\u201d", text)
}

func TestRTFExtractor_UnicodeEscapeNegativeParam(t *testing.T) {
	re := NewRTFExtractor(zerolog.Nop())

	// Signed 16-bit encoding: -3585 wraps to U+F1FF... use a real case,
	// \u-10179 is a surrogate area value; pick a safe BMP point instead.
	text := re.ExtractText([]byte(`{\rtf1 \u-1524?}`))
	assert.Equal(t, string(rune(65536-1524)), text)
}

func TestRTFExtractor_SpecialSymbols(t *testing.T) {
	re := NewRTFExtractor(zerolog.Nop())

	text := re.ExtractText([]byte(`{\rtf1 a\~b \emdash\lquote x\rquote}`))
	assert.Equal(t, "a b —‘x’", text)
}

func TestRTFExtractor_IgnorableDestinations(t *testing.T) {
	re := NewRTFExtractor(zerolog.Nop())

	rtf := `{\rtf1 before{\*\generator Riched20;}after}`
	text := re.ExtractText([]byte(rtf))
	assert.Equal(t, "beforeafter", text)
}

func TestRTFExtractor_RawLineBreaksAreNotContent(t *testing.T) {
	re := NewRTFExtractor(zerolog.Nop())

	text := re.ExtractText([]byte("{\\rtf1 one\r\ntwo\npar}"))
	assert.Equal(t, "onetwopar", text)
}

func TestRTFExtractor_EmptyInput(t *testing.T) {
	re := NewRTFExtractor(zerolog.Nop())
	assert.Empty(t, re.ExtractText(nil))
}

func TestRTFExtractor_UnknownControlWordsIgnored(t *testing.T) {
	re := NewRTFExtractor(zerolog.Nop())

	text := re.ExtractText([]byte(`{\rtf1\ansi\deff0\viewkind4\uc1\pard\fs22 text}`))
	assert.Equal(t, "text", text)
}
