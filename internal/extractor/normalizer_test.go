package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace_CollapsesRunsWithinLines(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeWhitespace("a   b\t\tc"))
}

func TestNormalizeWhitespace_TrimsLineEnds(t *testing.T) {
	assert.Equal(t, "line one\nline two", NormalizeWhitespace("  line one  \n\tline two\t"))
}

func TestNormalizeWhitespace_UnifiesLineEndings(t *testing.T) {
	assert.Equal(t, "a\nb\nc", NormalizeWhitespace("a\r\nb\rc"))
}

func TestNormalizeWhitespace_PreservesBlankLines(t *testing.T) {
	assert.Equal(t, "a\n\nb", NormalizeWhitespace("a\n   \nb"))
}

func TestFoldCase(t *testing.T) {
	assert.Equal(t, "mixed case text", FoldCase("MiXeD CaSe TEXT"))
}

func TestStripPunctuation_RemovesPunctuation(t *testing.T) {
	assert.Equal(t, "Hello world", StripPunctuation("Hello, world!"))
}

func TestStripPunctuation_KeepsUnderscoresAndDigits(t *testing.T) {
	assert.Equal(t, "var_name 42", StripPunctuation("var_name: 42;"))
}

func TestStripPunctuation_KeepsWhitespaceStructure(t *testing.T) {
	assert.Equal(t, "a\nb\tc", StripPunctuation("a.\nb,\tc"))
}
