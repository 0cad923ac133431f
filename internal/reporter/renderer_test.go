package reporter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/aleister1102/rtfcompare/internal/differ"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderTexts(t *testing.T, sourceText, comparisonText string, g differ.Granularity) string {
	t.Helper()

	td, err := differ.NewTextDifferBuilder(zerolog.Nop()).WithGranularity(g).Build()
	require.NoError(t, err)
	cmp, err := td.Compare(sourceText, comparisonText)
	require.NoError(t, err)

	renderer := NewDiffHTMLRendererBuilder(zerolog.Nop()).Build()
	return renderer.Render(cmp, "source.rtf", "comparison.rtf")
}

func TestRender_WordDiffStructure(t *testing.T) {
	html := renderTexts(t, "The quick brown fox", "The quick red fox", differ.GranularityWord)

	assert.Contains(t, html, `class="diff-table"`)
	assert.Contains(t, html, "Comparison: comparison.rtf vs source.rtf")
	assert.Contains(t, html, "Insertions: 0")
	assert.Contains(t, html, "Deletions: 0")
	assert.Contains(t, html, "Replacements: 1")
	assert.Contains(t, html, "Legend")
	assert.Contains(t, html, "brown")
	assert.Contains(t, html, "red")
}

func TestRender_DocumentContentIsAlwaysEscaped(t *testing.T) {
	source := `<script>alert("pwn")</script> & <b>bold</b>`
	comparison := `<script>alert('other')</script> & plain`

	html := renderTexts(t, source, comparison, differ.GranularityWord)

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&amp;")
}

func TestRender_EscapesQuotesInChangedSpans(t *testing.T) {
	html := renderTexts(t, `say "hello"`, `say 'goodbye'`, differ.GranularityWord)

	assert.NotContains(t, html, `"hello"`)
	assert.NotContains(t, html, `'goodbye'`)
}

func TestRender_EqualSpanWithinWindowShowsAllLines(t *testing.T) {
	var text strings.Builder
	for i := 1; i <= 6; i++ {
		fmt.Fprintf(&text, "line number %d\n", i)
	}

	html := renderTexts(t, text.String(), text.String(), differ.GranularityWord)

	for i := 1; i <= 6; i++ {
		assert.Contains(t, html, fmt.Sprintf("line number %d", i))
	}
	assert.NotContains(t, html, "identical content")
}

func TestRender_LongEqualSpanIsWindowed(t *testing.T) {
	var text strings.Builder
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&text, "line number %d\n", i)
	}

	html := renderTexts(t, text.String(), text.String(), differ.GranularityWord)

	// First three and last three non-blank sub-lines, placeholder between
	assert.Contains(t, html, "line number 1")
	assert.Contains(t, html, "line number 3")
	assert.Contains(t, html, "line number 18")
	assert.Contains(t, html, "line number 20")
	assert.Contains(t, html, "... (identical content) ...")
	assert.NotContains(t, html, "line number 10")
}

func TestRender_BlankLinesDoNotCountTowardWindow(t *testing.T) {
	text := "a\n\n\nb\n\nc\nd\ne\nf"

	html := renderTexts(t, text, text, differ.GranularityWord)

	// Six non-blank sub-lines: no placeholder
	assert.NotContains(t, html, "identical content")
}

func TestRender_LongContextLinesAreTruncated(t *testing.T) {
	long := strings.Repeat("x", 150)
	text := long + "\nanchor"

	html := renderTexts(t, text, text, differ.GranularityWord)

	assert.Contains(t, html, strings.Repeat("x", 100)+"...")
	assert.NotContains(t, html, strings.Repeat("x", 101))
}

func TestRender_EmptyInputsProduceNoDataRows(t *testing.T) {
	html := renderTexts(t, "", "", differ.GranularityWord)

	assert.Contains(t, html, "Insertions: 0")
	assert.NotContains(t, html, `<tr class="context-line">`)
	assert.NotContains(t, html, `<tr class="diff-changed">`)
	assert.NotContains(t, html, `<tr class="diff-added">`)
	assert.NotContains(t, html, `<tr class="diff-deleted">`)
}

func TestRender_InsertOnly(t *testing.T) {
	html := renderTexts(t, "shared text", "shared text plus more", differ.GranularityWord)

	assert.Contains(t, html, `class="diff-added"`)
	assert.NotContains(t, html, `class="diff-deleted"`)
}

func TestRender_InlineHighlightMarksChangedCharacters(t *testing.T) {
	html := renderTexts(t, "treatment", "treatments", differ.GranularityWord)

	assert.Contains(t, html, `<span class="char-added">`)
}

func TestRender_InlineHighlightCanBeDisabled(t *testing.T) {
	td, err := differ.NewTextDifferBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)
	cmp, err := td.Compare("old word", "new word")
	require.NoError(t, err)

	renderer := NewDiffHTMLRendererBuilder(zerolog.Nop()).WithInlineHighlight(false).Build()
	html := renderer.Render(cmp, "a.rtf", "b.rtf")

	assert.NotContains(t, html, `<span class="char-added">`)
	assert.NotContains(t, html, `<span class="char-deleted">`)
}

func TestRender_LineDiffFourColumns(t *testing.T) {
	html := renderTexts(t, "alpha\nbeta\ngamma", "alpha\nBETA\ngamma\ndelta", differ.GranularityLine)

	assert.Contains(t, html, "source.rtf (Source)")
	assert.Contains(t, html, "comparison.rtf (Comparison)")
	assert.Contains(t, html, "BETA")
	assert.Contains(t, html, `class="diff-changed"`)
	assert.Contains(t, html, `class="diff-added"`)
}

func TestRender_LineDiffReplacePairsUnevenSpans(t *testing.T) {
	// Two source lines replaced by one comparison line: second row has an
	// empty right side.
	html := renderTexts(t, "keep\nold one\nold two\nkeep2", "keep\nnew single\nkeep2", differ.GranularityLine)

	assert.Contains(t, html, "old one")
	assert.Contains(t, html, "old two")
	assert.Contains(t, html, "new single")
}

func TestRender_FilenamesAreEscaped(t *testing.T) {
	td, err := differ.NewTextDifferBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)
	cmp, err := td.Compare("a", "b")
	require.NoError(t, err)

	renderer := NewDiffHTMLRendererBuilder(zerolog.Nop()).Build()
	html := renderer.Render(cmp, `<img src=x>.rtf`, "b.rtf")

	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "&lt;img")
}
