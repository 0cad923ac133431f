// Package reporter renders edit scripts as HTML: per-comparison diff
// tables and the consolidated multi-file report.
package reporter

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/aleister1102/rtfcompare/internal/differ"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffHTMLRenderer converts a Comparison into a self-contained HTML block
type DiffHTMLRenderer struct {
	dmp             *diffmatchpatch.DiffMatchPatch
	inlineHighlight bool
	logger          zerolog.Logger
}

// DiffHTMLRendererBuilder provides a fluent interface for creating DiffHTMLRenderer
type DiffHTMLRendererBuilder struct {
	inlineHighlight bool
	logger          zerolog.Logger
}

// NewDiffHTMLRendererBuilder creates a new builder
func NewDiffHTMLRendererBuilder(logger zerolog.Logger) *DiffHTMLRendererBuilder {
	return &DiffHTMLRendererBuilder{
		inlineHighlight: true,
		logger:          logger,
	}
}

// WithInlineHighlight toggles character-level highlighting inside replaced spans
func (b *DiffHTMLRendererBuilder) WithInlineHighlight(enabled bool) *DiffHTMLRendererBuilder {
	b.inlineHighlight = enabled
	return b
}

// Build creates a new DiffHTMLRenderer instance
func (b *DiffHTMLRendererBuilder) Build() *DiffHTMLRenderer {
	return &DiffHTMLRenderer{
		dmp:             diffmatchpatch.New(),
		inlineHighlight: b.inlineHighlight,
		logger:          b.logger.With().Str("component", "DiffHTMLRenderer").Logger(),
	}
}

// Render produces the HTML diff block for one comparison. All document
// content passes through HTML escaping before embedding, so markup in the
// compared documents cannot inject into the report.
func (r *DiffHTMLRenderer) Render(cmp *differ.Comparison, sourceLabel, comparisonLabel string) string {
	if cmp.Granularity == differ.GranularityLine {
		return r.renderLineDiff(cmp, sourceLabel, comparisonLabel)
	}
	return r.renderWordDiff(cmp, sourceLabel, comparisonLabel)
}

// renderWordDiff emits the line-number + two-column table for a word
// granularity comparison, windowing unchanged spans so report size stays
// bounded regardless of how large an identical region is.
func (r *DiffHTMLRenderer) renderWordDiff(cmp *differ.Comparison, sourceLabel, comparisonLabel string) string {
	var b strings.Builder
	b.WriteString(reportCSS)
	b.WriteString(`<div class="diff-container">`)
	fmt.Fprintf(&b, `<div class="file-header"><h2>Comparison: %s vs %s</h2></div>`,
		escape(comparisonLabel), escape(sourceLabel))

	r.writeSummaryBox(&b, cmp.Stats)
	r.writeLegend(&b)

	b.WriteString(`<table class="diff-table">`)
	b.WriteString(`<thead><tr><th width="50">Line</th><th width="50%">Source</th><th width="50%">Comparison</th></tr></thead>`)
	b.WriteString(`<tbody>`)

	sourceLine := 1
	comparisonLine := 1

	for _, op := range cmp.Script {
		sourceText := strings.Join(cmp.SourceTokens[op.I1:op.I2], "")
		comparisonText := strings.Join(cmp.ComparisonTokens[op.J1:op.J2], "")

		switch op.Tag {
		case differ.OpEqual:
			r.writeEqualRows(&b, sourceText, &sourceLine, &comparisonLine)
		case differ.OpDelete:
			fmt.Fprintf(&b, `<tr class="diff-deleted"><td class="line-number">%d</td><td><span class="word-deleted">%s</span></td><td></td></tr>`,
				sourceLine, escape(sourceText))
			sourceLine += strings.Count(sourceText, "\n")
		case differ.OpInsert:
			fmt.Fprintf(&b, `<tr class="diff-added"><td class="line-number">%d</td><td></td><td><span class="word-added">%s</span></td></tr>`,
				comparisonLine, escape(comparisonText))
			comparisonLine += strings.Count(comparisonText, "\n")
		case differ.OpReplace:
			left, right := r.renderReplaceSides(sourceText, comparisonText)
			fmt.Fprintf(&b, `<tr class="diff-changed"><td class="line-number">%d</td><td><span class="word-deleted">%s</span></td><td><span class="word-added">%s</span></td></tr>`,
				sourceLine, left, right)
			sourceLine += strings.Count(sourceText, "\n")
			comparisonLine += strings.Count(comparisonText, "\n")
		}
	}

	b.WriteString(`</tbody></table>`)
	b.WriteString(`</div>`)
	return b.String()
}

// writeEqualRows windows an unchanged span: at most the first and last
// three non-blank sub-lines are shown, with a collapsed placeholder row in
// between once the span exceeds six sub-lines.
func (r *DiffHTMLRenderer) writeEqualRows(b *strings.Builder, text string, sourceLine, comparisonLine *int) {
	lines := strings.Split(text, "\n")

	nonBlank := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			nonBlank = append(nonBlank, line)
		}
	}

	writeRow := func(line string) {
		fmt.Fprintf(b, `<tr class="context-line"><td class="line-number">%d</td><td class="diff-unchanged">%s</td><td class="diff-unchanged">%s</td></tr>`,
			*sourceLine, truncateEscape(line), truncateEscape(line))
		*sourceLine++
		*comparisonLine++
	}

	if len(nonBlank) <= 2*contextSubLines {
		for _, line := range nonBlank {
			writeRow(line)
		}
	} else {
		for _, line := range nonBlank[:contextSubLines] {
			writeRow(line)
		}
		b.WriteString(`<tr><td colspan="3" style="text-align: center; color: #666;">... (identical content) ...</td></tr>`)
		for _, line := range nonBlank[len(nonBlank)-contextSubLines:] {
			writeRow(line)
		}
	}

	// Account for the sub-lines the window hid
	hidden := len(lines) - 1 - (len(nonBlank) - 1)
	if skipped := len(nonBlank) - 2*contextSubLines; skipped > 0 {
		hidden += skipped
	}
	if hidden > 0 {
		*sourceLine += hidden
		*comparisonLine += hidden
	}
}

// renderReplaceSides escapes both sides and, when enabled, adds
// character-level emphasis on the exact segments that differ.
func (r *DiffHTMLRenderer) renderReplaceSides(sourceText, comparisonText string) (string, string) {
	if !r.inlineHighlight {
		return escape(sourceText), escape(comparisonText)
	}

	diffs := r.dmp.DiffMain(sourceText, comparisonText, false)
	diffs = r.dmp.DiffCleanupSemantic(diffs)

	var left, right strings.Builder
	for _, d := range diffs {
		escaped := escape(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			left.WriteString(escaped)
			right.WriteString(escaped)
		case diffmatchpatch.DiffDelete:
			left.WriteString(`<span class="char-deleted">` + escaped + `</span>`)
		case diffmatchpatch.DiffInsert:
			right.WriteString(`<span class="char-added">` + escaped + `</span>`)
		}
	}
	return left.String(), right.String()
}

// renderLineDiff emits a conventional two-column aligned line diff. Every
// line is shown; line counts are assumed small enough not to need
// windowing.
func (r *DiffHTMLRenderer) renderLineDiff(cmp *differ.Comparison, sourceLabel, comparisonLabel string) string {
	var b strings.Builder
	b.WriteString(reportCSS)
	b.WriteString(`<div class="diff-container">`)
	fmt.Fprintf(&b, `<div class="file-header"><h2>Comparison: %s vs %s</h2></div>`,
		escape(comparisonLabel), escape(sourceLabel))

	r.writeSummaryBox(&b, cmp.Stats)

	b.WriteString(`<table class="diff-table">`)
	fmt.Fprintf(&b, `<thead><tr><th width="50">Line</th><th width="50%%">%s (Source)</th><th width="50">Line</th><th width="50%%">%s (Comparison)</th></tr></thead>`,
		escape(sourceLabel), escape(comparisonLabel))
	b.WriteString(`<tbody>`)

	for _, op := range cmp.Script {
		switch op.Tag {
		case differ.OpEqual:
			for k := 0; k < op.SourceLen(); k++ {
				line := escape(cmp.SourceTokens[op.I1+k])
				fmt.Fprintf(&b, `<tr class="context-line"><td class="line-number">%d</td><td class="diff-unchanged">%s</td><td class="line-number">%d</td><td class="diff-unchanged">%s</td></tr>`,
					op.I1+k+1, line, op.J1+k+1, line)
			}
		case differ.OpDelete:
			for k := 0; k < op.SourceLen(); k++ {
				fmt.Fprintf(&b, `<tr class="diff-deleted"><td class="line-number">%d</td><td><span class="word-deleted">%s</span></td><td class="line-number"></td><td></td></tr>`,
					op.I1+k+1, escape(cmp.SourceTokens[op.I1+k]))
			}
		case differ.OpInsert:
			for k := 0; k < op.ComparisonLen(); k++ {
				fmt.Fprintf(&b, `<tr class="diff-added"><td class="line-number"></td><td></td><td class="line-number">%d</td><td><span class="word-added">%s</span></td></tr>`,
					op.J1+k+1, escape(cmp.ComparisonTokens[op.J1+k]))
			}
		case differ.OpReplace:
			span := op.SourceLen()
			if op.ComparisonLen() > span {
				span = op.ComparisonLen()
			}
			for k := 0; k < span; k++ {
				var leftNum, left, rightNum, right string
				if k < op.SourceLen() {
					leftNum = fmt.Sprintf("%d", op.I1+k+1)
					left = `<span class="word-deleted">` + escape(cmp.SourceTokens[op.I1+k]) + `</span>`
				}
				if k < op.ComparisonLen() {
					rightNum = fmt.Sprintf("%d", op.J1+k+1)
					right = `<span class="word-added">` + escape(cmp.ComparisonTokens[op.J1+k]) + `</span>`
				}
				fmt.Fprintf(&b, `<tr class="diff-changed"><td class="line-number">%s</td><td>%s</td><td class="line-number">%s</td><td>%s</td></tr>`,
					leftNum, left, rightNum, right)
			}
		}
	}

	b.WriteString(`</tbody></table>`)
	b.WriteString(`</div>`)
	return b.String()
}

func (r *DiffHTMLRenderer) writeSummaryBox(b *strings.Builder, stats differ.Stats) {
	b.WriteString(`<div class="summary-box"><h3>Summary</h3><div class="stats">`)
	fmt.Fprintf(b, `<div class="stat-item stat-added">Insertions: %d</div>`, stats.Insertions)
	fmt.Fprintf(b, `<div class="stat-item stat-deleted">Deletions: %d</div>`, stats.Deletions)
	fmt.Fprintf(b, `<div class="stat-item stat-unchanged">Replacements: %d</div>`, stats.Replacements)
	b.WriteString(`</div></div>`)
}

func (r *DiffHTMLRenderer) writeLegend(b *strings.Builder) {
	b.WriteString(`<div class="legend"><strong>Legend:</strong> `)
	b.WriteString(`<span class="legend-item"><span class="word-added">Added</span></span>`)
	b.WriteString(`<span class="legend-item"><span class="word-deleted">Deleted</span></span>`)
	b.WriteString(`<span class="legend-item"><span class="diff-unchanged">Unchanged</span></span>`)
	b.WriteString(`</div>`)
}

// escape escapes the five reserved markup characters
func escape(s string) string {
	return template.HTMLEscapeString(s)
}

// truncateEscape bounds a context line to the rendering limit before escaping
func truncateEscape(line string) string {
	if len(line) > maxRenderedLineLength {
		runes := []rune(line)
		if len(runes) > maxRenderedLineLength {
			return escape(string(runes[:maxRenderedLineLength])) + "..."
		}
	}
	return escape(line)
}
