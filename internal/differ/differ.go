// Package differ implements the comparison core: tokenization of
// normalized document text, an explicit Myers O(ND) edit-script engine,
// statistics aggregation and input size guarding. Everything here is
// synchronous and free of shared mutable state, so callers may run any
// number of comparisons in parallel.
package differ

import (
	"time"

	"github.com/aleister1102/rtfcompare/internal/common"
	"github.com/aleister1102/rtfcompare/internal/config"
	"github.com/rs/zerolog"
)

// TextDiffer compares two extracted document texts and produces a
// Comparison: tokens, edit script and statistics.
type TextDiffer struct {
	granularity Granularity
	guard       *SizeGuard
	logger      zerolog.Logger
}

// TextDifferBuilder provides a fluent interface for creating TextDiffer
type TextDifferBuilder struct {
	granularity     Granularity
	maxTokens       int
	minFreeMemoryMB int
	logger          zerolog.Logger
}

// NewTextDifferBuilder creates a new builder
func NewTextDifferBuilder(logger zerolog.Logger) *TextDifferBuilder {
	return &TextDifferBuilder{
		granularity: GranularityWord,
		maxTokens:   config.DefaultDiffMaxTokens,
		logger:      logger,
	}
}

// WithConfig applies diff configuration
func (b *TextDifferBuilder) WithConfig(cfg config.DiffConfig) *TextDifferBuilder {
	b.granularity = ParseGranularity(cfg.Granularity)
	b.maxTokens = cfg.MaxTokens
	b.minFreeMemoryMB = cfg.MinFreeMemoryMB
	return b
}

// WithGranularity overrides the comparison granularity
func (b *TextDifferBuilder) WithGranularity(g Granularity) *TextDifferBuilder {
	b.granularity = g
	return b
}

// Build creates a new TextDiffer instance
func (b *TextDifferBuilder) Build() (*TextDiffer, error) {
	return &TextDiffer{
		granularity: b.granularity,
		guard:       NewSizeGuard(b.maxTokens, b.minFreeMemoryMB, b.logger),
		logger:      b.logger.With().Str("component", "TextDiffer").Logger(),
	}, nil
}

// Granularity returns the configured comparison granularity
func (td *TextDiffer) Granularity() Granularity {
	return td.granularity
}

// Compare tokenizes both texts, computes the edit script and aggregates
// statistics. It either returns a complete Comparison or fails atomically;
// oversized inputs fail with an error wrapping common.ErrContentTooLarge.
func (td *TextDiffer) Compare(sourceText, comparisonText string) (*Comparison, error) {
	startTime := time.Now()

	sourceTokens := Tokenize(sourceText, td.granularity)
	comparisonTokens := Tokenize(comparisonText, td.granularity)

	if err := td.guard.Check(len(sourceTokens), len(comparisonTokens)); err != nil {
		return nil, common.WrapError(err, "comparison rejected by size guard")
	}

	script := Match(sourceTokens, comparisonTokens)

	var stats Stats
	if td.granularity == GranularityLine {
		stats = AggregateLineStats(script)
	} else {
		stats = AggregateWordStats(script)
	}

	cmp := &Comparison{
		Granularity:      td.granularity,
		SourceTokens:     sourceTokens,
		ComparisonTokens: comparisonTokens,
		Script:           script,
		Stats:            stats,
		ProcessingTime:   time.Since(startTime),
	}

	td.logger.Debug().
		Int("source_tokens", len(sourceTokens)).
		Int("comparison_tokens", len(comparisonTokens)).
		Int("operations", len(script)).
		Int("total_changes", stats.TotalChanges).
		Dur("duration", cmp.ProcessingTime).
		Msg("Computed edit script")

	return cmp, nil
}
