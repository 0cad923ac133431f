package differ

import "time"

// Comparison holds the raw outcome of diffing two token sequences. It is
// immutable after creation and safe to share across goroutines.
type Comparison struct {
	Granularity      Granularity
	SourceTokens     []string
	ComparisonTokens []string
	Script           []EditOp
	Stats            Stats
	ProcessingTime   time.Duration
}

// HasDifferences reports whether the comparison found any change
func (c *Comparison) HasDifferences() bool {
	return c.Stats.HasDifferences()
}

// DiffResult is the caller-facing result of one (source, comparison) pair:
// the collapsed edit script, derived statistics and the rendered markup.
// Created once per comparison and never mutated afterwards.
type DiffResult struct {
	SourceFilename     string      `json:"source_filename"`
	ComparisonFilename string      `json:"comparison_filename"`
	HasDifferences     bool        `json:"has_differences"`
	ChangeCount        int         `json:"change_count"`
	Stats              Stats       `json:"stats"`
	HTML               string      `json:"-"`
	Comparison         *Comparison `json:"-"`
}

// DiffResultBuilder assembles DiffResult values
type DiffResultBuilder struct {
	result DiffResult
}

// NewDiffResultBuilder creates a new result builder
func NewDiffResultBuilder() *DiffResultBuilder {
	return &DiffResultBuilder{}
}

// WithFilenames sets the source and comparison labels
func (rb *DiffResultBuilder) WithFilenames(source, comparison string) *DiffResultBuilder {
	rb.result.SourceFilename = source
	rb.result.ComparisonFilename = comparison
	return rb
}

// WithComparison sets the comparison outcome and derived statistics
func (rb *DiffResultBuilder) WithComparison(cmp *Comparison) *DiffResultBuilder {
	rb.result.Comparison = cmp
	rb.result.Stats = cmp.Stats
	rb.result.ChangeCount = cmp.Stats.TotalChanges
	rb.result.HasDifferences = cmp.HasDifferences()
	return rb
}

// WithHTML sets the rendered diff markup
func (rb *DiffResultBuilder) WithHTML(html string) *DiffResultBuilder {
	rb.result.HTML = html
	return rb
}

// Build creates the final DiffResult
func (rb *DiffResultBuilder) Build() *DiffResult {
	return &rb.result
}
