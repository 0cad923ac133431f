package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateWordStats_CountsOperations(t *testing.T) {
	script := []EditOp{
		{Tag: OpEqual, I1: 0, I2: 5, J1: 0, J2: 5},
		{Tag: OpReplace, I1: 5, I2: 8, J1: 5, J2: 7},
		{Tag: OpEqual, I1: 8, I2: 10, J1: 7, J2: 9},
		{Tag: OpInsert, I1: 10, I2: 10, J1: 9, J2: 12},
		{Tag: OpDelete, I1: 10, I2: 14, J1: 12, J2: 12},
	}

	stats := AggregateWordStats(script)

	// One count per operation, no matter how many tokens it spans
	assert.Equal(t, 1, stats.Insertions)
	assert.Equal(t, 1, stats.Deletions)
	assert.Equal(t, 1, stats.Replacements)
	assert.Equal(t, 3, stats.TotalChanges)
	assert.True(t, stats.HasDifferences())
}

func TestAggregateWordStats_EqualOnly(t *testing.T) {
	script := []EditOp{{Tag: OpEqual, I1: 0, I2: 3, J1: 0, J2: 3}}

	stats := AggregateWordStats(script)
	assert.Zero(t, stats.TotalChanges)
	assert.False(t, stats.HasDifferences())
}

func TestAggregateLineStats_CountsLineSpans(t *testing.T) {
	script := []EditOp{
		{Tag: OpEqual, I1: 0, I2: 2, J1: 0, J2: 2},
		{Tag: OpInsert, I1: 2, I2: 2, J1: 2, J2: 5},
		{Tag: OpDelete, I1: 2, I2: 4, J1: 5, J2: 5},
	}

	stats := AggregateLineStats(script)

	assert.Equal(t, 3, stats.Insertions)
	assert.Equal(t, 2, stats.Deletions)
	assert.Equal(t, 0, stats.Replacements)
	assert.Equal(t, 5, stats.TotalChanges)
}

func TestAggregateLineStats_ReplaceCountsLargerSpan(t *testing.T) {
	script := []EditOp{
		{Tag: OpReplace, I1: 0, I2: 2, J1: 0, J2: 5},
	}

	stats := AggregateLineStats(script)

	assert.Equal(t, 5, stats.Replacements)
	assert.Zero(t, stats.Insertions)
	assert.Zero(t, stats.Deletions)
}

func TestAggregateLineStats_SingleChangedLine(t *testing.T) {
	// One line rewritten in place: a single replacement, not an
	// insertion/deletion pair.
	source := Tokenize("Line 1\nLine 2\nLine 3", GranularityLine)
	comparison := Tokenize("Line 1\nModified Line 2\nLine 3", GranularityLine)

	stats := AggregateLineStats(Match(source, comparison))

	assert.Equal(t, 1, stats.Replacements)
	assert.Zero(t, stats.Insertions)
	assert.Zero(t, stats.Deletions)
	assert.Equal(t, 1, stats.TotalChanges)
}

func TestAggregateStats_EmptyScript(t *testing.T) {
	assert.False(t, AggregateWordStats(nil).HasDifferences())
	assert.False(t, AggregateLineStats(nil).HasDifferences())
}
