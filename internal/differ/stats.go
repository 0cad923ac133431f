package differ

// Stats aggregates change counts derived from an edit script
type Stats struct {
	Insertions   int `json:"insertions"`
	Deletions    int `json:"deletions"`
	Replacements int `json:"replacements"`
	TotalChanges int `json:"total_changes"`
}

// HasDifferences reports whether any change was recorded
func (s Stats) HasDifferences() bool {
	return s.TotalChanges > 0
}

// AggregateWordStats tallies an edit script at word granularity: each
// insert, delete or replace operation counts once regardless of how many
// tokens it spans.
func AggregateWordStats(script []EditOp) Stats {
	var stats Stats
	for _, op := range script {
		switch op.Tag {
		case OpInsert:
			stats.Insertions++
		case OpDelete:
			stats.Deletions++
		case OpReplace:
			stats.Replacements++
		}
	}
	stats.TotalChanges = stats.Insertions + stats.Deletions + stats.Replacements
	return stats
}

// AggregateLineStats tallies an edit script at line granularity: counts are
// line spans, and a replace counts as the larger of its two spans. This
// deliberately differs from word granularity, which counts operations, so
// the two granularities do not report comparable magnitudes.
func AggregateLineStats(script []EditOp) Stats {
	var stats Stats
	for _, op := range script {
		switch op.Tag {
		case OpInsert:
			stats.Insertions += op.ComparisonLen()
		case OpDelete:
			stats.Deletions += op.SourceLen()
		case OpReplace:
			stats.Replacements += maxInt(op.SourceLen(), op.ComparisonLen())
		}
	}
	stats.TotalChanges = stats.Insertions + stats.Deletions + stats.Replacements
	return stats
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
