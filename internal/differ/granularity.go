package differ

import "strings"

// Granularity selects the unit of comparison
type Granularity int

const (
	// GranularityWord compares word and punctuation tokens
	GranularityWord Granularity = iota
	// GranularityLine compares whole lines
	GranularityLine
)

// String returns string representation of Granularity
func (g Granularity) String() string {
	switch g {
	case GranularityWord:
		return "word"
	case GranularityLine:
		return "line"
	default:
		return "unknown"
	}
}

// ParseGranularity converts a granularity name, defaulting to word
func ParseGranularity(s string) Granularity {
	if strings.EqualFold(s, "line") {
		return GranularityLine
	}
	return GranularityWord
}
