package extractor

import (
	"regexp"
	"strings"

	"github.com/aleister1102/rtfcompare/internal/common"
	"github.com/rs/zerolog"
)

// defaultBoilerplatePatterns matches recurring non-content lines in
// statistical output exports: system headers, pagination, timestamps and
// run metadata. Matching is per line and case-insensitive.
var defaultBoilerplatePatterns = []string{
	`Version \d+\.\d+ SAS System Output`,
	`CONFIDENTIAL`,
	`Program \[SC\]:.*`,
	`Page \d+ of \d+`,
	`Generated on:?\s*\d{4}-\d{2}-\d{2}(\s+\d{2}:\d{2}:\d{2})?`,
	`Created on:?\s*\d{4}-\d{2}-\d{2}(\s+\d{2}:\d{2}:\d{2})?`,
	`Updated on:?\s*\d{4}-\d{2}-\d{2}(\s+\d{2}:\d{2}:\d{2})?`,
	`Printed on:?\s*\d{4}-\d{2}-\d{2}(\s+\d{2}:\d{2}:\d{2})?`,
	`Generated at:?\s*\d{2}/\d{2}/\d{4}(\s+\d{1,2}:\d{2}(\s*[APap][Mm])?)?`,
	`Created at:?\s*\d{2}/\d{2}/\d{4}(\s+\d{1,2}:\d{2}(\s*[APap][Mm])?)?`,
	`Updated at:?\s*\d{2}/\d{2}/\d{4}(\s+\d{1,2}:\d{2}(\s*[APap][Mm])?)?`,
	`Printed at:?\s*\d{2}/\d{2}/\d{4}(\s+\d{1,2}:\d{2}(\s*[APap][Mm])?)?`,
	`\d{1,2}-[A-Za-z]{3}-\d{4}(\s+\d{2}:\d{2}:\d{2})?`,
	`\d{1,2}/\d{1,2}/\d{4}(\s+\d{1,2}:\d{2}(\s*[APap][Mm])?)?`,
	`\d{4}-\d{2}-\d{2}(\s+\d{2}:\d{2}:\d{2})?`,
	`Table \d+\.\d+(\.\d+)?`,
	`Listing \d+\.\d+(\.\d+)?`,
	`Figure \d+\.\d+(\.\d+)?`,
	`^\s*-+\s*$`,
	`^\s*=+\s*$`,
	`Study:\s*\w+`,
	`Protocol:\s*\w+`,
	`Output Date:.*`,
	`Run Date:.*`,
	`File Path:.*`,
	`Program Name:.*`,
}

// BoilerplateFilter removes lines matching an ordered list of pattern
// rules. The rule list is owned by the filter instance; there is no shared
// global state.
type BoilerplateFilter struct {
	patterns []*regexp.Regexp
	logger   zerolog.Logger
}

// NewBoilerplateFilter compiles the default rules plus any extra patterns
// from configuration, preserving order. Invalid extra patterns fail
// construction so misconfiguration surfaces at startup.
func NewBoilerplateFilter(extraPatterns []string, logger zerolog.Logger) (*BoilerplateFilter, error) {
	bf := &BoilerplateFilter{
		logger: logger.With().Str("component", "BoilerplateFilter").Logger(),
	}

	for _, p := range defaultBoilerplatePatterns {
		bf.patterns = append(bf.patterns, regexp.MustCompile(`(?i)`+p))
	}

	for _, p := range extraPatterns {
		if err := bf.AddPattern(p); err != nil {
			return nil, err
		}
	}

	return bf, nil
}

// AddPattern appends a custom rule to the ordered list
func (bf *BoilerplateFilter) AddPattern(pattern string) error {
	compiled, err := regexp.Compile(`(?i)` + pattern)
	if err != nil {
		return common.WrapErrorf(err, "invalid boilerplate pattern '%s'", pattern)
	}
	bf.patterns = append(bf.patterns, compiled)
	return nil
}

// Filter drops every non-blank line matching any rule. Blank lines pass
// through so paragraph structure survives filtering.
func (bf *BoilerplateFilter) Filter(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			kept = append(kept, line)
			continue
		}
		if bf.matchesAny(trimmed) {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

func (bf *BoilerplateFilter) matchesAny(line string) bool {
	for _, pattern := range bf.patterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}
