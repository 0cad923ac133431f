package extractor

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFilter(t *testing.T, extra ...string) *BoilerplateFilter {
	t.Helper()
	bf, err := NewBoilerplateFilter(extra, zerolog.Nop())
	require.NoError(t, err)
	return bf
}

func TestBoilerplateFilter_RemovesSystemHeaders(t *testing.T) {
	bf := newTestFilter(t)

	input := "Version 9.4 SAS System Output\nActual result line\nCONFIDENTIAL"
	assert.Equal(t, "Actual result line", bf.Filter(input))
}

func TestBoilerplateFilter_RemovesPagination(t *testing.T) {
	bf := newTestFilter(t)

	input := "data row\nPage 3 of 12\nmore data"
	assert.Equal(t, "data row\nmore data", bf.Filter(input))
}

func TestBoilerplateFilter_RemovesTimestampLines(t *testing.T) {
	bf := newTestFilter(t)

	input := "Generated on: 2024-01-15 10:30:00\nkept\n12/31/2023 11:59 PM\n15-Jan-2024"
	assert.Equal(t, "kept", bf.Filter(input))
}

func TestBoilerplateFilter_RemovesSeparatorRules(t *testing.T) {
	bf := newTestFilter(t)

	input := "above\n----------\n==========\nbelow"
	assert.Equal(t, "above\nbelow", bf.Filter(input))
}

func TestBoilerplateFilter_CaseInsensitive(t *testing.T) {
	bf := newTestFilter(t)

	input := "confidential\ndata"
	assert.Equal(t, "data", bf.Filter(input))
}

func TestBoilerplateFilter_KeepsBlankLines(t *testing.T) {
	bf := newTestFilter(t)

	input := "para one\n\npara two"
	assert.Equal(t, "para one\n\npara two", bf.Filter(input))
}

func TestBoilerplateFilter_CustomPatterns(t *testing.T) {
	bf := newTestFilter(t, `^DRAFT .*`)

	input := "DRAFT do not distribute\nreal content"
	assert.Equal(t, "real content", bf.Filter(input))
}

func TestBoilerplateFilter_InvalidCustomPatternFailsConstruction(t *testing.T) {
	_, err := NewBoilerplateFilter([]string{`([unclosed`}, zerolog.Nop())
	assert.Error(t, err)
}

func TestBoilerplateFilter_AddPattern(t *testing.T) {
	bf := newTestFilter(t)

	require.NoError(t, bf.AddPattern(`^Appendix [A-Z]$`))
	assert.Equal(t, "text", bf.Filter("Appendix B\ntext"))

	assert.Error(t, bf.AddPattern(`(bad`))
}

func TestBoilerplateFilter_KeepsOrdinaryContent(t *testing.T) {
	bf := newTestFilter(t)

	input := "Mean change from baseline was 4.2 mmHg"
	assert.Equal(t, input, bf.Filter(input))
}
