// Package exporter writes comparison summaries to downloadable formats.
package exporter

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/aleister1102/rtfcompare/internal/common"
	"github.com/aleister1102/rtfcompare/internal/differ"
	"github.com/rs/zerolog"
)

// csvHeader is the fixed column layout of the summary export
var csvHeader = []string{
	"Source File", "Comparison File", "Has Differences",
	"Total Changes", "Insertions", "Deletions", "Timestamp",
}

// SummaryExporter writes one CSV row per comparison result
type SummaryExporter struct {
	logger zerolog.Logger
}

// NewSummaryExporter creates a new summary exporter
func NewSummaryExporter(logger zerolog.Logger) *SummaryExporter {
	return &SummaryExporter{
		logger: logger.With().Str("component", "SummaryExporter").Logger(),
	}
}

// Write emits the header plus one row per result to w
func (se *SummaryExporter) Write(w io.Writer, sourceFilename string, results []*differ.DiffResult, timestamp time.Time) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return common.WrapError(err, "failed to write CSV header")
	}

	ts := timestamp.Format(time.RFC3339)
	for _, result := range results {
		hasDifferences := "No"
		if result.HasDifferences {
			hasDifferences = "Yes"
		}

		row := []string{
			sourceFilename,
			result.ComparisonFilename,
			hasDifferences,
			strconv.Itoa(result.ChangeCount),
			strconv.Itoa(result.Stats.Insertions),
			strconv.Itoa(result.Stats.Deletions),
			ts,
		}
		if err := writer.Write(row); err != nil {
			return common.WrapErrorf(err, "failed to write CSV row for '%s'", result.ComparisonFilename)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return common.WrapError(err, "failed to flush CSV output")
	}

	se.logger.Debug().Int("rows", len(results)).Msg("Wrote summary CSV")
	return nil
}
