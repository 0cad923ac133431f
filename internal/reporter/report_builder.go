package reporter

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/aleister1102/rtfcompare/internal/common"
	"github.com/aleister1102/rtfcompare/internal/config"
	"github.com/aleister1102/rtfcompare/internal/differ"
	"github.com/rs/zerolog"
)

//go:embed templates/*
var templateFS embed.FS

// ReportPageData is the data model for the consolidated report template
type ReportPageData struct {
	ReportTitle    string
	ReportCSS      string
	GeneratedAt    string
	SourceFilename string
	Results        []*differ.DiffResult
}

// ConsolidatedReportBuilder composes per-file diff results into one
// self-contained HTML document: a summary table over every comparison plus
// full diff detail for the comparisons that found differences.
type ConsolidatedReportBuilder struct {
	template    *template.Template
	reportTitle string
	logger      zerolog.Logger
}

// NewConsolidatedReportBuilder creates a new report builder
func NewConsolidatedReportBuilder(cfg config.ReporterConfig, logger zerolog.Logger) (*ConsolidatedReportBuilder, error) {
	tmpl, err := template.New("").Funcs(GetReportTemplateFunctions()).ParseFS(templateFS, "templates/consolidated_report.html.tmpl")
	if err != nil {
		return nil, common.WrapError(err, "failed to parse consolidated report template")
	}

	title := cfg.ReportTitle
	if title == "" {
		title = DefaultReportTitle
	}

	return &ConsolidatedReportBuilder{
		template:    tmpl,
		reportTitle: title,
		logger:      logger.With().Str("component", "ConsolidatedReportBuilder").Logger(),
	}, nil
}

// Build renders the consolidated document. Output is deterministic for
// identical inputs apart from the embedded generation timestamp.
func (rb *ConsolidatedReportBuilder) Build(sourceFilename string, results []*differ.DiffResult, generatedAt time.Time) (string, error) {
	pageData := ReportPageData{
		ReportTitle:    rb.reportTitle,
		ReportCSS:      reportCSS,
		GeneratedAt:    generatedAt.Format("2006-01-02 15:04:05"),
		SourceFilename: sourceFilename,
		Results:        results,
	}

	var out strings.Builder
	if err := rb.template.ExecuteTemplate(&out, "consolidated_report.html.tmpl", pageData); err != nil {
		return "", common.WrapError(err, "failed to execute consolidated report template")
	}

	rb.logger.Info().
		Str("source", sourceFilename).
		Int("comparisons", len(results)).
		Msg("Built consolidated report")

	return out.String(), nil
}
