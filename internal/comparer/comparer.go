// Package comparer orchestrates one comparison batch: extract and
// normalize the source document once, diff every comparison document
// against it and collect ordered results.
package comparer

import (
	"time"

	"github.com/aleister1102/rtfcompare/internal/common"
	"github.com/aleister1102/rtfcompare/internal/config"
	"github.com/aleister1102/rtfcompare/internal/differ"
	"github.com/aleister1102/rtfcompare/internal/extractor"
	"github.com/aleister1102/rtfcompare/internal/reporter"
	"github.com/rs/zerolog"
)

// Document is one named input to a comparison batch
type Document struct {
	Filename string
	Content  []byte
}

// BatchResult is an ordered collection of per-file diff results for one
// source document, plus the generation timestamp used by report rendering.
type BatchResult struct {
	SourceFilename string
	Results        []*differ.DiffResult
	Options        Options
	Timestamp      time.Time
}

// ChangedCount returns how many comparisons found differences
func (br *BatchResult) ChangedCount() int {
	count := 0
	for _, result := range br.Results {
		if result.HasDifferences {
			count++
		}
	}
	return count
}

// Service wires the extraction, diffing and rendering components
type Service struct {
	extractor *extractor.DocumentExtractor
	renderer  *reporter.DiffHTMLRenderer
	diffCfg   config.DiffConfig
	logger    zerolog.Logger
}

// ServiceBuilder provides a fluent interface for creating Service
type ServiceBuilder struct {
	diffCfg      config.DiffConfig
	extractorCfg config.ExtractorConfig
	logger       zerolog.Logger
}

// NewServiceBuilder creates a new builder
func NewServiceBuilder(logger zerolog.Logger) *ServiceBuilder {
	return &ServiceBuilder{
		diffCfg:      config.NewDefaultDiffConfig(),
		extractorCfg: config.NewDefaultExtractorConfig(),
		logger:       logger,
	}
}

// WithDiffConfig sets the diff configuration
func (b *ServiceBuilder) WithDiffConfig(cfg config.DiffConfig) *ServiceBuilder {
	b.diffCfg = cfg
	return b
}

// WithExtractorConfig sets the extractor configuration
func (b *ServiceBuilder) WithExtractorConfig(cfg config.ExtractorConfig) *ServiceBuilder {
	b.extractorCfg = cfg
	return b
}

// Build creates a new Service instance
func (b *ServiceBuilder) Build() (*Service, error) {
	docExtractor, err := extractor.NewDocumentExtractorBuilder(b.logger).
		WithConfig(b.extractorCfg).
		Build()
	if err != nil {
		return nil, common.WrapError(err, "failed to build document extractor")
	}

	return &Service{
		extractor: docExtractor,
		renderer:  reporter.NewDiffHTMLRendererBuilder(b.logger).Build(),
		diffCfg:   b.diffCfg,
		logger:    b.logger.With().Str("component", "ComparerService").Logger(),
	}, nil
}

// CompareAll extracts the source document once and diffs every comparison
// document against it. Results keep the order of the input documents.
// Each comparison either yields a complete DiffResult or fails the batch;
// oversized inputs surface common.ErrContentTooLarge.
func (s *Service) CompareAll(source Document, comparisons []Document, opts Options) (*BatchResult, error) {
	sourceText, err := s.extractor.ExtractText(source.Filename, source.Content, opts.ExtractorOptions())
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to extract source document '%s'", source.Filename)
	}

	textDiffer, err := differ.NewTextDifferBuilder(s.logger).
		WithConfig(s.diffCfg).
		WithGranularity(opts.Granularity).
		Build()
	if err != nil {
		return nil, common.WrapError(err, "failed to build text differ")
	}

	batch := &BatchResult{
		SourceFilename: source.Filename,
		Results:        make([]*differ.DiffResult, 0, len(comparisons)),
		Options:        opts,
		Timestamp:      time.Now(),
	}

	for _, comparison := range comparisons {
		result, err := s.compareOne(textDiffer, source.Filename, sourceText, comparison, opts)
		if err != nil {
			return nil, err
		}
		batch.Results = append(batch.Results, result)
	}

	s.logger.Info().
		Str("source", source.Filename).
		Int("comparisons", len(batch.Results)).
		Int("changed", batch.ChangedCount()).
		Msg("Completed comparison batch")

	return batch, nil
}

// CompareTexts diffs two already-extracted texts and renders the markup.
// It is the entrypoint for callers that handle extraction themselves.
func (s *Service) CompareTexts(sourceText, comparisonText, sourceLabel, comparisonLabel string, opts Options) (*differ.DiffResult, error) {
	textDiffer, err := differ.NewTextDifferBuilder(s.logger).
		WithConfig(s.diffCfg).
		WithGranularity(opts.Granularity).
		Build()
	if err != nil {
		return nil, common.WrapError(err, "failed to build text differ")
	}

	cmp, err := textDiffer.Compare(sourceText, comparisonText)
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to compare '%s' against '%s'", comparisonLabel, sourceLabel)
	}

	html := s.renderer.Render(cmp, sourceLabel, comparisonLabel)

	return differ.NewDiffResultBuilder().
		WithFilenames(sourceLabel, comparisonLabel).
		WithComparison(cmp).
		WithHTML(html).
		Build(), nil
}

func (s *Service) compareOne(textDiffer *differ.TextDiffer, sourceFilename, sourceText string, comparison Document, opts Options) (*differ.DiffResult, error) {
	comparisonText, err := s.extractor.ExtractText(comparison.Filename, comparison.Content, opts.ExtractorOptions())
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to extract comparison document '%s'", comparison.Filename)
	}

	cmp, err := textDiffer.Compare(sourceText, comparisonText)
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to compare '%s' against '%s'", comparison.Filename, sourceFilename)
	}

	html := s.renderer.Render(cmp, sourceFilename, comparison.Filename)

	return differ.NewDiffResultBuilder().
		WithFilenames(sourceFilename, comparison.Filename).
		WithComparison(cmp).
		WithHTML(html).
		Build(), nil
}
