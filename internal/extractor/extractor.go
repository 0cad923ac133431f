// Package extractor turns uploaded rich-text documents into normalized
// plain text ready for diffing: markup extraction, boilerplate-pattern
// removal and whitespace/case/punctuation normalization.
package extractor

import (
	"path/filepath"
	"strings"

	"github.com/aleister1102/rtfcompare/internal/config"
	"github.com/rs/zerolog"
)

// Options selects the normalization steps applied after markup extraction
type Options struct {
	IgnoreBoilerplate   bool
	NormalizeWhitespace bool
	IgnoreCase          bool
	IgnorePunctuation   bool
}

// DefaultOptions mirrors the default processing the web form offers
func DefaultOptions() Options {
	return Options{
		IgnoreBoilerplate:   true,
		NormalizeWhitespace: true,
	}
}

// DocumentExtractor converts a document into normalized comparison text
type DocumentExtractor struct {
	rtf         *RTFExtractor
	html        *HTMLExtractor
	boilerplate *BoilerplateFilter
	logger      zerolog.Logger
}

// DocumentExtractorBuilder provides a fluent interface for creating DocumentExtractor
type DocumentExtractorBuilder struct {
	extraPatterns []string
	logger        zerolog.Logger
}

// NewDocumentExtractorBuilder creates a new builder
func NewDocumentExtractorBuilder(logger zerolog.Logger) *DocumentExtractorBuilder {
	return &DocumentExtractorBuilder{logger: logger}
}

// WithConfig applies extractor configuration
func (b *DocumentExtractorBuilder) WithConfig(cfg config.ExtractorConfig) *DocumentExtractorBuilder {
	b.extraPatterns = cfg.BoilerplatePatterns
	return b
}

// Build creates a new DocumentExtractor instance
func (b *DocumentExtractorBuilder) Build() (*DocumentExtractor, error) {
	boilerplate, err := NewBoilerplateFilter(b.extraPatterns, b.logger)
	if err != nil {
		return nil, err
	}

	return &DocumentExtractor{
		rtf:         NewRTFExtractor(b.logger),
		html:        NewHTMLExtractor(b.logger),
		boilerplate: boilerplate,
		logger:      b.logger.With().Str("component", "DocumentExtractor").Logger(),
	}, nil
}

// ExtractText converts raw document bytes into plain text based on the
// file extension, then applies the configured normalization pipeline.
func (de *DocumentExtractor) ExtractText(filename string, content []byte, opts Options) (string, error) {
	text, err := de.extractPlainText(filename, content)
	if err != nil {
		return "", err
	}

	if opts.IgnoreBoilerplate {
		text = de.boilerplate.Filter(text)
	}
	if opts.NormalizeWhitespace {
		text = NormalizeWhitespace(text)
	}
	if opts.IgnoreCase {
		text = FoldCase(text)
	}
	if opts.IgnorePunctuation {
		text = StripPunctuation(text)
	}

	return text, nil
}

func (de *DocumentExtractor) extractPlainText(filename string, content []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".rtf":
		return de.rtf.ExtractText(content), nil
	case ".html", ".htm":
		return de.html.ExtractText(content)
	default:
		return string(content), nil
	}
}
