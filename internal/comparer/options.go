package comparer

import (
	"github.com/aleister1102/rtfcompare/internal/config"
	"github.com/aleister1102/rtfcompare/internal/differ"
	"github.com/aleister1102/rtfcompare/internal/extractor"
)

// Options is the immutable per-request comparison configuration: the diff
// granularity plus the normalization steps applied before tokenization.
type Options struct {
	Granularity         differ.Granularity
	IgnoreCase          bool
	IgnorePunctuation   bool
	IgnoreBoilerplate   bool
	NormalizeWhitespace bool
}

// DefaultOptions mirrors the defaults the upload form presents
func DefaultOptions() Options {
	return Options{
		Granularity:         differ.GranularityWord,
		IgnoreBoilerplate:   true,
		NormalizeWhitespace: true,
	}
}

// OptionsFromConfig derives comparison options from application config
func OptionsFromConfig(diffCfg config.DiffConfig, extractorCfg config.ExtractorConfig) Options {
	return Options{
		Granularity:         differ.ParseGranularity(diffCfg.Granularity),
		IgnoreCase:          diffCfg.IgnoreCase,
		IgnorePunctuation:   diffCfg.IgnorePunctuation,
		IgnoreBoilerplate:   extractorCfg.IgnoreBoilerplate,
		NormalizeWhitespace: extractorCfg.NormalizeWhitespace,
	}
}

// ExtractorOptions returns the subset consumed by the extraction pipeline
func (o Options) ExtractorOptions() extractor.Options {
	return extractor.Options{
		IgnoreBoilerplate:   o.IgnoreBoilerplate,
		NormalizeWhitespace: o.NormalizeWhitespace,
		IgnoreCase:          o.IgnoreCase,
		IgnorePunctuation:   o.IgnorePunctuation,
	}
}
