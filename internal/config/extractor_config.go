package config

// ExtractorConfig defines configuration for document text extraction
type ExtractorConfig struct {
	IgnoreBoilerplate   bool     `json:"ignore_boilerplate" yaml:"ignore_boilerplate"`
	NormalizeWhitespace bool     `json:"normalize_whitespace" yaml:"normalize_whitespace"`
	BoilerplatePatterns []string `json:"boilerplate_patterns,omitempty" yaml:"boilerplate_patterns,omitempty"`
}

// NewDefaultExtractorConfig creates default extractor configuration
func NewDefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		IgnoreBoilerplate:   DefaultExtractorIgnoreBoilerplate,
		NormalizeWhitespace: DefaultExtractorNormalizeWhitespace,
	}
}
