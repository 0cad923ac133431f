package config

// DiffConfig defines configuration for the diff engine
type DiffConfig struct {
	Granularity       string `json:"granularity,omitempty" yaml:"granularity,omitempty" validate:"omitempty,granularity"`
	MaxFileSizeMB     int    `json:"max_file_size_mb,omitempty" yaml:"max_file_size_mb,omitempty" validate:"omitempty,min=1"`
	MaxTokens         int    `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty" validate:"omitempty,min=1"`
	MinFreeMemoryMB   int    `json:"min_free_memory_mb,omitempty" yaml:"min_free_memory_mb,omitempty"`
	IgnoreCase        bool   `json:"ignore_case" yaml:"ignore_case"`
	IgnorePunctuation bool   `json:"ignore_punctuation" yaml:"ignore_punctuation"`
}

// NewDefaultDiffConfig creates default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		Granularity:     DefaultDiffGranularity,
		MaxFileSizeMB:   DefaultDiffMaxFileSizeMB,
		MaxTokens:       DefaultDiffMaxTokens,
		MinFreeMemoryMB: DefaultDiffMinFreeMemoryMB,
	}
}
