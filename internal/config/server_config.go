package config

// ServerConfig defines configuration for the upload web server
type ServerConfig struct {
	ListenAddr         string `json:"listen_addr,omitempty" yaml:"listen_addr,omitempty"`
	MaxUploadSizeMB    int    `json:"max_upload_size_mb,omitempty" yaml:"max_upload_size_mb,omitempty" validate:"omitempty,min=1"`
	MaxComparisonFiles int    `json:"max_comparison_files,omitempty" yaml:"max_comparison_files,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultServerConfig creates default server configuration
func NewDefaultServerConfig() ServerConfig {
	return ServerConfig{
		ListenAddr:         DefaultServerListenAddr,
		MaxUploadSizeMB:    DefaultServerMaxUploadSizeMB,
		MaxComparisonFiles: DefaultServerMaxComparisonFiles,
	}
}
