package config

// ReporterConfig defines configuration for generating reports
type ReporterConfig struct {
	OutputDir   string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	ReportTitle string `json:"report_title,omitempty" yaml:"report_title,omitempty"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputDir:   DefaultReporterOutputDir,
		ReportTitle: DefaultReporterReportTitle,
	}
}

// SessionConfig defines configuration for transient session directories
type SessionConfig struct {
	WorkDir   string `json:"work_dir,omitempty" yaml:"work_dir,omitempty"`
	DirPrefix string `json:"dir_prefix,omitempty" yaml:"dir_prefix,omitempty"`
	TTLHours  int    `json:"ttl_hours,omitempty" yaml:"ttl_hours,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultSessionConfig creates default session configuration.
// An empty WorkDir means the OS temp directory is used.
func NewDefaultSessionConfig() SessionConfig {
	return SessionConfig{
		WorkDir:   "",
		DirPrefix: DefaultSessionDirPrefix,
		TTLHours:  DefaultSessionTTLHours,
	}
}
