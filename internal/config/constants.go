package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Diff Defaults
	DefaultDiffGranularity      = "word"
	DefaultDiffMaxFileSizeMB    = 15
	DefaultDiffMaxTokens        = 500_000
	DefaultDiffContextSubLines  = 3
	DefaultDiffLineTruncateCols = 100
	DefaultDiffMinFreeMemoryMB  = 128

	// Extractor Defaults
	DefaultExtractorIgnoreBoilerplate   = true
	DefaultExtractorNormalizeWhitespace = true

	// Reporter Defaults
	DefaultReporterOutputDir   = "reports"
	DefaultReporterReportTitle = "RTF Comparison Report"

	// Session Defaults
	DefaultSessionDirPrefix = "rtf_session_"
	DefaultSessionTTLHours  = 24

	// Server Defaults
	DefaultServerListenAddr         = ":8080"
	DefaultServerMaxUploadSizeMB    = 15
	DefaultServerMaxComparisonFiles = 20
)
