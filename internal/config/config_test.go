package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.Equal(t, DefaultDiffGranularity, cfg.DiffConfig.Granularity)
	assert.Equal(t, DefaultDiffMaxTokens, cfg.DiffConfig.MaxTokens)
	assert.True(t, cfg.ExtractorConfig.IgnoreBoilerplate)
	assert.True(t, cfg.ExtractorConfig.NormalizeWhitespace)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
	assert.Equal(t, DefaultReporterOutputDir, cfg.ReporterConfig.OutputDir)
	assert.Equal(t, DefaultServerListenAddr, cfg.ServerConfig.ListenAddr)
	assert.Equal(t, DefaultSessionTTLHours, cfg.SessionConfig.TTLHours)
}

func TestLoadGlobalConfig_NoFileYieldsDefaults(t *testing.T) {
	// Run from an empty directory so no config.yaml is picked up
	tmp := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadGlobalConfig("", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, DefaultDiffGranularity, cfg.DiffConfig.Granularity)
}

func TestLoadGlobalConfig_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
diff_config:
  granularity: line
  max_tokens: 1000
extractor_config:
  ignore_boilerplate: false
  boilerplate_patterns:
    - '^DRAFT'
server_config:
  listen_addr: ":9090"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadGlobalConfig(path, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "line", cfg.DiffConfig.Granularity)
	assert.Equal(t, 1000, cfg.DiffConfig.MaxTokens)
	assert.False(t, cfg.ExtractorConfig.IgnoreBoilerplate)
	assert.Equal(t, []string{"^DRAFT"}, cfg.ExtractorConfig.BoilerplatePatterns)
	assert.Equal(t, ":9090", cfg.ServerConfig.ListenAddr)
	// Untouched sections keep their defaults
	assert.Equal(t, DefaultReporterOutputDir, cfg.ReporterConfig.OutputDir)
}

func TestLoadGlobalConfig_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	jsonCfg := `{"diff_config": {"granularity": "line"}, "log_config": {"log_level": "debug"}}`
	require.NoError(t, os.WriteFile(path, []byte(jsonCfg), 0o644))

	cfg, err := LoadGlobalConfig(path, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "line", cfg.DiffConfig.Granularity)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
}

func TestLoadGlobalConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("diff_config: [not: a: map"), 0o644))

	_, err := LoadGlobalConfig(path, zerolog.Nop())
	assert.Error(t, err)
}

func TestGetConfigPath_EnvVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	t.Setenv("RTFCOMPARE_CONFIG_PATH", path)

	assert.Equal(t, path, GetConfigPath(""))
}

func TestGetConfigPath_FlagTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flag.yaml")
	envPath := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(flagPath, []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(envPath, []byte("{}"), 0o644))
	t.Setenv("RTFCOMPARE_CONFIG_PATH", envPath)

	assert.Equal(t, flagPath, GetConfigPath(flagPath))
}

func TestValidateConfig_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, ValidateConfig(NewDefaultGlobalConfig()))
}

func TestValidateConfig_RejectsBadGranularity(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.DiffConfig.Granularity = "paragraph"

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "granularity")
}

func TestValidateConfig_RejectsBadLogLevel(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.LogConfig.LogLevel = "verbose"

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_RejectsNonPositiveMaxTokens(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.DiffConfig.MaxTokens = -5

	assert.Error(t, ValidateConfig(cfg))
}
