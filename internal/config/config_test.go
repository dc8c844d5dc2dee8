package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceTrend/internal/reporter"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ",", cfg.Input.Delimiter)
	assert.True(t, cfg.SkipHeader())
	assert.Equal(t, reporter.DefaultPrecision, cfg.Precision())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, reporter.DefaultPrecision, cfg.Precision())
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, `
input:
  delimiter: ";"
  skip_header: false
report:
  precision: -1
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ";", cfg.Input.Delimiter)
	assert.False(t, cfg.SkipHeader())
	assert.Equal(t, -1, cfg.Precision())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestPrecision_UnsetFallsBackToReporterDefault(t *testing.T) {
	var cfg Config
	assert.Equal(t, reporter.DefaultPrecision, cfg.Precision())
}

func TestLoad_ZeroPrecisionKept(t *testing.T) {
	cfg, err := Load(writeConfig(t, "report:\n  precision: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Precision())
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "input: [unclosed\n"))
	assert.ErrorContains(t, err, "parse config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PRICETREND_DELIMITER", "|")
	t.Setenv("PRICETREND_PRECISION", "10")
	t.Setenv("PRICETREND_LOG_LEVEL", "info")
	t.Setenv("PRICETREND_LOG_FORMAT", "json")

	cfg, err := Load(writeConfig(t, "input:\n  delimiter: \";\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "|", cfg.Input.Delimiter)
	assert.Equal(t, 10, cfg.Precision())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_BadPrecisionEnv(t *testing.T) {
	t.Setenv("PRICETREND_PRECISION", "six")
	_, err := Load("")
	assert.ErrorContains(t, err, "PRICETREND_PRECISION")
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		mut  func(c *Config)
	}{
		{"multi-char delimiter", func(c *Config) { c.Input.Delimiter = ",," }},
		{"newline delimiter", func(c *Config) { c.Input.Delimiter = "\n" }},
		{"precision too small", func(c *Config) { p := -2; c.Report.Precision = &p }},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mut(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
