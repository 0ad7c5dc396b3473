package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.NotEmpty(t, cfg.HTTP.UserAgent)
	assert.Equal(t, 2*time.Second, cfg.RateLimit.MinDelay)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, 60*time.Second, cfg.Retry.RateLimitCooldown)
	assert.Equal(t, 6, cfg.Report.PostLimit)
	assert.Equal(t, 8, cfg.Report.ArchivePostLimit)

	assert.NoError(t, cfg.Validate())
}

func TestOutputPaths(t *testing.T) {
	out := OutputConfig{
		BaseDirectory: "/tmp/osint",
		ReportsDir:    "reports",
		DataDir:       "data",
		DownloadsDir:  "downloads",
	}

	assert.Equal(t, filepath.Join("/tmp/osint", "reports"), out.ReportsPath())
	assert.Equal(t, filepath.Join("/tmp/osint", "data"), out.DataPath())
	assert.Equal(t, filepath.Join("/tmp/osint", "downloads"), out.DownloadsPath())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero timeout", func(c *Config) { c.HTTP.Timeout = 0 }},
		{"negative delay", func(c *Config) { c.RateLimit.MinDelay = -time.Second }},
		{"zero attempts", func(c *Config) { c.Retry.MaxAttempts = 0 }},
		{"empty output dir", func(c *Config) { c.Output.BaseDirectory = "" }},
		{"empty reports dir", func(c *Config) { c.Output.ReportsDir = "" }},
		{"negative post limit", func(c *Config) { c.Report.PostLimit = -1 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("INSTAOSINT_USER_AGENT", "custom-agent")
	t.Setenv("INSTAOSINT_MIN_DELAY", "5s")
	t.Setenv("INSTAOSINT_MAX_ATTEMPTS", "7")
	t.Setenv("INSTAOSINT_OUTPUT_DIR", "/tmp/osint-out")
	t.Setenv("INSTAOSINT_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromEnv())

	assert.Equal(t, "custom-agent", cfg.HTTP.UserAgent)
	assert.Equal(t, 5*time.Second, cfg.RateLimit.MinDelay)
	assert.Equal(t, 7, cfg.Retry.MaxAttempts)
	assert.Equal(t, "/tmp/osint-out", cfg.Output.BaseDirectory)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
output:
  base_directory: /tmp/from-file
retry:
  max_attempts: 5
report:
  post_limit: 12
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromFile(path))

	assert.Equal(t, "/tmp/from-file", cfg.Output.BaseDirectory)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, 12, cfg.Report.PostLimit)

	// Untouched values keep their defaults
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
}

func TestLoadFromFileMissingPathIsNotAnError(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.LoadFromFile(""))
}

func TestMergeCommandLineFlags(t *testing.T) {
	cfg := DefaultConfig()

	cfg.MergeCommandLineFlags(map[string]interface{}{
		"output":       "/tmp/flagged",
		"min-delay":    4 * time.Second,
		"max-attempts": 9,
		"posts":        20,
		"log-level":    "warn",
	})

	assert.Equal(t, "/tmp/flagged", cfg.Output.BaseDirectory)
	assert.Equal(t, 4*time.Second, cfg.RateLimit.MinDelay)
	assert.Equal(t, 9, cfg.Retry.MaxAttempts)
	assert.Equal(t, 20, cfg.Report.PostLimit)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	original := DefaultConfig()
	original.Report.PostLimit = 15
	require.NoError(t, original.Save(path))

	loaded := DefaultConfig()
	require.NoError(t, loaded.LoadFromFile(path))
	assert.Equal(t, 15, loaded.Report.PostLimit)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("retry:\n  max_attempts: 5\n"), 0644))

	t.Setenv("INSTAOSINT_MAX_ATTEMPTS", "7")

	// Flags beat environment which beats the file
	cfg, err := Load(path, map[string]interface{}{"max-attempts": 9})
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Retry.MaxAttempts)

	cfg, err = Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Retry.MaxAttempts)
}
