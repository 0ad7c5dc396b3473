package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the OSINT tool
type Config struct {
	// HTTP client settings
	HTTP HTTPConfig `yaml:"http" json:"http"`

	// Request pacing configuration
	RateLimit RateLimitConfig `yaml:"rate_limit" json:"rate_limit"`

	// Retry policy for transient HTTP failures
	Retry RetryConfig `yaml:"retry" json:"retry"`

	// Output locations for reports, snapshots and downloads
	Output OutputConfig `yaml:"output" json:"output"`

	// Report generation settings
	Report ReportConfig `yaml:"report" json:"report"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent"`
}

// RateLimitConfig holds request pacing configuration. Every outbound
// request waits until at least MinDelay has elapsed since the previous
// one, plus a random jitter up to MaxJitter.
type RateLimitConfig struct {
	MinDelay  time.Duration `yaml:"min_delay" json:"min_delay"`
	MaxJitter time.Duration `yaml:"max_jitter" json:"max_jitter"`
}

// RetryConfig holds the bounded retry policy. Cooldowns are defaults,
// not constants, so test suites can shrink them.
type RetryConfig struct {
	MaxAttempts         int           `yaml:"max_attempts" json:"max_attempts"`
	RateLimitCooldown   time.Duration `yaml:"rate_limit_cooldown" json:"rate_limit_cooldown"`
	ServerErrorCooldown time.Duration `yaml:"server_error_cooldown" json:"server_error_cooldown"`
}

// OutputConfig holds the output root and its named sub-locations.
// Paths are resolved once at startup and threaded through every
// component; nothing looks them up ambiently.
type OutputConfig struct {
	BaseDirectory string `yaml:"base_directory" json:"base_directory"`
	ReportsDir    string `yaml:"reports_dir" json:"reports_dir"`
	DataDir       string `yaml:"data_dir" json:"data_dir"`
	DownloadsDir  string `yaml:"downloads_dir" json:"downloads_dir"`
}

// ReportsPath returns the absolute reports directory.
func (o *OutputConfig) ReportsPath() string {
	return filepath.Join(o.BaseDirectory, o.ReportsDir)
}

// DataPath returns the absolute data snapshot directory.
func (o *OutputConfig) DataPath() string {
	return filepath.Join(o.BaseDirectory, o.DataDir)
}

// DownloadsPath returns the absolute media download directory.
func (o *OutputConfig) DownloadsPath() string {
	return filepath.Join(o.BaseDirectory, o.DownloadsDir)
}

// ReportConfig holds report and archive generation settings
type ReportConfig struct {
	PostLimit        int `yaml:"post_limit" json:"post_limit"`
	ArchivePostLimit int `yaml:"archive_post_limit" json:"archive_post_limit"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		},
		RateLimit: RateLimitConfig{
			MinDelay:  2 * time.Second,
			MaxJitter: 500 * time.Millisecond,
		},
		Retry: RetryConfig{
			MaxAttempts:         3,
			RateLimitCooldown:   60 * time.Second,
			ServerErrorCooldown: 10 * time.Second,
		},
		Output: OutputConfig{
			BaseDirectory: ".",
			ReportsDir:    "reports",
			DataDir:       "data",
			DownloadsDir:  "downloads",
		},
		Report: ReportConfig{
			PostLimit:        6,
			ArchivePostLimit: 8,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if userAgent := os.Getenv("INSTAOSINT_USER_AGENT"); userAgent != "" {
		c.HTTP.UserAgent = userAgent
	}
	if timeout := os.Getenv("INSTAOSINT_HTTP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			c.HTTP.Timeout = d
		}
	}
	if delay := os.Getenv("INSTAOSINT_MIN_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil && d > 0 {
			c.RateLimit.MinDelay = d
		}
	}
	if attempts := os.Getenv("INSTAOSINT_MAX_ATTEMPTS"); attempts != "" {
		var val int
		fmt.Sscanf(attempts, "%d", &val)
		if val > 0 {
			c.Retry.MaxAttempts = val
		}
	}
	if outputDir := os.Getenv("INSTAOSINT_OUTPUT_DIR"); outputDir != "" {
		c.Output.BaseDirectory = outputDir
	}
	if logLevel := os.Getenv("INSTAOSINT_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	locations := []string{
		".instaosint.yaml",
		".instaosint.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "instaosint", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "instaosint", "config.yml"),
		filepath.Join(os.Getenv("HOME"), ".instaosint.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.HTTP.Timeout <= 0 {
		errs = append(errs, errors.New("HTTP timeout must be positive"))
	}
	if c.RateLimit.MinDelay < 0 {
		errs = append(errs, errors.New("minimum request delay cannot be negative"))
	}
	if c.RateLimit.MaxJitter < 0 {
		errs = append(errs, errors.New("request jitter cannot be negative"))
	}
	if c.Retry.MaxAttempts <= 0 {
		errs = append(errs, errors.New("max retry attempts must be positive"))
	}
	if c.Output.BaseDirectory == "" {
		errs = append(errs, errors.New("output directory is required"))
	}
	if c.Output.ReportsDir == "" || c.Output.DataDir == "" || c.Output.DownloadsDir == "" {
		errs = append(errs, errors.New("reports, data and downloads sub-directories are required"))
	}
	if c.Report.PostLimit < 0 || c.Report.ArchivePostLimit < 0 {
		errs = append(errs, errors.New("post limits cannot be negative"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if outputDir, ok := flags["output"].(string); ok && outputDir != "" {
		c.Output.BaseDirectory = outputDir
	}
	if minDelay, ok := flags["min-delay"].(time.Duration); ok && minDelay > 0 {
		c.RateLimit.MinDelay = minDelay
	}
	if maxAttempts, ok := flags["max-attempts"].(int); ok && maxAttempts > 0 {
		c.Retry.MaxAttempts = maxAttempts
	}
	if postLimit, ok := flags["posts"].(int); ok && postLimit > 0 {
		c.Report.PostLimit = postLimit
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".instaosint.env"))

	// Start with defaults
	config := DefaultConfig()

	// Load from config file
	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Override with environment variables (includes values from .env)
	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Override with command line flags
	config.MergeCommandLineFlags(flags)

	// Validate final configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
