// Package config loads fileops settings from the environment.
package config

import (
	"fmt"
	"io/fs"

	"github.com/kelseyhightower/envconfig"

	"github.com/jmgilman/fileops/fs/core"
	"github.com/jmgilman/fileops/internal/logging"
)

// Prefix is prepended to every environment variable name.
const Prefix = "FILEOPS"

// Config holds fileops configuration.
type Config struct {
	// Backend selects the filesystem: "local" or "memory".
	Backend string `envconfig:"BACKEND" default:"local"`

	// FileMode is applied to files created by CreateFile.
	FileMode fs.FileMode `envconfig:"FILE_MODE" default:"0644"`

	// DirMode is applied to directories created on demand.
	DirMode fs.FileMode `envconfig:"DIR_MODE" default:"0755"`

	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from FILEOPS_* environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Backend:  core.FSTypeLocal.String(),
		FileMode: 0o644,
		DirMode:  0o755,
		LogLevel: "info",
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := core.ParseFSType(c.Backend); err != nil {
		return fmt.Errorf("invalid %s_BACKEND: %w", Prefix, err)
	}
	if c.FileMode == 0 || c.FileMode&^fs.ModePerm != 0 {
		return fmt.Errorf("invalid %s_FILE_MODE %#o: want permission bits only", Prefix, uint32(c.FileMode))
	}
	if c.DirMode == 0 || c.DirMode&^fs.ModePerm != 0 {
		return fmt.Errorf("invalid %s_DIR_MODE %#o: want permission bits only", Prefix, uint32(c.DirMode))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s_LOG_LEVEL: %w", Prefix, err)
	}
	return nil
}

// FSType returns the configured backend type.
func (c *Config) FSType() core.FSType {
	t, _ := core.ParseFSType(c.Backend)
	return t
}

// Logging returns the logger configuration described by c.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.LogLevel
	if c.LogDevelopment {
		cfg = logging.DevelopmentConfig()
		if c.LogLevel != "" {
			cfg.Level = c.LogLevel
		}
	}
	return cfg
}
