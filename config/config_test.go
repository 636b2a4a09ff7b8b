package config

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/fileops/fs/core"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("FILEOPS_BACKEND", "memory")
	t.Setenv("FILEOPS_FILE_MODE", "0600")
	t.Setenv("FILEOPS_DIR_MODE", "0700")
	t.Setenv("FILEOPS_LOG_LEVEL", "debug")
	t.Setenv("FILEOPS_LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, core.FSTypeMemory, cfg.FSType())
	assert.Equal(t, fs.FileMode(0o600), cfg.FileMode)
	assert.Equal(t, fs.FileMode(0o700), cfg.DirMode)
	assert.True(t, cfg.Logging().Development)
	assert.Equal(t, "debug", cfg.Logging().Level)
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("FILEOPS_BACKEND", "s3")

	_, err := Load()
	require.ErrorContains(t, err, "FILEOPS_BACKEND")
	assert.Equal(t, Default(), LoadOrDefault())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero file mode", func(c *Config) { c.FileMode = 0 }},
		{"file mode with type bits", func(c *Config) { c.FileMode = fs.ModeDir | 0o644 }},
		{"zero dir mode", func(c *Config) { c.DirMode = 0 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "chatty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}

	require.NoError(t, Default().Validate())
}

func TestLogging_Default(t *testing.T) {
	lc := Default().Logging()
	assert.False(t, lc.Development)
	assert.Equal(t, "console", lc.Encoding)
	assert.Equal(t, "info", lc.Level)
}
