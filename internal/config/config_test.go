package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfig, EnvDB, EnvLogLevel, EnvLogFile} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 100*time.Millisecond, cfg.Game.RefreshInterval)
	assert.Len(t, cfg.Reward.DefaultVideos, 3)
	assert.False(t, cfg.Reward.PersistTimerPool)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", `
db_path: /tmp/mt.db
log:
  level: debug
reward:
  persist_timer_pool: true
  default_videos: [Bluey, Peppa]
game:
  refresh_interval: 250ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/mt.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Reward.PersistTimerPool)
	assert.Equal(t, []string{"Bluey", "Peppa"}, cfg.Reward.DefaultVideos)
	assert.Equal(t, 250*time.Millisecond, cfg.Game.RefreshInterval)
	assert.Equal(t, Default().Reward.SearchURL, cfg.Reward.SearchURL, "unset keys keep defaults")
}

func TestLoad_ExpandsEnvInFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("MT_TEST_DIR", "/var/mt")
	path := writeFile(t, "config.yaml", "db_path: ${MT_TEST_DIR}/data.db\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/mt/data.db", cfg.DBPath)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", "db_path: /from/file.db\nlog:\n  level: warn\n")
	t.Setenv(EnvDB, "/from/env.db")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFile, "/tmp/mt.log")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/from/env.db", cfg.DBPath)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "/tmp/mt.log", cfg.Log.File)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", "log: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoad_RejectsInvalid(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", "log:\n  level: loud\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"uppercase level", func(c *Config) { c.Log.Level = "DEBUG" }, true},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, false},
		{"zero interval", func(c *Config) { c.Game.RefreshInterval = 0 }, false},
		{"four videos", func(c *Config) { c.Reward.DefaultVideos = []string{"a", "b", "c", "d"} }, false},
		{"no videos", func(c *Config) { c.Reward.DefaultVideos = nil }, true},
		{"empty search url", func(c *Config) { c.Reward.SearchURL = "" }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfig, "/explicit/config.yaml")
	assert.Equal(t, "/explicit/config.yaml", DefaultPath())

	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "mathtime", "config.yaml"), DefaultPath())
}

func TestLoadDotEnv(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	t.Setenv("MT_DOTENV_PROBE", "")
	require.NoError(t, os.Unsetenv("MT_DOTENV_PROBE"))
	path := writeFile(t, ".env", "MT_DOTENV_PROBE=hello\n")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "hello", os.Getenv("MT_DOTENV_PROBE"))
}
