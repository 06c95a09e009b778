// Package config loads mathtime's YAML configuration, applying .env and
// environment overrides on top of built-in defaults.
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

// Environment variables recognised by Load.
const (
	EnvConfig   = "MATHTIME_CONFIG"
	EnvDB       = "MATHTIME_DB"
	EnvLogLevel = "MATHTIME_LOG_LEVEL"
	EnvLogFile  = "MATHTIME_LOG_FILE"
)

// MaxDefaultVideos is the number of video choice slots on the settings page.
const MaxDefaultVideos = 3

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config is the top-level configuration file.
type Config struct {
	// DBPath overrides the SQLite location. Empty means the XDG default.
	DBPath string       `yaml:"db_path"`
	Log    LogConfig    `yaml:"log"`
	Reward RewardConfig `yaml:"reward"`
	Game   GameConfig   `yaml:"game"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// RewardConfig controls the post-game reward.
type RewardConfig struct {
	SearchURL        string   `yaml:"search_url"`
	PersistTimerPool bool     `yaml:"persist_timer_pool"`
	DefaultVideos    []string `yaml:"default_videos"`
}

// GameConfig holds gameplay tunables.
type GameConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Reward: RewardConfig{
			SearchURL:     "https://www.youtube.com/results?search_query=",
			DefaultVideos: []string{"Pororo", "Numberblocks", "Super Simple Songs"},
		},
		Game: GameConfig{RefreshInterval: 100 * time.Millisecond},
	}
}

// DefaultPath returns the config file location: $MATHTIME_CONFIG, then
// $XDG_CONFIG_HOME/mathtime/config.yaml, then ~/.config/mathtime/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".", "config.yaml")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "mathtime", "config.yaml")
}

// Load reads the config at path (DefaultPath when empty). A missing file
// yields the defaults. ${VAR} references in the file are expanded and the
// MATHTIME_* environment variables are applied last.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDB); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q must be one of debug, info, warn, error", ErrInvalid, c.Log.Level)
	}
	if c.Game.RefreshInterval <= 0 {
		return fmt.Errorf("%w: game.refresh_interval must be positive, got %s", ErrInvalid, c.Game.RefreshInterval)
	}
	if len(c.Reward.DefaultVideos) > MaxDefaultVideos {
		return fmt.Errorf("%w: reward.default_videos has %d entries, at most %d allowed",
			ErrInvalid, len(c.Reward.DefaultVideos), MaxDefaultVideos)
	}
	if c.Reward.SearchURL == "" {
		return fmt.Errorf("%w: reward.search_url is required", ErrInvalid)
	}
	return nil
}

// LoadDotEnv loads environment variables from path. Missing files are ignored.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
