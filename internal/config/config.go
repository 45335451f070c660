// Package config loads textdiff settings from defaults, a YAML file,
// TEXTDIFF_* environment variables and bound command-line flags.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of environment overrides, e.g. TEXTDIFF_DIFF_CONTEXT_SIZE.
	EnvPrefix = "TEXTDIFF"
	// DefaultConfigFileName is the config file name without extension.
	DefaultConfigFileName = "textdiff"

	BackendTextarea = "textarea"
	BackendNvim     = "nvim"
)

type Config struct {
	Diff    DiffConfig    `mapstructure:"diff"`
	Limits  LimitsConfig  `mapstructure:"limits"`
	Editor  EditorConfig  `mapstructure:"editor"`
	Input   InputConfig   `mapstructure:"input"`
	Session SessionConfig `mapstructure:"session"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type DiffConfig struct {
	// ContextSize is the number of unchanged lines shown around a change (default: 3)
	ContextSize int `mapstructure:"context_size"`
}

type LimitsConfig struct {
	// MaxLines caps each text before comparison (default: 9999)
	MaxLines int `mapstructure:"max_lines"`
}

type EditorConfig struct {
	// Backend is the pane editor: "textarea" or "nvim" (default: textarea)
	Backend string `mapstructure:"backend"`
}

type InputConfig struct {
	// StripCR turns CRLF into LF before comparison (default: false)
	StripCR bool `mapstructure:"strip_cr"`
	// WatchDebounceMs is the reload delay for --watch (default: 200)
	WatchDebounceMs int `mapstructure:"watch_debounce_ms"`
}

type SessionConfig struct {
	// Restore saves pane drafts on exit and restores them on start (default: true)
	Restore bool `mapstructure:"restore"`
	// Dir holds session.json and logs (default: ~/.textdiff)
	Dir string `mapstructure:"dir"`
}

type LoggingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Level   string `mapstructure:"level"`
	// File defaults to <session.dir>/logs/textdiff.log
	File string `mapstructure:"file"`
}

// Load reads configuration into a Config. An empty cfgFile searches
// searchDir and the working directory for textdiff.yaml.
func Load(v *viper.Viper, cfgFile, searchDir string) (*Config, error) {
	SetDefaults(v, searchDir)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if searchDir != "" {
			v.AddConfigPath(searchDir)
		}
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Logging.File == "" && cfg.Session.Dir != "" {
		cfg.Logging.File = filepath.Join(cfg.Session.Dir, "logs", "textdiff.log")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper, sessionDir string) {
	v.SetDefault("diff.context_size", 3)
	v.SetDefault("limits.max_lines", 9999)
	v.SetDefault("editor.backend", BackendTextarea)
	v.SetDefault("input.strip_cr", false)
	v.SetDefault("input.watch_debounce_ms", 200)
	v.SetDefault("session.restore", true)
	v.SetDefault("session.dir", sessionDir)
	v.SetDefault("logging.enabled", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
}

// Validate rejects settings the tool cannot run with.
func (c *Config) Validate() error {
	if c.Diff.ContextSize < 0 {
		return fmt.Errorf("diff.context_size must be >= 0, got %d", c.Diff.ContextSize)
	}
	if c.Limits.MaxLines <= 0 {
		return fmt.Errorf("limits.max_lines must be > 0, got %d", c.Limits.MaxLines)
	}
	switch c.Editor.Backend {
	case BackendTextarea, BackendNvim:
	default:
		return fmt.Errorf("editor.backend must be %q or %q, got %q", BackendTextarea, BackendNvim, c.Editor.Backend)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
