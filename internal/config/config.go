// Package config loads craftchat settings from defaults, an optional YAML file,
// CRAFTCHAT_* environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Responder kinds
const (
	ResponderNone   = "none"
	ResponderGemini = "gemini"
	ResponderRemote = "remote"
)

const envPrefix = "CRAFTCHAT"

// Config is the full application configuration
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Responder ResponderConfig `mapstructure:"responder"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Remote    RemoteConfig    `mapstructure:"remote"`
}

// LogConfig controls the zap logger. An empty File disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ResponderConfig selects what answers user questions
type ResponderConfig struct {
	Kind         string        `mapstructure:"kind"`
	Timeout      time.Duration `mapstructure:"timeout"`
	HistoryTurns int           `mapstructure:"history_turns"`
}

// GeminiConfig holds settings for the genai-backed responder
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// RemoteConfig holds settings for the websocket answer service
type RemoteConfig struct {
	URL string `mapstructure:"url"`
}

// SetDefaults registers every known key so env overrides reach Unmarshal
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("responder.kind", ResponderNone)
	v.SetDefault("responder.timeout", 60*time.Second)
	v.SetDefault("responder.history_turns", 6)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("remote.url", "ws://localhost:8080/ws")
}

// New returns a viper instance with defaults and environment binding applied
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Accept the conventional variable name as well
	_ = v.BindEnv("gemini.api_key", envPrefix+"_GEMINI_API_KEY", "GEMINI_API_KEY")

	return v
}

// Load reads the config file (if any) into v and decodes the result.
// An explicit path must exist; the default path is optional.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if def := DefaultPath(); def != "" {
		if _, err := os.Stat(def); err == nil {
			v.SetConfigFile(def)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", def, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultPath is $HOME/.craftchat.yaml, or "" when there is no home directory
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".craftchat.yaml")
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	c.Responder.Kind = strings.ToLower(strings.TrimSpace(c.Responder.Kind))

	switch c.Responder.Kind {
	case ResponderNone, "":
		c.Responder.Kind = ResponderNone
	case ResponderGemini:
		if c.Gemini.APIKey == "" {
			return errors.New("gemini responder needs gemini.api_key (or GEMINI_API_KEY)")
		}
		if c.Gemini.Model == "" {
			return errors.New("gemini responder needs gemini.model")
		}
	case ResponderRemote:
		if c.Remote.URL == "" {
			return errors.New("remote responder needs remote.url")
		}
	default:
		return fmt.Errorf("unknown responder %q (want none, gemini or remote)", c.Responder.Kind)
	}

	if c.Responder.Timeout <= 0 {
		return fmt.Errorf("responder.timeout must be positive, got %s", c.Responder.Timeout)
	}
	if c.Responder.HistoryTurns < 0 {
		return fmt.Errorf("responder.history_turns must not be negative, got %d", c.Responder.HistoryTurns)
	}
	return nil
}
