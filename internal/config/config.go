// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type AdminConfig struct {
	// Secret signs the admin JWT; empty disables the admin endpoints.
	Secret   string `yaml:"secret"`
	Password string `yaml:"password"`
}

type RedisConfig struct {
	URL      string `yaml:"url"` // empty disables redis, settings stay in memory
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type BotConfig struct {
	Token   string `yaml:"token"` // empty disables the telegram frontend
	Workers int    `yaml:"workers"`
}

type WidgetConfig struct {
	DebounceMs        int     `yaml:"debounce_ms"`
	GamePromptDelayMs int     `yaml:"game_prompt_delay_ms"`
	HintDelayMs       int     `yaml:"hint_delay_ms"`
	IdleIntervalSec   int     `yaml:"idle_interval_sec"`
	IdleChance        float64 `yaml:"idle_chance"`
	SessionTTLMin     int     `yaml:"session_ttl_min"`
	Seed              int64   `yaml:"seed"` // non-zero pins the random stream (dev/test only)
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Admin  AdminConfig  `yaml:"admin"`
	Redis  RedisConfig  `yaml:"redis"`
	Bot    BotConfig    `yaml:"bot"`
	Widget WidgetConfig `yaml:"widget"`

	Runtime RuntimeConfig `yaml:"-"`
}

// LoadConfig reads the YAML config at path. A missing file is not an error:
// the widget runs on defaults out of the box.
func LoadConfig(path string, dev bool) (*Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	// defaults
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Bot.Workers <= 0 {
		cfg.Bot.Workers = 4
	}
	if cfg.Widget.DebounceMs <= 0 {
		cfg.Widget.DebounceMs = 250
	}
	if cfg.Widget.GamePromptDelayMs <= 0 {
		cfg.Widget.GamePromptDelayMs = 600
	}
	if cfg.Widget.HintDelayMs <= 0 {
		cfg.Widget.HintDelayMs = 1200
	}
	if cfg.Widget.IdleIntervalSec <= 0 {
		cfg.Widget.IdleIntervalSec = 30
	}
	if cfg.Widget.IdleChance <= 0 || cfg.Widget.IdleChance >= 1 {
		cfg.Widget.IdleChance = 0.15
	}
	if cfg.Widget.SessionTTLMin <= 0 {
		cfg.Widget.SessionTTLMin = 30
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}

func (w WidgetConfig) Debounce() time.Duration        { return time.Duration(w.DebounceMs) * time.Millisecond }
func (w WidgetConfig) GamePromptDelay() time.Duration { return time.Duration(w.GamePromptDelayMs) * time.Millisecond }
func (w WidgetConfig) HintDelay() time.Duration       { return time.Duration(w.HintDelayMs) * time.Millisecond }
func (w WidgetConfig) IdleInterval() time.Duration    { return time.Duration(w.IdleIntervalSec) * time.Second }
func (w WidgetConfig) SessionTTL() time.Duration      { return time.Duration(w.SessionTTLMin) * time.Minute }
