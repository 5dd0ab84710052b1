// Package config provides configuration management for the roadmap application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Store      StoreConfig      `mapstructure:"store"`
	UI         UIConfig         `mapstructure:"ui"`
}

// SimulationConfig holds the default simulation parameters. Command-line
// flags and request bodies override these per invocation.
type SimulationConfig struct {
	StartingBalance float64 `mapstructure:"starting_balance"`
	TargetBalance   float64 `mapstructure:"target_balance"`
	RiskPercent     float64 `mapstructure:"risk_percent"`
	RewardRatio     float64 `mapstructure:"reward_ratio"`
}

// ServerConfig holds HTTP adapter configuration.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// StoreConfig holds scenario store configuration.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/recovery-roadmap"
	}
	return filepath.Join(home, ".config", "recovery-roadmap")
}

// Default returns the built-in configuration, used when no config file exists.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			StartingBalance: 200.0,
			TargetBalance:   2000.0,
			RiskPercent:     2.0,
			RewardRatio:     3.0,
		},
		Server: ServerConfig{
			Addr:            ":8000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
			File:    true,
		},
		Store: StoreConfig{
			Path: filepath.Join(DefaultConfigDir(), "roadmap.db"),
		},
		UI: UIConfig{
			ColorEnabled: true,
		},
	}
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()
	cfg.Store.Path = filepath.Join(configDir, "roadmap.db")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		// First run: write a template so the user has something to edit.
		if err := createTemplate(configDir); err != nil {
			return nil, fmt.Errorf("creating config template: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if cfg.Store.Path == "" {
		cfg.Store.Path = filepath.Join(configDir, "roadmap.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("simulation.starting_balance", cfg.Simulation.StartingBalance)
	v.SetDefault("simulation.target_balance", cfg.Simulation.TargetBalance)
	v.SetDefault("simulation.risk_percent", cfg.Simulation.RiskPercent)
	v.SetDefault("simulation.reward_ratio", cfg.Simulation.RewardRatio)
	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("server.read_timeout", cfg.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", cfg.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", cfg.Server.ShutdownTimeout)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.console", cfg.Logging.Console)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("ui.color_enabled", cfg.UI.ColorEnabled)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ROADMAP_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("ROADMAP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ROADMAP_DB_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("ROADMAP_STARTING_BALANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Simulation.StartingBalance = f
		}
	}
	if v := os.Getenv("ROADMAP_TARGET_BALANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Simulation.TargetBalance = f
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Simulation.StartingBalance <= 0 {
		return fmt.Errorf("simulation.starting_balance must be positive")
	}
	if c.Simulation.TargetBalance <= c.Simulation.StartingBalance {
		return fmt.Errorf("simulation.target_balance must exceed starting_balance")
	}
	if c.Simulation.RiskPercent <= 0 || c.Simulation.RiskPercent > 100 {
		return fmt.Errorf("simulation.risk_percent must be in (0, 100]")
	}
	if c.Simulation.RewardRatio <= 0 {
		return fmt.Errorf("simulation.reward_ratio must be positive")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}

	return nil
}
