package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FirstRunCreatesTemplate(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	// Template written for the user to edit
	_, err = os.Stat(filepath.Join(dir, "config.toml"))
	assert.NoError(t, err)

	// Built-in defaults apply
	assert.Equal(t, 200.0, cfg.Simulation.StartingBalance)
	assert.Equal(t, 2000.0, cfg.Simulation.TargetBalance)
	assert.Equal(t, 2.0, cfg.Simulation.RiskPercent)
	assert.Equal(t, 3.0, cfg.Simulation.RewardRatio)
	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Store.Path)
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[simulation]
starting_balance = 500.0
target_balance = 10000.0

[server]
addr = ":9100"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 500.0, cfg.Simulation.StartingBalance)
	assert.Equal(t, 10000.0, cfg.Simulation.TargetBalance)
	// Unset keys keep defaults
	assert.Equal(t, 2.0, cfg.Simulation.RiskPercent)
	assert.Equal(t, ":9100", cfg.Server.Addr)
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	content := `
[simulation]
risk_percent = 500.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "risk_percent")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero starting balance", func(c *Config) { c.Simulation.StartingBalance = 0 }},
		{"target below start", func(c *Config) { c.Simulation.TargetBalance = 100 }},
		{"risk too high", func(c *Config) { c.Simulation.RiskPercent = 101 }},
		{"negative reward", func(c *Config) { c.Simulation.RewardRatio = -1 }},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ROADMAP_ADDR", ":7777")
	t.Setenv("ROADMAP_STARTING_BALANCE", "1000")
	t.Setenv("ROADMAP_TARGET_BALANCE", "9000")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Server.Addr)
	assert.Equal(t, 1000.0, cfg.Simulation.StartingBalance)
	assert.Equal(t, 9000.0, cfg.Simulation.TargetBalance)
}
