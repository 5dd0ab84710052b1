package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Recovery Roadmap Configuration

[simulation]
# Default starting account balance
starting_balance = 200.0
# Default target account balance
target_balance = 2000.0
# Default risk per trade as percentage of balance
risk_percent = 2.0
# Default risk-to-reward ratio (3.0 means 1:3)
reward_ratio = 3.0

[server]
# HTTP listen address for 'roadmap serve'
addr = ":8000"
# Request timeouts
read_timeout = "10s"
write_timeout = "30s"
shutdown_timeout = "5s"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to console
console = true
# Log to rotating file under the config directory
file = true

[store]
# SQLite database path for saved scenarios
# path = "/home/user/.config/recovery-roadmap/roadmap.db"

[ui]
# Enable colored output
color_enabled = true
`

// createTemplate writes the default config file if it does not exist.
func createTemplate(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, []byte(configTemplate), 0644)
}
