package config

import "time"

// Config holds runtime settings for the CivicPay CLI.
//
// Fields:
//   - DatabasePath: path to the local SQLite database file.
//   - GatewayDelay: how long the simulated payment gateway takes to confirm.
//
// Units: GatewayDelay is a time.Duration (e.g., 2*time.Second).
type Config struct {
	DatabasePath string
	GatewayDelay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "civicpay.db"
	c.GatewayDelay = 2 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
