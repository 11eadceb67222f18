package config

import "time"

// Config holds runtime settings for the riskadvisor client.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend API, e.g. "http://localhost:8000".
//   - RequestTimeout: default bound applied to every API request.
//   - DatabasePath: SQLite file holding persisted session state.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	DatabasePath       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8000"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "riskadvisor.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), JSON (if
// present), and command-line flags. Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
