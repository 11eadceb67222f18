package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.ServerEndpointAddr)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "riskadvisor.db", c.DatabasePath)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"riskadvisor"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8000", cfg.ServerEndpointAddr)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_OverlaysValues(t *testing.T) {
	t.Setenv("RISKADVISOR_API_URL", "https://api.example.com")
	t.Setenv("RISKADVISOR_TIMEOUT", "10")
	t.Setenv("RISKADVISOR_DB_PATH", "/tmp/session.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://api.example.com", cfg.ServerEndpointAddr)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/session.db", cfg.DatabasePath)
}

func TestParseEnv_IgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("RISKADVISOR_TIMEOUT", "abc")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
