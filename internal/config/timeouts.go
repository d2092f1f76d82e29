package config

import (
	"os"
	"time"
)

// Timeouts holds the timing knobs of a bring-up.
// These values can be customized via environment variables.
type Timeouts struct {
	CheckInterval    time.Duration // Delay between readiness checks
	ReadinessTimeout time.Duration // Bound on a single readiness wait
	NodeStart        time.Duration // Bound on waiting for the fabric to report nodes running
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - KAFKA_TOPOLOGY_TIMEOUT_CHECK_INTERVAL (default: 3s)
//   - KAFKA_TOPOLOGY_TIMEOUT_READINESS (default: 60s)
//   - KAFKA_TOPOLOGY_TIMEOUT_NODE_START (default: 2m)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		CheckInterval:    parseDuration(EnvPrefix+"_TIMEOUT_CHECK_INTERVAL", 3*time.Second),
		ReadinessTimeout: parseDuration(EnvPrefix+"_TIMEOUT_READINESS", 60*time.Second),
		NodeStart:        parseDuration(EnvPrefix+"_TIMEOUT_NODE_START", 2*time.Minute),
	}
}

// Override replaces values with the ones explicitly set in cfg.
func (t *Timeouts) Override(cfg *Config) *Timeouts {
	if cfg.CheckInterval > 0 {
		t.CheckInterval = cfg.CheckInterval
	}
	if cfg.ReadinessTimeout > 0 {
		t.ReadinessTimeout = cfg.ReadinessTimeout
	}
	if cfg.StartTimeout > 0 {
		t.NodeStart = cfg.StartTimeout
	}
	return t
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}

	return d
}
