package config

import (
	"testing"
	"time"
)

func clearTimeoutEnvVars(t *testing.T) {
	t.Helper()
	t.Setenv(EnvPrefix+"_TIMEOUT_CHECK_INTERVAL", "")
	t.Setenv(EnvPrefix+"_TIMEOUT_READINESS", "")
	t.Setenv(EnvPrefix+"_TIMEOUT_NODE_START", "")
}

func TestLoadTimeouts_Defaults(t *testing.T) {
	clearTimeoutEnvVars(t)

	timeouts := LoadTimeouts()

	if timeouts.CheckInterval != 3*time.Second {
		t.Errorf("Expected CheckInterval default 3s, got %v", timeouts.CheckInterval)
	}
	if timeouts.ReadinessTimeout != 60*time.Second {
		t.Errorf("Expected ReadinessTimeout default 60s, got %v", timeouts.ReadinessTimeout)
	}
	if timeouts.NodeStart != 2*time.Minute {
		t.Errorf("Expected NodeStart default 2m, got %v", timeouts.NodeStart)
	}
}

func TestLoadTimeouts_EnvVars(t *testing.T) {
	t.Setenv(EnvPrefix+"_TIMEOUT_CHECK_INTERVAL", "1s")
	t.Setenv(EnvPrefix+"_TIMEOUT_READINESS", "90s")
	t.Setenv(EnvPrefix+"_TIMEOUT_NODE_START", "5m")

	timeouts := LoadTimeouts()

	if timeouts.CheckInterval != time.Second {
		t.Errorf("Expected CheckInterval 1s, got %v", timeouts.CheckInterval)
	}
	if timeouts.ReadinessTimeout != 90*time.Second {
		t.Errorf("Expected ReadinessTimeout 90s, got %v", timeouts.ReadinessTimeout)
	}
	if timeouts.NodeStart != 5*time.Minute {
		t.Errorf("Expected NodeStart 5m, got %v", timeouts.NodeStart)
	}
}

func TestLoadTimeouts_InvalidEnvVars(t *testing.T) {
	t.Setenv(EnvPrefix+"_TIMEOUT_CHECK_INTERVAL", "soon")
	t.Setenv(EnvPrefix+"_TIMEOUT_READINESS", "-5s")
	t.Setenv(EnvPrefix+"_TIMEOUT_NODE_START", "")

	timeouts := LoadTimeouts()

	if timeouts.CheckInterval != 3*time.Second {
		t.Errorf("Expected invalid CheckInterval to fall back to 3s, got %v", timeouts.CheckInterval)
	}
	if timeouts.ReadinessTimeout != 60*time.Second {
		t.Errorf("Expected negative ReadinessTimeout to fall back to 60s, got %v", timeouts.ReadinessTimeout)
	}
}

func TestTimeouts_Override(t *testing.T) {
	clearTimeoutEnvVars(t)

	timeouts := LoadTimeouts().Override(&Config{
		CheckInterval:    500 * time.Millisecond,
		ReadinessTimeout: 0,
		StartTimeout:     30 * time.Second,
	})

	if timeouts.CheckInterval != 500*time.Millisecond {
		t.Errorf("Expected CheckInterval override 500ms, got %v", timeouts.CheckInterval)
	}
	if timeouts.ReadinessTimeout != 60*time.Second {
		t.Errorf("Expected unset ReadinessTimeout to keep 60s, got %v", timeouts.ReadinessTimeout)
	}
	if timeouts.NodeStart != 30*time.Second {
		t.Errorf("Expected NodeStart override 30s, got %v", timeouts.NodeStart)
	}
}
