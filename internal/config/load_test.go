package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(ConfigFileKey, "", "")
	flags.StringSlice("brokers", []string{"node-1.cluster", "node-2.cluster", "node-3.cluster"}, "")
	flags.IntSlice("cluster-ports", nil, "")
	flags.String("topics", "", "")
	flags.Bool("verbose", false, "")
	flags.Duration("check-interval", 0, "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	v, err := NewViper(testFlags())
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "kafka", cfg.ClusterName)
	assert.Equal(t, []string{"node-1.cluster", "node-2.cluster", "node-3.cluster"}, cfg.Brokers)
	assert.Equal(t, DefaultNamespace, cfg.Namespace)
	assert.Equal(t, "cluster", cfg.Network)
	assert.Equal(t, LogFormatAuto, cfg.LogFormat)
	assert.False(t, cfg.Verbose)
}

func TestLoad_FlagsOverrideDefaults(t *testing.T) {
	flags := testFlags()
	require.NoError(t, flags.Parse([]string{
		"--brokers", "kafka-a,kafka-b",
		"--cluster-ports", "19092,19093",
		"--topics", "orders,payments",
		"--verbose",
		"--check-interval", "1s",
	}))

	v, err := NewViper(flags)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"kafka-a", "kafka-b"}, cfg.Brokers)
	assert.Equal(t, []int{19092, 19093}, cfg.ClusterPorts)
	assert.Equal(t, []string{"orders", "payments"}, cfg.TopicNames())
	assert.True(t, cfg.Verbose)
	assert.Equal(t, time.Second, cfg.CheckInterval)
}

func TestLoad_EnvOverridesFlagDefaults(t *testing.T) {
	t.Setenv("KAFKA_TOPOLOGY_TOPICS", "from-env")

	v, err := NewViper(testFlags())
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Topics)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topology.yaml")
	content := `cluster-name: events
brokers:
  - kafka-1
  - kafka-2
namespace: acme
kafka-version: 3.7.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--config", path}))

	v, err := NewViper(flags)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "events", cfg.ClusterName)
	assert.Equal(t, []string{"kafka-1", "kafka-2"}, cfg.Brokers)
	assert.Equal(t, "docker.io/acme/topology_apache_kafka:kafka-3.7.0-2.13", cfg.Image())
}

func TestLoad_MissingConfigFile(t *testing.T) {
	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--config", "/nonexistent/topology.yaml"}))

	v, err := NewViper(flags)
	require.NoError(t, err)

	_, err = Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Setenv("KAFKA_TOPOLOGY_LOG_FORMAT", "xml")

	flags := testFlags()
	flags.String("log-format", "", "")

	v, err := NewViper(flags)
	require.NoError(t, err)

	_, err = Load(v)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestApplyDefaults_KeepsSetFields(t *testing.T) {
	t.Parallel()

	cfg := &Config{Registry: "registry.local:5000"}
	require.NoError(t, ApplyDefaults(cfg))

	assert.Equal(t, "registry.local:5000", cfg.Registry)
	assert.Equal(t, DefaultNamespace, cfg.Namespace)
	assert.Len(t, cfg.Brokers, 3)
}
