package provisioning

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics()

	m.ObservePhase("broker", 2*time.Second, nil)
	m.ObservePhase("topics", time.Second, errors.New("failed"))
	m.ObserveAttempt(CheckCoordination, "node-1.cluster")
	m.ObserveAttempt(CheckCoordination, "node-1.cluster")
	m.SetNodesStarted(3)
	m.ObserveTopic(nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.phaseDuration.WithLabelValues("broker")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.phaseResult.WithLabelValues("topics", "failure")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.readinessAttempts.WithLabelValues(CheckCoordination, "node-1.cluster")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.nodesStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.topicsCreated.WithLabelValues("success")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObservePhase("x", time.Second, nil)
		m.ObserveAttempt("x", "y")
		m.ObserveWait("x", time.Second, nil)
		m.SetNodesStarted(1)
		m.ObserveTopic(nil)
	})
	assert.NoError(t, m.WriteToFile(filepath.Join(t.TempDir(), "unused.prom")))
}

func TestMetrics_WriteToFile(t *testing.T) {
	m := NewMetrics()
	m.SetNodesStarted(3)
	path := filepath.Join(t.TempDir(), "run.prom")

	require.NoError(t, m.WriteToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kafka_topology_cluster_nodes_started 3")
}
