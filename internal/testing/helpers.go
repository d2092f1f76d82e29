package testing

import (
	"context"
	"testing"
	"time"

	"github.com/go-logr/logr/testr"

	"github.com/imamik/kafka-topology/internal/config"
	"github.com/imamik/kafka-topology/internal/provisioning"
	"github.com/imamik/kafka-topology/internal/topology"
)

// Short readiness timings so failing waits finish quickly in tests.
const (
	TestCheckInterval    = 5 * time.Millisecond
	TestReadinessTimeout = 100 * time.Millisecond
)

// TestContext returns a context with a reasonable timeout for tests.
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// TestConfig returns the default configuration with test timings.
func TestConfig(brokers ...string) *config.Config {
	cfg := config.Defaults()
	if len(brokers) > 0 {
		cfg.Brokers = brokers
	}
	cfg.CheckInterval = TestCheckInterval
	cfg.ReadinessTimeout = TestReadinessTimeout
	cfg.StartTimeout = time.Second
	return &cfg
}

// NewProvisioningContext builds a bring-up context for cfg that logs to t.
func NewProvisioningContext(t *testing.T, cfg *config.Config, fabric provisioning.Fabric, prober provisioning.Prober) *provisioning.Context {
	t.Helper()
	topo, err := topology.Build(cfg)
	if err != nil {
		t.Fatalf("invalid test topology: %v", err)
	}
	pCtx := provisioning.NewContext(TestContext(t), cfg, topo, fabric, prober, testr.New(t))
	pCtx.Timeouts = &config.Timeouts{
		CheckInterval:    cfg.CheckInterval,
		ReadinessTimeout: cfg.ReadinessTimeout,
		NodeStart:        cfg.StartTimeout,
	}
	pCtx.RunID = "test-run"
	return pCtx
}

// WithNodes creates FakeNodes for every topology host and stores them in the
// context state, as the provision phase would.
func WithNodes(pCtx *provisioning.Context, rec *Recorder) []*FakeNode {
	fakes := make([]*FakeNode, 0, pCtx.Topology.Size())
	pCtx.State.Nodes = nil
	for _, host := range pCtx.Topology.Hostnames() {
		n := NewFakeNode(host, rec)
		fakes = append(fakes, n)
		pCtx.State.Nodes = append(pCtx.State.Nodes, n)
	}
	return fakes
}
