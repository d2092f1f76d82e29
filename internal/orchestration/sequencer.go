package orchestration

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/imamik/kafka-topology/internal/config"
	"github.com/imamik/kafka-topology/internal/provisioning"
	"github.com/imamik/kafka-topology/internal/provisioning/broker"
	"github.com/imamik/kafka-topology/internal/provisioning/cluster"
	"github.com/imamik/kafka-topology/internal/provisioning/coordination"
	"github.com/imamik/kafka-topology/internal/provisioning/topics"
	"github.com/imamik/kafka-topology/internal/readiness"
	"github.com/imamik/kafka-topology/internal/topology"
)

// Sequencer runs one cluster bring-up.
type Sequencer struct {
	config   *config.Config
	topology *topology.Topology
	fabric   provisioning.Fabric
	prober   provisioning.Prober
	logger   logr.Logger
	runID    string
	phases   []provisioning.Phase
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithRunID tags logs, container labels and the report with id.
func WithRunID(id string) Option {
	return func(s *Sequencer) {
		s.runID = id
	}
}

// Outcome is what a run leaves behind, whether it succeeded or not.
type Outcome struct {
	State   *provisioning.State
	Report  *provisioning.Report
	Metrics *provisioning.Metrics
}

// New creates a sequencer for cfg. The topology is derived here, so an
// invalid node layout is reported before the fabric is touched. A nil
// prober selects the shell-based readiness prober.
func New(
	cfg *config.Config,
	fabric provisioning.Fabric,
	prober provisioning.Prober,
	logger logr.Logger,
	opts ...Option,
) (*Sequencer, error) {
	topo, err := topology.Build(cfg)
	if err != nil {
		return nil, err
	}

	if prober == nil {
		prober = readiness.NewProber(logger, cfg.Quiet())
	}

	s := &Sequencer{
		config:   cfg,
		topology: topo,
		fabric:   fabric,
		prober:   prober,
		logger:   logger,
		phases: []provisioning.Phase{
			cluster.NewProvisioner(),
			coordination.NewProvisioner(),
			coordination.NewValidator(),
			broker.NewProvisioner(),
			broker.NewValidator(),
			topics.NewProvisioner(),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Topology returns the node layout of this bring-up.
func (s *Sequencer) Topology() *topology.Topology {
	return s.topology
}

// Phases returns the phases in execution order.
func (s *Sequencer) Phases() []provisioning.Phase {
	return s.phases
}

// Run executes all phases. The outcome is returned even when a phase fails
// so callers can still emit the report and metrics.
func (s *Sequencer) Run(ctx context.Context) (*Outcome, error) {
	logger := s.logger.WithValues("cluster", s.config.ClusterName)
	if s.runID != "" {
		logger = logger.WithValues("run", s.runID)
	}

	pCtx := provisioning.NewContext(ctx, s.config, s.topology, s.fabric, s.prober, logger)
	pCtx.RunID = s.runID

	err := provisioning.RunPhases(pCtx, s.phases)

	return &Outcome{
		State:   pCtx.State,
		Report:  provisioning.BuildReport(pCtx, err),
		Metrics: pCtx.Metrics,
	}, err
}
