package provisioning

import (
	"context"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/kafka-topology/internal/config"
	"github.com/imamik/kafka-topology/internal/topology"
)

// PhaseTiming records how long a phase ran.
type PhaseTiming struct {
	Name     string        `yaml:"name"`
	Duration time.Duration `yaml:"duration"`
	Failed   bool          `yaml:"failed,omitempty"`
}

// State holds the shared results of bring-up phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	Image string

	// Nodes are the started node handles in topology order. Read-only once
	// the provision phase has completed.
	Nodes []Node

	Phases        []PhaseTiming
	TopicsCreated []string
}

// NewState creates an empty bring-up state.
func NewState() *State {
	return &State{}
}

// Designated returns the node that cluster-wide checks and post-setup run
// against: the first node in topology order.
func (s *State) Designated() Node {
	if len(s.Nodes) == 0 {
		return nil
	}
	return s.Nodes[0]
}

// Context wraps all dependencies and state needed for a bring-up phase.
type Context struct {
	context.Context
	Config   *config.Config
	Topology *topology.Topology
	Timeouts *config.Timeouts
	Fabric   Fabric
	Prober   Prober
	State    *State
	Logger   logr.Logger
	Metrics  *Metrics
	RunID    string
}

// NewContext creates a new bring-up context with fresh state and metrics.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	topo *topology.Topology,
	fabric Fabric,
	prober Prober,
	logger logr.Logger,
) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Topology: topo,
		Timeouts: config.LoadTimeouts().Override(cfg),
		Fabric:   fabric,
		Prober:   prober,
		State:    NewState(),
		Logger:   logger,
		Metrics:  NewMetrics(),
	}
}
