package provisioning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/imamik/kafka-topology/internal/topology"
)

// Report summarizes one bring-up for humans and scripts.
type Report struct {
	RunID     string                    `yaml:"run_id"`
	Cluster   string                    `yaml:"cluster"`
	Image     string                    `yaml:"image"`
	Network   string                    `yaml:"network"`
	Succeeded bool                      `yaml:"succeeded"`
	Error     string                    `yaml:"error,omitempty"`
	Nodes     []topology.NodeDescriptor `yaml:"nodes"`
	Phases    []PhaseTiming             `yaml:"phases"`
	Topics    []string                  `yaml:"topics,omitempty"`
}

// BuildReport captures the outcome of a run. runErr is the error returned by
// RunPhases, if any.
func BuildReport(ctx *Context, runErr error) *Report {
	r := &Report{
		RunID:     ctx.RunID,
		Cluster:   ctx.Config.ClusterName,
		Image:     ctx.Config.Image(),
		Network:   ctx.Config.Network,
		Succeeded: runErr == nil,
		Phases:    ctx.State.Phases,
		Topics:    ctx.State.TopicsCreated,
	}
	if ctx.Topology != nil {
		r.Nodes = ctx.Topology.Nodes
	}
	if runErr != nil {
		r.Error = runErr.Error()
	}
	return r
}

// Marshal renders the report as YAML.
func (r *Report) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

// WriteFile writes the report as YAML to path.
func (r *Report) WriteFile(path string) error {
	data, err := r.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
