package coordination

import (
	"context"

	"github.com/imamik/kafka-topology/internal/provisioning"
	"github.com/imamik/kafka-topology/internal/util/async"
)

// Validator waits until ZooKeeper answers on every node.
type Validator struct{}

// NewValidator creates a new coordination validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Name implements the provisioning.Phase interface.
func (v *Validator) Name() string {
	return validatePhase
}

// Provision implements the provisioning.Phase interface.
// Nodes are checked in topology order unless parallel validation is
// enabled; either way every node must be ready before the phase succeeds.
func (v *Validator) Provision(ctx *provisioning.Context) error {
	if ctx.Config.ParallelValidation {
		return v.validateParallel(ctx)
	}
	for _, node := range ctx.State.Nodes {
		if err := v.waitNode(ctx, node); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateParallel(ctx *provisioning.Context) error {
	tasks := make([]async.Task, 0, len(ctx.State.Nodes))
	for _, node := range ctx.State.Nodes {
		tasks = append(tasks, async.Task{
			Name: node.Hostname(),
			Func: func(context.Context) error {
				return v.waitNode(ctx, node)
			},
		})
	}
	return async.RunParallel(ctx, tasks)
}

func (v *Validator) waitNode(ctx *provisioning.Context, node provisioning.Node) error {
	ctx.Logger.Info("Waiting for ZooKeeper", "node", node.Hostname())
	return ctx.WaitFor(provisioning.CheckCoordination, node, func(c context.Context) bool {
		return ctx.Prober.CoordinationReady(c, node)
	})
}
