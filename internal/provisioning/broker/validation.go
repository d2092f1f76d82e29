package broker

import (
	"context"
	"errors"

	"github.com/imamik/kafka-topology/internal/provisioning"
)

// Validator waits until every broker is registered, as seen from the
// designated node.
type Validator struct{}

// NewValidator creates a new broker validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Name implements the provisioning.Phase interface.
func (v *Validator) Name() string {
	return validatePhase
}

// Provision implements the provisioning.Phase interface.
func (v *Validator) Provision(ctx *provisioning.Context) error {
	node := ctx.State.Designated()
	if node == nil {
		return errors.New("no nodes to validate brokers on")
	}
	expected := len(ctx.State.Nodes)

	ctx.Logger.Info("Waiting for brokers to register", "node", node.Hostname(), "expected", expected)
	return ctx.WaitFor(provisioning.CheckBrokers, node, func(c context.Context) bool {
		return ctx.Prober.BrokersReady(c, node, expected)
	})
}
