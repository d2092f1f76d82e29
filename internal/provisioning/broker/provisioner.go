package broker

import (
	"fmt"

	"github.com/imamik/kafka-topology/internal/configgen"
	"github.com/imamik/kafka-topology/internal/provisioning"
)

// Paths and commands inside the node image.
const (
	TemplatePath = "/kafka/config/server.properties"
	ConfigPath   = "/kafka.properties"
	StartCommand = "/start_kafka &"
)

const (
	bringUpPhase  = "broker"
	validatePhase = "broker-validation"
)

// Provisioner renders every node's broker configuration from the image's
// stock template and starts the broker.
type Provisioner struct{}

// NewProvisioner creates a new broker provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return bringUpPhase
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	quiet := ctx.Config.Quiet()

	publicHost := ""
	if ctx.Config.AdvertisesPublicName() {
		publicHost = ctx.Config.HostPublicName
	} else if ctx.Config.HostPublicName != "" {
		ctx.Logger.Info("Ignoring host public name without cluster ports", "host_public_name", ctx.Config.HostPublicName)
	}

	for i, node := range ctx.State.Nodes {
		desc := ctx.Topology.Nodes[i]
		host := node.Hostname()
		log := ctx.Logger.WithValues("node", host, "broker_id", desc.Ordinal)
		log.Info(fmt.Sprintf("Starting Kafka broker on node %s", host))

		template, err := node.GetFile(ctx, TemplatePath)
		if err != nil {
			return fmt.Errorf("failed to read broker template on %s: %w", host, err)
		}

		rendered, result := configgen.Broker(template, desc, publicHost, ctx.Topology.BrokerPortsOverridden)
		if !result.IdentityRewritten {
			log.Info("Broker template has no default broker.id entry, leaving identity unchanged",
				"template", TemplatePath)
		}
		if result.AdvertisedListener != "" {
			log.V(1).Info("Advertising listener", "listener", result.AdvertisedListener)
		}

		if err := node.PutFile(ctx, ConfigPath, rendered); err != nil {
			return fmt.Errorf("failed to write %s on %s: %w", ConfigPath, host, err)
		}

		if _, err := node.Execute(ctx, StartCommand, provisioning.ExecOptions{Quiet: quiet, Detach: true}); err != nil {
			return fmt.Errorf("failed to start broker on %s: %w", host, err)
		}
	}
	return nil
}
