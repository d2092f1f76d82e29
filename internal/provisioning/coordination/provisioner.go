package coordination

import (
	"fmt"

	"github.com/imamik/kafka-topology/internal/configgen"
	"github.com/imamik/kafka-topology/internal/provisioning"
)

// Paths and commands inside the node image.
const (
	MkdirCommand = "mkdir -p " + configgen.ZookeeperDataDir
	MyIDPath     = configgen.ZookeeperDataDir + "/myid"
	ConfigPath   = "/zookeeper.properties"
	StartCommand = "/start_zookeeper &"
)

const (
	bringUpPhase  = "coordination"
	validatePhase = "coordination-validation"
)

// Provisioner writes the ensemble configuration to every node and starts
// ZooKeeper there.
type Provisioner struct{}

// NewProvisioner creates a new coordination provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return bringUpPhase
}

// Provision implements the provisioning.Phase interface.
// Nodes are handled one at a time in topology order.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	ensemble := configgen.CoordinationText(ctx.Topology)
	quiet := ctx.Config.Quiet()

	for i, node := range ctx.State.Nodes {
		desc := ctx.Topology.Nodes[i]
		host := node.Hostname()
		ctx.Logger.Info(fmt.Sprintf("Starting ZooKeeper on node %s", host), "node", host, "myid", desc.Ordinal)

		res, err := node.Execute(ctx, MkdirCommand, provisioning.ExecOptions{Quiet: quiet})
		if err != nil {
			return fmt.Errorf("failed to create data directory on %s: %w", host, err)
		}
		if !res.Succeeded() {
			return fmt.Errorf("failed to create data directory on %s: exit code %d", host, res.ExitCode)
		}

		if err := node.PutFile(ctx, MyIDPath, configgen.MemberID(desc.Ordinal)); err != nil {
			return fmt.Errorf("failed to write %s on %s: %w", MyIDPath, host, err)
		}
		if err := node.PutFile(ctx, ConfigPath, ensemble); err != nil {
			return fmt.Errorf("failed to write %s on %s: %w", ConfigPath, host, err)
		}

		if _, err := node.Execute(ctx, StartCommand, provisioning.ExecOptions{Quiet: quiet, Detach: true}); err != nil {
			return fmt.Errorf("failed to start ZooKeeper on %s: %w", host, err)
		}
	}
	return nil
}
