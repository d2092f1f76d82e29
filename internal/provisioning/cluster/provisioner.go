package cluster

import (
	"fmt"

	"github.com/imamik/kafka-topology/internal/provisioning"
	"github.com/imamik/kafka-topology/internal/topology"
	"github.com/imamik/kafka-topology/internal/util/labels"
)

const phase = "provision"

// Provisioner creates and starts the cluster nodes.
type Provisioner struct{}

// NewProvisioner creates a new cluster provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return phase
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	image := ctx.Config.Image()
	ctx.State.Image = image

	specs := NodeSpecs(ctx.Topology, image, ctx.Config.ClusterName, ctx.RunID)
	ctx.Logger.Info("Creating nodes", "image", image, "nodes", len(specs))

	nodes, err := ctx.Fabric.CreateNodes(specs)
	if err != nil {
		return fmt.Errorf("failed to create nodes: %w", err)
	}
	if len(nodes) != len(specs) {
		return fmt.Errorf("fabric returned %d nodes, expected %d", len(nodes), len(specs))
	}

	ctx.Logger.Info("Starting nodes", "network", ctx.Config.Network, "always_pull", ctx.Config.AlwaysPull)
	if err := ctx.Fabric.StartAll(ctx, ctx.Config.Network, ctx.Config.AlwaysPull); err != nil {
		return fmt.Errorf("failed to start nodes: %w", err)
	}

	ctx.State.Nodes = nodes
	ctx.Metrics.SetNodesStarted(len(nodes))
	return nil
}

// NodeSpecs describes one node per topology entry, in topology order.
func NodeSpecs(topo *topology.Topology, image, clusterName, runID string) []provisioning.NodeSpec {
	specs := make([]provisioning.NodeSpec, 0, topo.Size())
	for _, node := range topo.Nodes {
		specs = append(specs, provisioning.NodeSpec{
			Hostname: node.Hostname,
			Image:    image,
			Ports:    []topology.PortMapping{node.Zookeeper, node.Broker},
			Labels: labels.NewLabelBuilder(clusterName).
				WithRunIfSet(runID).
				WithNode(node.Hostname, node.Ordinal).
				Build(),
		})
	}
	return specs
}
