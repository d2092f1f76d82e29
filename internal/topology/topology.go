// Package topology computes the ordered node layout of a Kafka cluster.
//
// A [Topology] assigns every node a dense, zero-based ordinal that doubles
// as its ZooKeeper member id and its broker id, plus the port mappings the
// fabric publishes. It is computed once per bring-up and never mutated.
package topology

import (
	"fmt"

	"github.com/imamik/kafka-topology/internal/config"
)

// PortMapping maps a host port to a port inside the node.
// External is zero when the fabric should pick the host port.
type PortMapping struct {
	External int `yaml:"external"`
	Internal int `yaml:"internal"`
}

// Overridden reports whether the host port was set explicitly.
func (p PortMapping) Overridden() bool {
	return p.External != 0
}

func (p PortMapping) String() string {
	if !p.Overridden() {
		return fmt.Sprintf("%d", p.Internal)
	}
	return fmt.Sprintf("%d:%d", p.External, p.Internal)
}

// NodeDescriptor describes one node of the cluster.
type NodeDescriptor struct {
	Hostname  string      `yaml:"hostname"`
	Ordinal   int         `yaml:"ordinal"`
	Zookeeper PortMapping `yaml:"zookeeper"`
	Broker    PortMapping `yaml:"broker"`
}

// Topology is the ordered set of nodes.
type Topology struct {
	Nodes []NodeDescriptor `yaml:"nodes"`

	// BrokerPortsOverridden is true when every node has an explicit broker
	// host port, which is the precondition for advertising a public name.
	BrokerPortsOverridden bool `yaml:"broker_ports_overridden"`
}

// Build derives the topology from cfg. Port override lists must be empty or
// exactly as long as the node list; anything else is a *config.ConfigError.
func Build(cfg *config.Config) (*Topology, error) {
	n := len(cfg.Brokers)
	if n == 0 {
		return nil, config.NewConfigError("brokers", "at least one node is required")
	}
	if err := checkArity("zookeeper-ports", cfg.ZookeeperPorts, n); err != nil {
		return nil, err
	}
	if err := checkArity("cluster-ports", cfg.ClusterPorts, n); err != nil {
		return nil, err
	}

	topo := &Topology{
		Nodes:                 make([]NodeDescriptor, n),
		BrokerPortsOverridden: len(cfg.ClusterPorts) > 0,
	}
	for i, host := range cfg.Brokers {
		topo.Nodes[i] = NodeDescriptor{
			Hostname:  host,
			Ordinal:   i,
			Zookeeper: mapping(cfg.ZookeeperPorts, i, config.ZookeeperClientPort),
			Broker:    mapping(cfg.ClusterPorts, i, config.BrokerPort),
		}
	}
	return topo, nil
}

func checkArity(field string, ports []int, nodes int) error {
	if len(ports) == 0 || len(ports) == nodes {
		return nil
	}
	return config.NewConfigError(field,
		"the number of ports (%d) must equal the number of brokers (%d)", len(ports), nodes)
}

func mapping(overrides []int, i, internal int) PortMapping {
	m := PortMapping{Internal: internal}
	if len(overrides) > 0 {
		m.External = overrides[i]
	}
	return m
}

// Size returns the node count.
func (t *Topology) Size() int {
	return len(t.Nodes)
}

// Hostnames returns hostnames in topology order.
func (t *Topology) Hostnames() []string {
	names := make([]string, len(t.Nodes))
	for i, n := range t.Nodes {
		names[i] = n.Hostname
	}
	return names
}
