package provisioning

import (
	"context"

	"github.com/imamik/kafka-topology/internal/topology"
)

// ExecOptions controls how a remote command runs.
type ExecOptions struct {
	// Quiet keeps command output out of the logs.
	Quiet bool

	// Detach starts the command in the background and returns once it has
	// been launched.
	Detach bool
}

// ExecResult is the outcome of a remote command. A non-zero exit code is a
// result, not an error.
type ExecResult struct {
	ExitCode int
	Stdout   string
}

// Succeeded reports whether the command exited with status zero.
func (r *ExecResult) Succeeded() bool {
	return r != nil && r.ExitCode == 0
}

// Node is one provisioned machine.
type Node interface {
	// Hostname returns the node's hostname inside the cluster network.
	Hostname() string

	// Execute runs a shell command on the node. The error is reserved for
	// transport failures.
	Execute(ctx context.Context, command string, opts ExecOptions) (*ExecResult, error)

	// PutFile writes content to path on the node.
	PutFile(ctx context.Context, path, content string) error

	// GetFile reads path from the node.
	GetFile(ctx context.Context, path string) (string, error)
}

// NodeSpec declares a node for the fabric to create.
type NodeSpec struct {
	Hostname string
	Image    string
	Ports    []topology.PortMapping
	Labels   map[string]string
}

// Fabric creates and starts nodes.
type Fabric interface {
	// CreateNodes declares the nodes and returns their handles in spec order.
	CreateNodes(specs []NodeSpec) ([]Node, error)

	// StartAll starts every declared node on network and blocks until all
	// of them are running.
	StartAll(ctx context.Context, network string, pullImages bool) error
}

// Prober answers readiness questions. Implementations never fail: anything
// short of a positive answer is reported as false.
type Prober interface {
	// CoordinationReady reports whether ZooKeeper answers on node.
	CoordinationReady(ctx context.Context, node Node) bool

	// BrokersReady reports whether exactly expected broker ids are
	// registered, as seen from node.
	BrokersReady(ctx context.Context, node Node, expected int) bool
}
