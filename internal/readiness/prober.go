// Package readiness answers whether ZooKeeper and the brokers of a cluster
// are up, by running the Kafka distribution's shell tools on a node.
package readiness

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	json "github.com/goccy/go-json"

	"github.com/imamik/kafka-topology/internal/config"
	"github.com/imamik/kafka-topology/internal/provisioning"
)

// ZookeeperShell is the ZooKeeper CLI shipped with the Kafka image.
const ZookeeperShell = "/kafka/bin/zookeeper-shell.sh"

var (
	// CoordinationCommand lists the ZooKeeper root; it exits zero once the
	// local ZooKeeper server answers.
	CoordinationCommand = fmt.Sprintf("%s localhost:%d ls /", ZookeeperShell, config.ZookeeperClientPort)

	// BrokerIDsCommand prints the registered broker ids as its last line,
	// e.g. "[0, 1, 2]". It must stay POSIX sh: nodes run commands with sh -c.
	BrokerIDsCommand = fmt.Sprintf(`echo "ls /brokers/ids" | %s localhost:%d | tail -n 1`, ZookeeperShell, config.ZookeeperClientPort)
)

// Prober implements provisioning.Prober.
type Prober struct {
	logger logr.Logger
	quiet  bool
}

var _ provisioning.Prober = (*Prober)(nil)

// NewProber creates a prober. When quiet is set, command output is kept out
// of the logs.
func NewProber(logger logr.Logger, quiet bool) *Prober {
	return &Prober{logger: logger, quiet: quiet}
}

// CoordinationReady reports whether ZooKeeper answers on node.
func (p *Prober) CoordinationReady(ctx context.Context, node provisioning.Node) bool {
	res, err := node.Execute(ctx, CoordinationCommand, provisioning.ExecOptions{Quiet: p.quiet})
	if err != nil {
		p.logger.V(1).Info("ZooKeeper probe failed", "node", node.Hostname(), "error", err.Error())
		return false
	}
	return res.Succeeded()
}

// BrokersReady reports whether exactly expected broker ids are registered
// in ZooKeeper, as seen from node.
func (p *Prober) BrokersReady(ctx context.Context, node provisioning.Node, expected int) bool {
	res, err := node.Execute(ctx, BrokerIDsCommand, provisioning.ExecOptions{Quiet: p.quiet})
	if err != nil {
		p.logger.V(1).Info("Broker probe failed", "node", node.Hostname(), "error", err.Error())
		return false
	}
	if !res.Succeeded() {
		return false
	}

	ids, ok := ParseBrokerIDs(res.Stdout)
	if !ok {
		return false
	}
	return len(ids) == expected
}

// ParseBrokerIDs decodes the broker id list printed by the ZooKeeper shell.
// Anything other than a JSON array of integers is rejected.
func ParseBrokerIDs(output string) ([]int, bool) {
	line := strings.TrimSpace(output)
	if !strings.HasPrefix(line, "[") {
		return nil, false
	}
	var ids []int
	if err := json.Unmarshal([]byte(line), &ids); err != nil {
		return nil, false
	}
	return ids, true
}
