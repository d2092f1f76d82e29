package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/imamik/kafka-topology/internal/provisioning"
)

// Node is a container acting as one cluster node.
type Node struct {
	runner    Runner
	logger    logr.Logger
	container string
	hostname  string
}

var _ provisioning.Node = (*Node)(nil)

// NewNode returns the handle for an existing container.
func NewNode(runner Runner, logger logr.Logger, container, hostname string) *Node {
	return &Node{
		runner:    runner,
		logger:    logger.WithValues("node", hostname),
		container: container,
		hostname:  hostname,
	}
}

// Hostname implements provisioning.Node.
func (n *Node) Hostname() string {
	return n.hostname
}

// Container returns the container name.
func (n *Node) Container() string {
	return n.container
}

// Execute implements provisioning.Node.
func (n *Node) Execute(ctx context.Context, cmd string, opts provisioning.ExecOptions) (*provisioning.ExecResult, error) {
	args := []string{"docker", "exec"}
	if opts.Detach {
		args = append(args, "-d")
	}
	args = append(args, n.container, "sh", "-c", cmd)

	res, err := n.runner.Run(ctx, command(args...), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to execute on %s: %w", n.hostname, err)
	}

	if !opts.Quiet {
		n.logOutput(cmd, res)
	}
	return &provisioning.ExecResult{ExitCode: res.ExitCode, Stdout: res.Stdout}, nil
}

// PutFile implements provisioning.Node.
func (n *Node) PutFile(ctx context.Context, path, content string) error {
	script := "cat > " + Quote(path)
	res, err := n.runner.Run(ctx, command("docker", "exec", "-i", n.container, "sh", "-c", script), strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to write %s on %s: %w", path, n.hostname, err)
	}
	if !res.Succeeded() {
		return fmt.Errorf("failed to write %s on %s: exit code %d: %s",
			path, n.hostname, res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return nil
}

// GetFile implements provisioning.Node.
func (n *Node) GetFile(ctx context.Context, path string) (string, error) {
	res, err := n.runner.Run(ctx, command("docker", "exec", n.container, "cat", path), nil)
	if err != nil {
		return "", fmt.Errorf("failed to read %s on %s: %w", path, n.hostname, err)
	}
	if !res.Succeeded() {
		return "", fmt.Errorf("failed to read %s on %s: exit code %d: %s",
			path, n.hostname, res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return res.Stdout, nil
}

func (n *Node) logOutput(cmd string, res *RunResult) {
	out := strings.TrimSpace(res.Stdout + res.Stderr)
	if out == "" {
		return
	}
	n.logger.Info("Command output", "command", cmd, "exit_code", res.ExitCode, "output", out)
}
