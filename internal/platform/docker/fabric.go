package docker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-logr/logr"

	"github.com/imamik/kafka-topology/internal/provisioning"
	"github.com/imamik/kafka-topology/internal/util/labels"
)

const (
	defaultStartTimeout = 2 * time.Minute
	statusRunning       = "running"
)

// FabricOptions configures a Fabric.
type FabricOptions struct {
	// ClusterName prefixes container names and selects existing containers.
	ClusterName string

	// StartTimeout bounds the wait for all containers to report running.
	StartTimeout time.Duration

	// InitialPollInterval is the first delay between container state checks.
	InitialPollInterval time.Duration
}

// Fabric starts cluster nodes as docker containers.
type Fabric struct {
	runner Runner
	logger logr.Logger
	opts   FabricOptions

	specs []provisioning.NodeSpec
	nodes []*Node
}

var _ provisioning.Fabric = (*Fabric)(nil)

// NewFabric creates a fabric issuing docker commands through runner.
func NewFabric(runner Runner, logger logr.Logger, opts FabricOptions) *Fabric {
	if opts.StartTimeout <= 0 {
		opts.StartTimeout = defaultStartTimeout
	}
	if opts.InitialPollInterval <= 0 {
		opts.InitialPollInterval = 500 * time.Millisecond
	}
	return &Fabric{runner: runner, logger: logger, opts: opts}
}

// ContainerName returns the container name used for hostname.
func ContainerName(clusterName, hostname string) string {
	return clusterName + "-" + hostname
}

// CreateNodes implements provisioning.Fabric. Containers are only declared
// here; StartAll runs them.
func (f *Fabric) CreateNodes(specs []provisioning.NodeSpec) ([]provisioning.Node, error) {
	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		if spec.Hostname == "" {
			return nil, errors.New("node spec without hostname")
		}
		if spec.Image == "" {
			return nil, fmt.Errorf("node %s has no image", spec.Hostname)
		}
		if seen[spec.Hostname] {
			return nil, fmt.Errorf("duplicate node hostname %s", spec.Hostname)
		}
		seen[spec.Hostname] = true
	}

	nodes := make([]provisioning.Node, 0, len(specs))
	for _, spec := range specs {
		n := NewNode(f.runner, f.logger, ContainerName(f.opts.ClusterName, spec.Hostname), spec.Hostname)
		f.specs = append(f.specs, spec)
		f.nodes = append(f.nodes, n)
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// StartAll implements provisioning.Fabric.
func (f *Fabric) StartAll(ctx context.Context, network string, pullImages bool) error {
	if len(f.nodes) == 0 {
		return errors.New("no nodes declared")
	}
	if err := f.checkConflicts(ctx); err != nil {
		return err
	}
	if err := f.ensureNetwork(ctx, network); err != nil {
		return err
	}
	if err := f.ensureImages(ctx, pullImages); err != nil {
		return err
	}

	for i, spec := range f.specs {
		if err := f.runContainer(ctx, f.nodes[i], spec, network); err != nil {
			return err
		}
	}

	return f.waitRunning(ctx)
}

// checkConflicts fails when a container of this cluster with one of our
// names already exists.
func (f *Fabric) checkConflicts(ctx context.Context) error {
	res, err := f.run(ctx, command("docker", "ps", "-a",
		"--filter", labels.SelectorForCluster(f.opts.ClusterName),
		"--format", "{{.Names}}"))
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		return fmt.Errorf("failed to list containers: %s", strings.TrimSpace(res.Stderr))
	}

	existing := make(map[string]bool)
	for _, name := range strings.Fields(res.Stdout) {
		existing[name] = true
	}
	var conflicts []string
	for _, n := range f.nodes {
		if existing[n.Container()] {
			conflicts = append(conflicts, n.Container())
		}
	}
	if len(conflicts) > 0 {
		return fmt.Errorf("containers already exist, remove them first: %s", strings.Join(conflicts, ", "))
	}
	return nil
}

func (f *Fabric) ensureNetwork(ctx context.Context, network string) error {
	res, err := f.run(ctx, command("docker", "network", "inspect", network))
	if err != nil {
		return err
	}
	if res.Succeeded() {
		f.logger.V(1).Info("Using existing network", "network", network)
		return nil
	}

	f.logger.Info("Creating network", "network", network)
	res, err = f.run(ctx, command("docker", "network", "create", network))
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		return fmt.Errorf("failed to create network %s: %s", network, strings.TrimSpace(res.Stderr))
	}
	return nil
}

func (f *Fabric) ensureImages(ctx context.Context, always bool) error {
	images := make(map[string]bool)
	for _, spec := range f.specs {
		images[spec.Image] = true
	}
	sorted := make([]string, 0, len(images))
	for image := range images {
		sorted = append(sorted, image)
	}
	sort.Strings(sorted)

	for _, image := range sorted {
		if !always {
			res, err := f.run(ctx, command("docker", "image", "inspect", image))
			if err != nil {
				return err
			}
			if res.Succeeded() {
				continue
			}
		}

		f.logger.Info("Pulling image", "image", image)
		res, err := f.run(ctx, command("docker", "pull", image))
		if err != nil {
			return err
		}
		if !res.Succeeded() {
			return fmt.Errorf("failed to pull image %s: %s", image, strings.TrimSpace(res.Stderr))
		}
	}
	return nil
}

// RunArgs returns the docker run arguments for a node.
func RunArgs(container string, spec provisioning.NodeSpec, network string) []string {
	args := []string{
		"docker", "run", "-d",
		"--name", container,
		"--hostname", spec.Hostname,
		"--network", network,
		"--network-alias", spec.Hostname,
	}
	for _, p := range spec.Ports {
		args = append(args, "-p", p.String())
	}

	keys := make([]string, 0, len(spec.Labels))
	for k := range spec.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "--label", k+"="+spec.Labels[k])
	}

	return append(args, spec.Image)
}

func (f *Fabric) runContainer(ctx context.Context, n *Node, spec provisioning.NodeSpec, network string) error {
	f.logger.Info("Starting container", "container", n.Container(), "node", spec.Hostname)
	res, err := f.run(ctx, command(RunArgs(n.Container(), spec, network)...))
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		return fmt.Errorf("failed to start container %s: %s", n.Container(), strings.TrimSpace(res.Stderr))
	}
	return nil
}

// waitRunning polls container state with exponential backoff until every
// container runs or the start timeout elapses.
func (f *Fabric) waitRunning(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = f.opts.InitialPollInterval
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = f.opts.StartTimeout

	pending := append([]*Node(nil), f.nodes...)
	op := func() error {
		var still []*Node
		for _, n := range pending {
			status, err := f.containerStatus(ctx, n)
			if err != nil {
				return err
			}
			switch status {
			case statusRunning:
			case "exited", "dead":
				return backoff.Permanent(fmt.Errorf("container %s is %s", n.Container(), status))
			default:
				still = append(still, n)
			}
		}
		pending = still
		if len(pending) > 0 {
			return fmt.Errorf("%d of %d containers not running yet", len(pending), len(f.nodes))
		}
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("nodes did not start: %w", err)
	}
	f.logger.Info("All containers running", "count", len(f.nodes))
	return nil
}

func (f *Fabric) containerStatus(ctx context.Context, n *Node) (string, error) {
	res, err := f.run(ctx, command("docker", "inspect", "-f", "{{.State.Status}}", n.Container()))
	if err != nil {
		return "", err
	}
	if !res.Succeeded() {
		return "", fmt.Errorf("failed to inspect %s: %s", n.Container(), strings.TrimSpace(res.Stderr))
	}
	return strings.TrimSpace(res.Stdout), nil
}

func (f *Fabric) run(ctx context.Context, cmd string) (*RunResult, error) {
	f.logger.V(1).Info("docker", "command", cmd)
	res, err := f.runner.Run(ctx, cmd, nil)
	if err != nil {
		return nil, fmt.Errorf("docker command failed: %w", err)
	}
	return res, nil
}
