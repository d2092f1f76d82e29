// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/imamik/kafka-topology/internal/config"
	"github.com/imamik/kafka-topology/internal/logging"
	"github.com/imamik/kafka-topology/internal/orchestration"
	"github.com/imamik/kafka-topology/internal/platform/docker"
	"github.com/imamik/kafka-topology/internal/platform/ssh"
	"github.com/imamik/kafka-topology/internal/provisioning"
	"github.com/imamik/kafka-topology/internal/ui/summary"
	"github.com/imamik/kafka-topology/internal/util/prerequisites"
)

// Sequencer interface for testing - matches orchestration.Sequencer.
type Sequencer interface {
	Run(ctx context.Context) (*orchestration.Outcome, error)
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfig resolves flags, environment and config file into a Config.
	loadConfig = func(flags *pflag.FlagSet) (*config.Config, error) {
		v, err := config.NewViper(flags)
		if err != nil {
			return nil, err
		}
		return config.Load(v)
	}

	// newLogger builds the run logger.
	newLogger = logging.New

	// checkDefaultPrereqs checks the docker client for the local runner.
	checkDefaultPrereqs = prerequisites.CheckDocker

	// readFile reads the SSH private key (for testing injection).
	readFile = os.ReadFile

	// newLocalRunner creates a runner driving the local docker CLI.
	newLocalRunner = func() docker.Runner {
		return docker.NewLocalRunner()
	}

	// newSSHRunner creates a runner driving docker on a remote host.
	newSSHRunner = func(cfg *ssh.Config) (docker.Runner, error) {
		return ssh.NewClient(cfg)
	}

	// newFabric creates the docker fabric over runner.
	newFabric = func(runner docker.Runner, logger logr.Logger, opts docker.FabricOptions) provisioning.Fabric {
		return docker.NewFabric(runner, logger, opts)
	}

	// newSequencer creates the bring-up sequencer.
	newSequencer = func(cfg *config.Config, fabric provisioning.Fabric, logger logr.Logger, runID string) (Sequencer, error) {
		return orchestration.New(cfg, fabric, nil, logger, orchestration.WithRunID(runID))
	}

	// newRunID returns the identifier of a bring-up.
	newRunID = uuid.NewString

	// stdout receives the terminal summary.
	stdout io.Writer = os.Stdout

	// isTerminal decides whether the summary is printed.
	isTerminal = logging.IsTerminal
)

// Start brings up a Kafka cluster.
//
// The workflow is:
//  1. Resolve and validate the configuration
//  2. Build the logger and the command runner (local docker or SSH)
//  3. Run the bring-up phases through the sequencer
//  4. Write the metrics and report files when requested, even on failure
//  5. Print a summary when stdout is a terminal
//
// The returned error is the bring-up error when there is one.
func Start(ctx context.Context, flags *pflag.FlagSet) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	logger, flush, err := newLogger(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer flush()

	runner, err := initializeRunner(cfg, logger)
	if err != nil {
		return err
	}
	if closer, ok := runner.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	timeouts := config.LoadTimeouts().Override(cfg)
	fabric := newFabric(runner, logger, docker.FabricOptions{
		ClusterName:  cfg.ClusterName,
		StartTimeout: timeouts.NodeStart,
	})

	runID := newRunID()
	seq, err := newSequencer(cfg, fabric, logger, runID)
	if err != nil {
		return err
	}

	logger.Info("Starting Kafka cluster",
		"cluster", cfg.ClusterName, "run", runID, "nodes", len(cfg.Brokers), "image", cfg.Image())

	outcome, runErr := seq.Run(ctx)

	if outcome != nil {
		if err := writeArtifacts(cfg, outcome); err != nil {
			if runErr == nil {
				return err
			}
			logger.Error(err, "Failed to write run artifacts")
		}
		if isTerminal(stdout) {
			fmt.Fprint(stdout, summary.Render(outcome.Report))
		}
	}

	if runErr != nil {
		return fmt.Errorf("bring-up of cluster %s failed: %w", cfg.ClusterName, runErr)
	}

	logger.Info("Kafka cluster is ready", "cluster", cfg.ClusterName, "run", runID)
	return nil
}

// initializeRunner picks the command runner for cfg.
func initializeRunner(cfg *config.Config, logger logr.Logger) (docker.Runner, error) {
	if !cfg.UsesSSH() {
		if err := checkDefaultPrereqs(); err != nil {
			return nil, err
		}
		return newLocalRunner(), nil
	}

	key, err := readFile(cfg.SSHKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read SSH key: %w", err)
	}

	runner, err := newSSHRunner(&ssh.Config{
		Host:       cfg.DockerHost,
		Port:       cfg.SSHPort,
		User:       cfg.SSHUser,
		PrivateKey: key,
		Logger:     logger.WithName("ssh"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH client for %s: %w", cfg.DockerHost, err)
	}
	return runner, nil
}

// writeArtifacts writes the metrics and report files that cfg asks for.
func writeArtifacts(cfg *config.Config, outcome *orchestration.Outcome) error {
	var errs []error
	if cfg.MetricsFile != "" && outcome.Metrics != nil {
		errs = append(errs, outcome.Metrics.WriteToFile(cfg.MetricsFile))
	}
	if cfg.ReportFile != "" && outcome.Report != nil {
		errs = append(errs, outcome.Report.WriteFile(cfg.ReportFile))
	}
	return errors.Join(errs...)
}
