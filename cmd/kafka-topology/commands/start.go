package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/kafka-topology/cmd/kafka-topology/handlers"
	"github.com/imamik/kafka-topology/internal/config"
)

// Start returns the command that brings up a Kafka cluster.
//
// Every flag can also be set through a KAFKA_TOPOLOGY_* environment variable
// (dashes become underscores) or a key of the same name in the YAML file
// passed with --config.
func Start() *cobra.Command {
	defaults := config.Defaults()

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a Kafka cluster",
		Long: `Start a Kafka cluster with an embedded ZooKeeper ensemble.

One container is started per broker hostname. ZooKeeper runs on every node
and the node's position in --brokers is both its ZooKeeper id and its broker
id. Topics listed in --topics are created once all brokers have registered.

Examples:
  # Three-node cluster on the local docker daemon
  kafka-topology start

  # Expose the brokers to clients outside the docker network
  kafka-topology start --cluster-ports 9092,9093,9094 --host-public-name kafka.local

  # Create topics once the cluster is up
  kafka-topology start --topics orders,payments

  # Use a remote docker host
  kafka-topology start --docker-host 10.0.0.5 --ssh-key ~/.ssh/id_ed25519`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Start(cmd.Context(), cmd.Flags())
		},
	}

	f := cmd.Flags()
	f.StringP(config.ConfigFileKey, "c", "", "Path to a YAML configuration file")
	f.String("cluster-name", defaults.ClusterName, "Name used for container names and labels")

	// Topology
	f.StringSlice("brokers", defaults.Brokers, "Node hostnames; position is the node id")
	f.IntSlice("zookeeper-ports", nil, "Host ports for each node's ZooKeeper client port")
	f.IntSlice("cluster-ports", nil, "Host ports for each node's broker port")
	f.String("host-public-name", "", "Name advertised to clients (requires --cluster-ports)")

	// Image
	f.String("kafka-version", defaults.KafkaVersion, "Kafka version of the node image")
	f.String("scala-version", defaults.ScalaVersion, "Scala version of the node image")
	f.String("registry", defaults.Registry, "Registry serving the node image")
	f.String("namespace", defaults.Namespace, "Registry namespace of the node image")
	f.Bool("always-pull", false, "Pull the node image even when present")

	// Fabric
	f.String("network", defaults.Network, "Docker network joined by every node")
	f.String("docker-host", "", "Remote docker host reached over SSH (default: local docker)")
	f.String("ssh-user", defaults.SSHUser, "SSH user for --docker-host")
	f.String("ssh-key", "", "Private key file for --docker-host")
	f.Int("ssh-port", defaults.SSHPort, "SSH port for --docker-host")

	f.String("topics", "", "Comma-separated topics to create after bring-up")

	// Readiness
	f.Duration("check-interval", 0, "Delay between readiness checks (default: 3s)")
	f.Duration("readiness-timeout", 0, "Bound on each readiness wait (default: 60s)")
	f.Duration("start-timeout", 0, "Bound on waiting for containers to run (default: 2m)")
	f.Bool("parallel-validation", false, "Check ZooKeeper readiness on all nodes concurrently")

	// Output
	f.BoolP("verbose", "v", false, "Log the output of remote commands")
	f.String("metrics-file", "", "Write Prometheus metrics of the run to this file")
	f.String("report-file", "", "Write a YAML report of the run to this file")
	f.String("log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	f.String("log-format", defaults.LogFormat, "Log format (auto, console, json)")

	return cmd
}
