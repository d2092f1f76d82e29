package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the full set of options for one bring-up.
//
// Keys match the CLI flag names so that flags, KAFKA_TOPOLOGY_* environment
// variables and YAML files share one vocabulary.
type Config struct {
	ClusterName string `mapstructure:"cluster-name" yaml:"cluster-name"`

	// Brokers lists node hostnames. Position in this list is the node ordinal.
	Brokers []string `mapstructure:"brokers" yaml:"brokers"`

	// ZookeeperPorts and ClusterPorts optionally map each node's ZooKeeper
	// client port and broker port to host ports. When set, their length
	// must equal len(Brokers).
	ZookeeperPorts []int `mapstructure:"zookeeper-ports" yaml:"zookeeper-ports"`
	ClusterPorts   []int `mapstructure:"cluster-ports" yaml:"cluster-ports"`

	// HostPublicName is advertised to clients. It only takes effect together
	// with ClusterPorts.
	HostPublicName string `mapstructure:"host-public-name" yaml:"host-public-name"`

	KafkaVersion string `mapstructure:"kafka-version" yaml:"kafka-version"`
	ScalaVersion string `mapstructure:"scala-version" yaml:"scala-version"`
	Registry     string `mapstructure:"registry" yaml:"registry"`
	Namespace    string `mapstructure:"namespace" yaml:"namespace"`
	Network      string `mapstructure:"network" yaml:"network"`

	// Topics is a comma-separated list of topics created after bring-up.
	Topics string `mapstructure:"topics" yaml:"topics"`

	Verbose            bool `mapstructure:"verbose" yaml:"verbose"`
	AlwaysPull         bool `mapstructure:"always-pull" yaml:"always-pull"`
	ParallelValidation bool `mapstructure:"parallel-validation" yaml:"parallel-validation"`

	// Docker host reached over SSH. Empty means the local docker CLI.
	DockerHost string `mapstructure:"docker-host" yaml:"docker-host"`
	SSHUser    string `mapstructure:"ssh-user" yaml:"ssh-user"`
	SSHKeyPath string `mapstructure:"ssh-key" yaml:"ssh-key"`
	SSHPort    int    `mapstructure:"ssh-port" yaml:"ssh-port"`

	// Zero values defer to LoadTimeouts.
	CheckInterval    time.Duration `mapstructure:"check-interval" yaml:"check-interval"`
	ReadinessTimeout time.Duration `mapstructure:"readiness-timeout" yaml:"readiness-timeout"`
	StartTimeout     time.Duration `mapstructure:"start-timeout" yaml:"start-timeout"`

	MetricsFile string `mapstructure:"metrics-file" yaml:"metrics-file"`
	ReportFile  string `mapstructure:"report-file" yaml:"report-file"`

	LogLevel  string `mapstructure:"log-level" yaml:"log-level"`
	LogFormat string `mapstructure:"log-format" yaml:"log-format"`
}

// Defaults returns the values used for every option the user leaves empty.
func Defaults() Config {
	return Config{
		ClusterName:  "kafka",
		Brokers:      []string{"node-1.cluster", "node-2.cluster", "node-3.cluster"},
		KafkaVersion: "2.8.1",
		ScalaVersion: "2.13",
		Registry:     "docker.io",
		Namespace:    DefaultNamespace,
		Network:      "cluster",
		SSHUser:      "root",
		SSHPort:      22,
		LogLevel:     "info",
		LogFormat:    LogFormatAuto,
	}
}

// Image returns the fully qualified node image reference.
func (c *Config) Image() string {
	namespace := c.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return fmt.Sprintf("%s/%s/topology_apache_kafka:kafka-%s-%s",
		c.Registry, namespace, c.KafkaVersion, c.ScalaVersion)
}

// TopicNames splits Topics on commas, dropping blank entries.
func (c *Config) TopicNames() []string {
	var names []string
	for _, name := range strings.Split(c.Topics, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Quiet reports whether remote command output should be kept out of logs.
func (c *Config) Quiet() bool {
	return !c.Verbose
}

// AdvertisesPublicName reports whether brokers advertise HostPublicName.
func (c *Config) AdvertisesPublicName() bool {
	return c.HostPublicName != "" && len(c.ClusterPorts) > 0
}

// UsesSSH reports whether docker commands are sent to a remote host.
func (c *Config) UsesSSH() bool {
	return c.DockerHost != ""
}
