package config

import (
	"errors"
	"regexp"
	"strings"
)

// Kafka's legal topic names. Names also end up in node shell commands, so
// nothing outside this set is accepted.
var topicNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

const maxTopicNameLength = 249

// ValidLogLevels contains the accepted --log-level values.
var ValidLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidLogFormats contains the accepted --log-format values.
var ValidLogFormats = map[string]bool{
	LogFormatAuto:    true,
	LogFormatJSON:    true,
	LogFormatConsole: true,
}

// Validate checks the configuration and returns every problem found, joined.
// Each problem is a *ConfigError.
func (c *Config) Validate() error {
	var errs []error

	if c.ClusterName == "" {
		errs = append(errs, NewConfigError("cluster-name", "is required"))
	}

	errs = append(errs, c.validateBrokers()...)
	errs = append(errs, c.validatePorts("zookeeper-ports", c.ZookeeperPorts)...)
	errs = append(errs, c.validatePorts("cluster-ports", c.ClusterPorts)...)

	errs = append(errs, c.validateTopics()...)

	if c.KafkaVersion == "" {
		errs = append(errs, NewConfigError("kafka-version", "is required"))
	}
	if c.ScalaVersion == "" {
		errs = append(errs, NewConfigError("scala-version", "is required"))
	}
	if c.Registry == "" {
		errs = append(errs, NewConfigError("registry", "is required"))
	}
	if c.Network == "" {
		errs = append(errs, NewConfigError("network", "is required"))
	}

	if c.CheckInterval < 0 {
		errs = append(errs, NewConfigError("check-interval", "must not be negative"))
	}
	if c.ReadinessTimeout < 0 {
		errs = append(errs, NewConfigError("readiness-timeout", "must not be negative"))
	}
	if c.StartTimeout < 0 {
		errs = append(errs, NewConfigError("start-timeout", "must not be negative"))
	}

	if c.UsesSSH() {
		if c.SSHUser == "" {
			errs = append(errs, NewConfigError("ssh-user", "is required with --docker-host"))
		}
		if c.SSHKeyPath == "" {
			errs = append(errs, NewConfigError("ssh-key", "is required with --docker-host"))
		}
	}

	if !ValidLogLevels[c.LogLevel] {
		errs = append(errs, NewConfigError("log-level", "unknown level %q", c.LogLevel))
	}
	if !ValidLogFormats[c.LogFormat] {
		errs = append(errs, NewConfigError("log-format", "unknown format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

func (c *Config) validateBrokers() []error {
	if len(c.Brokers) == 0 {
		return []error{NewConfigError("brokers", "at least one node is required")}
	}

	var errs []error
	seen := make(map[string]bool, len(c.Brokers))
	for i, host := range c.Brokers {
		host = strings.TrimSpace(host)
		if host == "" {
			errs = append(errs, NewConfigError("brokers", "hostname at position %d is empty", i))
			continue
		}
		if seen[host] {
			errs = append(errs, NewConfigError("brokers", "duplicate hostname %q", host))
		}
		seen[host] = true
	}
	return errs
}

func (c *Config) validateTopics() []error {
	var errs []error
	for _, name := range c.TopicNames() {
		switch {
		case name == "." || name == "..":
			errs = append(errs, NewConfigError("topics", "topic name %q is not allowed", name))
		case len(name) > maxTopicNameLength:
			errs = append(errs, NewConfigError("topics", "topic name %q is longer than %d characters", name, maxTopicNameLength))
		case !topicNamePattern.MatchString(name):
			errs = append(errs, NewConfigError("topics", "topic name %q may only contain letters, digits, '.', '_' and '-'", name))
		}
	}
	return errs
}

// validatePorts checks port ranges only. The list length is checked against
// the node count when the topology is built.
func (c *Config) validatePorts(field string, ports []int) []error {
	var errs []error
	for _, p := range ports {
		if p < 1 || p > 65535 {
			errs = append(errs, NewConfigError(field, "port %d out of range", p))
		}
	}
	return errs
}
