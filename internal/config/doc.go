// Package config defines the configuration model for a Kafka topology
// bring-up.
//
// The [Config] struct is the canonical representation of the requested
// cluster: broker hostnames, optional host port overrides, image
// coordinates, topics to create and the knobs that shape logging and
// output. It is populated by [Load] from command-line flags, environment
// variables (KAFKA_TOPOLOGY_*) and an optional YAML file, then checked by
// [Config.Validate].
//
// Readiness timing lives in [Timeouts], which follows the same
// environment-variable override scheme.
package config
