// Package labels provides consistent labeling for cluster containers.
//
// All labels use the kafka-topology.io domain prefix and follow a builder
// pattern for constructing label sets with cluster name, run, node and
// manager identification.
package labels
