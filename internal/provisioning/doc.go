// Package provisioning provides shared types, interfaces, and the phase
// runner for a Kafka cluster bring-up.
//
// # Subpackages
//
//   - cluster/: node creation and start through the cluster fabric
//   - coordination/: ZooKeeper configuration, start and validation
//   - broker/: Kafka broker configuration, start and validation
//   - topics/: topic creation once the cluster is healthy
//
// # Core Types
//
// Context carries configuration, topology, collaborators, logger and metrics.
// Phase defines a bring-up step with Name() and Provision() methods.
// State accumulates results from each phase (node handles, timings, topics).
// Node and Fabric are the capabilities the bring-up needs from the machines
// it drives; Prober answers readiness questions against a node.
package provisioning
