// Package cluster provides the provisioning phase that creates and starts
// the cluster nodes through the fabric.
//
// Node specs are derived from the topology: one node per broker hostname,
// publishing the ZooKeeper client port and the broker port, labeled with the
// cluster name, run id and ordinal. The resulting handles are stored in the
// provisioning state in topology order for all later phases.
package cluster
