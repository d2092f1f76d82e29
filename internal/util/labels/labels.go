package labels

import "strconv"

// Standard label keys for cluster containers.
const (
	// KeyCluster identifies which cluster a container belongs to
	KeyCluster = "kafka-topology.io/cluster"

	// KeyRun identifies the bring-up run that created the container
	KeyRun = "kafka-topology.io/run"

	// KeyNode is the node hostname inside the cluster network
	KeyNode = "kafka-topology.io/node"

	// KeyOrdinal is the node's position in the broker list
	KeyOrdinal = "kafka-topology.io/ordinal"

	// KeyManagedBy identifies the management system
	KeyManagedBy = "kafka-topology.io/managed-by"
)

// ManagedByKafkaTopology is the KeyManagedBy value set on every container.
const ManagedByKafkaTopology = "kafka-topology"

// LabelBuilder provides a fluent interface for building container labels.
type LabelBuilder struct {
	labels map[string]string
}

// NewLabelBuilder creates a new label builder with the cluster name pre-set.
func NewLabelBuilder(clusterName string) *LabelBuilder {
	return &LabelBuilder{
		labels: map[string]string{
			KeyCluster:   clusterName,
			KeyManagedBy: ManagedByKafkaTopology,
		},
	}
}

// WithRunIfSet adds a run label only if runID is non-empty.
func (lb *LabelBuilder) WithRunIfSet(runID string) *LabelBuilder {
	if runID != "" {
		lb.labels[KeyRun] = runID
	}
	return lb
}

// WithNode adds the node hostname and ordinal.
func (lb *LabelBuilder) WithNode(hostname string, ordinal int) *LabelBuilder {
	lb.labels[KeyNode] = hostname
	lb.labels[KeyOrdinal] = strconv.Itoa(ordinal)
	return lb
}

// WithManagedBy sets who manages this container.
func (lb *LabelBuilder) WithManagedBy(manager string) *LabelBuilder {
	lb.labels[KeyManagedBy] = manager
	return lb
}

// Merge adds all labels from the provided map.
func (lb *LabelBuilder) Merge(extra map[string]string) *LabelBuilder {
	for k, v := range extra {
		lb.labels[k] = v
	}
	return lb
}

// Build returns a copy of the labels map.
func (lb *LabelBuilder) Build() map[string]string {
	result := make(map[string]string, len(lb.labels))
	for k, v := range lb.labels {
		result[k] = v
	}
	return result
}

// SelectorForCluster returns a docker label filter matching all containers
// of a cluster.
func SelectorForCluster(clusterName string) string {
	return "label=" + KeyCluster + "=" + clusterName
}
