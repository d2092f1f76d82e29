// Package configgen renders per-node ZooKeeper and Kafka configuration.
//
// All functions are pure: they take the topology and a node and return
// configuration text. Callers persist the result on the node.
package configgen

import (
	"fmt"
	"strconv"

	"github.com/imamik/kafka-topology/internal/config"
	"github.com/imamik/kafka-topology/internal/properties"
	"github.com/imamik/kafka-topology/internal/topology"
)

// ZooKeeper base parameters shared by every ensemble member.
const (
	ZookeeperDataDir  = "/zookeeper"
	zookeeperTickTime = 2000
	zookeeperInitLim  = 5
	zookeeperSyncLim  = 2
)

// Broker property keys touched by Broker.
const (
	BrokerIDKey            = "broker.id"
	AdvertisedListenersKey = "advertised.listeners"

	// defaultBrokerID is the identity shipped in stock broker templates.
	defaultBrokerID = "0"
)

// Coordination returns the ensemble configuration. Every node receives the
// same document: base parameters followed by one server.<ordinal> line per
// node in topology order.
func Coordination(topo *topology.Topology) *properties.Document {
	doc := properties.New()
	doc.Set("tickTime", strconv.Itoa(zookeeperTickTime))
	doc.Set("dataDir", ZookeeperDataDir)
	doc.Set("clientPort", strconv.Itoa(config.ZookeeperClientPort))
	doc.Set("initLimit", strconv.Itoa(zookeeperInitLim))
	doc.Set("syncLimit", strconv.Itoa(zookeeperSyncLim))

	for _, node := range topo.Nodes {
		doc.Set(MemberKey(node.Ordinal), fmt.Sprintf("%s:%d:%d",
			node.Hostname, config.ZookeeperPeerPort, config.ZookeeperElectionPort))
	}
	return doc
}

// CoordinationText is Coordination serialized.
func CoordinationText(topo *topology.Topology) string {
	return Coordination(topo).String()
}

// MemberKey returns the ensemble member key for an ordinal.
func MemberKey(ordinal int) string {
	return fmt.Sprintf("server.%d", ordinal)
}

// MemberID returns the content of a node's myid file.
func MemberID(ordinal int) string {
	return strconv.Itoa(ordinal)
}

// BrokerResult describes what Broker changed in the template.
type BrokerResult struct {
	IdentityRewritten  bool
	AdvertisedListener string
}

// Broker renders a node's broker configuration from template.
//
// The default identity entry broker.id=0 is rewritten to the node ordinal.
// When the template carries no such entry it is returned unchanged and
// IdentityRewritten is false. An advertised listener for publicHost is
// added only when brokerPortsOverridden is set and the node has an explicit
// broker host port.
func Broker(template string, node topology.NodeDescriptor, publicHost string, brokerPortsOverridden bool) (string, BrokerResult) {
	var result BrokerResult
	doc := properties.Parse(template)
	changed := false

	if id, ok := doc.Get(BrokerIDKey); ok && id == defaultBrokerID {
		doc.Set(BrokerIDKey, strconv.Itoa(node.Ordinal))
		result.IdentityRewritten = true
		changed = true
	}

	if publicHost != "" && brokerPortsOverridden && node.Broker.Overridden() {
		result.AdvertisedListener = fmt.Sprintf("PLAINTEXT://%s:%d", publicHost, node.Broker.External)
		doc.Set(AdvertisedListenersKey, result.AdvertisedListener)
		changed = true
	}

	if !changed {
		return template, result
	}
	return doc.String(), result
}
