// Package broker provides the phases that configure and start the Kafka
// brokers and wait until all of them are registered in ZooKeeper.
package broker
