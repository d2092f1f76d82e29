// Package coordination provides the phases that start the ZooKeeper
// ensemble and wait until every member answers.
package coordination
