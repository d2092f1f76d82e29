// Package orchestration provides high-level workflow coordination for a
// cluster bring-up.
//
// This package orchestrates the bring-up by delegating to specialized
// provisioners in the internal/provisioning subpackages. It defines the
// execution order and coordinates state flow between phases.
//
// # Workflow
//
// The Sequencer executes the following phases in order, each gated on the
// previous one:
//  1. provision - create and start the nodes through the fabric
//  2. coordination - write ensemble config and start ZooKeeper on every node
//  3. coordination-validation - wait until ZooKeeper answers on every node
//  4. broker - render broker config and start Kafka on every node
//  5. broker-validation - wait until all brokers are registered
//  6. topics - create the requested topics
//
// # Usage
//
//	seq, err := orchestration.New(cfg, fabric, nil, logger)
//	if err != nil {
//	    return err // configuration error, nothing was started
//	}
//	outcome, err := seq.Run(ctx)
//
// There is no rollback: a failed run leaves the nodes as they are.
package orchestration
