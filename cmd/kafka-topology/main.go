// Package main is the entry point for the kafka-topology CLI.
//
// kafka-topology brings up a multi-node Apache Kafka cluster with an embedded
// ZooKeeper ensemble on docker containers, either against the local docker
// daemon or a remote docker host reached over SSH.
//
// Commands: start, version, completion.
//
// For detailed usage information, run:
//
//	kafka-topology --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/kafka-topology/cmd/kafka-topology/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	commands.SetVersionInfo(version, commit, date)
	err := commands.Root().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
