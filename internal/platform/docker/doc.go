// Package docker implements the cluster fabric and node handles on top of
// the docker CLI.
//
// Every docker invocation goes through a [Runner], so the same fabric works
// against the local daemon ([LocalRunner]) or a remote host reached over SSH.
// Each node is one container attached to a shared network under its cluster
// hostname; remote commands run with docker exec.
package docker
