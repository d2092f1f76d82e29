// Package ssh provides an SSH command runner for a remote docker host.
//
// The [Client] implements docker.Runner so the docker fabric can drive a
// daemon on another machine. Connections are established lazily with
// retrying dials and reused across commands; a broken connection is dropped
// and redialed on the next command.
//
// Host key verification is disabled unless Config.HostKeyCallback is set.
package ssh
