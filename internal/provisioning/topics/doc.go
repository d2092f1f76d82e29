// Package topics provides the phase that creates topics once the cluster
// is healthy.
package topics
