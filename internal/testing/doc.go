// Package testing provides test doubles and helpers shared by package tests.
//
// This package centralizes the fakes for the bring-up collaborators:
//   - Recorder: ordered log of every call made against fakes
//   - FakeNode: scripted node handle with an in-memory file system
//   - FakeFabric: fabric returning FakeNodes
//   - MockProber / MockFabric: testify mocks for expectation-style tests
//
// Usage:
//
//	rec := testutil.NewRecorder()
//	fabric := testutil.NewFakeFabric(rec)
//	node := fabric.AddNode("node-1.cluster")
//	node.OnCommand("ls /", provisioning.ExecResult{ExitCode: 0})
package testing
