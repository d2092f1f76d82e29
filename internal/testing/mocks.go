package testing

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/imamik/kafka-topology/internal/provisioning"
)

// MockProber is a mock implementation of the provisioning.Prober interface.
type MockProber struct {
	mock.Mock
}

// CoordinationReady reports the mocked ZooKeeper readiness.
func (m *MockProber) CoordinationReady(ctx context.Context, node provisioning.Node) bool {
	args := m.Called(ctx, node)
	return args.Bool(0)
}

// BrokersReady reports the mocked broker registration state.
func (m *MockProber) BrokersReady(ctx context.Context, node provisioning.Node, expected int) bool {
	args := m.Called(ctx, node, expected)
	return args.Bool(0)
}

// MockFabric is a mock implementation of the provisioning.Fabric interface.
type MockFabric struct {
	mock.Mock
}

// CreateNodes returns the mocked node handles.
func (m *MockFabric) CreateNodes(specs []provisioning.NodeSpec) ([]provisioning.Node, error) {
	args := m.Called(specs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provisioning.Node), args.Error(1)
}

// StartAll returns the mocked start result.
func (m *MockFabric) StartAll(ctx context.Context, network string, pullImages bool) error {
	args := m.Called(ctx, network, pullImages)
	return args.Error(0)
}
