package provisioning_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/kafka-topology/internal/provisioning"
	testutil "github.com/imamik/kafka-topology/internal/testing"
)

type stubPhase struct {
	name string
	err  error
	ran  *[]string
}

func (p stubPhase) Name() string { return p.name }

func (p stubPhase) Provision(_ *provisioning.Context) error {
	*p.ran = append(*p.ran, p.name)
	return p.err
}

func TestRunPhases_RunsInOrder(t *testing.T) {
	cfg := testutil.TestConfig()
	pCtx := testutil.NewProvisioningContext(t, cfg, testutil.NewFakeFabric(nil), &testutil.MockProber{})

	var ran []string
	phases := []provisioning.Phase{
		stubPhase{name: "one", ran: &ran},
		stubPhase{name: "two", ran: &ran},
		stubPhase{name: "three", ran: &ran},
	}

	require.NoError(t, provisioning.RunPhases(pCtx, phases))
	assert.Equal(t, []string{"one", "two", "three"}, ran)
	require.Len(t, pCtx.State.Phases, 3)
	for _, timing := range pCtx.State.Phases {
		assert.False(t, timing.Failed)
	}
}

func TestRunPhases_StopsAtFirstFailure(t *testing.T) {
	cfg := testutil.TestConfig()
	pCtx := testutil.NewProvisioningContext(t, cfg, testutil.NewFakeFabric(nil), &testutil.MockProber{})

	boom := errors.New("boom")
	var ran []string
	phases := []provisioning.Phase{
		stubPhase{name: "one", ran: &ran},
		stubPhase{name: "two", err: boom, ran: &ran},
		stubPhase{name: "three", ran: &ran},
	}

	err := provisioning.RunPhases(pCtx, phases)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "two phase failed")
	assert.Equal(t, []string{"one", "two"}, ran)

	require.Len(t, pCtx.State.Phases, 2)
	assert.True(t, pCtx.State.Phases[1].Failed)
}

func TestState_Designated(t *testing.T) {
	state := provisioning.NewState()
	assert.Nil(t, state.Designated())

	first := testutil.NewFakeNode("node-1.cluster", nil)
	state.Nodes = []provisioning.Node{first, testutil.NewFakeNode("node-2.cluster", nil)}
	assert.Same(t, first, state.Designated())
}

func TestExecResult_Succeeded(t *testing.T) {
	var nilResult *provisioning.ExecResult
	assert.False(t, nilResult.Succeeded())
	assert.True(t, (&provisioning.ExecResult{}).Succeeded())
	assert.False(t, (&provisioning.ExecResult{ExitCode: 1}).Succeeded())
}
