package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"magicprompt_server/internal/session"
	"magicprompt_server/internal/types"
)

func newFlow() *Flow {
	svc := NewService(nil, zap.NewNop().Sugar())
	return NewFlow(svc, session.NewStore())
}

func TestFlowFullRun(t *testing.T) {
	ctx := context.Background()
	flow := newFlow()

	qs, err := flow.SubmitGoal(ctx, "write a launch email for our new app")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qs.Questions), 4)
	assert.Equal(t, types.TaskEmail, qs.TaskType)

	flow.Answer(0, "existing customers")
	flow.Answer(2, "friendly but concise")

	enh, err := flow.BuildPrompt(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, enh.Prompt)
	assert.Equal(t, types.TaskEmail, enh.TaskType)

	vars, err := flow.Variations(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, vars.Variants, 3)
	for _, v := range vars.Variants {
		assert.Contains(t, v, enh.Prompt)
	}

	td, err := flow.TestDrive(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, td.Sample)
}

func TestFlowBuildPromptBeforeGoal(t *testing.T) {
	flow := newFlow()

	_, err := flow.BuildPrompt(context.Background())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFlowResetClearsState(t *testing.T) {
	ctx := context.Background()
	flow := newFlow()

	_, err := flow.SubmitGoal(ctx, "write a launch email")
	require.NoError(t, err)
	first := flow.SessionID()

	flow.Reset()
	assert.NotEqual(t, first, flow.SessionID())

	_, err = flow.BuildPrompt(ctx)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFlowSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore()
	svc := NewService(nil, zap.NewNop().Sugar())

	a := NewFlow(svc, store)
	b := NewFlow(svc, store)
	require.NotEqual(t, a.SessionID(), b.SessionID())

	_, err := a.SubmitGoal(ctx, "write a launch email")
	require.NoError(t, err)

	_, err = b.BuildPrompt(ctx)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
