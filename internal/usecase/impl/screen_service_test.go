package impl

import (
	"testing"

	"chatdesk/internal/domain/entity"
	domainerrors "chatdesk/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenStore_InitialState(t *testing.T) {
	store := NewScreenStore(newQuietMetrics(t))

	state := store.State()

	assert.Equal(t, entity.PhaseLoading, state.Phase)
	assert.Nil(t, state.ActiveChannel)
	assert.Empty(t, state.ErrorMessage)
}

func TestScreenStore_ReadyThenBack(t *testing.T) {
	store := NewScreenStore(newQuietMetrics(t))
	store.ready(gamingChannel())

	state := store.State()
	require.Equal(t, entity.PhaseReady, state.Phase)
	require.NotNil(t, state.ActiveChannel)
	assert.Equal(t, "gaming-group", state.ActiveChannel.ID)

	store.openBanPrompt(entity.ChatUser{ID: "U1"})
	require.NoError(t, store.Back())

	state = store.State()
	assert.Equal(t, entity.PhaseLoading, state.Phase)
	assert.Nil(t, state.ActiveChannel)
	assert.Nil(t, state.BanPrompt)
}

func TestScreenStore_FailThenDismiss(t *testing.T) {
	store := NewScreenStore(newQuietMetrics(t))
	store.ready(gamingChannel())
	store.fail("db down")

	state := store.State()
	require.Equal(t, entity.PhaseError, state.Phase)
	assert.Equal(t, "db down", state.ErrorMessage)
	assert.Nil(t, state.ActiveChannel)

	require.NoError(t, store.Dismiss())

	state = store.State()
	assert.Equal(t, entity.PhaseLoading, state.Phase)
	assert.Empty(t, state.ErrorMessage)
}

func TestScreenStore_InvalidTransitions(t *testing.T) {
	store := NewScreenStore(newQuietMetrics(t))

	require.ErrorIs(t, store.Dismiss(), domainerrors.ErrInvalidTransition)
	require.ErrorIs(t, store.Back(), domainerrors.ErrInvalidTransition)

	store.ready(gamingChannel())
	require.ErrorIs(t, store.Dismiss(), domainerrors.ErrInvalidTransition)

	store.fail("boom")
	require.ErrorIs(t, store.Back(), domainerrors.ErrInvalidTransition)
}

func TestScreenStore_StateIsACopy(t *testing.T) {
	store := NewScreenStore(newQuietMetrics(t))
	store.ready(gamingChannel())

	state := store.State()
	state.ActiveChannel.ID = "mutated"

	assert.Equal(t, "gaming-group", store.State().ActiveChannel.ID)
}

func TestScreenStore_Status(t *testing.T) {
	store := NewScreenStore(newQuietMetrics(t))

	store.setStatus("Message has been flagged.")
	assert.Equal(t, "Message has been flagged.", store.State().Status)

	store.ClearStatus()
	assert.Empty(t, store.State().Status)
}

func TestScreenStore_BanPrompt(t *testing.T) {
	store := NewScreenStore(newQuietMetrics(t))

	_, err := store.setBanReason("spam")
	require.ErrorIs(t, err, domainerrors.ErrBanPromptNotOpen)

	store.openBanPrompt(entity.ChatUser{ID: "U1", Name: "Bob"})
	prompt, err := store.setBanReason("spam")
	require.NoError(t, err)
	assert.Equal(t, "spam", prompt.Reason)

	store.failBanPrompt(prompt.Target, "spam", "Error banning user: Network error")
	state := store.State()
	require.NotNil(t, state.BanPrompt)
	assert.Equal(t, "spam", state.BanPrompt.Reason)
	assert.Equal(t, "Error banning user: Network error", state.BanPrompt.Error)
	assert.Equal(t, "Error banning user: Network error", state.Status)

	store.closeBanPrompt()
	assert.Nil(t, store.State().BanPrompt)

	store.failBanPrompt(prompt.Target, "spam", "Error banning user: timeout")
	state = store.State()
	assert.Nil(t, state.BanPrompt)
	assert.Equal(t, "Error banning user: timeout", state.Status)

	store.openBanPrompt(entity.ChatUser{ID: "U2", Name: "Ann"})
	store.failBanPrompt(prompt.Target, "spam", "Error banning user: timeout")
	state = store.State()
	require.NotNil(t, state.BanPrompt)
	assert.Equal(t, "U2", state.BanPrompt.Target.ID)
	assert.Empty(t, state.BanPrompt.Reason)
	assert.Empty(t, state.BanPrompt.Error)
}

func TestScreenStore_RecordsPhases(t *testing.T) {
	metrics := newQuietMetrics(t)
	store := NewScreenStore(metrics)

	store.ready(gamingChannel())
	store.fail("x")

	metrics.AssertCalled(t, "RecordPhase", "ready")
	metrics.AssertCalled(t, "RecordPhase", "error")
}
