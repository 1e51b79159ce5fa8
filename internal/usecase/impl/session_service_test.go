package impl

import (
	"context"
	"testing"

	"chatdesk/internal/domain/entity"
	domainerrors "chatdesk/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_ResolveIdentity_ConfigRole(t *testing.T) {
	service := NewSessionService(newTestConfig("admin"), newTestLogger())

	identity, err := service.ResolveIdentity(context.Background(), authenticatedSession("firebase-uid"))

	require.NoError(t, err)
	assert.Equal(t, "moderator-user", identity.ID)
	assert.Equal(t, "Moderator", identity.DisplayName)
	assert.Equal(t, entity.RoleAdmin, identity.Role)
	assert.True(t, identity.IsAdmin())
}

func TestSessionService_ResolveIdentity_ClaimOverridesConfig(t *testing.T) {
	service := NewSessionService(newTestConfig("admin"), newTestLogger())
	session := authenticatedSession("firebase-uid")
	session.Claims = map[string]any{"role": "user"}

	identity, err := service.ResolveIdentity(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, "gaming-user", identity.ID)
	assert.Equal(t, entity.RoleUser, identity.Role)
	assert.False(t, identity.IsAdmin())
}

func TestSessionService_ResolveIdentity_UnknownClaimFallsBack(t *testing.T) {
	service := NewSessionService(newTestConfig("user"), newTestLogger())
	session := authenticatedSession("firebase-uid")
	session.Claims = map[string]any{"role": "superuser"}

	identity, err := service.ResolveIdentity(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, "gaming-user", identity.ID)
}

func TestSessionService_ResolveIdentity_IsStable(t *testing.T) {
	service := NewSessionService(newTestConfig("admin"), newTestLogger())
	ctx := context.Background()

	first, err := service.ResolveIdentity(ctx, authenticatedSession("a"))
	require.NoError(t, err)

	session := authenticatedSession("b")
	session.Claims = map[string]any{"role": "user"}
	second, err := service.ResolveIdentity(ctx, session)
	require.NoError(t, err)

	assert.Same(t, first, second)

	current, ok := service.CurrentIdentity()
	require.True(t, ok)
	assert.Same(t, first, current)
}

func TestSessionService_ResolveIdentity_Unauthenticated(t *testing.T) {
	service := NewSessionService(newTestConfig("admin"), newTestLogger())

	_, err := service.ResolveIdentity(context.Background(), &entity.AuthSession{UserID: "x"})
	require.ErrorIs(t, err, domainerrors.ErrAuth)

	_, err = service.ResolveIdentity(context.Background(), nil)
	require.ErrorIs(t, err, domainerrors.ErrAuth)

	_, ok := service.CurrentIdentity()
	assert.False(t, ok)
}

func TestSessionService_ResolveIdentity_InvalidConfigRole(t *testing.T) {
	service := NewSessionService(newTestConfig("owner"), newTestLogger())

	_, err := service.ResolveIdentity(context.Background(), authenticatedSession("a"))

	require.ErrorIs(t, err, domainerrors.ErrAuth)
}
