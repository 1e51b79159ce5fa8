package impl

import (
	"context"
	"testing"
	"time"

	"chatdesk/config"
	"chatdesk/internal/domain/entity"
	domainerrors "chatdesk/internal/domain/errors"
	"chatdesk/internal/domain/service"
	"chatdesk/internal/errors"
	mockSvc "chatdesk/internal/mocks/service"
	"chatdesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bootstrapFixture struct {
	cfg      *config.Config
	identity *mockSvc.MockIdentityProvider
	tokens   *mockSvc.MockTokenService
	chat     *mockSvc.MockChatService
	session  usecase.SessionUsecase
	screen   *ScreenStore
	service  usecase.BootstrapUsecase
}

func newBootstrapFixture(t *testing.T, role string) *bootstrapFixture {
	t.Helper()

	f := &bootstrapFixture{
		cfg:      newTestConfig(role),
		identity: mockSvc.NewMockIdentityProvider(t),
		tokens:   mockSvc.NewMockTokenService(t),
		chat:     mockSvc.NewMockChatService(t),
	}
	metrics := newQuietMetrics(t)
	logger := newTestLogger()
	f.session = NewSessionService(f.cfg, logger)
	f.screen = NewScreenStore(metrics)
	f.service = NewBootstrapService(f.cfg, logger, f.identity, f.tokens, f.chat, f.session, f.screen, metrics)

	return f
}

func (f *bootstrapFixture) expectChannelWatch() {
	f.chat.EXPECT().
		WatchChannel(mock.Anything, entity.ChannelSpec{
			Type:            "messaging",
			ID:              "gaming-group",
			ProfanityFilter: "profanity_en_2020_v1",
		}).
		Return(gamingChannel(), nil).
		Once()
}

func TestBootstrapService_Start_SignsInAnonymouslyAndSubscribes(t *testing.T) {
	f := newBootstrapFixture(t, "admin")
	ctx := context.Background()
	sub := mockSvc.NewMockSubscription(t)

	var listener service.AuthStateListener
	f.identity.EXPECT().SignInAnonymously(mock.Anything).Return(authenticatedSession("anon-1"), nil).Once()
	f.identity.EXPECT().
		OnAuthStateChanged(mock.Anything).
		Run(func(l service.AuthStateListener) { listener = l }).
		Return(sub).
		Once()

	require.NoError(t, f.service.Start(ctx))
	require.NotNil(t, listener)
	assert.Equal(t, entity.PhaseLoading, f.screen.State().Phase)

	// Second Start reuses the existing subscription.
	f.identity.EXPECT().SignInAnonymously(mock.Anything).Return(authenticatedSession("anon-1"), nil).Once()
	require.NoError(t, f.service.Start(ctx))
}

func TestBootstrapService_Start_UsesCustomToken(t *testing.T) {
	f := newBootstrapFixture(t, "admin")
	f.cfg.Firebase.InitialAuthToken = "custom-token"

	f.identity.EXPECT().
		SignInWithCustomToken(mock.Anything, "custom-token").
		Return(authenticatedSession("uid-1"), nil).
		Once()
	f.identity.EXPECT().OnAuthStateChanged(mock.Anything).Return(mockSvc.NewMockSubscription(t)).Once()

	require.NoError(t, f.service.Start(context.Background()))
}

func TestBootstrapService_Start_SignInFailure(t *testing.T) {
	f := newBootstrapFixture(t, "admin")

	f.identity.EXPECT().
		SignInAnonymously(mock.Anything).
		Return(nil, errors.New("auth/operation-not-allowed")).
		Once()

	err := f.service.Start(context.Background())

	require.ErrorIs(t, err, domainerrors.ErrAuth)
	state := f.screen.State()
	assert.Equal(t, entity.PhaseError, state.Phase)
	assert.Equal(t, "auth/operation-not-allowed", state.ErrorMessage)
}

func TestBootstrapService_HandleAuthState_ReachesReady(t *testing.T) {
	f := newBootstrapFixture(t, "admin")
	ctx := context.Background()
	session := authenticatedSession("anon-1")

	f.tokens.EXPECT().FetchToken(mock.Anything, "moderator-user", session.IDToken).Return("abc123", nil).Once()
	f.chat.EXPECT().IsConnected().Return(false).Once()
	f.chat.EXPECT().
		ConnectUser(mock.Anything, entity.ChatUser{ID: "moderator-user", Name: "Moderator"}, "abc123").
		Return(&entity.ChatSession{UserID: "moderator-user", ConnectionID: "conn-1", Connected: true}, nil).
		Once()
	f.expectChannelWatch()

	f.service.HandleAuthState(ctx, session)

	state := f.screen.State()
	require.Equal(t, entity.PhaseReady, state.Phase)
	require.NotNil(t, state.ActiveChannel)
	assert.Equal(t, "gaming-group", state.ActiveChannel.ID)
	assert.Empty(t, state.ErrorMessage)
}

func TestBootstrapService_HandleAuthState_TokenServerError(t *testing.T) {
	f := newBootstrapFixture(t, "admin")

	f.tokens.EXPECT().
		FetchToken(mock.Anything, "moderator-user", mock.Anything).
		Return("", errors.New("db down")).
		Once()

	f.service.HandleAuthState(context.Background(), authenticatedSession("anon-1"))

	state := f.screen.State()
	assert.Equal(t, entity.PhaseError, state.Phase)
	assert.Equal(t, "db down", state.ErrorMessage)
	assert.Nil(t, state.ActiveChannel)
	f.chat.AssertNotCalled(t, "ConnectUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestBootstrapService_HandleAuthState_ShutdownMidStepStaysLoading(t *testing.T) {
	f := newBootstrapFixture(t, "admin")

	f.chat.EXPECT().IsConnected().Return(false).Once()
	f.identity.EXPECT().SignOut(mock.Anything).Return(nil).Once()
	f.tokens.EXPECT().
		FetchToken(mock.Anything, "moderator-user", mock.Anything).
		RunAndReturn(func(context.Context, string, string) (string, error) {
			require.NoError(t, f.service.Shutdown(context.Background()))
			return "", context.Canceled
		}).
		Once()

	f.service.HandleAuthState(context.Background(), authenticatedSession("anon-1"))

	state := f.screen.State()
	assert.Equal(t, entity.PhaseLoading, state.Phase)
	assert.Empty(t, state.ErrorMessage)
	f.chat.AssertNotCalled(t, "ConnectUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestBootstrapService_HandleAuthState_CanceledWithoutShutdownFails(t *testing.T) {
	f := newBootstrapFixture(t, "admin")

	f.tokens.EXPECT().
		FetchToken(mock.Anything, "moderator-user", mock.Anything).
		Return("", context.Canceled).
		Once()

	f.service.HandleAuthState(context.Background(), authenticatedSession("anon-1"))

	assert.Equal(t, entity.PhaseError, f.screen.State().Phase)
}

func TestBootstrapService_HandleAuthState_EmptyToken(t *testing.T) {
	f := newBootstrapFixture(t, "admin")

	f.tokens.EXPECT().FetchToken(mock.Anything, mock.Anything, mock.Anything).Return("", nil).Once()

	f.service.HandleAuthState(context.Background(), authenticatedSession("anon-1"))

	state := f.screen.State()
	assert.Equal(t, entity.PhaseError, state.Phase)
	assert.Equal(t, "Failed to fetch token", state.ErrorMessage)
}

func TestBootstrapService_HandleAuthState_DuplicateEventConnectsOnce(t *testing.T) {
	f := newBootstrapFixture(t, "admin")
	ctx := context.Background()
	session := authenticatedSession("anon-1")

	f.tokens.EXPECT().FetchToken(mock.Anything, "moderator-user", mock.Anything).Return("abc123", nil).Times(2)
	f.chat.EXPECT().IsConnected().Return(false).Once()
	f.chat.EXPECT().IsConnected().Return(true).Once()
	f.chat.EXPECT().
		ConnectUser(mock.Anything, mock.Anything, "abc123").
		Return(&entity.ChatSession{UserID: "moderator-user", Connected: true}, nil).
		Once()
	f.expectChannelWatch()

	f.service.HandleAuthState(ctx, session)
	f.service.HandleAuthState(ctx, session)

	assert.Equal(t, entity.PhaseReady, f.screen.State().Phase)
}

func TestBootstrapService_HandleAuthState_ConnectFailure(t *testing.T) {
	f := newBootstrapFixture(t, "user")

	f.tokens.EXPECT().FetchToken(mock.Anything, "gaming-user", mock.Anything).Return("abc123", nil).Once()
	f.chat.EXPECT().IsConnected().Return(false).Once()
	f.chat.EXPECT().
		ConnectUser(mock.Anything, mock.Anything, "abc123").
		Return(nil, errors.Wrap(errors.New("invalid api key"), "websocket dial")).
		Once()

	f.service.HandleAuthState(context.Background(), authenticatedSession("anon-1"))

	state := f.screen.State()
	assert.Equal(t, entity.PhaseError, state.Phase)
	assert.Equal(t, "invalid api key", state.ErrorMessage)
}

func TestBootstrapService_HandleAuthState_WatchFailure(t *testing.T) {
	f := newBootstrapFixture(t, "admin")

	f.tokens.EXPECT().FetchToken(mock.Anything, mock.Anything, mock.Anything).Return("abc123", nil).Once()
	f.chat.EXPECT().IsConnected().Return(false).Once()
	f.chat.EXPECT().
		ConnectUser(mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.ChatSession{UserID: "moderator-user", Connected: true}, nil).
		Once()
	f.chat.EXPECT().
		WatchChannel(mock.Anything, mock.Anything).
		Return(nil, errors.New("channel not found")).
		Once()

	f.service.HandleAuthState(context.Background(), authenticatedSession("anon-1"))

	state := f.screen.State()
	assert.Equal(t, entity.PhaseError, state.Phase)
	assert.Equal(t, "channel not found", state.ErrorMessage)
}

func TestBootstrapService_HandleAuthState_Unauthenticated(t *testing.T) {
	f := newBootstrapFixture(t, "admin")

	f.service.HandleAuthState(context.Background(), nil)
	f.service.HandleAuthState(context.Background(), &entity.AuthSession{UserID: "x"})

	assert.Equal(t, entity.PhaseLoading, f.screen.State().Phase)
	_, resolved := f.session.CurrentIdentity()
	assert.False(t, resolved)
}

func TestBootstrapService_HandleAuthState_StepTimeout(t *testing.T) {
	f := newBootstrapFixture(t, "admin")
	f.cfg.Bootstrap.StepTimeout = 20 * time.Millisecond

	f.tokens.EXPECT().
		FetchToken(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _, _ string) (string, error) {
			<-ctx.Done()

			return "", ctx.Err()
		}).
		Once()

	f.service.HandleAuthState(context.Background(), authenticatedSession("anon-1"))

	state := f.screen.State()
	assert.Equal(t, entity.PhaseError, state.Phase)
	assert.Equal(t, context.DeadlineExceeded.Error(), state.ErrorMessage)
}

func TestBootstrapService_Shutdown(t *testing.T) {
	f := newBootstrapFixture(t, "admin")
	ctx := context.Background()
	sub := mockSvc.NewMockSubscription(t)

	f.identity.EXPECT().SignInAnonymously(mock.Anything).Return(authenticatedSession("anon-1"), nil).Once()
	f.identity.EXPECT().OnAuthStateChanged(mock.Anything).Return(sub).Once()
	require.NoError(t, f.service.Start(ctx))

	sub.EXPECT().Unsubscribe().Once()
	f.chat.EXPECT().IsConnected().Return(true).Once()
	f.chat.EXPECT().DisconnectUser(mock.Anything).Return(nil).Once()
	f.identity.EXPECT().SignOut(mock.Anything).Return(nil).Once()

	require.NoError(t, f.service.Shutdown(ctx))

	// A second shutdown has no subscription or connection left.
	f.chat.EXPECT().IsConnected().Return(false).Once()
	f.identity.EXPECT().SignOut(mock.Anything).Return(nil).Once()

	require.NoError(t, f.service.Shutdown(ctx))
}

func TestBootstrapService_Shutdown_CollectsErrors(t *testing.T) {
	f := newBootstrapFixture(t, "admin")

	f.chat.EXPECT().IsConnected().Return(true).Once()
	f.chat.EXPECT().DisconnectUser(mock.Anything).Return(errors.New("socket closed")).Once()
	f.identity.EXPECT().SignOut(mock.Anything).Return(errors.New("revoked")).Once()

	err := f.service.Shutdown(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "socket closed")
	assert.Contains(t, err.Error(), "revoked")
}
