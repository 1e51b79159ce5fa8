package identity

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"chatdesk/internal/domain/entity"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSignIn struct {
	idToken string
	err     error

	customTokens []string
}

func (f *fakeSignIn) SignUpAnonymous(context.Context) (string, error) {
	return f.idToken, f.err
}

func (f *fakeSignIn) SignInWithCustomToken(_ context.Context, customToken string) (string, error) {
	f.customTokens = append(f.customTokens, customToken)

	return f.idToken, f.err
}

type fakeVerifier struct {
	tokens map[string]*auth.Token
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	token, ok := f.tokens[idToken]
	if !ok {
		return nil, errors.New("ID token has invalid signature")
	}

	return token, nil
}

// recorder collects auth states delivered to a listener.
type recorder struct {
	mu     sync.Mutex
	states []*entity.AuthSession
}

func (r *recorder) listen(_ context.Context, session *entity.AuthSession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states = append(r.states, session)
}

func (r *recorder) snapshot() []*entity.AuthSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*entity.AuthSession(nil), r.states...)
}

func newTestProvider(signIn *fakeSignIn) *firebaseProvider {
	verifier := &fakeVerifier{tokens: map[string]*auth.Token{
		"anon-id-token": {
			UID:      "anon-uid",
			Firebase: auth.FirebaseInfo{SignInProvider: "anonymous"},
			Claims:   map[string]any{},
		},
		"custom-id-token": {
			UID:      "mod-uid",
			Firebase: auth.FirebaseInfo{SignInProvider: "custom"},
			Claims:   map[string]any{"role": "admin"},
		},
	}}

	return newFirebaseProvider(signIn, verifier, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFirebaseProvider_SignInAnonymously(t *testing.T) {
	provider := newTestProvider(&fakeSignIn{idToken: "anon-id-token"})

	session, err := provider.SignInAnonymously(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "anon-uid", session.UserID)
	assert.Equal(t, "anon-id-token", session.IDToken)
	assert.True(t, session.IsAuthenticated)
	assert.True(t, session.Anonymous)
	assert.Same(t, session, provider.hub.currentSession())
}

func TestFirebaseProvider_SignInWithCustomToken(t *testing.T) {
	signIn := &fakeSignIn{idToken: "custom-id-token"}
	provider := newTestProvider(signIn)

	session, err := provider.SignInWithCustomToken(context.Background(), "custom-token")

	require.NoError(t, err)
	assert.Equal(t, []string{"custom-token"}, signIn.customTokens)
	assert.Equal(t, "mod-uid", session.UserID)
	assert.False(t, session.Anonymous)
	assert.Equal(t, "admin", session.ClaimString("role"))
}

func TestFirebaseProvider_SignInErrors(t *testing.T) {
	provider := newTestProvider(&fakeSignIn{err: errors.New("ADMIN_ONLY_OPERATION")})

	_, err := provider.SignInAnonymously(context.Background())
	require.Error(t, err)
	assert.Equal(t, "ADMIN_ONLY_OPERATION", errors.Cause(err).Error())

	provider = newTestProvider(&fakeSignIn{idToken: "forged"})
	_, err = provider.SignInAnonymously(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verification failed")
	assert.Nil(t, provider.hub.currentSession())
}

func TestFirebaseProvider_OnAuthStateChanged_DeliversInOrder(t *testing.T) {
	provider := newTestProvider(&fakeSignIn{idToken: "anon-id-token"})
	ctx := context.Background()

	rec := &recorder{}
	sub := provider.OnAuthStateChanged(rec.listen)
	defer sub.Unsubscribe()

	_, err := provider.SignInAnonymously(ctx)
	require.NoError(t, err)
	require.NoError(t, provider.SignOut(ctx))

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 3 }, time.Second, 5*time.Millisecond)

	states := rec.snapshot()
	assert.Nil(t, states[0], "initial state is signed out")
	require.NotNil(t, states[1])
	assert.Equal(t, "anon-uid", states[1].UserID)
	assert.Nil(t, states[2])
}

func TestFirebaseProvider_LateSubscriberGetsCurrentState(t *testing.T) {
	provider := newTestProvider(&fakeSignIn{idToken: "anon-id-token"})

	_, err := provider.SignInAnonymously(context.Background())
	require.NoError(t, err)

	rec := &recorder{}
	sub := provider.OnAuthStateChanged(rec.listen)
	defer sub.Unsubscribe()

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "anon-uid", rec.snapshot()[0].UserID)
}

func TestFirebaseProvider_Unsubscribe(t *testing.T) {
	provider := newTestProvider(&fakeSignIn{idToken: "anon-id-token"})

	rec := &recorder{}
	sub := provider.OnAuthStateChanged(rec.listen)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)

	sub.Unsubscribe()
	sub.Unsubscribe()

	_, err := provider.SignInAnonymously(context.Background())
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 1)
}

func TestFirebaseProvider_SignOutWithoutSessionIsNoop(t *testing.T) {
	provider := newTestProvider(&fakeSignIn{})

	rec := &recorder{}
	sub := provider.OnAuthStateChanged(rec.listen)
	defer sub.Unsubscribe()

	require.NoError(t, provider.SignOut(context.Background()))

	time.Sleep(20 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 1)
}

func TestAuthHub_CloseStopsSubscribers(t *testing.T) {
	hub := newAuthHub()

	rec := &recorder{}
	hub.subscribe(rec.listen)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)

	hub.close()
	hub.publish(&entity.AuthSession{UserID: "x", IsAuthenticated: true})
	late := &recorder{}
	hub.subscribe(late.listen)

	time.Sleep(20 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 1)
	assert.Empty(t, late.snapshot())
}
