package service

import (
	"context"

	"chatdesk/internal/domain/entity"
)

// AuthStateListener receives authentication state transitions.
// session is nil when the user is signed out.
type AuthStateListener func(ctx context.Context, session *entity.AuthSession)

// Subscription is a registered AuthStateListener. Unsubscribe is idempotent.
type Subscription interface {
	Unsubscribe()
}

// IdentityProvider abstracts the external identity provider.
type IdentityProvider interface {
	// SignInWithCustomToken redeems a pre-issued custom token.
	SignInWithCustomToken(ctx context.Context, token string) (*entity.AuthSession, error)

	// SignInAnonymously creates an anonymous session.
	SignInAnonymously(ctx context.Context) (*entity.AuthSession, error)

	// OnAuthStateChanged registers listener. The current state, if any, is
	// delivered first; transitions follow in order, one at a time.
	OnAuthStateChanged(listener AuthStateListener) Subscription

	// SignOut ends the current session and notifies listeners.
	SignOut(ctx context.Context) error
}
