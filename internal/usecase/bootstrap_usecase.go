package usecase

import (
	"context"

	"chatdesk/internal/domain/entity"
)

// BootstrapUsecase drives sign-in through to an open channel.
type BootstrapUsecase interface {
	// Start signs in and registers the auth-state listener. Failures are
	// published to the screen as the error phase and also returned.
	Start(ctx context.Context) error

	// HandleAuthState runs the token, connect and channel steps for an
	// authenticated session and ignores signed-out transitions.
	HandleAuthState(ctx context.Context, session *entity.AuthSession)

	// Shutdown releases the listener, the chat session and the auth session.
	Shutdown(ctx context.Context) error
}
