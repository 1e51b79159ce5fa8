package usecase

import (
	"context"

	"chatdesk/internal/domain/entity"
)

// SessionUsecase resolves which chat identity the authenticated user acts as.
type SessionUsecase interface {
	// ResolveIdentity picks the identity for session on the first call and
	// returns the same identity on every later call.
	ResolveIdentity(ctx context.Context, session *entity.AuthSession) (*entity.Identity, error)

	// CurrentIdentity returns the resolved identity, if any.
	CurrentIdentity() (*entity.Identity, bool)
}
