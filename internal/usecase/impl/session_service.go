// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"chatdesk/config"
	deliverycontext "chatdesk/internal/delivery/context"
	"chatdesk/internal/domain/entity"
	domainerrors "chatdesk/internal/domain/errors"
	"chatdesk/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	cfg       *config.IdentityConfig
	roleClaim string
	logger    *slog.Logger

	mu       sync.RWMutex
	identity *entity.Identity
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(cfg *config.Config, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		cfg:       cfg.Identity,
		roleClaim: cfg.Firebase.RoleClaim,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveIdentity picks the role from the verified role claim, falling back to
// the configured role, and maps it onto the configured chat profile.
func (srv *sessionService) ResolveIdentity(ctx context.Context, session *entity.AuthSession) (*entity.Identity, error) {
	if session == nil || !session.IsAuthenticated {
		return nil, domainerrors.ErrAuth.WithDetails("user is not authenticated")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.identity != nil {
		return srv.identity, nil
	}

	role, source := srv.resolveRole(session)
	if !role.IsValid() {
		return nil, domainerrors.ErrAuth.WithDetails("no valid role for user " + session.UserID)
	}

	profile := srv.cfg.Profiles.User
	if role == entity.RoleAdmin {
		profile = srv.cfg.Profiles.Admin
	}

	srv.identity = &entity.Identity{
		ID:          profile.ID,
		DisplayName: profile.Name,
		AvatarURL:   profile.AvatarURL,
		Role:        role,
	}

	srv.log(ctx).Info("Resolved chat identity",
		slog.String("auth_user_id", session.UserID),
		slog.String("identity_id", srv.identity.ID),
		slog.String("role", role.String()),
		slog.String("role_source", source),
	)

	return srv.identity, nil
}

// CurrentIdentity returns the resolved identity, if any.
func (srv *sessionService) CurrentIdentity() (*entity.Identity, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.identity, srv.identity != nil
}

func (srv *sessionService) resolveRole(session *entity.AuthSession) (entity.Role, string) {
	if role, ok := entity.ParseRole(session.ClaimString(srv.roleClaim)); ok {
		return role, "claim"
	}

	role, _ := entity.ParseRole(srv.cfg.Role)

	return role, "config"
}
