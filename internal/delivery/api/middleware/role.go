package middleware

import (
	"chatdesk/internal/domain/entity"
	domainerrors "chatdesk/internal/domain/errors"
	"chatdesk/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RoleMiddleware gates routes on the role of the desk's resolved identity.
type RoleMiddleware struct {
	session usecase.SessionUsecase
}

// NewRoleMiddleware is the constructor for RoleMiddleware.
func NewRoleMiddleware(session usecase.SessionUsecase) *RoleMiddleware {
	return &RoleMiddleware{session: session}
}

// RequireRole rejects requests until an identity with required is resolved.
func (m *RoleMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := m.session.CurrentIdentity()
			if !ok {
				return domainerrors.ErrNotReady.WithDetails("identity not resolved yet")
			}
			if identity.Role != required {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
