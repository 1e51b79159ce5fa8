package middleware

import (
	"log/slog"

	"chatdesk/config"
	deliverycontext "chatdesk/internal/delivery/context"
	domainerrors "chatdesk/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware bounds how fast moderator actions reach the chat service.
// The desk acts as a single identity, so one shared limiter is enough.
type RateLimitMiddleware struct {
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware builds the limiter from moderation.ratePerMinute and
// moderation.burst. A non-positive rate disables limiting.
func NewRateLimitMiddleware(cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	limit := rate.Inf
	burst := 0
	if cfg.Moderation != nil && cfg.Moderation.RatePerMinute > 0 {
		limit = rate.Limit(cfg.Moderation.RatePerMinute / 60)
		burst = max(cfg.Moderation.Burst, 1)
	}

	return &RateLimitMiddleware{
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// Limit rejects the request with 429 once the budget is spent.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.limiter.Allow() {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Moderator action rate limited", slog.String("path", c.Path()))

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
