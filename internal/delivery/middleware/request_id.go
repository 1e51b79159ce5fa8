package middleware

import (
	"log/slog"

	deliverycontext "chatdesk/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware takes the client's X-Request-Id or assigns one, and
// attaches a request-scoped logger to the request context
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process runs before the logger middleware so every log line carries request_id
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if clientID := c.Request().Header.Get(deliverycontext.HeaderXRequestID); clientID != "" {
			ctx = deliverycontext.WithRequestID(ctx, clientID)
		}

		ctx, requestID := deliverycontext.EnsureRequestID(ctx, m.logger)
		c.SetRequest(c.Request().WithContext(ctx))

		// Echo context copy for the response envelope
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		return next(c)
	}
}
