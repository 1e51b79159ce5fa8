package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatdesk/config"
	deliverycontext "chatdesk/internal/delivery/context"
	domainerrors "chatdesk/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesAndPropagates(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	var ctxRequestID string
	var hasLogger bool
	handler := mw.Process(func(c echo.Context) error {
		ctxRequestID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/screen", nil), rec)))

	headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, headerID)
	assert.Equal(t, headerID, ctxRequestID)
	assert.True(t, hasLogger)
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, mw.Process(func(c echo.Context) error { return nil })(c))

	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-42", deliverycontext.GetRequestID(c))
}

func TestLoggerMiddleware_LogsFailuresAndSkipsProbes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})
	e := echo.New()

	run := func(path string, status int) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec)
		_ = mw.Handle(func(c echo.Context) error { return c.NoContent(status) })(c)
	}

	run("/health", http.StatusServiceUnavailable)
	assert.Empty(t, buf.String())

	run("/api/v1/screen", http.StatusOK)
	assert.Empty(t, buf.String(), "successful requests are quiet outside debug")

	run("/api/v1/moderation/flags", http.StatusForbidden)
	assert.Contains(t, buf.String(), "HTTP Request")
	assert.Contains(t, buf.String(), "status=403")
}

func TestLoggerMiddleware_UsesErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/moderation/flags", nil), httptest.NewRecorder())
	err := mw.Handle(func(c echo.Context) error { return domainerrors.ErrRateLimited })(c)

	require.Error(t, err)
	assert.Contains(t, buf.String(), "status=429")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLoggerMiddleware_DebugLogsEverything(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/screen?x=1", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))

	assert.Contains(t, buf.String(), "uri=/api/v1/screen")
	assert.Contains(t, buf.String(), `query="x=1"`)
}
