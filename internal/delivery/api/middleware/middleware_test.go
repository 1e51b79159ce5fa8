package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatdesk/config"
	"chatdesk/internal/delivery/api/response"
	"chatdesk/internal/domain/entity"
	domainerrors "chatdesk/internal/domain/errors"
	"chatdesk/internal/errors"
	mockUC "chatdesk/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	e.POST("/action", func(c echo.Context) error {
		return response.Success(c, http.StatusOK, map[string]string{"ok": "yes"})
	}, mw...)

	return e
}

func serve(e *echo.Echo) (*httptest.ResponseRecorder, response.ErrorResponse) {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/action", nil))

	var body response.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec, body
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		identity   *entity.Identity
		resolved   bool
		wantStatus int
		wantCode   string
	}{
		{
			name:       "admin passes",
			identity:   &entity.Identity{ID: "moderator-user", Role: entity.RoleAdmin},
			resolved:   true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "user is forbidden",
			identity:   &entity.Identity{ID: "gaming-user", Role: entity.RoleUser},
			resolved:   true,
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "no identity yet",
			resolved:   false,
			wantStatus: http.StatusConflict,
			wantCode:   "NOT_READY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := mockUC.NewMockSessionUsecase(t)
			session.EXPECT().CurrentIdentity().Return(tt.identity, tt.resolved)

			e := newTestEcho(NewRoleMiddleware(session).RequireRole(entity.RoleAdmin))
			rec, body := serve(e)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				require.NotNil(t, body.Error)
				assert.Equal(t, tt.wantCode, body.Error.Code)
			}
		})
	}
}

func TestRateLimit_RejectsAfterBurst(t *testing.T) {
	cfg := &config.Config{Moderation: &config.ModerationConfig{RatePerMinute: 1, Burst: 2}}
	limiter := NewRateLimitMiddleware(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := newTestEcho(limiter.Limit)

	for range 2 {
		rec, _ := serve(e)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec, body := serve(e)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "RATE_LIMITED", body.Error.Code)
}

func TestRateLimit_DisabledWithoutRate(t *testing.T) {
	cfg := &config.Config{Moderation: &config.ModerationConfig{}}
	e := newTestEcho(NewRateLimitMiddleware(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).Limit)

	for range 10 {
		rec, _ := serve(e)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "app error", err: domainerrors.ErrBanPromptNotOpen, wantStatus: http.StatusConflict, wantCode: "BAN_PROMPT_NOT_OPEN"},
		{name: "wrapped app error", err: errors.Wrap(domainerrors.ErrSelfModeration, "flag"), wantStatus: http.StatusForbidden, wantCode: "SELF_MODERATION"},
		{name: "echo error", err: echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), wantStatus: http.StatusMethodNotAllowed, wantCode: "HTTP_ERROR"},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}
