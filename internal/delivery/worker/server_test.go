package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chatdesk/config"
	"chatdesk/internal/delivery/worker/handler"
	mockSvc "chatdesk/internal/mocks/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestWorkerRoutes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{AuditWorker: &config.AuditWorkerConfig{DedupWindow: 8}}
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:  cfg,
		Logger:  logger,
		Metrics: mockSvc.NewMockMetricsRecorder(t),
	})
	e := newEcho(cfg, logger, pushHandler, prometheus.NewRegistry())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
