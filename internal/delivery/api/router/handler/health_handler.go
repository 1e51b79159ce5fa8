package handler

import (
	"net/http"

	"chatdesk/internal/delivery/api/response"
	"chatdesk/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness together with the current screen phase.
type HealthHandler struct {
	screen usecase.ScreenUsecase
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(screen usecase.ScreenUsecase) *HealthHandler {
	return &HealthHandler{screen: screen}
}

// HealthCheck always answers 200 while the process is up. The desk being in
// the error phase is not a liveness failure.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status": "ok",
		"phase":  string(h.screen.State().Phase),
	})
}
