package handler

import (
	"log/slog"
	"net/http"

	"chatdesk/internal/delivery/api/response"
	"chatdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScreenHandlerParams holds dependencies for ScreenHandler, injected by Fx.
type ScreenHandlerParams struct {
	fx.In

	ScreenUC     usecase.ScreenUsecase
	ModerationUC usecase.ModerationUsecase
	Logger       *slog.Logger
}

// ScreenHandler exposes the screen state machine and the open channel.
type ScreenHandler struct {
	screenUC     usecase.ScreenUsecase
	moderationUC usecase.ModerationUsecase
	logger       *slog.Logger
}

// NewScreenHandler is the constructor for ScreenHandler
func NewScreenHandler(params ScreenHandlerParams) *ScreenHandler {
	return &ScreenHandler{
		screenUC:     params.ScreenUC,
		moderationUC: params.ModerationUC,
		logger:       params.Logger,
	}
}

// GetState returns the current screen state
func (h *ScreenHandler) GetState(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.screenUC.State())
}

// Dismiss clears the error message and returns the screen to loading
func (h *ScreenHandler) Dismiss(c echo.Context) error {
	if err := h.screenUC.Dismiss(); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.screenUC.State())
}

// Back leaves the open channel
func (h *ScreenHandler) Back(c echo.Context) error {
	if err := h.screenUC.Back(); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.screenUC.State())
}

// ClearStatus removes the transient status line
func (h *ScreenHandler) ClearStatus(c echo.Context) error {
	h.screenUC.ClearStatus()

	return response.NoContent(c)
}

// GetMessages lists recent messages of the open channel with their moderator controls
func (h *ScreenHandler) GetMessages(c echo.Context) error {
	messages, err := h.moderationUC.Messages(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}
