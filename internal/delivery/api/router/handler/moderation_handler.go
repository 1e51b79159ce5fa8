package handler

import (
	"log/slog"
	"net/http"

	"chatdesk/internal/delivery/api/response"
	"chatdesk/internal/delivery/api/validator"
	"chatdesk/internal/domain/entity"
	"chatdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ModerationHandlerParams holds dependencies for ModerationHandler, injected by Fx.
type ModerationHandlerParams struct {
	fx.In

	ModerationUC usecase.ModerationUsecase
	ScreenUC     usecase.ScreenUsecase
	Logger       *slog.Logger
}

// ModerationHandler serves the moderator actions: flag and the ban prompt.
type ModerationHandler struct {
	moderationUC usecase.ModerationUsecase
	screenUC     usecase.ScreenUsecase
	logger       *slog.Logger
}

// NewModerationHandler is the constructor for ModerationHandler
func NewModerationHandler(params ModerationHandlerParams) *ModerationHandler {
	return &ModerationHandler{
		moderationUC: params.ModerationUC,
		screenUC:     params.ScreenUC,
		logger:       params.Logger,
	}
}

// FlagMessageRequest represents the request body for flagging a message
type FlagMessageRequest struct {
	MessageID string `json:"message_id" validate:"required"`
}

// OpenBanPromptRequest selects the user to ban
type OpenBanPromptRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Name   string `json:"name"`
	Image  string `json:"image"`
}

// UpdateBanReasonRequest carries the reason draft
type UpdateBanReasonRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// ConfirmBanRequest confirms the ban. Without a reason the current draft is used.
type ConfirmBanRequest struct {
	Reason *string `json:"reason" validate:"omitnil,max=500"`
}

// FlagMessage handles flagging a message
func (h *ModerationHandler) FlagMessage(c echo.Context) error {
	var req FlagMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid flag input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid flag input", validator.FieldErrors(err))
	}

	if err := h.moderationUC.Flag(c.Request().Context(), req.MessageID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.screenUC.State())
}

// OpenBanPrompt handles selecting a user for a ban
func (h *ModerationHandler) OpenBanPrompt(c echo.Context) error {
	var req OpenBanPromptRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ban target")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid ban target", validator.FieldErrors(err))
	}

	prompt, err := h.moderationUC.OpenBanPrompt(c.Request().Context(), entity.ChatUser{
		ID:    req.UserID,
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, prompt)
}

// UpdateBanReason handles edits to the reason draft
func (h *ModerationHandler) UpdateBanReason(c echo.Context) error {
	var req UpdateBanReasonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ban reason")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid ban reason", validator.FieldErrors(err))
	}

	prompt, err := h.moderationUC.UpdateBanReason(c.Request().Context(), req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prompt)
}

// ConfirmBan handles sending the ban
func (h *ModerationHandler) ConfirmBan(c echo.Context) error {
	var req ConfirmBanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ban reason")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid ban reason", validator.FieldErrors(err))
	}

	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	} else if prompt := h.screenUC.State().BanPrompt; prompt != nil {
		reason = prompt.Reason
	}

	if err := h.moderationUC.ConfirmBan(c.Request().Context(), reason); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.screenUC.State())
}

// CancelBan handles closing the prompt
func (h *ModerationHandler) CancelBan(c echo.Context) error {
	h.moderationUC.CancelBan(c.Request().Context())

	return response.NoContent(c)
}
