package usecase

import "chatdesk/internal/domain/entity"

// ScreenUsecase is the user-facing side of the screen state machine.
type ScreenUsecase interface {
	// State returns a copy of the current screen state.
	State() entity.UIState

	// Dismiss clears the error message. It never restarts the bootstrap.
	Dismiss() error

	// Back leaves the active channel and returns to the loading phase.
	Back() error

	// ClearStatus removes the transient status message.
	ClearStatus()
}
