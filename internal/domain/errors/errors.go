package errors

import (
	"net/http"

	"chatdesk/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business error code, so copies
// made by WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Bootstrap errors. Any of these moves the screen to the error phase.
	ErrAuth = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_FAILED",
		"Sign-in was rejected by the identity provider",
		"",
	)

	ErrTokenFetch = NewBaseError(
		http.StatusBadGateway,
		"TOKEN_FETCH_FAILED",
		"Failed to fetch token",
		"",
	)

	ErrConnection = NewBaseError(
		http.StatusBadGateway,
		"CONNECTION_FAILED",
		"Failed to connect to the chat service",
		"",
	)

	ErrChannel = NewBaseError(
		http.StatusBadGateway,
		"CHANNEL_WATCH_FAILED",
		"Failed to open the chat channel",
		"",
	)

	// Action errors. These only surface as a transient status.
	ErrFlag = NewBaseError(
		http.StatusBadGateway,
		"FLAG_FAILED",
		"Error flagging message",
		"",
	)

	ErrBan = NewBaseError(
		http.StatusBadGateway,
		"BAN_FAILED",
		"Error banning user",
		"",
	)

	// Control surface errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Moderator role required",
		"",
	)

	ErrSelfModeration = NewBaseError(
		http.StatusForbidden,
		"SELF_MODERATION",
		"Moderators cannot act on their own messages",
		"",
	)

	ErrBanPromptNotOpen = NewBaseError(
		http.StatusConflict,
		"BAN_PROMPT_NOT_OPEN",
		"No user is selected for a ban",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"The screen cannot make that transition from its current phase",
		"",
	)

	ErrNotReady = NewBaseError(
		http.StatusConflict,
		"NOT_READY",
		"No channel is open",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many moderator actions, try again shortly",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// StepError is a failure of one outbound step, classified by a predefined
// BaseError kind. errors.Is matches both the kind and the cause.
type StepError struct {
	kind  *BaseError
	cause error
}

// NewStepError classifies cause as kind.
func NewStepError(kind *BaseError, cause error) *StepError {
	return &StepError{kind: kind, cause: cause}
}

// Error implements the error interface
func (e *StepError) Error() string {
	if e.cause == nil {
		return e.kind.message
	}

	return e.kind.message + ": " + e.cause.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *StepError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}

	return []error{e.kind, e.cause}
}

// HTTPCode returns the HTTP status code
func (e *StepError) HTTPCode() int {
	return e.kind.httpCode
}

// ErrorCode returns the business error code
func (e *StepError) ErrorCode() string {
	return e.kind.errorCode
}

// Message returns the user-friendly error message
func (e *StepError) Message() string {
	return e.kind.message
}

// Details returns the text of the underlying cause, without wrapping context.
func (e *StepError) Details() string {
	if e.cause == nil {
		return ""
	}

	return errors.Cause(e.cause).Error()
}

// UserMessage returns the text shown to a person for err: the detail of an
// AppError when present, otherwise its message, otherwise err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		if d := appErr.Details(); d != "" {
			return d
		}

		return appErr.Message()
	}

	return err.Error()
}
