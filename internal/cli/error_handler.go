package cli

import (
	stderrors "errors"
	"fmt"

	"todo/internal/errors"
	"todo/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", operation, eh.HandleSimple(err))
}

// HandleSimple provides user-friendly error messages without operation context.
// The original error stays reachable through errors.Is and errors.As.
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}

	// Field-level messages read better than the wrapped summary
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return &userError{message: validationErr.GetUserFriendlyMessage(), cause: err}
	}

	if errors.IsAppError(err) {
		return &userError{message: errors.GetUserMessage(err), cause: err}
	}

	return err
}

type userError struct {
	message string
	cause   error
}

func (e *userError) Error() string { return e.message }

func (e *userError) Unwrap() error { return e.cause }
