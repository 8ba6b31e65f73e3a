package errors

import (
	"fmt"
)

// ErrorType classifies why a task operation failed.
type ErrorType int

const (
	// ErrorTypeValidation marks invalid task data (blank fields, unknown priority, missing due date).
	ErrorTypeValidation ErrorType = iota
	// ErrorTypeNotFound marks an ID that names no task in either collection.
	ErrorTypeNotFound
	// ErrorTypePersistence marks a backing store that could not be read or written.
	ErrorTypePersistence
	// ErrorTypeInvalidInput marks a caller mistake such as a nil task or an ambiguous ID prefix.
	ErrorTypeInvalidInput
)

// String is the lowercase label used as the prefix of AppError.Error.
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeValidation:
		return "invalid_data"
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypePersistence:
		return "persistence"
	case ErrorTypeInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// AppError is the error returned by task constructors, the registry and the
// stores. Code is stable and suited to logs; Message is shown to the user.
// Context carries details such as the store location or a record index.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same Type and Code, so the package
// sentinels work with errors.Is regardless of message or cause.
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType reports whether e belongs to errorType.
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext records a detail, for example the index of the stored record
// that failed to decode, and returns e for chaining.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// GetContext returns a detail recorded by a constructor or WithContext.
func (e *AppError) GetContext(key string) (interface{}, bool) {
	if e.Context == nil {
		return nil, false
	}
	value, exists := e.Context[key]
	return value, exists
}
