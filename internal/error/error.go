// internal/error/error.go

package error

import (
	"errors"
	"fmt"
)

type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

type ErrorType int

const (
	ConfigError ErrorType = iota
	ConnectionError
	IOError
	ValidationError
	NotFoundError
	DuplicateError
)

func (t ErrorType) String() string {
	switch t {
	case ConfigError:
		return "config"
	case ConnectionError:
		return "connection"
	case IOError:
		return "io"
	case ValidationError:
		return "validation"
	case NotFoundError:
		return "not found"
	case DuplicateError:
		return "duplicate"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(t))
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(errType ErrorType, message string, err error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// Newf builds an AppError without an underlying cause.
func Newf(errType ErrorType, format string, args ...any) *AppError {
	return New(errType, fmt.Sprintf(format, args...), nil)
}

// Is reports whether any AppError in err's chain has the given type.
func Is(err error, errType ErrorType) bool {
	for err != nil {
		var appErr *AppError
		if !errors.As(err, &appErr) {
			return false
		}
		if appErr.Type == errType {
			return true
		}
		err = appErr.Err
	}
	return false
}

func IsValidation(err error) bool { return Is(err, ValidationError) }
func IsNotFound(err error) bool   { return Is(err, NotFoundError) }
func IsIO(err error) bool         { return Is(err, IOError) }
func IsDuplicate(err error) bool  { return Is(err, DuplicateError) }
