// Package apperror defines the application's error taxonomy.
//
// Each sentinel below names one failure class the rest of the program cares
// about. Callers match with errors.Is and decide what to show the user;
// anything that doesn't match one of these is treated as a storage failure
// and propagates out of the menu loop untouched.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrEmptyCatalog = errors.New("empty catalog")
)

// AppError carries a human-readable message alongside the sentinel it wraps.
type AppError struct {
	Err     error  // sentinel, for errors.Is
	Message string // human-readable error message
	Field   string // optional: input field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string, id int64) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func Conflict(resource, name string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("%s already exists: %s", resource, name),
	}
}

// InvalidCredentials is the login miss. It wraps ErrNotFound but keeps the
// message vague on purpose — the caller must not learn whether the username
// or the password was wrong.
func InvalidCredentials() *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: "invalid username or password",
	}
}

// EmptyCatalog signals that a flow was entered with nothing to choose from.
// The booking flow aborts on it without writing anything.
func EmptyCatalog(what string) *AppError {
	return &AppError{
		Err:     ErrEmptyCatalog,
		Message: fmt.Sprintf("no %s registered", what),
	}
}
