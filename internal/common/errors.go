package common

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
)

// Business logic errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("service unavailable")
)

// AppError is an error carrying the HTTP status it should be answered with
type AppError struct {
	Status  int
	Code    string
	Message string
	Err     error

	stack []uintptr
}

// NewAppError creates an AppError and records the caller's stack
func NewAppError(status int, message string, err error) *AppError {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	return &AppError{
		Status:  status,
		Code:    ErrorCode(status),
		Message: message,
		Err:     err,
		stack:   pcs[:n],
	}
}

// NotFound creates a 404 AppError
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// Forbidden creates a 403 AppError
func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

// BadRequest creates a 400 AppError
func BadRequest(message string, err error) *AppError {
	if err == nil {
		err = ErrInvalidInput
	}
	return NewAppError(http.StatusBadRequest, message, err)
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

// StackTrace returns "function file:line" frames recorded at creation
func (e *AppError) StackTrace() []string {
	return formatFrames(e.stack)
}

func formatFrames(pcs []uintptr) []string {
	if len(pcs) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs)
	var out []string
	for {
		f, more := frames.Next()
		out = append(out, fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line))
		if !more {
			break
		}
	}
	return out
}

// CallerStack captures the current goroutine's stack, skipping skip frames
func CallerStack(skip int) []string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+2, pcs)
	return formatFrames(pcs[:n])
}

// StatusOf derives the HTTP status for err: an explicit AppError status, a
// known sentinel, or 500.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// MessageOf returns the client-facing message for err
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return http.StatusText(StatusOf(err))
}
