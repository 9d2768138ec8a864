// Package apierror provides the error taxonomy and response envelope for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain error for HTTP status mapping.
type Kind int

const (
	KindValidation        Kind = iota // malformed or missing input
	KindNotFound                      // referenced entity does not exist
	KindConflict                      // unique-key violation
	KindInsufficientStock             // stock-out exceeds available quantity
	KindStorage                       // persistence failure, detail hidden from clients
)

// Error is the canonical domain error. Services return it, handlers map it
// to a status code via Status().
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Detail + ": " + e.Err.Error()
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindInsufficientStock:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Detail: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Detail: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Detail: fmt.Sprintf(format, args...)}
}

// InsufficientStock reports a stock-out that exceeds the available quantity.
// The detail always carries both numbers so the client can show them.
func InsufficientStock(available, requested int) *Error {
	return &Error{
		Kind:   KindInsufficientStock,
		Detail: fmt.Sprintf("insufficient quantity in stock: available %d, requested %d", available, requested),
	}
}

// Storage wraps an underlying persistence error. The cause is kept for
// server-side logging; clients only ever see the generic detail.
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Detail: "internal storage error", Err: err}
}

// As extracts an *Error from an error chain, or nil if there is none.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation failed", Fields: fields}
}
