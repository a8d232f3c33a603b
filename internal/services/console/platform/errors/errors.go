// Package errors defines console typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/actext/console/internal/marketapi"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindNoSession    Kind = "no_session"
	KindForbidden    Kind = "forbidden"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
)

// Error is a typed console application failure.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e Error) Unwrap() error {
	return e.Cause
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// Wrap builds a typed Error that retains its cause.
func Wrap(kind Kind, message string, cause error) error {
	return Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf extracts the Kind of an error, defaulting to KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var appErr Error
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	var remote *marketapi.RemoteError
	if stderrors.As(err, &remote) {
		return KindUnavailable
	}
	return KindUnknown
}

// FromRemote converts a resource client failure into a typed Error.
func FromRemote(err error) error {
	if err == nil {
		return nil
	}
	var remote *marketapi.RemoteError
	if stderrors.As(err, &remote) {
		return Wrap(KindUnavailable, string(remote.Resource)+" is unavailable", err)
	}
	return Wrap(KindUnknown, "remote call failed", err)
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNoSession:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
