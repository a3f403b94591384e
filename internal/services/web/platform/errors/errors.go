// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindConflict     Kind = "conflict"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	// Status is the upstream HTTP status when the error came from the backend.
	Status int
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// FromUpstreamStatus classifies a backend HTTP status. message is the
// backend's own explanation and is kept for display.
func FromUpstreamStatus(status int, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		message = strings.ToLower(http.StatusText(status))
	}
	return Error{Kind: kindForUpstreamStatus(status), Message: message, Status: status}
}

func kindForUpstreamStatus(status int) Kind {
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindInvalidInput
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status >= http.StatusInternalServerError:
		return KindUnavailable
	default:
		return KindUnknown
	}
}

// KindOf returns the typed kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return KindUnknown
	}
	return appErr.Kind
}

// IsKind reports whether err is a typed Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// DisplayMessage returns the message safe to show to the signed-in user:
// backend explanations for client errors, nothing for everything else.
func DisplayMessage(err error) string {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	switch appErr.Kind {
	case KindInvalidInput, KindConflict, KindForbidden, KindNotFound, KindUnauthorized:
		return strings.TrimSpace(appErr.Message)
	default:
		return ""
	}
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
