package services

import (
	"errors"
	"net/http"
)

// ErrorKind classifies service failures so the API layer can map them to
// transport status codes.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindAuthorization
	KindConflict
	KindState
)

// Error is a service-level failure carrying a kind and a human-readable
// message. The surrounding UI shows the message verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewAuthorizationError(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NewStateError(message string) *Error {
	return &Error{Kind: KindState, Message: message}
}

// HTTPStatus maps a service error to an HTTP status code. Anything that is not
// a *Error is treated as an internal failure.
func HTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case KindValidation:
			return http.StatusBadRequest
		case KindNotFound:
			return http.StatusNotFound
		case KindAuthorization:
			return http.StatusForbidden
		case KindConflict:
			return http.StatusConflict
		case KindState:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
