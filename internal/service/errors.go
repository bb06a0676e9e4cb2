package service

import (
	"errors"
	"fmt"
	"net/http"

	"foodreview/internal/store"
)

type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindValidation
	KindConflict
	KindInternal
)

// HTTPStatus maps a kind to the status code written by the handlers.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindBadRequest, KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is the only error type returned by the services. Message is safe to
// show to clients; Err carries the underlying cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

const serverError = "Server Error"

func badRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func validationFailed(message string, err error) *Error {
	return &Error{Kind: KindValidation, Message: message, Err: err}
}

func notFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: serverError, Err: err}
}

// fromStore turns a repository error into a service error, using message when
// the document does not exist.
func fromStore(err error, message string) *Error {
	if errors.Is(err, store.ErrNotFound) {
		return &Error{Kind: KindNotFound, Message: message, Err: err}
	}
	return internal(err)
}

// KindOf reports the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}
