package usecase

import (
	"errors"

	"gifboard/pkg/utils"
)

// Error kinds. Handlers map them to HTTP status codes with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUpstream     = errors.New("upstream failure")
)

// Error is a client-facing failure: Message is safe to return as is.
type Error struct {
	Kind    error
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return e.Message + ": " + utils.FormatValidationErrors(e.Fields)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func validationError(fields map[string]string) error {
	return &Error{Kind: ErrValidation, Message: "Validation failed", Fields: fields}
}

func badRequest(message string) error {
	return &Error{Kind: ErrValidation, Message: message}
}

func unauthorized(message string) error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}

func forbidden(message string) error {
	return &Error{Kind: ErrForbidden, Message: message}
}

func notFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

func conflict(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

func upstream(message string) error {
	return &Error{Kind: ErrUpstream, Message: message}
}

// validate runs struct validation and converts failures to ErrValidation.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}
	return nil
}
