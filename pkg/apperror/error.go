package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a failure independently of the HTTP status it renders as.
// Every store and service signals failures through this closed set.
type Kind string

const (
	KindConflict               Kind = "conflict"
	KindAuthorization          Kind = "authorization"
	KindNotFound               Kind = "not_found"
	KindCredentialMismatch     Kind = "credential_mismatch"
	KindValidationSanitization Kind = "validation_sanitization"
	KindPersistence            Kind = "persistence"
)

type AppError struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, code int, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Conflict covers duplicate usernames and stored/asserted role disagreement.
func Conflict(message string) *AppError {
	return New(KindConflict, http.StatusConflict, message, nil)
}

// Authorization covers the wrong role attempting an operation.
func Authorization(message string) *AppError {
	return New(KindAuthorization, http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(KindNotFound, http.StatusNotFound, message, nil)
}

func CredentialMismatch(message string) *AppError {
	return New(KindCredentialMismatch, http.StatusUnauthorized, message, nil)
}

func Validation(message string) *AppError {
	return New(KindValidationSanitization, http.StatusBadRequest, message, nil)
}

// Persistence wraps any storage failure not otherwise classified. The wrapped
// error is logged server-side and never rendered to the caller.
func Persistence(err error) *AppError {
	return New(KindPersistence, http.StatusInternalServerError, "internal server error", err)
}

// KindOf extracts the Kind from any error, or KindPersistence when the error
// is not an AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindPersistence
}
