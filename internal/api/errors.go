package api

import (
	"errors"
	"fmt"
)

// Kind categorizes an Error. Every failure surfaced to the CLI carries one.
type Kind int

const (
	// KindValidation marks malformed or missing user input: unknown profile,
	// missing credentials, bad date strings.
	KindValidation Kind = iota
	// KindAuthentication marks credentials rejected by the API.
	KindAuthentication
	// KindAPI marks an error response returned by the API.
	KindAPI
	// KindNetwork marks transport failures (DNS, refused connection, timeout).
	KindNetwork
)

// String returns a human-readable name for the error kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation error"
	case KindAuthentication:
		return "authentication error"
	case KindAPI:
		return "API error"
	case KindNetwork:
		return "network error"
	default:
		return "error"
	}
}

// Error is the single error type of the tmoapi error taxonomy.
//
// It carries a human-readable message and an optional numeric code. For API
// errors the code is the ErrorNumber reported by the server or the HTTP status;
// zero means no code was supplied.
type Error struct {
	// Kind categorizes the error.
	Kind Kind
	// Message is the user-facing message, including remediation hints.
	Message string
	// Code is the optional numeric error code.
	Code int
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != 0 {
		msg = fmt.Sprintf("%s (code %d)", msg, e.Code)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. This lets callers
// match on the sentinels below with errors.Is, regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrValidation     = &Error{Kind: KindValidation}
	ErrAuthentication = &Error{Kind: KindAuthentication}
	ErrAPI            = &Error{Kind: KindAPI}
	ErrNetwork        = &Error{Kind: KindNetwork}
)

// NewValidationError creates a validation error with the given message.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Validationf creates a validation error with a formatted message.
func Validationf(format string, args ...interface{}) *Error {
	return NewValidationError(fmt.Sprintf(format, args...))
}

// NewAuthenticationError creates an authentication error.
func NewAuthenticationError(message string, code int) *Error {
	return &Error{Kind: KindAuthentication, Message: message, Code: code}
}

// NewAPIError creates an API error with the server supplied code.
func NewAPIError(message string, code int) *Error {
	return &Error{Kind: KindAPI, Message: message, Code: code}
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(message string, err error) *Error {
	return &Error{Kind: KindNetwork, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
// The boolean is false when err does not wrap an *Error.
func KindOf(err error) (Kind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// IsValidation checks if an error is or wraps a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
