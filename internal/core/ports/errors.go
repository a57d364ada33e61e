package ports

import "errors"

// ErrorKind classifies failures crossing the gateway boundary so callers can
// pick the right user-visible treatment without string matching.
type ErrorKind int

const (
	KindRemote ErrorKind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
)

// Error is a classified failure from the backend gateway.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "backend request failed"
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a classified gateway error.
func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func kindOf(err error) (ErrorKind, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind, true
	}
	return 0, false
}

// IsAuthError reports whether err is an authentication-class failure
// (invalid credentials, expired or missing session).
func IsAuthError(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindAuth
}

// IsNotFound reports whether err is a not-found / no-match failure.
func IsNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNotFound
}

// IsValidation reports whether err is a validation failure raised before any
// network call.
func IsValidation(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindValidation
}

// IsForbidden reports whether err is an authorization failure: authenticated
// but lacking the required role.
func IsForbidden(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindForbidden
}
