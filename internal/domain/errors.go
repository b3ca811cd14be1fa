package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrConfigNotFound is returned by stores when the singleton quiz config row is absent.
	ErrConfigNotFound = errors.New("quiz config not found")
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken is returned when registering or updating to an email that already exists.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials covers unknown usernames and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserInactive is returned when a disabled account tries to authenticate.
	ErrUserInactive = errors.New("user account is disabled")
	// ErrInvalidToken is returned for malformed, expired, revoked or mistyped tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrForbidden is returned when a non-staff user reaches a staff-only operation.
	ErrForbidden = errors.New("staff permissions required")
)

// ValidationError carries per-field messages for rejected input.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message, Fields: map[string]string{}}
}

// Add records a field-level failure and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = message
	return e
}

// OrNil returns nil when nothing was recorded, so callers can build errors incrementally.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}
