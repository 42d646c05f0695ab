package domain

import (
	"context"
	"errors"
	"time"
)

type Credentials struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// SignInResult carries the raw session token handed to the client. The token
// itself is never persisted.
type SignInResult struct {
	User      User
	Token     string
	ExpiresAt time.Time
}

type Service interface {
	// SignIn verifies credentials and opens a session. Credential failures
	// are reported as ErrInvalidCredentials; other auth failures as
	// recognized auth errors; anything else is unexpected and returned
	// as-is.
	SignIn(ctx context.Context, creds Credentials) (*SignInResult, error)
	SignOut(ctx context.Context, token string) error
	// Lookup resolves a session token to its user, when the session exists
	// and has not expired.
	Lookup(ctx context.Context, token string) (*User, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrSessionExpired     = errors.New("session_expired")
	ErrSessionNotFound    = errors.New("session_not_found")
)

// IsAuthError reports whether err is a recognized authentication failure.
// Unrecognized errors are unexpected and must be propagated, not mapped to a
// user-facing message.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrSessionExpired) ||
		errors.Is(err, ErrSessionNotFound)
}
