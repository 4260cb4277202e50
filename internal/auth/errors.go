package auth

import (
	"errors"
	"fmt"

	"lsaportal.org/internal/spa"
)

var (
	// ErrInvalidCredentials covers both "no such account" and "wrong
	// secret"; the two are deliberately indistinguishable to prevent
	// account enumeration.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	ErrNotFound     = errors.New("auth: not found")
	ErrTokenInvalid = errors.New("auth: invalid token")
	ErrTokenExpired = errors.New("auth: token expired")
)

// RestrictedError means the credentials were valid but the spa gate denied
// the session. It carries the resolved policy so the client can explain why.
type RestrictedError struct {
	Policy spa.Policy
}

func (e *RestrictedError) Error() string {
	return fmt.Sprintf("auth: access restricted: spa status %s", e.Policy.Status)
}
