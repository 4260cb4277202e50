package auth

import "context"

// UserStore describes the persistence operations the auth flows need.
// Lookups are restricted to active accounts; an inactive account is simply
// not found.
type UserStore interface {
	FindActiveByUsername(ctx context.Context, username string) (*AdminUser, error)
	FindActiveByID(ctx context.Context, id int64) (*AdminUser, error)
	TouchLastLogin(ctx context.Context, id int64) error
}
