// Package auth implements administrative authentication for the portal:
// credential verification, bearer token issuance, and the status-gated login
// flow for spa-scoped accounts.
package auth

import "time"

// Role enumerates administrative roles. RoleSpaAdmin is spa-scoped: its
// authorization additionally depends on the associated spa's lifecycle
// status. RoleSuperAdmin is global and never consults spa status.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleSpaAdmin   Role = "admin_spa"
)

// SpaScoped reports whether the role's access is gated on spa status.
func (r Role) SpaScoped() bool {
	return r == RoleSpaAdmin
}

// AdminUser represents one administrative account. SpaID is zero for roles
// that are not spa-scoped.
type AdminUser struct {
	ID        int64        `json:"id"`
	Username  string       `json:"username"`
	Email     string       `json:"email"`
	Secret    StoredSecret `json:"-"`
	Role      Role         `json:"role"`
	FullName  string       `json:"full_name"`
	Phone     string       `json:"phone"`
	SpaID     int64        `json:"spa_id,omitempty"`
	Active    bool         `json:"is_active"`
	LastLogin *time.Time   `json:"last_login,omitempty"`
}

// Sanitized returns a copy with the stored secret stripped. Every identity
// that leaves this package goes through it.
func (u *AdminUser) Sanitized() *AdminUser {
	out := *u
	out.Secret = StoredSecret{}
	return &out
}
