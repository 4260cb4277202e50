package spa

import "fmt"

// AccessLevel is the capability tier granted by a policy.
type AccessLevel string

const (
	AccessFull AccessLevel = "full"
	AccessNone AccessLevel = "none"
)

// Policy is the access decision derived from a spa's current status. It is
// recomputed on every request and never persisted or cached; a stale policy
// would resurrect access a status change already revoked.
type Policy struct {
	Status        Status      `json:"status"`
	CanLogin      bool        `json:"canLogin"`
	AccessLevel   AccessLevel `json:"accessLevel"`
	AllowedTabs   []string    `json:"allowedTabs"`
	StatusMessage string      `json:"statusMessage"`
}

// PolicyFor maps a status onto its policy. The switch is exhaustive over the
// enumeration; an unrecognized status fails closed with ErrUnknownStatus and
// never falls through to a permissive default.
func PolicyFor(status Status) (Policy, error) {
	switch status {
	case StatusApproved:
		return Policy{
			Status:      status,
			CanLogin:    true,
			AccessLevel: AccessFull,
			AllowedTabs: AllTabs(),
		}, nil
	case StatusPending:
		return denied(status, "Your spa registration is pending approval. Please wait for LSA verification."), nil
	case StatusRejected:
		return denied(status, "Your spa registration has been rejected. Please contact LSA administration."), nil
	case StatusBlacklisted:
		return denied(status, "Your account has been suspended by the admin panel. Please contact LSA administration."), nil
	}
	return denied(status, ""), fmt.Errorf("%w: %q", ErrUnknownStatus, status)
}

// denied keeps the canLogin=false => empty allowedTabs invariant in one place.
func denied(status Status, message string) Policy {
	return Policy{
		Status:        status,
		CanLogin:      false,
		AccessLevel:   AccessNone,
		AllowedTabs:   []string{},
		StatusMessage: message,
	}
}
