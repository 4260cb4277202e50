// Package spa models registered spa facilities and the access policy derived
// from their lifecycle status. The status table is owned by the registration
// subsystem; this package only reads it.
package spa

import (
	"fmt"
	"time"
)

// Status enumerates the lifecycle states a spa can occupy.
type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusBlacklisted Status = "blacklisted"
)

// ParseStatus maps a raw stored value onto the closed enumeration. Anything
// outside the enumeration is an error; callers must treat that as a denial.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusApproved, StatusRejected, StatusBlacklisted:
		return Status(raw), nil
	}
	return Status(raw), fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

// Spa is the slice of the registration record this service consumes.
type Spa struct {
	ID          int64
	Name        string
	ReferenceNo string
	Status      Status
	UpdatedAt   time.Time
}
