package spa

import "context"

// Store describes the read-only lookup this service needs from the spa
// registration subsystem.
type Store interface {
	Find(ctx context.Context, id int64) (*Spa, error)
}
