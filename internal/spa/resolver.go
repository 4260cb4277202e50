package spa

import (
	"context"
	"errors"
	"fmt"
)

// Resolver derives the current access policy for a spa. Every call hits the
// store: the status can change between requests, so no result may outlive a
// single authorization decision.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve looks up the spa's current status and maps it to a policy.
// ErrNotFound and ErrUnknownStatus surface to callers; any other store error
// propagates wrapped so the operation fails as a whole.
func (r *Resolver) Resolve(ctx context.Context, spaID int64) (Policy, error) {
	rec, err := r.store.Find(ctx, spaID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Policy{}, err
		}
		return Policy{}, fmt.Errorf("spa: lookup %d: %w", spaID, err)
	}
	return PolicyFor(rec.Status)
}

// FilteredNavigation resolves the current policy and returns only the
// destinations it allows.
func (r *Resolver) FilteredNavigation(ctx context.Context, spaID int64) (Navigation, error) {
	policy, err := r.Resolve(ctx, spaID)
	if err != nil {
		return Navigation{}, err
	}

	allowed := make(map[string]struct{}, len(policy.AllowedTabs))
	for _, tab := range policy.AllowedTabs {
		allowed[tab] = struct{}{}
	}
	items := make([]NavItem, 0, len(allowed))
	for _, item := range navCatalog {
		if _, ok := allowed[item.ID]; ok {
			items = append(items, item)
		}
	}
	return Navigation{Items: items, StatusInfo: policy}, nil
}
