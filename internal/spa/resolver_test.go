package spa

import (
	"context"
	"errors"
	"testing"
)

type failingStore struct{ err error }

func (s failingStore) Find(context.Context, int64) (*Spa, error) { return nil, s.err }

func TestResolverResolve(t *testing.T) {
	store := NewMemoryStore(
		Spa{ID: 1, Name: "Serenity Spa", Status: StatusApproved},
		Spa{ID: 2, Name: "Lotus Spa", Status: StatusPending},
	)
	resolver := NewResolver(store)

	policy, err := resolver.Resolve(context.Background(), 1)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !policy.CanLogin {
		t.Fatal("approved spa must resolve to a login-capable policy")
	}

	policy, err = resolver.Resolve(context.Background(), 2)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if policy.CanLogin {
		t.Fatal("pending spa must not resolve to a login-capable policy")
	}
}

func TestResolverNotFound(t *testing.T) {
	resolver := NewResolver(NewMemoryStore())
	if _, err := resolver.Resolve(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolverPropagatesStoreError(t *testing.T) {
	boom := errors.New("connection reset")
	resolver := NewResolver(failingStore{err: boom})
	if _, err := resolver.Resolve(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("store error must propagate, got %v", err)
	}
}

func TestResolverUnknownStatusFailsClosed(t *testing.T) {
	resolver := NewResolver(NewMemoryStore(Spa{ID: 3, Status: Status("limbo")}))
	if _, err := resolver.Resolve(context.Background(), 3); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestFilteredNavigation(t *testing.T) {
	store := NewMemoryStore(Spa{ID: 1, Status: StatusApproved})
	resolver := NewResolver(store)

	nav, err := resolver.FilteredNavigation(context.Background(), 1)
	if err != nil {
		t.Fatalf("FilteredNavigation: %v", err)
	}
	if len(nav.Items) != len(navCatalog) {
		t.Fatalf("approved spa sees every destination, got %d", len(nav.Items))
	}
	if !nav.StatusInfo.CanLogin {
		t.Fatal("status info must carry the resolved policy")
	}
}

func TestNavigationReflectsStatusTransitionImmediately(t *testing.T) {
	store := NewMemoryStore(Spa{ID: 1, Status: StatusApproved})
	resolver := NewResolver(store)

	nav, err := resolver.FilteredNavigation(context.Background(), 1)
	if err != nil || len(nav.Items) == 0 {
		t.Fatalf("expected full navigation before transition: %v %v", nav.Items, err)
	}

	store.SetStatus(1, StatusBlacklisted)

	nav, err = resolver.FilteredNavigation(context.Background(), 1)
	if err != nil {
		t.Fatalf("FilteredNavigation after transition: %v", err)
	}
	if len(nav.Items) != 0 {
		t.Fatalf("blacklisted spa must lose every destination on the very next call, got %v", nav.Items)
	}
	if nav.StatusInfo.Status != StatusBlacklisted {
		t.Fatalf("status info is stale: %+v", nav.StatusInfo)
	}
}
