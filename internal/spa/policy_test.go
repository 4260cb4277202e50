package spa

import (
	"errors"
	"strings"
	"testing"
)

func TestPolicyForApproved(t *testing.T) {
	policy, err := PolicyFor(StatusApproved)
	if err != nil {
		t.Fatalf("PolicyFor: %v", err)
	}
	if !policy.CanLogin {
		t.Fatal("approved spa must be able to log in")
	}
	if policy.AccessLevel != AccessFull {
		t.Fatalf("unexpected access level: %s", policy.AccessLevel)
	}
	if len(policy.AllowedTabs) != len(navCatalog) {
		t.Fatalf("approved spa gets all tabs, got %v", policy.AllowedTabs)
	}
	if policy.StatusMessage != "" {
		t.Fatalf("approved spa has a neutral message, got %q", policy.StatusMessage)
	}
}

func TestPolicyForDeniedStatuses(t *testing.T) {
	cases := []struct {
		status  Status
		message string
	}{
		{StatusPending, "pending approval"},
		{StatusRejected, "rejected"},
		{StatusBlacklisted, "suspended"},
	}
	for _, tc := range cases {
		policy, err := PolicyFor(tc.status)
		if err != nil {
			t.Fatalf("PolicyFor(%s): %v", tc.status, err)
		}
		if policy.CanLogin {
			t.Fatalf("%s spa must not log in", tc.status)
		}
		if policy.AccessLevel != AccessNone {
			t.Fatalf("%s: unexpected access level %s", tc.status, policy.AccessLevel)
		}
		if policy.AllowedTabs == nil || len(policy.AllowedTabs) != 0 {
			t.Fatalf("canLogin=false requires empty allowedTabs, got %v", policy.AllowedTabs)
		}
		if !strings.Contains(policy.StatusMessage, tc.message) {
			t.Fatalf("%s: message %q missing %q", tc.status, policy.StatusMessage, tc.message)
		}
	}
}

func TestPolicyForUnknownStatusFailsClosed(t *testing.T) {
	policy, err := PolicyFor(Status("under_review"))
	if !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
	if policy.CanLogin || len(policy.AllowedTabs) != 0 {
		t.Fatalf("unknown status must not grant anything: %+v", policy)
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "approved", "rejected", "blacklisted"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Fatalf("ParseStatus(%q): %v", valid, err)
		}
	}
	if _, err := ParseStatus("active"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}
