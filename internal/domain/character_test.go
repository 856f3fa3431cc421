package domain

import "testing"

func TestCharacterStatusString(t *testing.T) {
	cases := []struct {
		status CharacterStatus
		want   string
	}{
		{StatusPending, "pending"},
		{StatusPublished, "published"},
		{StatusRejected, "rejected"},
		{CharacterStatus(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("status %d: expected %q, got %q", tc.status, tc.want, got)
		}
	}
}

func TestCharacterStatusValid(t *testing.T) {
	if !StatusRejected.Valid() {
		t.Error("rejected should be valid")
	}
	if CharacterStatus(99).Valid() {
		t.Error("99 should not be valid")
	}
}

func TestNotificationDedupKey(t *testing.T) {
	key := NotificationDedupKey(NotificationReviewRequested, 1, 2, 3)
	if key != "review-requested:1:2:3" {
		t.Errorf("unexpected key: %s", key)
	}

	other := NotificationDedupKey(NotificationReviewRequested, 1, 2, 4)
	if key == other {
		t.Error("different recipients must produce different keys")
	}
}
