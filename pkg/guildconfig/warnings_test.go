package guildconfig

import (
	"testing"
)

func TestAddWarning(t *testing.T) {
	cfg := DefaultConfig()

	w, count := AddWarning(cfg, "user1", "mod1", "spam")
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if w.ID != w.Timestamp {
		t.Errorf("ID (%d) and Timestamp (%d) must be equal", w.ID, w.Timestamp)
	}
	if w.ModeratorID != "mod1" || w.Reason != "spam" {
		t.Errorf("record = %+v, want moderator mod1 and reason spam", w)
	}

	_, count = AddWarning(cfg, "user1", "mod2", "flood")
	if count != 2 {
		t.Errorf("count after second warning = %d, want 2", count)
	}
	if WarningCount(cfg, "user1") != 2 {
		t.Errorf("WarningCount = %d, want 2", WarningCount(cfg, "user1"))
	}
}

func TestAddWarningLazyLedger(t *testing.T) {
	// A nil warnings map must not panic; the ledger is created on demand.
	cfg := &GuildConfig{}
	if _, count := AddWarning(cfg, "user1", "mod1", "spam"); count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestListWarningsNewestFirst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Warnings["user1"] = []Warning{
		{ID: 100, Timestamp: 100, Reason: "first"},
		{ID: 300, Timestamp: 300, Reason: "third"},
		{ID: 200, Timestamp: 200, Reason: "second"},
		{ID: 200, Timestamp: 200, Reason: "second-bis"}, // same second
	}

	got := ListWarnings(cfg, "user1")
	wantOrder := []string{"third", "second", "second-bis", "first"}
	if len(got) != len(wantOrder) {
		t.Fatalf("len = %d, want %d", len(got), len(wantOrder))
	}
	for i, reason := range wantOrder {
		if got[i].Reason != reason {
			t.Errorf("position %d = %q, want %q", i, got[i].Reason, reason)
		}
	}

	// The returned slice is a copy; the stored order stays untouched.
	if cfg.Warnings["user1"][0].Reason != "first" {
		t.Error("ListWarnings mutated the stored ledger")
	}
}

func TestListWarningsEmpty(t *testing.T) {
	cfg := DefaultConfig()
	if got := ListWarnings(cfg, "nobody"); got != nil {
		t.Errorf("ListWarnings for unknown user = %v, want nil", got)
	}
}

func TestClearWarningIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Warnings["user1"] = []Warning{
		{ID: 100, Timestamp: 100},
		{ID: 200, Timestamp: 200},
	}

	if removed := ClearWarning(cfg, "user1", 100); removed != 1 {
		t.Errorf("first ClearWarning = %d, want 1", removed)
	}
	if removed := ClearWarning(cfg, "user1", 100); removed != 0 {
		t.Errorf("second ClearWarning = %d, want 0", removed)
	}
	if removed := ClearWarning(cfg, "user1", 999); removed != 0 {
		t.Errorf("ClearWarning with unknown ID = %d, want 0", removed)
	}
	if removed := ClearWarning(cfg, "ghost", 100); removed != 0 {
		t.Errorf("ClearWarning for unknown user = %d, want 0", removed)
	}
}

func TestClearWarningRemovesEmptyKey(t *testing.T) {
	cfg := DefaultConfig()
	AddWarning(cfg, "user1", "mod1", "spam")

	warns := cfg.Warnings["user1"]
	if ClearWarning(cfg, "user1", warns[0].ID) != 1 {
		t.Fatal("expected the single warning to be removed")
	}

	// Absent key, not an empty slice.
	if _, exists := cfg.Warnings["user1"]; exists {
		t.Error("user key still present after clearing the last warning")
	}
}

func TestClearAllWarnings(t *testing.T) {
	cfg := DefaultConfig()
	AddWarning(cfg, "user1", "mod1", "a")
	AddWarning(cfg, "user1", "mod1", "b")
	AddWarning(cfg, "user1", "mod1", "c")

	if n := ClearAllWarnings(cfg, "user1"); n != 3 {
		t.Errorf("ClearAllWarnings = %d, want 3", n)
	}
	if _, exists := cfg.Warnings["user1"]; exists {
		t.Error("user key still present after ClearAllWarnings")
	}
	if n := ClearAllWarnings(cfg, "user1"); n != 0 {
		t.Errorf("second ClearAllWarnings = %d, want 0", n)
	}
}

func TestWarningCountMonotonicity(t *testing.T) {
	// adds - successful removals == final count
	cfg := DefaultConfig()

	for i := 0; i < 5; i++ {
		AddWarning(cfg, "user1", "mod1", "r")
	}
	ids := make([]int64, 0, 5)
	for _, w := range cfg.Warnings["user1"] {
		ids = append(ids, w.ID)
	}

	removed := ClearWarning(cfg, "user1", ids[0])
	if got := WarningCount(cfg, "user1"); got != 5-removed {
		t.Errorf("count = %d, want %d", got, 5-removed)
	}
}
