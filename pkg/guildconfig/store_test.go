package guildconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	return s
}

func TestStoreDefaultFallbackMissing(t *testing.T) {
	s := newTestStore(t)

	got := s.Get("123")
	if !reflect.DeepEqual(got, DefaultConfig()) {
		t.Errorf("Get on missing document = %+v, want defaults", got)
	}
}

func TestStoreDefaultFallbackCorrupt(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(s.Dir(), "123.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing corrupt document: %v", err)
	}

	got := s.Get("123")
	if !reflect.DeepEqual(got, DefaultConfig()) {
		t.Errorf("Get on corrupt document = %+v, want defaults", got)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)

	cfg := DefaultConfig()
	cfg.LogChannel = "111"
	cfg.ModLogChannel = "222"
	cfg.WelcomeMessage = "Hola {user.mention}, somos {member_count}!"
	cfg.WarnThreshold = 5
	cfg.WarnAction = ActionBan
	cfg.WarnTimeoutDuration = "2h"
	cfg.Warnings["42"] = []Warning{
		{ID: 1700000000, ModeratorID: "99", Reason: "spam", Timestamp: 1700000000},
	}

	if err := s.Save("123", cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got := s.Get("123")
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, cfg)
	}
}

func TestStoreSaveReplacesDocument(t *testing.T) {
	s := newTestStore(t)

	cfg := DefaultConfig()
	cfg.WarnThreshold = 10
	if err := s.Save("123", cfg); err != nil {
		t.Fatalf("first Save() error: %v", err)
	}

	cfg.WarnThreshold = 1
	if err := s.Save("123", cfg); err != nil {
		t.Fatalf("second Save() error: %v", err)
	}

	if got := s.Get("123").WarnThreshold; got != 1 {
		t.Errorf("WarnThreshold = %d, want 1", got)
	}

	// No temp files may be left behind.
	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("leftover temp file: %s", e.Name())
		}
	}
}

func TestStoreConcurrentUpdatesNotLost(t *testing.T) {
	// Two warnings recorded at the same instant for the same guild must
	// both survive: the second read-modify-write starts only after the
	// first write completed.
	s := newTestStore(t)

	const writers = 10
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_, err := s.Update("123", func(cfg *GuildConfig) {
				AddWarning(cfg, "user1", "mod1", "concurrent")
			})
			if err != nil {
				t.Errorf("Update() error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := WarningCount(s.Get("123"), "user1"); got != writers {
		t.Errorf("final warning count = %d, want %d (lost update)", got, writers)
	}
}

func TestStoreInstancesIndependent(t *testing.T) {
	// Separate stores own separate lock registries and directories.
	a := newTestStore(t)
	b := newTestStore(t)

	cfgA := DefaultConfig()
	cfgA.WarnThreshold = 7
	if err := a.Save("123", cfgA); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if got := b.Get("123").WarnThreshold; got != 3 {
		t.Errorf("store b saw store a's document (threshold %d)", got)
	}
}

func TestStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	if _, err := NewStore(dir); err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("config directory not created: %v", err)
	}
}
