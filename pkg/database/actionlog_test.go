package database

import (
	"fmt"
	"testing"

	"github.com/MythicStudios/MythicBotGo/pkg/models"
)

func TestActionLogQueuesWhileOffline(t *testing.T) {
	log := &ActionLog{db: NewDatabase()}

	log.Insert(models.ModAction{GuildID: "g1", UserID: "u1", Type: models.ActionWarn})
	log.Insert(models.ModAction{GuildID: "g1", UserID: "u2", Type: models.ActionKick})

	if got := log.PendingCount(); got != 2 {
		t.Errorf("PendingCount = %d, want 2", got)
	}
}

func TestActionLogSetsCreatedAt(t *testing.T) {
	log := &ActionLog{db: NewDatabase()}

	log.Insert(models.ModAction{GuildID: "g1", UserID: "u1", Type: models.ActionBan})

	if log.pending[0].CreatedAt.IsZero() {
		t.Error("queued action has zero CreatedAt")
	}
}

func TestActionLogQueueDropsOldest(t *testing.T) {
	log := &ActionLog{db: NewDatabase()}

	for i := 0; i < maxPendingActions+3; i++ {
		log.Insert(models.ModAction{
			GuildID: "g1",
			UserID:  "u1",
			Type:    models.ActionWarn,
			Reason:  fmt.Sprintf("razon-%d", i),
		})
	}

	if got := log.PendingCount(); got != maxPendingActions {
		t.Fatalf("PendingCount = %d, want %d", got, maxPendingActions)
	}
	if log.pending[0].Reason != "razon-3" {
		t.Errorf("oldest queued reason = %q, want razon-3", log.pending[0].Reason)
	}
}

func TestRecentFailsWhileOffline(t *testing.T) {
	log := &ActionLog{db: NewDatabase()}

	if _, err := log.Recent("g1", 10); err == nil {
		t.Error("Recent should fail when the database is offline")
	}
	if _, err := log.RecentForUser("g1", "u1", 10); err == nil {
		t.Error("RecentForUser should fail when the database is offline")
	}
}
