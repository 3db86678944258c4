package guildconfig

import (
	"sort"
	"time"
)

// AddWarning appends a warning for a user, creating the ledger entry on
// first warning, and returns the record plus the user's new total.
// The mutation is in-memory only; persisting is the caller's job.
func AddWarning(cfg *GuildConfig, userID, moderatorID, reason string) (Warning, int) {
	now := time.Now().Unix()
	w := Warning{
		ID:          now,
		ModeratorID: moderatorID,
		Reason:      reason,
		Timestamp:   now,
	}

	if cfg.Warnings == nil {
		cfg.Warnings = make(map[string][]Warning)
	}
	cfg.Warnings[userID] = append(cfg.Warnings[userID], w)
	return w, len(cfg.Warnings[userID])
}

// ListWarnings returns a user's warnings newest first. The sort is stable,
// so warnings recorded in the same second keep their insertion order.
func ListWarnings(cfg *GuildConfig, userID string) []Warning {
	src := cfg.Warnings[userID]
	if len(src) == 0 {
		return nil
	}

	out := make([]Warning, len(src))
	copy(out, src)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

// WarningCount returns the number of warnings recorded for a user.
func WarningCount(cfg *GuildConfig, userID string) int {
	return len(cfg.Warnings[userID])
}

// ClearWarning removes the warning whose ID matches and reports how many
// records were removed (0 or more, since timestamp IDs can collide). When
// the user's list becomes empty the key is deleted entirely, restoring the
// absent-means-zero invariant.
func ClearWarning(cfg *GuildConfig, userID string, warningID int64) int {
	src, ok := cfg.Warnings[userID]
	if !ok {
		return 0
	}

	kept := src[:0]
	removed := 0
	for _, w := range src {
		if w.ID == warningID {
			removed++
			continue
		}
		kept = append(kept, w)
	}

	if removed == 0 {
		return 0
	}
	if len(kept) == 0 {
		delete(cfg.Warnings, userID)
	} else {
		cfg.Warnings[userID] = kept
	}
	return removed
}

// ClearAllWarnings drops a user's entire ledger and returns how many
// warnings it held.
func ClearAllWarnings(cfg *GuildConfig, userID string) int {
	n := len(cfg.Warnings[userID])
	if n > 0 {
		delete(cfg.Warnings, userID)
	}
	return n
}
