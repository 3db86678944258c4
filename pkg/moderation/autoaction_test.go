package moderation

import (
	"testing"
	"time"

	"github.com/MythicStudios/MythicBotGo/pkg/guildconfig"
)

func autoCfg(threshold int, action guildconfig.WarnAction, duration string) *guildconfig.GuildConfig {
	cfg := guildconfig.DefaultConfig()
	cfg.WarnThreshold = threshold
	cfg.WarnAction = action
	cfg.WarnTimeoutDuration = duration
	return cfg
}

func TestEvaluateAutoActionBelowThreshold(t *testing.T) {
	cfg := autoCfg(3, guildconfig.ActionTimeout, "1h")

	for count := 0; count < 3; count++ {
		if d := EvaluateAutoAction(cfg, count); d.Kind != AutoNone {
			t.Errorf("EvaluateAutoAction(count=%d).Kind = %v, want AutoNone", count, d.Kind)
		}
	}
}

func TestEvaluateAutoActionTimeout(t *testing.T) {
	cfg := autoCfg(3, guildconfig.ActionTimeout, "1h")

	d := EvaluateAutoAction(cfg, 3)
	if d.Kind != AutoTimeout {
		t.Fatalf("Kind = %v, want AutoTimeout", d.Kind)
	}
	if d.Duration != time.Hour {
		t.Errorf("Duration = %v, want %v", d.Duration, time.Hour)
	}
}

func TestEvaluateAutoActionRetriggers(t *testing.T) {
	// A fourth warning with threshold 3 triggers again; the evaluator is
	// idempotent per warning, not per user.
	cfg := autoCfg(3, guildconfig.ActionTimeout, "1h")

	if d := EvaluateAutoAction(cfg, 4); d.Kind != AutoTimeout {
		t.Errorf("Kind at count=4 = %v, want AutoTimeout (re-trigger)", d.Kind)
	}
}

func TestEvaluateAutoActionDisabled(t *testing.T) {
	// Threshold 0 disables auto-actions regardless of the action value.
	cfg := autoCfg(0, guildconfig.ActionBan, "")
	if d := EvaluateAutoAction(cfg, 100); d.Kind != AutoNone {
		t.Errorf("Kind = %v, want AutoNone with threshold 0", d.Kind)
	}

	cfg = autoCfg(3, guildconfig.ActionNone, "")
	if d := EvaluateAutoAction(cfg, 5); d.Kind != AutoNone {
		t.Errorf("Kind = %v, want AutoNone with action none", d.Kind)
	}
}

func TestEvaluateAutoActionKickAndBan(t *testing.T) {
	if d := EvaluateAutoAction(autoCfg(2, guildconfig.ActionKick, ""), 2); d.Kind != AutoKick {
		t.Errorf("Kind = %v, want AutoKick", d.Kind)
	}
	if d := EvaluateAutoAction(autoCfg(2, guildconfig.ActionBan, ""), 2); d.Kind != AutoBan {
		t.Errorf("Kind = %v, want AutoBan", d.Kind)
	}
}

func TestEvaluateAutoActionBadDuration(t *testing.T) {
	cfg := autoCfg(3, guildconfig.ActionTimeout, "potato")

	d := EvaluateAutoAction(cfg, 3)
	if d.Kind != AutoConfigError {
		t.Errorf("Kind = %v, want AutoConfigError for unparseable duration", d.Kind)
	}
}
