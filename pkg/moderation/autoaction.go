package moderation

import (
	"time"

	"github.com/MythicStudios/MythicBotGo/pkg/guildconfig"
)

// AutoActionKind enumerates the possible outcomes of evaluating a freshly
// recorded warning against the guild's auto-mod settings.
type AutoActionKind int

const (
	AutoNone AutoActionKind = iota
	AutoTimeout
	AutoKick
	AutoBan
	// AutoConfigError means the threshold was crossed but the configured
	// timeout duration does not parse; the operator channel gets the
	// report, the user gets nothing.
	AutoConfigError
)

// AutoDecision is the result of evaluating a warning count. Duration is
// only set for AutoTimeout.
type AutoDecision struct {
	Kind     AutoActionKind
	Duration time.Duration
}

// EvaluateAutoAction decides whether the warning that just brought a user
// to warningCount should trigger an automatic action. It is called once
// per added warning, never on reads, so a count already past the threshold
// re-triggers on every further warning.
func EvaluateAutoAction(cfg *guildconfig.GuildConfig, warningCount int) AutoDecision {
	if cfg.WarnThreshold <= 0 || warningCount < cfg.WarnThreshold {
		return AutoDecision{Kind: AutoNone}
	}

	switch cfg.WarnAction {
	case guildconfig.ActionTimeout:
		d, ok := ParseDuration(cfg.WarnTimeoutDuration)
		if !ok {
			return AutoDecision{Kind: AutoConfigError}
		}
		return AutoDecision{Kind: AutoTimeout, Duration: d}
	case guildconfig.ActionKick:
		return AutoDecision{Kind: AutoKick}
	case guildconfig.ActionBan:
		return AutoDecision{Kind: AutoBan}
	default:
		return AutoDecision{Kind: AutoNone}
	}
}
