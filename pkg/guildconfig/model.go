// Package guildconfig provides per-guild persisted configuration.
// Each guild owns a single JSON document that holds channel/role settings,
// welcome/leave templates and the warning ledger.
package guildconfig

import (
	"strconv"
	"strings"
)

// WarnAction is the automatic action applied when a user crosses the
// configured warning threshold.
type WarnAction string

const (
	ActionNone    WarnAction = "none"
	ActionTimeout WarnAction = "timeout"
	ActionKick    WarnAction = "kick"
	ActionBan     WarnAction = "ban"
)

// Valid reports whether the action is one of the four accepted values.
func (a WarnAction) Valid() bool {
	switch a {
	case ActionNone, ActionTimeout, ActionKick, ActionBan:
		return true
	}
	return false
}

// ParseWarnAction normalizes user input into a WarnAction.
func ParseWarnAction(s string) (WarnAction, bool) {
	a := WarnAction(strings.ToLower(strings.TrimSpace(s)))
	return a, a.Valid()
}

// Warning is a single entry in a user's warning ledger.
// ID is the unix timestamp (seconds) at creation and doubles as a sortable
// identifier; it is not guaranteed unique within the same second.
type Warning struct {
	ID          int64  `json:"id"`
	ModeratorID string `json:"moderator_id"`
	Reason      string `json:"reason"`
	Timestamp   int64  `json:"timestamp"`
}

// GuildConfig is the persisted configuration document for one guild.
// Field names match the on-disk JSON layout and must stay stable.
type GuildConfig struct {
	LogChannel     string `json:"log_channel,omitempty"`
	ModLogChannel  string `json:"mod_log_channel,omitempty"`
	WelcomeChannel string `json:"welcome_channel,omitempty"`
	LeaveChannel   string `json:"leave_channel,omitempty"`
	VerifiedRole   string `json:"verified_role,omitempty"`

	WelcomeMessage string `json:"welcome_message"`
	LeaveMessage   string `json:"leave_message"`

	// Warnings maps a user ID to their ordered warning list. A user with
	// zero warnings has no key here.
	Warnings map[string][]Warning `json:"warnings"`

	// WarnThreshold of 0 disables automatic actions.
	WarnThreshold       int        `json:"warn_threshold"`
	WarnAction          WarnAction `json:"warn_action"`
	WarnTimeoutDuration string     `json:"warn_timeout_duration"`
}

// Default message templates used when a guild has no stored document.
const (
	DefaultWelcomeMessage = "Welcome {user.mention} to {server.name}!"
	DefaultLeaveMessage   = "{user.name} has left {server.name}."
)

// DefaultConfig returns the configuration a guild gets before anything
// has been saved for it.
func DefaultConfig() *GuildConfig {
	return &GuildConfig{
		WelcomeMessage:      DefaultWelcomeMessage,
		LeaveMessage:        DefaultLeaveMessage,
		Warnings:            make(map[string][]Warning),
		WarnThreshold:       3,
		WarnAction:          ActionTimeout,
		WarnTimeoutDuration: "1h",
	}
}

// TemplateData carries the values substituted into welcome/leave templates.
type TemplateData struct {
	UserMention string
	UserName    string
	UserID      string
	ServerName  string
	MemberCount int
}

// RenderTemplate substitutes the recognized placeholders into a
// welcome/leave template. Unknown placeholders are left untouched.
func RenderTemplate(tmpl string, data TemplateData) string {
	r := strings.NewReplacer(
		"{user.mention}", data.UserMention,
		"{user.name}", data.UserName,
		"{user.id}", data.UserID,
		"{user}", data.UserMention,
		"{server.name}", data.ServerName,
		"{member_count}", strconv.Itoa(data.MemberCount),
	)
	return r.Replace(tmpl)
}
