// Package models holds the shared data types persisted by the bot.
package models

import "time"

// ActionType identifies a moderation action recorded in the audit log.
type ActionType string

const (
	ActionWarn        ActionType = "warn"
	ActionClearWarn   ActionType = "clearwarn"
	ActionKick        ActionType = "kick"
	ActionBan         ActionType = "ban"
	ActionUnban       ActionType = "unban"
	ActionTimeout     ActionType = "timeout"
	ActionUntimeout   ActionType = "untimeout"
	ActionAutoTimeout ActionType = "auto_timeout"
	ActionAutoKick    ActionType = "auto_kick"
	ActionAutoBan     ActionType = "auto_ban"
)

// ModAction is one entry in the moderation audit log. Automatic actions
// carry the bot's own ID as moderator.
type ModAction struct {
	GuildID     string     `bson:"guildId" json:"guildId"`
	UserID      string     `bson:"userId" json:"userId"`
	ModeratorID string     `bson:"moderatorId" json:"moderatorId"`
	Type        ActionType `bson:"type" json:"type"`
	Reason      string     `bson:"reason" json:"reason"`
	Duration    string     `bson:"duration,omitempty" json:"duration,omitempty"`
	Automatic   bool       `bson:"automatic" json:"automatic"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
}
