package moderation

import "fmt"

// Subject is the minimal view of a guild member the policy engine needs:
// identity, highest-role position and the guild-owner flag.
type Subject struct {
	ID           string
	TopRoleRank  int
	TopRoleName  string
	IsGuildOwner bool
}

// Verdict is the outcome of an eligibility check. Reason is user-facing
// and only set when the action is rejected.
type Verdict struct {
	Allowed bool
	Reason  string
}

func deny(format string, args ...interface{}) Verdict {
	return Verdict{Reason: fmt.Sprintf(format, args...)}
}

// Authorize decides whether actor may apply a moderation action to target.
// bot is the bot's own member in the guild and appOwnerID the bot
// application owner. Checks run in a fixed order and the first failure
// wins, so callers get a stable reason for a given situation:
//
//  1. no self-moderation
//  2. the bot's owner cannot be targeted
//  3. the bot must outrank the target
//  4. the actor must outrank the target, unless the actor owns the guild
func Authorize(actor, target, bot Subject, appOwnerID string) Verdict {
	if target.ID == actor.ID {
		return deny("❌ No puedes moderarte a ti mismo.")
	}

	if appOwnerID != "" && target.ID == appOwnerID {
		return deny("❌ No puedes moderar al propietario del bot.")
	}

	if bot.TopRoleRank <= target.TopRoleRank {
		return deny("❌ No puedo moderar a ese usuario: su rol más alto (`%s`) es igual o superior al mío (`%s`).",
			target.TopRoleName, bot.TopRoleName)
	}

	if !actor.IsGuildOwner && actor.TopRoleRank <= target.TopRoleRank {
		return deny("❌ No puedes moderar a ese usuario: su rol (`%s`) es igual o superior al tuyo (`%s`).",
			target.TopRoleName, actor.TopRoleName)
	}

	return Verdict{Allowed: true}
}
