package moderation

import (
	"strings"
	"testing"
)

func TestAuthorizeAccepts(t *testing.T) {
	actor := Subject{ID: "mod", TopRoleRank: 10, TopRoleName: "Mod"}
	target := Subject{ID: "user", TopRoleRank: 1, TopRoleName: "Member"}
	bot := Subject{ID: "bot", TopRoleRank: 20, TopRoleName: "MythicBot"}

	v := Authorize(actor, target, bot, "owner-app")
	if !v.Allowed {
		t.Fatalf("Authorize() rejected a valid action: %s", v.Reason)
	}
	if v.Reason != "" {
		t.Errorf("Reason = %q, want empty on accept", v.Reason)
	}
}

func TestAuthorizeSelfModeration(t *testing.T) {
	// The self check comes first: even the guild owner cannot target
	// themselves, and the reason must be the self-moderation one.
	actor := Subject{ID: "mod", TopRoleRank: 10, IsGuildOwner: true}
	bot := Subject{ID: "bot", TopRoleRank: 20}

	v := Authorize(actor, actor, bot, "")
	if v.Allowed {
		t.Fatal("Authorize() allowed self-moderation")
	}
	if !strings.Contains(v.Reason, "ti mismo") {
		t.Errorf("Reason = %q, want the self-moderation message", v.Reason)
	}
}

func TestAuthorizeAppOwnerProtected(t *testing.T) {
	actor := Subject{ID: "mod", TopRoleRank: 10}
	target := Subject{ID: "owner-app", TopRoleRank: 1}
	bot := Subject{ID: "bot", TopRoleRank: 20}

	v := Authorize(actor, target, bot, "owner-app")
	if v.Allowed {
		t.Fatal("Authorize() allowed targeting the bot owner")
	}
	if !strings.Contains(v.Reason, "propietario del bot") {
		t.Errorf("Reason = %q, want the bot-owner message", v.Reason)
	}
}

func TestAuthorizeBotHierarchy(t *testing.T) {
	actor := Subject{ID: "mod", TopRoleRank: 50, TopRoleName: "Admin"}
	target := Subject{ID: "user", TopRoleRank: 20, TopRoleName: "VIP"}
	bot := Subject{ID: "bot", TopRoleRank: 20, TopRoleName: "MythicBot"}

	// Equal rank is not enough: the bot must strictly outrank the target.
	v := Authorize(actor, target, bot, "")
	if v.Allowed {
		t.Fatal("Authorize() allowed action with bot rank equal to target rank")
	}
	if !strings.Contains(v.Reason, "No puedo moderar") {
		t.Errorf("Reason = %q, want the bot hierarchy message", v.Reason)
	}
}

func TestAuthorizeActorHierarchy(t *testing.T) {
	actor := Subject{ID: "mod", TopRoleRank: 5, TopRoleName: "Helper"}
	target := Subject{ID: "user", TopRoleRank: 5, TopRoleName: "Helper"}
	bot := Subject{ID: "bot", TopRoleRank: 20, TopRoleName: "MythicBot"}

	v := Authorize(actor, target, bot, "")
	if v.Allowed {
		t.Fatal("Authorize() allowed action with actor rank equal to target rank")
	}
	if !strings.Contains(v.Reason, "No puedes moderar") {
		t.Errorf("Reason = %q, want the actor hierarchy message", v.Reason)
	}
}

func TestAuthorizeGuildOwnerBypass(t *testing.T) {
	// The guild owner skips the actor hierarchy comparison but not the
	// bot hierarchy one.
	actor := Subject{ID: "owner", TopRoleRank: 1, IsGuildOwner: true}
	target := Subject{ID: "user", TopRoleRank: 10, TopRoleName: "Admin"}
	bot := Subject{ID: "bot", TopRoleRank: 20, TopRoleName: "MythicBot"}

	if v := Authorize(actor, target, bot, ""); !v.Allowed {
		t.Errorf("Authorize() rejected the guild owner: %s", v.Reason)
	}

	lowBot := Subject{ID: "bot", TopRoleRank: 5, TopRoleName: "MythicBot"}
	if v := Authorize(actor, target, lowBot, ""); v.Allowed {
		t.Error("Authorize() ignored the bot hierarchy check for the guild owner")
	}
}
