package mod

import (
	"strings"
	"testing"

	"github.com/MythicStudios/MythicBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// TestSubjectFromMember verifies top-role resolution and the guild-owner flag
func TestSubjectFromMember(t *testing.T) {
	guild := &discordgo.Guild{
		OwnerID: "owner",
		Roles: []*discordgo.Role{
			{ID: "r1", Name: "Miembro", Position: 1},
			{ID: "r2", Name: "Moderador", Position: 5},
			{ID: "r3", Name: "Admin", Position: 10},
		},
	}

	tests := []struct {
		name      string
		member    *discordgo.Member
		wantRank  int
		wantName  string
		wantOwner bool
	}{
		{
			name:     "no roles defaults to everyone",
			member:   &discordgo.Member{User: &discordgo.User{ID: "u1"}},
			wantRank: 0,
			wantName: "@everyone",
		},
		{
			name: "highest of several roles wins",
			member: &discordgo.Member{
				User:  &discordgo.User{ID: "u2"},
				Roles: []string{"r1", "r2"},
			},
			wantRank: 5,
			wantName: "Moderador",
		},
		{
			name: "guild owner flagged",
			member: &discordgo.Member{
				User:  &discordgo.User{ID: "owner"},
				Roles: []string{"r3"},
			},
			wantRank:  10,
			wantName:  "Admin",
			wantOwner: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := subjectFromMember(guild, tt.member)
			if s.TopRoleRank != tt.wantRank {
				t.Errorf("TopRoleRank = %d, want %d", s.TopRoleRank, tt.wantRank)
			}
			if s.TopRoleName != tt.wantName {
				t.Errorf("TopRoleName = %q, want %q", s.TopRoleName, tt.wantName)
			}
			if s.IsGuildOwner != tt.wantOwner {
				t.Errorf("IsGuildOwner = %v, want %v", s.IsGuildOwner, tt.wantOwner)
			}
		})
	}
}

// TestDMMessage verifies which action types notify the user and that the
// notification carries the reason
func TestDMMessage(t *testing.T) {
	tests := []struct {
		actionType models.ActionType
		duration   string
		wantEmpty  bool
	}{
		{actionType: models.ActionWarn},
		{actionType: models.ActionKick},
		{actionType: models.ActionBan},
		{actionType: models.ActionTimeout, duration: "2h"},
		{actionType: models.ActionUnban, wantEmpty: true},
		{actionType: models.ActionUntimeout, wantEmpty: true},
		{actionType: models.ActionClearWarn, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.actionType), func(t *testing.T) {
			msg := dmMessage(models.ModAction{
				Type:     tt.actionType,
				Reason:   "spam",
				Duration: tt.duration,
			}, "Servidor de Prueba")

			if tt.wantEmpty {
				if msg != "" {
					t.Errorf("dmMessage = %q, want empty", msg)
				}
				return
			}

			if msg == "" {
				t.Fatal("dmMessage is empty, want a notification")
			}
			if !strings.Contains(msg, "Servidor de Prueba") {
				t.Errorf("dmMessage %q does not name the guild", msg)
			}
			if !strings.Contains(msg, "spam") {
				t.Errorf("dmMessage %q does not carry the reason", msg)
			}
			if tt.duration != "" && !strings.Contains(msg, tt.duration) {
				t.Errorf("dmMessage %q does not carry the duration", msg)
			}
		})
	}
}

// TestActionTitleCoversAllTypes verifies every audit action type renders a
// dedicated mod-log title
func TestActionTitleCoversAllTypes(t *testing.T) {
	types := []models.ActionType{
		models.ActionWarn,
		models.ActionClearWarn,
		models.ActionKick,
		models.ActionBan,
		models.ActionUnban,
		models.ActionTimeout,
		models.ActionUntimeout,
		models.ActionAutoTimeout,
		models.ActionAutoKick,
		models.ActionAutoBan,
	}

	seen := make(map[string]models.ActionType, len(types))
	fallback := actionTitle(models.ActionType("desconocida"))

	for _, typ := range types {
		title := actionTitle(typ)
		if title == fallback {
			t.Errorf("actionTitle(%s) fell back to the generic title", typ)
		}
		if prev, dup := seen[title]; dup {
			t.Errorf("actionTitle(%s) duplicates the title of %s", typ, prev)
		}
		seen[title] = typ
	}
}
