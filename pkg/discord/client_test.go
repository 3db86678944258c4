package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestHandleInteractionRecoversPanic verifies that a command handler panic
// stays inside the dispatch boundary instead of taking the process down
func TestHandleInteractionRecoversPanic(t *testing.T) {
	c := &ExtendedClient{
		Commands: NewCommandCollection(),
	}

	c.Commands.Set("boom", NewCommand("boom", "panics on purpose", "test", func(ctx *CommandContext) error {
		panic("handler exploded")
	}))

	interaction := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "boom",
			},
		},
	}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic escaped the interaction dispatcher: %v", r)
		}
	}()

	c.handleInteraction(nil, interaction)
}

// TestResolveCommandName verifies full-name resolution for plain commands,
// subcommands and subcommand groups
func TestResolveCommandName(t *testing.T) {
	tests := []struct {
		name string
		data discordgo.ApplicationCommandInteractionData
		want string
	}{
		{
			name: "plain command",
			data: discordgo.ApplicationCommandInteractionData{Name: "ping"},
			want: "ping",
		},
		{
			name: "subcommand",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "mod",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "warn", Type: discordgo.ApplicationCommandOptionSubCommand},
				},
			},
			want: "mod.warn",
		},
		{
			name: "subcommand group",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "admin",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name: "set",
						Type: discordgo.ApplicationCommandOptionSubCommandGroup,
						Options: []*discordgo.ApplicationCommandInteractionDataOption{
							{Name: "channel", Type: discordgo.ApplicationCommandOptionSubCommand},
						},
					},
				},
			},
			want: "admin.set.channel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveCommandName(tt.data); got != tt.want {
				t.Errorf("resolveCommandName() = %q, want %q", got, tt.want)
			}
		})
	}
}
