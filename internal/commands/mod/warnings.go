// Package mod - /mod warns command
package mod

import (
	"fmt"

	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/guildconfig"
	"github.com/bwmarrin/discordgo"
)

// maxListedWarnings caps the embed size for heavily warned users
const maxListedWarnings = 10

// createWarningsCommand creates the /mod warns subcommand
func createWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"warns",
		"Muestra las advertencias de un usuario",
		"mod",
		warningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warningsHandler handles the /mod warns command
func warningsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	cfg := guildconfig.Get().Get(ctx.Interaction.GuildID)
	warns := guildconfig.ListWarnings(cfg, user.ID)

	if len(warns) == 0 {
		return ctx.Reply(fmt.Sprintf("✅ **%s** no tiene advertencias.", user.Username))
	}

	fields := make([]*discordgo.MessageEmbedField, 0, maxListedWarnings)
	for i, w := range warns {
		if i >= maxListedWarnings {
			break
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("ID `%d`", w.ID),
			Value: fmt.Sprintf("**Razón:** %s\n**Moderador:** <@%s> | <t:%d:R>", w.Reason, w.ModeratorID, w.Timestamp),
		})
	}

	description := fmt.Sprintf("Total: **%d**", len(warns))
	if len(warns) > maxListedWarnings {
		description += fmt.Sprintf(" (mostrando las %d más recientes)", maxListedWarnings)
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚠️ Advertencias de %s", user.Username),
		Description: description,
		Color:       0xFFA500,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: "MythicBot Go"},
	})
}
