// Package mod - /mod unban command
package mod

import (
	"fmt"

	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createUnbanCommand creates the /mod unban subcommand
func createUnbanCommand() *discord.Command {
	return discord.NewCommand(
		"unban",
		"Retira el baneo de un usuario",
		"mod",
		unbanHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario al que retirar el baneo",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del desbaneo",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)
}

// unbanHandler handles the /mod unban command. The target is not a guild
// member, so the hierarchy checks do not apply; only the ban list matters.
func unbanHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	reason := ctx.GetStringOption("razon")
	if reason == "" {
		reason = "Sin razón especificada"
	}

	err := ctx.Session.GuildBanDelete(ctx.Interaction.GuildID, user.ID)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al retirar el baneo: %v", err))
	}

	recordAction(ctx, models.ModAction{
		UserID:      user.ID,
		ModeratorID: ctx.User().ID,
		Type:        models.ActionUnban,
		Reason:      reason,
	})

	return ctx.Reply(fmt.Sprintf("🔓 **%s** ya no está baneado.\n**Razón:** %s", user.Username, reason))
}
