// Package mod - /mod untimeout command
package mod

import (
	"fmt"

	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createUntimeoutCommand creates the /mod untimeout subcommand
func createUntimeoutCommand() *discord.Command {
	return discord.NewCommand(
		"untimeout",
		"Retira el aislamiento de un usuario",
		"mod",
		untimeoutHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario al que retirar el aislamiento",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionModerateMembers)
}

// untimeoutHandler handles the /mod untimeout command
func untimeoutHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	// Removing a timeout needs no rank check beyond the bot's own
	// permissions; passing nil clears the communication disabled timestamp.
	err := ctx.Session.GuildMemberTimeout(ctx.Interaction.GuildID, user.ID, nil)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al retirar el aislamiento: %v", err))
	}

	recordAction(ctx, models.ModAction{
		UserID:      user.ID,
		ModeratorID: ctx.User().ID,
		Type:        models.ActionUntimeout,
	})

	return ctx.Reply(fmt.Sprintf("🔊 **%s** ya no está aislado.", user.Username))
}
