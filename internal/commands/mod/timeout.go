// Package mod - /mod timeout command
package mod

import (
	"fmt"
	"time"

	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/models"
	"github.com/MythicStudios/MythicBotGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createTimeoutCommand creates the /mod timeout subcommand
func createTimeoutCommand() *discord.Command {
	return discord.NewCommand(
		"timeout",
		"Aísla temporalmente a un usuario",
		"mod",
		timeoutHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a aislar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duracion",
			Description: "Duración, por ejemplo 30s, 10m, 2h o 1d (máximo 28 días)",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del aislamiento",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionModerateMembers)
}

// timeoutHandler handles the /mod timeout command
func timeoutHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	rawDuration := ctx.GetStringOption("duracion")
	duration, ok := moderation.ParseDuration(rawDuration)
	if !ok {
		return ctx.ReplyEphemeral("❌ Duración inválida. Usa el formato `30s`, `10m`, `2h` o `1d` (máximo 28 días).")
	}

	reason := ctx.GetStringOption("razon")
	if reason == "" {
		reason = "Sin razón especificada"
	}

	verdict, authOK := authorizeTarget(ctx, user.ID)
	if !authOK {
		return nil
	}
	if !verdict.Allowed {
		return ctx.ReplyEphemeral(verdict.Reason)
	}

	until := time.Now().Add(duration)
	err := ctx.Session.GuildMemberTimeout(ctx.Interaction.GuildID, user.ID, &until)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al aislar: %v", err))
	}

	action := models.ModAction{
		GuildID:     ctx.Interaction.GuildID,
		UserID:      user.ID,
		ModeratorID: ctx.User().ID,
		Type:        models.ActionTimeout,
		Reason:      reason,
		Duration:    rawDuration,
	}
	recordAction(ctx, action)
	notifyUser(ctx, action)

	return ctx.Reply(fmt.Sprintf("🔇 **%s** ha sido aislado por `%s`.\n**Razón:** %s",
		user.Username,
		rawDuration,
		reason,
	))
}
