// Package admin - /admin setrole command
package admin

import (
	"fmt"

	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/guildconfig"
	"github.com/MythicStudios/MythicBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createSetRoleCommand creates the /admin setrole subcommand
func createSetRoleCommand() *discord.Command {
	return discord.NewCommand(
		"setrole",
		"Define el rol de verificado del servidor",
		"admin",
		setRoleHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "rol",
			Description: "Rol a asignar como verificado (omite para desasignar)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// setRoleHandler handles the /admin setrole command
func setRoleHandler(ctx *discord.CommandContext) error {
	role := ctx.GetRoleOption("rol")

	roleID := ""
	if role != nil {
		roleID = role.ID
	}

	_, err := guildconfig.Get().Update(ctx.Interaction.GuildID, func(cfg *guildconfig.GuildConfig) {
		cfg.VerifiedRole = roleID
	})
	if err != nil {
		logger.Error(fmt.Sprintf("No se pudo guardar el rol verificado en %s: %v", ctx.Interaction.GuildID, err), "Admin")
		return ctx.ReplyEphemeral("❌ No se pudo guardar la configuración. Intenta de nuevo.")
	}

	if roleID == "" {
		return ctx.Reply("✅ Rol de verificado desasignado.")
	}
	return ctx.Reply(fmt.Sprintf("✅ Rol de verificado configurado: <@&%s>.", roleID))
}
