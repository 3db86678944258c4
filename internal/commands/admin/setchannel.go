// Package admin - /admin setchannel command
package admin

import (
	"fmt"

	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/guildconfig"
	"github.com/MythicStudios/MythicBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// channel slot names accepted by /admin setchannel
const (
	slotLog     = "log"
	slotModLog  = "modlog"
	slotWelcome = "welcome"
	slotLeave   = "leave"
)

// createSetChannelCommand creates the /admin setchannel subcommand
func createSetChannelCommand() *discord.Command {
	return discord.NewCommand(
		"setchannel",
		"Asigna un canal del bot (logs, modlog, bienvenidas o despedidas)",
		"admin",
		setChannelHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "tipo",
			Description: "Qué canal configurar",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Registro general", Value: slotLog},
				{Name: "Registro de moderación", Value: slotModLog},
				{Name: "Bienvenidas", Value: slotWelcome},
				{Name: "Despedidas", Value: slotLeave},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "canal",
			Description:  "Canal de texto a usar (omite para desasignar)",
			Required:     false,
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// setChannelHandler handles the /admin setchannel command
func setChannelHandler(ctx *discord.CommandContext) error {
	slot := ctx.GetStringOption("tipo")
	channel := ctx.GetChannelOption("canal")

	channelID := ""
	if channel != nil {
		channelID = channel.ID
	}

	_, err := guildconfig.Get().Update(ctx.Interaction.GuildID, func(cfg *guildconfig.GuildConfig) {
		switch slot {
		case slotLog:
			cfg.LogChannel = channelID
		case slotModLog:
			cfg.ModLogChannel = channelID
		case slotWelcome:
			cfg.WelcomeChannel = channelID
		case slotLeave:
			cfg.LeaveChannel = channelID
		}
	})
	if err != nil {
		logger.Error(fmt.Sprintf("No se pudo guardar el canal '%s' en %s: %v", slot, ctx.Interaction.GuildID, err), "Admin")
		return ctx.ReplyEphemeral("❌ No se pudo guardar la configuración. Intenta de nuevo.")
	}

	if channelID == "" {
		return ctx.Reply(fmt.Sprintf("✅ Canal de `%s` desasignado.", slot))
	}
	return ctx.Reply(fmt.Sprintf("✅ Canal de `%s` configurado: <#%s>.", slot, channelID))
}
