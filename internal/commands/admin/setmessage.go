// Package admin - /admin setmessage command
package admin

import (
	"fmt"

	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/guildconfig"
	"github.com/MythicStudios/MythicBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

const (
	messageWelcome = "welcome"
	messageLeave   = "leave"
)

// createSetMessageCommand creates the /admin setmessage subcommand
func createSetMessageCommand() *discord.Command {
	return discord.NewCommand(
		"setmessage",
		"Define la plantilla de bienvenida o despedida",
		"admin",
		setMessageHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "tipo",
			Description: "Qué plantilla configurar",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Bienvenida", Value: messageWelcome},
				{Name: "Despedida", Value: messageLeave},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "plantilla",
			Description: "Texto con {user.mention}, {user.name}, {server.name} o {member_count}",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// setMessageHandler handles the /admin setmessage command
func setMessageHandler(ctx *discord.CommandContext) error {
	kind := ctx.GetStringOption("tipo")
	template := ctx.GetStringOption("plantilla")
	if template == "" {
		return ctx.ReplyEphemeral("❌ Debes indicar la plantilla.")
	}

	_, err := guildconfig.Get().Update(ctx.Interaction.GuildID, func(cfg *guildconfig.GuildConfig) {
		switch kind {
		case messageWelcome:
			cfg.WelcomeMessage = template
		case messageLeave:
			cfg.LeaveMessage = template
		}
	})
	if err != nil {
		logger.Error(fmt.Sprintf("No se pudo guardar la plantilla '%s' en %s: %v", kind, ctx.Interaction.GuildID, err), "Admin")
		return ctx.ReplyEphemeral("❌ No se pudo guardar la configuración. Intenta de nuevo.")
	}

	preview := guildconfig.RenderTemplate(template, guildconfig.TemplateData{
		UserMention: ctx.User().Mention(),
		UserName:    ctx.User().Username,
		UserID:      ctx.User().ID,
		ServerName:  guildName(ctx),
		MemberCount: memberCount(ctx),
	})

	return ctx.Reply(fmt.Sprintf("✅ Plantilla de `%s` guardada.\n**Vista previa:** %s", kind, preview))
}

func guildName(ctx *discord.CommandContext) string {
	if g := ctx.Guild(); g != nil {
		return g.Name
	}
	return ""
}

func memberCount(ctx *discord.CommandContext) int {
	if g := ctx.Guild(); g != nil {
		return g.MemberCount
	}
	return 0
}
