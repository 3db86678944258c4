// Package admin provides server configuration commands under /admin
package admin

import (
	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// RegisterAdminCommands registers the /admin command group
func RegisterAdminCommands(client *discord.ExtendedClient) {
	adminGroup := client.CommandHandler.BuildCommandGroup(
		"admin",
		"Configuración del servidor",
		createSetChannelCommand(),
		createSetMessageCommand(),
		createSetRoleCommand(),
	)
	adminPerms := int64(discordgo.PermissionManageGuild)
	adminGroup.DefaultMemberPermissions = &adminPerms
	client.CommandHandler.AddGlobalCommand(adminGroup)
}
