// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// RegisterModCommands registers the /mod and /warnconfig command groups
func RegisterModCommands(client *discord.ExtendedClient) {
	// Create individual subcommands (each can be in its own file)
	warnCmd := createWarnCommand()
	warningsCmd := createWarningsCommand()
	clearWarnsCmd := createClearWarnsCommand()
	kickCmd := createKickCommand()
	banCmd := createBanCommand()
	unbanCmd := createUnbanCommand()
	timeoutCmd := createTimeoutCommand()
	untimeoutCmd := createUntimeoutCommand()

	// Build the /mod command group with all subcommands
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Comandos de moderación",
		warnCmd,
		warningsCmd,
		clearWarnsCmd,
		kickCmd,
		banCmd,
		unbanCmd,
		timeoutCmd,
		untimeoutCmd,
	)
	modPerms := int64(discordgo.PermissionModerateMembers)
	modGroup.DefaultMemberPermissions = &modPerms
	client.CommandHandler.AddGlobalCommand(modGroup)

	// Build the /warnconfig command group
	warnConfigGroup := client.CommandHandler.BuildCommandGroup(
		"warnconfig",
		"Configura el sistema de advertencias",
		createWarnConfigShowCommand(),
		createWarnConfigThresholdCommand(),
		createWarnConfigActionCommand(),
		createWarnConfigDurationCommand(),
	)
	warnConfigPerms := int64(discordgo.PermissionManageGuild)
	warnConfigGroup.DefaultMemberPermissions = &warnConfigPerms
	client.CommandHandler.AddGlobalCommand(warnConfigGroup)
}
