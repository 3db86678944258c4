// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (utils, mod, admin, dev)
package commands

import (
	"github.com/MythicStudios/MythicBotGo/internal/commands/admin"
	"github.com/MythicStudios/MythicBotGo/internal/commands/dev"
	"github.com/MythicStudios/MythicBotGo/internal/commands/mod"
	"github.com/MythicStudios/MythicBotGo/internal/commands/utils"
	"github.com/MythicStudios/MythicBotGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Utility commands (/utils ping, /utils status, /utils help, /utils stats)
	utils.RegisterUtilsCommands(client)

	// Moderation commands (/mod warn, /mod warns, /mod clearwarns, /mod kick,
	// /mod ban, /mod unban, /mod timeout, /mod untimeout) and /warnconfig
	mod.RegisterModCommands(client)

	// Server configuration (/admin setchannel, /admin setmessage, /admin setrole)
	admin.RegisterAdminCommands(client)

	// Developer commands, registered only in the dev guild (/dev eval)
	dev.RegisterDevCommands(client)
}
