// Package dev provides developer-only commands registered in the dev guild.
package dev

import (
	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// RegisterDevCommands registers all dev commands as /dev subcommands
// (only in the dev guild)
func RegisterDevCommands(client *discord.ExtendedClient) {
	evalCmd := createEvalCommand()

	devGroup := &discordgo.ApplicationCommand{
		Name:        "dev",
		Description: "Comandos de desarrollo",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        evalCmd.Name,
				Description: evalCmd.Description,
				Options:     evalCmd.Options,
			},
		},
	}

	client.Commands.Set("dev.eval", evalCmd)
	client.CommandHandler.AddDevCommand(devGroup)
}
