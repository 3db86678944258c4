package utils

import (
	"fmt"

	"github.com/MythicStudios/MythicBotGo/pkg/database"
	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/errors"
	"github.com/MythicStudios/MythicBotGo/pkg/mqtt"
)

// createStatusCommand creates the /utils status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Muestra el estado del bot",
		"utils",
		statusHandler,
	)
}

// statusHandler handles the /utils status command
func statusHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		db := database.Get()
		dbStatus, _ := db.GetStatus()

		mqttStatus := "🔴 | Desconectado"
		if bridge := mqtt.Get(); bridge != nil && bridge.IsConnected() {
			mqttStatus = "🟢 | En linea"
		}

		pending := 0
		if al := database.GetActionLog(); al != nil {
			pending = al.PendingCount()
		}

		ctx.Reply(fmt.Sprintf(
			"📊 **Estado del Bot**\n"+
				"• Bot: 🟢 Online\n"+
				"• Base de datos: %s\n"+
				"• MQTT: %s\n"+
				"• Auditorías en cola: %d\n"+
				"• Servidores: %d",
			dbStatus,
			mqttStatus,
			pending,
			ctx.Client.GuildCount(),
		))
	}()
	return nil
}
