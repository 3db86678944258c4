// Package events provides a registry for organizing bot events.
// Events are organized by category (ready, guild, member)
package events

import (
	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/logger"
)

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	logger.System("📋 Registrando eventos del bot...", "Events")

	// Ready event (bot startup)
	RegisterReadyEvent(client)

	// Guild events (server join/leave)
	RegisterGuildEvents(client)

	// Member events (welcome, leave, verified role)
	RegisterMemberEvents(client)

	logger.Success("✅ Todos los eventos registrados correctamente", "Events")
}
