// Package mod - /mod clearwarns command
package mod

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/guildconfig"
	"github.com/MythicStudios/MythicBotGo/pkg/logger"
	"github.com/MythicStudios/MythicBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createClearWarnsCommand creates the /mod clearwarns subcommand
func createClearWarnsCommand() *discord.Command {
	return discord.NewCommand(
		"clearwarns",
		"Elimina advertencias de un usuario",
		"mod",
		clearWarnsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario al que limpiar advertencias",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "ID de la advertencia a eliminar, o 'all' para todas",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// clearWarnsHandler handles the /mod clearwarns command
func clearWarnsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	rawID := strings.TrimSpace(ctx.GetStringOption("id"))
	if rawID == "" {
		return ctx.ReplyEphemeral("❌ Debes indicar el ID de la advertencia o `all`.")
	}

	guildID := ctx.Interaction.GuildID
	store := guildconfig.Get()

	var removed int
	var clearReason string

	if strings.EqualFold(rawID, "all") {
		clearReason = "Todas las advertencias eliminadas"
		_, err := store.Update(guildID, func(cfg *guildconfig.GuildConfig) {
			removed = guildconfig.ClearAllWarnings(cfg, user.ID)
		})
		if err != nil {
			logger.Error(fmt.Sprintf("No se pudo persistir la limpieza de advertencias de %s en %s: %v", user.ID, guildID, err), "Mod")
		}
	} else {
		warnID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return ctx.ReplyEphemeral("❌ El ID debe ser un número o `all`.")
		}

		clearReason = fmt.Sprintf("Advertencia %d eliminada", warnID)
		_, uerr := store.Update(guildID, func(cfg *guildconfig.GuildConfig) {
			removed = guildconfig.ClearWarning(cfg, user.ID, warnID)
		})
		if uerr != nil {
			logger.Error(fmt.Sprintf("No se pudo persistir la limpieza de advertencias de %s en %s: %v", user.ID, guildID, uerr), "Mod")
		}
	}

	if removed == 0 {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se encontró ninguna advertencia con ese criterio para **%s**.", user.Username))
	}

	recordAction(ctx, models.ModAction{
		GuildID:     guildID,
		UserID:      user.ID,
		ModeratorID: ctx.User().ID,
		Type:        models.ActionClearWarn,
		Reason:      clearReason,
	})

	return ctx.Reply(fmt.Sprintf("🧹 Se eliminaron **%d** advertencias de **%s**.", removed, user.Username))
}
