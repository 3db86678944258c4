// Package mod - /mod warn command
package mod

import (
	"fmt"
	"time"

	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/guildconfig"
	"github.com/MythicStudios/MythicBotGo/pkg/logger"
	"github.com/MythicStudios/MythicBotGo/pkg/models"
	"github.com/MythicStudios/MythicBotGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Advierte a un usuario",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a advertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la advertencia",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warnHandler handles the /mod warn command
func warnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	reason := ctx.GetStringOption("razon")
	if reason == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar una razón.")
	}

	verdict, ok := authorizeTarget(ctx, user.ID)
	if !ok {
		return nil
	}
	if !verdict.Allowed {
		return ctx.ReplyEphemeral(verdict.Reason)
	}

	guildID := ctx.Interaction.GuildID
	store := guildconfig.Get()

	var warning guildconfig.Warning
	var count int
	cfg, err := store.Update(guildID, func(cfg *guildconfig.GuildConfig) {
		warning, count = guildconfig.AddWarning(cfg, user.ID, ctx.User().ID, reason)
	})
	if err != nil {
		// The warning exists in memory; the document write failed. The
		// command still reports success and the failure goes to the logs.
		logger.Error(fmt.Sprintf("No se pudo persistir la advertencia para %s en %s: %v", user.ID, guildID, err), "Mod")
	}

	action := models.ModAction{
		GuildID:     guildID,
		UserID:      user.ID,
		ModeratorID: ctx.User().ID,
		Type:        models.ActionWarn,
		Reason:      reason,
	}
	recordAction(ctx, action)
	notifyUser(ctx, action)

	msg := fmt.Sprintf("⚠️ **%s** ha sido advertido. (Advertencia #%d, ID `%d`)\n**Razón:** %s\n**Moderador:** %s",
		user.Username,
		count,
		warning.ID,
		reason,
		ctx.User().Username,
	)

	decision := moderation.EvaluateAutoAction(cfg, count)
	if note := applyAutoAction(ctx, user, cfg, decision, count); note != "" {
		msg += "\n" + note
	}

	return ctx.Reply(msg)
}

// applyAutoAction executes the automatic action a warning triggered and
// returns the line to append to the command reply. An empty string means
// nothing triggered.
func applyAutoAction(ctx *discord.CommandContext, user *discordgo.User, cfg *guildconfig.GuildConfig, decision moderation.AutoDecision, count int) string {
	guildID := ctx.Interaction.GuildID
	botID := ctx.Session.State.User.ID
	autoReason := fmt.Sprintf("Acción automática: %d advertencias alcanzadas.", count)

	switch decision.Kind {
	case moderation.AutoNone:
		return ""

	case moderation.AutoTimeout:
		until := time.Now().Add(decision.Duration)
		if err := ctx.Session.GuildMemberTimeout(guildID, user.ID, &until); err != nil {
			logger.Error(fmt.Sprintf("Fallo el aislamiento automático de %s: %v", user.ID, err), "Mod")
			return "⚠️ Se alcanzó el umbral de advertencias pero no pude aislar al usuario."
		}
		recordAction(ctx, models.ModAction{
			GuildID:     guildID,
			UserID:      user.ID,
			ModeratorID: botID,
			Type:        models.ActionAutoTimeout,
			Reason:      autoReason,
			Duration:    cfg.WarnTimeoutDuration,
			Automatic:   true,
		})
		return fmt.Sprintf("🤖 Umbral de advertencias alcanzado: el usuario fue aislado por `%s`.", cfg.WarnTimeoutDuration)

	case moderation.AutoKick:
		if err := ctx.Session.GuildMemberDeleteWithReason(guildID, user.ID, autoReason); err != nil {
			logger.Error(fmt.Sprintf("Fallo la expulsión automática de %s: %v", user.ID, err), "Mod")
			return "⚠️ Se alcanzó el umbral de advertencias pero no pude expulsar al usuario."
		}
		recordAction(ctx, models.ModAction{
			GuildID:     guildID,
			UserID:      user.ID,
			ModeratorID: botID,
			Type:        models.ActionAutoKick,
			Reason:      autoReason,
			Automatic:   true,
		})
		return "🤖 Umbral de advertencias alcanzado: el usuario fue expulsado."

	case moderation.AutoBan:
		if err := ctx.Session.GuildBanCreateWithReason(guildID, user.ID, autoReason, 0); err != nil {
			logger.Error(fmt.Sprintf("Fallo el baneo automático de %s: %v", user.ID, err), "Mod")
			return "⚠️ Se alcanzó el umbral de advertencias pero no pude banear al usuario."
		}
		recordAction(ctx, models.ModAction{
			GuildID:     guildID,
			UserID:      user.ID,
			ModeratorID: botID,
			Type:        models.ActionAutoBan,
			Reason:      autoReason,
			Automatic:   true,
		})
		return "🤖 Umbral de advertencias alcanzado: el usuario fue baneado."

	case moderation.AutoConfigError:
		logger.Error(fmt.Sprintf("Duración de aislamiento inválida (%q) configurada en el servidor %s.", cfg.WarnTimeoutDuration, guildID), "Mod")
		return fmt.Sprintf("⚠️ Umbral alcanzado, pero la duración configurada (`%s`) no es válida. Revisa `/warnconfig`.", cfg.WarnTimeoutDuration)
	}

	return ""
}
