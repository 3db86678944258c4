// Package mod - /warnconfig command group
package mod

import (
	"fmt"

	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/guildconfig"
	"github.com/MythicStudios/MythicBotGo/pkg/logger"
	"github.com/MythicStudios/MythicBotGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createWarnConfigShowCommand creates /warnconfig show
func createWarnConfigShowCommand() *discord.Command {
	return discord.NewCommand(
		"show",
		"Muestra la configuración de advertencias del servidor",
		"warnconfig",
		warnConfigShowHandler,
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// createWarnConfigThresholdCommand creates /warnconfig threshold
func createWarnConfigThresholdCommand() *discord.Command {
	return discord.NewCommand(
		"threshold",
		"Define cuántas advertencias activan la acción automática (0 la desactiva)",
		"warnconfig",
		warnConfigThresholdHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "cantidad",
			Description: "Número de advertencias (0 para desactivar)",
			Required:    true,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
			MaxValue:    100,
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// createWarnConfigActionCommand creates /warnconfig action
func createWarnConfigActionCommand() *discord.Command {
	return discord.NewCommand(
		"action",
		"Define la acción automática al alcanzar el umbral",
		"warnconfig",
		warnConfigActionHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "accion",
			Description: "Acción a aplicar",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Ninguna", Value: string(guildconfig.ActionNone)},
				{Name: "Aislamiento temporal", Value: string(guildconfig.ActionTimeout)},
				{Name: "Expulsión", Value: string(guildconfig.ActionKick)},
				{Name: "Baneo", Value: string(guildconfig.ActionBan)},
			},
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// createWarnConfigDurationCommand creates /warnconfig duration
func createWarnConfigDurationCommand() *discord.Command {
	return discord.NewCommand(
		"duration",
		"Define la duración del aislamiento automático",
		"warnconfig",
		warnConfigDurationHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duracion",
			Description: "Duración, por ejemplo 30s, 10m, 2h o 1d (máximo 28 días)",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// warnConfigShowHandler handles /warnconfig show
func warnConfigShowHandler(ctx *discord.CommandContext) error {
	cfg := guildconfig.Get().Get(ctx.Interaction.GuildID)

	totalWarned := len(cfg.Warnings)

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title: "⚙️ Configuración de advertencias",
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Umbral", Value: fmt.Sprintf("%d", cfg.WarnThreshold), Inline: true},
			{Name: "Acción", Value: string(cfg.WarnAction), Inline: true},
			{Name: "Duración del aislamiento", Value: cfg.WarnTimeoutDuration, Inline: true},
			{Name: "Usuarios con advertencias", Value: fmt.Sprintf("%d", totalWarned), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "MythicBot Go"},
	})
}

// warnConfigThresholdHandler handles /warnconfig threshold
func warnConfigThresholdHandler(ctx *discord.CommandContext) error {
	threshold := int(ctx.GetIntOption("cantidad"))

	_, err := guildconfig.Get().Update(ctx.Interaction.GuildID, func(cfg *guildconfig.GuildConfig) {
		cfg.WarnThreshold = threshold
	})
	if err != nil {
		logger.Error(fmt.Sprintf("No se pudo guardar el umbral de advertencias en %s: %v", ctx.Interaction.GuildID, err), "WarnConfig")
		return ctx.ReplyEphemeral("❌ No se pudo guardar la configuración. Intenta de nuevo.")
	}

	if threshold == 0 {
		return ctx.Reply("✅ Acciones automáticas desactivadas.")
	}
	return ctx.Reply(fmt.Sprintf("✅ La acción automática se aplicará a partir de **%d** advertencias.", threshold))
}

// warnConfigActionHandler handles /warnconfig action
func warnConfigActionHandler(ctx *discord.CommandContext) error {
	action, ok := guildconfig.ParseWarnAction(ctx.GetStringOption("accion"))
	if !ok {
		return ctx.ReplyEphemeral("❌ Acción inválida. Usa `none`, `timeout`, `kick` o `ban`.")
	}

	_, err := guildconfig.Get().Update(ctx.Interaction.GuildID, func(cfg *guildconfig.GuildConfig) {
		cfg.WarnAction = action
	})
	if err != nil {
		logger.Error(fmt.Sprintf("No se pudo guardar la acción automática en %s: %v", ctx.Interaction.GuildID, err), "WarnConfig")
		return ctx.ReplyEphemeral("❌ No se pudo guardar la configuración. Intenta de nuevo.")
	}

	return ctx.Reply(fmt.Sprintf("✅ Acción automática configurada: `%s`.", action))
}

// warnConfigDurationHandler handles /warnconfig duration
func warnConfigDurationHandler(ctx *discord.CommandContext) error {
	raw := ctx.GetStringOption("duracion")
	if _, ok := moderation.ParseDuration(raw); !ok {
		return ctx.ReplyEphemeral("❌ Duración inválida. Usa el formato `30s`, `10m`, `2h` o `1d` (máximo 28 días).")
	}

	_, err := guildconfig.Get().Update(ctx.Interaction.GuildID, func(cfg *guildconfig.GuildConfig) {
		cfg.WarnTimeoutDuration = raw
	})
	if err != nil {
		logger.Error(fmt.Sprintf("No se pudo guardar la duración del aislamiento en %s: %v", ctx.Interaction.GuildID, err), "WarnConfig")
		return ctx.ReplyEphemeral("❌ No se pudo guardar la configuración. Intenta de nuevo.")
	}

	return ctx.Reply(fmt.Sprintf("✅ Duración del aislamiento automático configurada: `%s`.", raw))
}
