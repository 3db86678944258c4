// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"fmt"
	"time"

	"github.com/MythicStudios/MythicBotGo/pkg/config"
	"github.com/MythicStudios/MythicBotGo/pkg/database"
	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/guildconfig"
	"github.com/MythicStudios/MythicBotGo/pkg/logger"
	"github.com/MythicStudios/MythicBotGo/pkg/models"
	"github.com/MythicStudios/MythicBotGo/pkg/moderation"
	"github.com/MythicStudios/MythicBotGo/pkg/mqtt"
	"github.com/MythicStudios/MythicBotGo/pkg/web"
	"github.com/bwmarrin/discordgo"
)

// subjectFromMember reduces a guild member to what the eligibility checks
// need. Rank 0 is @everyone.
func subjectFromMember(guild *discordgo.Guild, m *discordgo.Member) moderation.Subject {
	s := moderation.Subject{
		ID:           m.User.ID,
		TopRoleName:  "@everyone",
		IsGuildOwner: guild.OwnerID == m.User.ID,
	}

	for _, roleID := range m.Roles {
		for _, role := range guild.Roles {
			if role.ID == roleID && role.Position > s.TopRoleRank {
				s.TopRoleRank = role.Position
				s.TopRoleName = role.Name
			}
		}
	}

	return s
}

// resolveMember looks a member up in state first, hitting the API only on
// a miss.
func resolveMember(ctx *discord.CommandContext, guildID, userID string) (*discordgo.Member, error) {
	if m, err := ctx.Session.State.Member(guildID, userID); err == nil {
		return m, nil
	}
	return ctx.Session.GuildMember(guildID, userID)
}

// authorizeTarget runs the full eligibility chain for a moderation command
// against the target user. It returns a nil verdict pointer with an error
// message already sent when something needed for the check is missing.
func authorizeTarget(ctx *discord.CommandContext, targetID string) (moderation.Verdict, bool) {
	guildID := ctx.Interaction.GuildID
	guild := ctx.Guild()
	if guild == nil {
		ctx.ReplyEphemeral("❌ Este comando solo puede usarse dentro de un servidor.")
		return moderation.Verdict{}, false
	}

	targetMember, err := resolveMember(ctx, guildID, targetID)
	if err != nil {
		ctx.ReplyEphemeral("❌ No se encontró al usuario en este servidor.")
		return moderation.Verdict{}, false
	}

	botMember, err := resolveMember(ctx, guildID, ctx.Session.State.User.ID)
	if err != nil {
		ctx.ReplyEphemeral("❌ No pude verificar mis propios permisos en este servidor.")
		return moderation.Verdict{}, false
	}

	verdict := moderation.Authorize(
		subjectFromMember(guild, ctx.Member()),
		subjectFromMember(guild, targetMember),
		subjectFromMember(guild, botMember),
		config.Get().OwnerID,
	)
	return verdict, true
}

// actionEmbedColor maps action types to mod-log embed colors
func actionEmbedColor(t models.ActionType) int {
	switch t {
	case models.ActionBan, models.ActionAutoBan:
		return 0xFF0000
	case models.ActionKick, models.ActionAutoKick:
		return 0xFF8C00
	case models.ActionTimeout, models.ActionAutoTimeout:
		return 0xFFFF00
	case models.ActionWarn:
		return 0xFFA500
	case models.ActionClearWarn, models.ActionUntimeout, models.ActionUnban:
		return 0x00FF00
	default:
		return 0x808080
	}
}

// actionTitle maps action types to the mod-log embed title
func actionTitle(t models.ActionType) string {
	switch t {
	case models.ActionWarn:
		return "⚠️ Advertencia"
	case models.ActionClearWarn:
		return "🧹 Advertencias eliminadas"
	case models.ActionKick:
		return "👢 Expulsión"
	case models.ActionBan:
		return "🔨 Baneo"
	case models.ActionUnban:
		return "🔓 Baneo retirado"
	case models.ActionTimeout:
		return "🔇 Aislamiento temporal"
	case models.ActionUntimeout:
		return "🔊 Aislamiento retirado"
	case models.ActionAutoTimeout:
		return "🤖 Aislamiento automático"
	case models.ActionAutoKick:
		return "🤖 Expulsión automática"
	case models.ActionAutoBan:
		return "🤖 Baneo automático"
	default:
		return "Acción de moderación"
	}
}

// buildActionEmbed renders a ModAction for the guild's mod-log channel
func buildActionEmbed(action models.ModAction) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Usuario", Value: fmt.Sprintf("<@%s>", action.UserID), Inline: true},
		{Name: "Moderador", Value: fmt.Sprintf("<@%s>", action.ModeratorID), Inline: true},
	}
	if action.Reason != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Razón", Value: action.Reason})
	}
	if action.Duration != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Duración", Value: action.Duration, Inline: true})
	}

	return &discordgo.MessageEmbed{
		Title:     actionTitle(action.Type),
		Color:     actionEmbedColor(action.Type),
		Fields:    fields,
		Timestamp: action.CreatedAt.Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: "MythicBot Go"},
	}
}

// dmMessage renders the notification sent to a sanctioned user. An empty
// string means the action type carries no notification (the user either
// cannot receive it or does not need one).
func dmMessage(action models.ModAction, guildName string) string {
	switch action.Type {
	case models.ActionWarn:
		return fmt.Sprintf("⚠️ Has recibido una advertencia en **%s**.\n**Razón:** %s", guildName, action.Reason)
	case models.ActionKick:
		return fmt.Sprintf("👢 Has sido expulsado de **%s**.\n**Razón:** %s", guildName, action.Reason)
	case models.ActionBan:
		return fmt.Sprintf("🔨 Has sido baneado de **%s**.\n**Razón:** %s", guildName, action.Reason)
	case models.ActionTimeout:
		return fmt.Sprintf("🔇 Has sido aislado temporalmente en **%s** por `%s`.\n**Razón:** %s", guildName, action.Duration, action.Reason)
	default:
		return ""
	}
}

// notifyUser DMs the sanctioned user about the action. Closed DMs are
// normal, so failures only log. For kicks and bans the caller must send
// the DM before executing the action, while a channel still exists.
func notifyUser(ctx *discord.CommandContext, action models.ModAction) {
	guildName := action.GuildID
	if g := ctx.Guild(); g != nil {
		guildName = g.Name
	}

	msg := dmMessage(action, guildName)
	if msg == "" {
		return
	}

	channel, err := ctx.Session.UserChannelCreate(action.UserID)
	if err != nil {
		logger.Debug(fmt.Sprintf("No se pudo abrir el DM con %s: %v", action.UserID, err), "ModLog")
		return
	}

	if _, err := ctx.Session.ChannelMessageSend(channel.ID, msg); err != nil {
		logger.Debug(fmt.Sprintf("No se pudo notificar a %s por DM: %v", action.UserID, err), "ModLog")
	}
}

// recordAction fans a completed moderation action out to the mod-log
// channel, the audit database, the MQTT broker and the websocket stream.
// Every sink is best effort; a failing sink only logs.
func recordAction(ctx *discord.CommandContext, action models.ModAction) {
	if action.GuildID == "" {
		action.GuildID = ctx.Interaction.GuildID
	}
	if action.CreatedAt.IsZero() {
		action.CreatedAt = time.Now()
	}

	if store := guildconfig.Get(); store != nil {
		cfg := store.Get(action.GuildID)
		if cfg.ModLogChannel != "" {
			if _, err := ctx.Session.ChannelMessageSendEmbed(cfg.ModLogChannel, buildActionEmbed(action)); err != nil {
				logger.Warn(fmt.Sprintf("No se pudo enviar el registro de moderación al canal %s: %v", cfg.ModLogChannel, err), "ModLog")
			}
		}
	}

	if al := database.GetActionLog(); al != nil {
		al.Insert(action)
	}

	if bridge := mqtt.Get(); bridge != nil && bridge.IsConnected() {
		if err := bridge.PublishAction(action); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo publicar la acción en MQTT: %v", err), "ModLog")
		}
	}

	web.GetHub().Broadcast(action)
}
