// Package events provides event handlers for member events
package events

import (
	"fmt"

	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/guildconfig"
	"github.com/MythicStudios/MythicBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildMemberAdd)
	client.Session.AddHandler(onGuildMemberRemove)
}

// templateData builds the substitution values for a member in a guild
func templateData(guild *discordgo.Guild, user *discordgo.User) guildconfig.TemplateData {
	return guildconfig.TemplateData{
		UserMention: user.Mention(),
		UserName:    user.Username,
		UserID:      user.ID,
		ServerName:  guild.Name,
		MemberCount: guild.MemberCount,
	}
}

// onGuildMemberAdd is called when a new member joins the server
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Info(fmt.Sprintf("👋 Nuevo miembro: %s en servidor %s", m.User.Username, m.GuildID), "Member")

	guild, err := s.State.Guild(m.GuildID)
	if err != nil {
		guild, err = s.Guild(m.GuildID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error obteniendo servidor: %v", err), "Member")
			return
		}
	}

	cfg := guildconfig.Get().Get(m.GuildID)

	if cfg.WelcomeChannel != "" {
		message := guildconfig.RenderTemplate(cfg.WelcomeMessage, templateData(guild, m.User))
		if _, err := s.ChannelMessageSend(cfg.WelcomeChannel, message); err != nil {
			logger.Error(fmt.Sprintf("Error enviando mensaje de bienvenida en %s: %v", m.GuildID, err), "Member")
		}
	}

	if cfg.VerifiedRole != "" {
		if err := s.GuildMemberRoleAdd(m.GuildID, m.User.ID, cfg.VerifiedRole); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo asignar el rol verificado a %s en %s: %v", m.User.ID, m.GuildID, err), "Member")
		}
	}

	if cfg.LogChannel != "" {
		if _, err := s.ChannelMessageSend(cfg.LogChannel, fmt.Sprintf("📥 <@%s> se unió al servidor.", m.User.ID)); err != nil {
			logger.Debug(fmt.Sprintf("No se pudo escribir en el canal de registro de %s: %v", m.GuildID, err), "Member")
		}
	}
}

// onGuildMemberRemove is called when a member leaves the server
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Info(fmt.Sprintf("👋 Adiós: %s salió del servidor %s", m.User.Username, m.GuildID), "Member")

	guild, err := s.State.Guild(m.GuildID)
	if err != nil {
		guild, err = s.Guild(m.GuildID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error obteniendo servidor: %v", err), "Member")
			return
		}
	}

	cfg := guildconfig.Get().Get(m.GuildID)

	if cfg.LeaveChannel != "" {
		message := guildconfig.RenderTemplate(cfg.LeaveMessage, templateData(guild, m.User))
		if _, err := s.ChannelMessageSend(cfg.LeaveChannel, message); err != nil {
			logger.Error(fmt.Sprintf("Error enviando mensaje de despedida en %s: %v", m.GuildID, err), "Member")
		}
	}

	if cfg.LogChannel != "" {
		if _, err := s.ChannelMessageSend(cfg.LogChannel, fmt.Sprintf("📤 **%s** salió del servidor.", m.User.Username)); err != nil {
			logger.Debug(fmt.Sprintf("No se pudo escribir en el canal de registro de %s: %v", m.GuildID, err), "Member")
		}
	}
}
