// Package web provides API routes for the web server.
package web

import (
	"net/http"
	"strconv"

	"github.com/MythicStudios/MythicBotGo/pkg/database"
	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/guildconfig"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/guilds/:id/config", guildConfigHandler)
		api.GET("/guilds/:id/actions", guildActionsHandler)
	}

	s.GET("/ws/modlog", streamHandler)
}

// statusHandler returns the bot and database status
func statusHandler(c *gin.Context) {
	db := database.Get()
	client := discord.Get()

	dbStatus, dbOnline := db.GetStatus()

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	pending := 0
	if al := database.GetActionLog(); al != nil {
		pending = al.PendingCount()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":        dbStatus,
			"isOnline":      dbOnline,
			"pendingAudits": pending,
		},
		"bot": gin.H{
			"isOnline": botOnline,
		},
		"stream": gin.H{
			"clients": GetHub().ClientCount(),
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "MythicBot Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "El bot no está disponible en este momento.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// guildConfigHandler returns the stored configuration for a guild. The
// warning ledger is summarized as per-user counts instead of full entries.
func guildConfigHandler(c *gin.Context) {
	store := guildconfig.Get()
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Config store unavailable",
		})
		return
	}

	guildID := c.Param("id")
	cfg := store.Get(guildID)

	warnCounts := make(map[string]int, len(cfg.Warnings))
	for userID, warns := range cfg.Warnings {
		warnCounts[userID] = len(warns)
	}

	c.JSON(http.StatusOK, gin.H{
		"guildId":             guildID,
		"logChannel":          cfg.LogChannel,
		"modLogChannel":       cfg.ModLogChannel,
		"welcomeChannel":      cfg.WelcomeChannel,
		"leaveChannel":        cfg.LeaveChannel,
		"verifiedRole":        cfg.VerifiedRole,
		"welcomeMessage":      cfg.WelcomeMessage,
		"leaveMessage":        cfg.LeaveMessage,
		"warnThreshold":       cfg.WarnThreshold,
		"warnAction":          cfg.WarnAction,
		"warnTimeoutDuration": cfg.WarnTimeoutDuration,
		"warnCounts":          warnCounts,
	})
}

// guildActionsHandler returns the recent audit log entries for a guild
func guildActionsHandler(c *gin.Context) {
	al := database.GetActionLog()
	if al == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Audit log unavailable",
		})
		return
	}

	limit := int64(25)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	actions, err := al.Recent(c.Param("id"), limit)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "No se pudo consultar el registro de auditoría.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guildId": c.Param("id"),
		"actions": actions,
	})
}
