// Package main is the entry point for the MythicBot Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MythicStudios/MythicBotGo/internal/commands"
	"github.com/MythicStudios/MythicBotGo/internal/events"
	"github.com/MythicStudios/MythicBotGo/pkg/config"
	"github.com/MythicStudios/MythicBotGo/pkg/database"
	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/errors"
	"github.com/MythicStudios/MythicBotGo/pkg/guildconfig"
	"github.com/MythicStudios/MythicBotGo/pkg/logger"
	"github.com/MythicStudios/MythicBotGo/pkg/mqtt"
	"github.com/MythicStudios/MythicBotGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando MythicBot Go...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			err := discordClient.Stop()
			if err != nil {
				return
			}
		}
	})

	// Initialize the per-guild configuration store. The bot cannot run
	// without it; everything else degrades gracefully.
	if _, err := guildconfig.Init(cfg.GuildConfigDir); err != nil {
		logger.Critical(fmt.Sprintf("Error inicializando el almacén de configuración: %v", err), "Main")
		os.Exit(1)
	}

	// Initialize database (moderation audit log)
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
		// Continue without database- it will attempt to reconnect
	}
	defer func() {
		if db != nil {
			err := db.Disconnect()
			if err != nil {
				return
			}
		}
	}()

	if db != nil {
		database.InitActionLog(db)
	}

	// Initialize MQTT
	mqttClientID := "mythicbot"
	if !cfg.IsProd() {
		mqttClientID = "mythicbot_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Initialize web server
	webServer := web.Init(cfg.LogsWebServerHook)
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Register commands using the commands package
	commands.RegisterAll(discordClient)

	// Register events using the events package
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		err := discordClient.Stop()
		if err != nil {
			return
		}
	}(discordClient)

	// Answer status polls over the broker now that guild counts exist
	if err := mqttClient.EnableRemoteStatus(func() map[string]string {
		return map[string]string{
			"env":     cfg.Environment,
			"version": config.Version,
			"guilds":  fmt.Sprintf("%d", discordClient.GuildCount()),
		}
	}); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo suscribir al tópico de control MQTT: %v", err), "Main")
	}

	logger.Success("MythicBot Go iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando MythicBot Go...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
