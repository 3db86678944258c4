package utils

import (
	"github.com/MythicStudios/MythicBotGo/pkg/discord"
	"github.com/MythicStudios/MythicBotGo/pkg/errors"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Muestra información de ayuda",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		ctx.Reply(
			"📖 **Ayuda de MythicBot Go**\n\n" +
				"**Moderación:**\n" +
				"• `/mod warn <usuario> <razón>` - Advierte a un usuario\n" +
				"• `/mod warns <usuario>` - Lista las advertencias\n" +
				"• `/mod clearwarns <usuario> <id|all>` - Elimina advertencias\n" +
				"• `/mod kick <usuario> [razón]` - Expulsa a un usuario\n" +
				"• `/mod ban <usuario> [razón] [días]` - Banea a un usuario\n" +
				"• `/mod unban <usuario> [razón]` - Retira un baneo\n" +
				"• `/mod timeout <usuario> <duración> [razón]` - Aísla temporalmente\n" +
				"• `/mod untimeout <usuario>` - Retira el aislamiento\n\n" +
				"**Configuración:**\n" +
				"• `/warnconfig show|threshold|action|duration` - Sistema de advertencias\n" +
				"• `/admin setchannel <tipo> [canal]` - Canales del bot\n" +
				"• `/admin setmessage <tipo> <plantilla>` - Bienvenidas y despedidas\n" +
				"• `/admin setrole [rol]` - Rol de verificado\n\n" +
				"**Utilidad:**\n" +
				"• `/utils ping` - Comprueba la latencia\n" +
				"• `/utils status` - Estado del bot\n" +
				"• `/utils stats` - Estadísticas del bot",
		)
	}()
	return nil
}
