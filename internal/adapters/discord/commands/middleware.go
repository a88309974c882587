package commands

import (
	"elimination-tracker/internal/adapters/discord/formatting"

	"github.com/bwmarrin/discordgo"
)

type Middleware func(CommandHandler) CommandHandler

func WithAdmin(next CommandHandler) CommandHandler {
	return func(s DiscordSession, i *discordgo.InteractionCreate) {
		if i.Member == nil || i.Member.Permissions&discordgo.PermissionAdministrator == 0 {
			respond(s, i, formatting.MsgAdminRequired, true)
			return
		}
		next(s, i)
	}
}

// WithGuild drops interactions from any guild other than guildID. An empty
// guildID accepts every guild.
func WithGuild(guildID string) Middleware {
	return func(next CommandHandler) CommandHandler {
		return func(s DiscordSession, i *discordgo.InteractionCreate) {
			if guildID != "" && i.GuildID != guildID {
				return
			}
			next(s, i)
		}
	}
}
