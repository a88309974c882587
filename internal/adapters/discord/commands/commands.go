package commands

import (
	"log/slog"

	"elimination-tracker/internal/adapters/discord/formatting"
	"elimination-tracker/internal/config"

	"github.com/bwmarrin/discordgo"
)

type BotHandler struct {
	Config *config.Config
	Stats  StatsService
}

func ReadyHandler(session *discordgo.Session, ready *discordgo.Ready) {
	slog.Info("Elimination tracker is online!", "user", ready.User.Username, "guilds", len(ready.Guilds))
}

// Routes wires every command of GetApplicationCommands into r.
func (h *BotHandler) Routes(r *Router) {
	guild := WithGuild(h.Config.DiscordGuildID)
	r.Register(CmdLeaderboard, h.KillsLeaderboard, guild)
	r.Register(CmdKills, h.Kills, guild)
	r.Register(CmdSetupFeed, h.SetupFeed, guild, WithAdmin)
}

func (h *BotHandler) KillsLeaderboard(s DiscordSession, i *discordgo.InteractionCreate) {
	respond(s, i, formatting.MsgCodeBlock(h.Stats.Leaderboard()), h.Config.LeaderboardPrivate)
}

func (h *BotHandler) Kills(s DiscordSession, i *discordgo.InteractionCreate) {
	if i.Type == discordgo.InteractionApplicationCommandAutocomplete {
		h.handlePlayerAutocomplete(s, i)
		return
	}

	name := getStringOption(i.ApplicationCommandData().Options, "name")
	if name == "" {
		respond(s, i, formatting.MsgNameRequired, true)
		return
	}

	stats, ok := h.Stats.PlayerStats(name)
	if !ok {
		respond(s, i, formatting.MsgPlayerUnknown(name), h.Config.LeaderboardPrivate)
		return
	}

	respond(s, i, formatting.MsgPlayerKills(stats.Name, stats.Kills), h.Config.LeaderboardPrivate)
}

func (h *BotHandler) handlePlayerAutocomplete(s DiscordSession, i *discordgo.InteractionCreate) {
	query := getFocusedOption(i.ApplicationCommandData().Options)

	choices := buildChoices(h.Stats.PlayerNames(query, maxChoices))
	if err := respondAutocomplete(s, i, choices); err != nil {
		slog.Error("Failed to send autocomplete response", "error", err)
	}
}

func (h *BotHandler) SetupFeed(s DiscordSession, i *discordgo.InteractionCreate) {
	channel := h.Config.DiscordChannelFeed
	if _, err := ensureChannel(s, i.GuildID, channel); err != nil {
		slog.Error("Failed to ensure feed channel", "channel", channel, "error", err)
		respond(s, i, formatting.MsgChannelError(channel), true)
		return
	}

	respond(s, i, formatting.MsgFeedReady(channel), true)
}
