package discord

import (
	"log/slog"

	"elimination-tracker/internal/config"

	"github.com/bwmarrin/discordgo"
)

func NewSession(cfg *config.Config) (*discordgo.Session, error) {
	discord, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		slog.Error("Failed to create discord session", "error", err)
		return nil, err
	}

	// Slash commands and the feed channel only need guild events.
	discord.Identify.Intents = discordgo.IntentsGuilds

	return discord, nil
}
