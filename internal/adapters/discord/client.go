package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"elimination-tracker/internal/adapters/discord/formatting"
	"elimination-tracker/internal/adapters/metrics"
	"elimination-tracker/internal/config"
	"elimination-tracker/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

type DiscordSession interface {
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Adapter posts credited eliminations to the configured feed channel.
type Adapter struct {
	session DiscordSession
	config  *config.Config
	cache   *channelCache
}

func NewAdapter(session DiscordSession, cfg *config.Config) *Adapter {
	return &Adapter{
		session: session,
		config:  cfg,
		cache:   newChannelCache(),
	}
}

func (a *Adapter) SendEliminationNotification(e domain.Elimination) error {
	content := formatting.MsgElimination(e.Killer, e.Victim, e.Cause)
	return a.SendGenericMessage(a.config.DiscordGuildID, a.config.DiscordChannelFeed, content)
}

func (a *Adapter) SendGenericMessage(guildID, channelName, message string) error {
	channelID, err := a.resolveChannelID(guildID, channelName)
	if err != nil {
		slog.Error("Failed to get channel ID", "guild_id", guildID, "channel_name", channelName, "error", err)
		metrics.DiscordMessagesSent.WithLabelValues(channelType(channelName), "failure").Inc()
		return err
	}

	if _, err := a.session.ChannelMessageSend(channelID, message); err != nil {
		slog.Error("Failed to send message", "channel_id", channelID, "error", err)
		a.cache.Invalidate(guildID, channelName)
		metrics.DiscordMessagesSent.WithLabelValues(channelType(channelName), "failure").Inc()
		return fmt.Errorf("send to %s: %w", channelName, err)
	}

	metrics.DiscordMessagesSent.WithLabelValues(channelType(channelName), "success").Inc()
	return nil
}

func (a *Adapter) resolveChannelID(guildID, channelName string) (string, error) {
	if id, ok := a.cache.Get(guildID, channelName); ok {
		return id, nil
	}

	id, err := a.fetchChannelID(guildID, channelName)
	if err != nil {
		return "", err
	}

	a.cache.Set(guildID, channelName, id)
	return id, nil
}

func (a *Adapter) fetchChannelID(guildID, channelName string) (string, error) {
	channels, err := a.session.GuildChannels(guildID)
	if err != nil {
		return "", fmt.Errorf("fetch channels of guild %s: %w", guildID, err)
	}

	for _, ch := range channels {
		if ch.Name == channelName && ch.Type == discordgo.ChannelTypeGuildText {
			return ch.ID, nil
		}
	}

	return "", fmt.Errorf("channel %s not found", channelName)
}

func channelType(name string) string {
	if strings.Contains(name, "elimination") {
		return "feed"
	}
	return "other"
}
