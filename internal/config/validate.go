package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation constants define acceptable bounds for configuration values
const (
	// Token validation
	minTokenLength = 50 // Discord tokens are typically 50+ characters

	// PollInterval validation
	minPollInterval = 100 * time.Millisecond
	maxPollInterval = 1 * time.Minute

	// LeaderboardSize validation
	minLeaderboardSize = 1
	maxLeaderboardSize = 25 // Discord autocomplete and message length stay sane

	// PublishQueueSize validation
	minPublishQueueSize = 1
	maxPublishQueueSize = 10000

	// Channel name validation
	maxChannelNameLength = 100 // Discord limit
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks if the configuration values are valid and within acceptable ranges.
// It returns all validation errors at once using errors.Join.
//
// Discord settings are only checked when a token is present, since the bot
// surface is optional.
func (c *Config) Validate() error {
	var errs []error

	if err := c.validateLogPath(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateTrackedServer(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validatePollInterval(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateLeaderboardSize(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validatePublishQueueSize(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateDiscord(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateLogLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

func (c *Config) validateLogPath() error {
	if strings.TrimSpace(c.ClientLogPath) == "" {
		return fmt.Errorf("CLIENT_LOG_PATH is required but not set")
	}
	return nil
}

func (c *Config) validateTrackedServer() error {
	if strings.TrimSpace(c.TrackedServer) == "" {
		return fmt.Errorf("TRACKED_SERVER cannot be empty")
	}
	return nil
}

func (c *Config) validatePollInterval() error {
	if c.PollInterval < minPollInterval || c.PollInterval > maxPollInterval {
		return fmt.Errorf(
			"POLL_INTERVAL must be between %v and %v, got %v",
			minPollInterval, maxPollInterval, c.PollInterval,
		)
	}
	return nil
}

func (c *Config) validateLeaderboardSize() error {
	if c.LeaderboardSize < minLeaderboardSize || c.LeaderboardSize > maxLeaderboardSize {
		return fmt.Errorf(
			"LEADERBOARD_SIZE must be between %d and %d, got %d",
			minLeaderboardSize, maxLeaderboardSize, c.LeaderboardSize,
		)
	}
	return nil
}

func (c *Config) validatePublishQueueSize() error {
	if c.PublishQueueSize < minPublishQueueSize || c.PublishQueueSize > maxPublishQueueSize {
		return fmt.Errorf(
			"PUBLISH_QUEUE_SIZE must be between %d and %d, got %d",
			minPublishQueueSize, maxPublishQueueSize, c.PublishQueueSize,
		)
	}
	return nil
}

// validateDiscord ensures the token and feed channel are usable when the bot is enabled
func (c *Config) validateDiscord() error {
	if !c.DiscordEnabled() {
		return nil
	}

	var errs []error

	if len(c.Token) < minTokenLength {
		errs = append(errs, fmt.Errorf(
			"DISCORD_TOKEN appears invalid (too short: %d chars, expected %d+)",
			len(c.Token), minTokenLength,
		))
	}

	if err := validateChannelName("DISCORD_CHANNEL_FEED", c.DiscordChannelFeed); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (c *Config) validateLogLevel() error {
	for _, l := range logLevels {
		if strings.EqualFold(c.LogLevel, l) {
			return nil
		}
	}
	return fmt.Errorf("LOG_LEVEL must be one of %s, got %q", strings.Join(logLevels, ", "), c.LogLevel)
}

// validateChannelName validates a single channel name
func validateChannelName(fieldName, channelName string) error {
	if channelName == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}

	if len(channelName) > maxChannelNameLength {
		return fmt.Errorf(
			"%s must be at most %d characters (Discord limit), got %d",
			fieldName, maxChannelNameLength, len(channelName),
		)
	}

	return nil
}
