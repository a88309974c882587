package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ClientLogPath      string
	TrackedServer      string
	PollInterval       time.Duration
	LeaderboardSize    int
	LeaderboardPrivate bool
	PublishQueueSize   int
	Token              string
	DiscordGuildID     string
	DiscordChannelFeed string
	DatabaseURL        string
	MetricsAddr        string
	LogLevel           string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	logPath := envString("CLIENT_LOG_PATH", "")
	if logPath == "" {
		return nil, fmt.Errorf("CLIENT_LOG_PATH is not set")
	}

	token := readSecret("discord_token")
	if token == "" {
		token = os.Getenv("DISCORD_TOKEN")
	}

	dbURL := readSecret("database_url")
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}

	cfg := &Config{
		ClientLogPath:      logPath,
		TrackedServer:      envString("TRACKED_SERVER", "hoplite.gg"),
		PollInterval:       envDuration("POLL_INTERVAL", time.Second),
		LeaderboardSize:    envInt("LEADERBOARD_SIZE", 10),
		LeaderboardPrivate: envBool("LEADERBOARD_PRIVATE", true),
		PublishQueueSize:   envInt("PUBLISH_QUEUE_SIZE", 256),
		Token:              token,
		DiscordGuildID:     envString("DISCORD_GUILD_ID", ""),
		DiscordChannelFeed: envString("DISCORD_CHANNEL_FEED", "eliminations"),
		DatabaseURL:        dbURL,
		MetricsAddr:        envString("METRICS_ADDR", ":9090"),
		LogLevel:           envString("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DiscordEnabled reports whether a bot token was supplied.
func (c *Config) DiscordEnabled() bool {
	return c.Token != ""
}

// JournalEnabled reports whether eliminations should be written to Postgres.
func (c *Config) JournalEnabled() bool {
	return c.DatabaseURL != ""
}

var secretsDir = "/run/secrets/"

func readSecret(name string) string {
	data, err := os.ReadFile(secretsDir + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
