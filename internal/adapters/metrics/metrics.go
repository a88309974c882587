package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatLinesObserved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "elimination_tracker_chat_lines_total",
		Help: "The total number of chat lines inspected while tracking",
	})

	Eliminations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "elimination_tracker_eliminations_total",
		Help: "Elimination broadcasts seen, by outcome",
	}, []string{"result"})

	SessionJoins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "elimination_tracker_session_joins_total",
		Help: "Server joins, split by whether the server is tracked",
	}, []string{"tracked"})

	TrackedPlayers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "elimination_tracker_players",
		Help: "Players with at least one credited kill this session",
	})

	LeaderboardRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "elimination_tracker_leaderboard_requests_total",
		Help: "The total number of leaderboard command invocations",
	})

	JournalWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "elimination_tracker_journal_writes_total",
		Help: "Elimination journal inserts",
	}, []string{"status"})

	DiscordInteractions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discord_interactions_total",
		Help: "Slash command and autocomplete interactions routed, by command",
	}, []string{"command"})

	DiscordMessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discord_messages_sent_total",
		Help: "Total number of Discord messages sent",
	}, []string{"channel_type", "status"})
)
