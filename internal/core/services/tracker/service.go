package tracker

import (
	"log/slog"
	"strings"
	"time"

	"elimination-tracker/internal/adapters/metrics"
	"elimination-tracker/internal/config"
	"elimination-tracker/internal/core/domain"
	"elimination-tracker/internal/core/ports"
	"elimination-tracker/internal/core/services/elimination"
	"elimination-tracker/internal/core/services/leaderboard"
	"elimination-tracker/internal/core/services/session"
)

type Dependencies struct {
	Config   *config.Config
	Store    ports.StatStore
	Session  *session.Controller
	Journal  ports.EliminationJournal
	Notifier ports.NotificationService
}

type Service struct {
	config    *config.Config
	store     ports.StatStore
	session   *session.Controller
	journal   ports.EliminationJournal
	notifier  ports.NotificationService
	events    chan domain.Elimination
	now       func() time.Time
	startedAt time.Time
}

func NewService(deps Dependencies) *Service {
	return &Service{
		config:    deps.Config,
		store:     deps.Store,
		session:   deps.Session,
		journal:   deps.Journal,
		notifier:  deps.Notifier,
		events:    make(chan domain.Elimination, deps.Config.PublishQueueSize),
		now:       time.Now,
		startedAt: time.Now(),
	}
}

// HandleChat inspects one chat line. It never suppresses the message, so the
// result is always true.
func (s *Service) HandleChat(msg domain.ChatMessage) bool {
	if msg.Overlay || !s.session.Tracking() {
		return true
	}
	metrics.ChatLinesObserved.Inc()

	event, ok := elimination.Classify(msg.Text)
	if !ok {
		return true
	}

	if !elimination.Creditable(event) {
		result := "environmental"
		if elimination.NamesAttacker(event.Cause) {
			result = "rejected"
		}
		metrics.Eliminations.WithLabelValues(result).Inc()
		slog.Debug("Elimination not credited", "victim", event.Victim, "cause", event.Cause, "result", result)
		return true
	}

	s.store.Increment(event.Killer)
	metrics.Eliminations.WithLabelValues("credited").Inc()
	metrics.TrackedPlayers.Set(float64(s.store.Len()))
	slog.Info("Kill credited", "killer", event.Killer, "victim", event.Victim, "cause", event.Cause)

	s.enqueue(domain.Elimination{
		SessionID:  s.sessionID(),
		Server:     s.session.Server(),
		Victim:     event.Victim,
		Killer:     event.Killer,
		Cause:      event.Cause,
		ObservedAt: s.now(),
	})
	return true
}

func (s *Service) HandleJoin(address string) {
	state := s.session.Join(address)
	tracked := state == session.Tracking
	metrics.SessionJoins.WithLabelValues(boolLabel(tracked)).Inc()
	if tracked {
		metrics.TrackedPlayers.Set(0)
	}
}

func (s *Service) HandleLeave() {
	s.session.Leave()
}

// Leaderboard renders the top killers of the current session.
func (s *Service) Leaderboard() string {
	metrics.LeaderboardRequests.Inc()
	return leaderboard.Format(s.store.GetAll(), s.config.LeaderboardSize)
}

func (s *Service) PlayerStats(name string) (domain.PlayerStats, bool) {
	return s.store.Lookup(name)
}

// PlayerNames lists credited players whose name contains query, case-insensitively.
func (s *Service) PlayerNames(query string, limit int) []string {
	query = strings.ToLower(query)

	var names []string
	for _, p := range s.store.GetAll() {
		if limit > 0 && len(names) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), query) {
			names = append(names, p.Name)
		}
	}
	return names
}

func (s *Service) Tracking() bool {
	return s.session.Tracking()
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
