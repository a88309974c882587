package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"elimination-tracker/internal/adapters/metrics"
	"elimination-tracker/internal/core/domain"
)

// Start drains credited eliminations to the journal and notifier until ctx is
// done. Delivery happens off the chat path so slow sinks never stall it.
func (s *Service) Start(ctx context.Context) {
	slog.Info("Elimination publisher started", "queue_size", cap(s.events))

	for {
		select {
		case <-ctx.Done():
			return
		case e := <-s.events:
			s.publish(ctx, e)
		}
	}
}

func (s *Service) enqueue(e domain.Elimination) {
	if s.journal == nil && s.notifier == nil {
		return
	}

	select {
	case s.events <- e:
	default:
		slog.Warn("Elimination queue full, dropping event", "killer", e.Killer, "victim", e.Victim)
	}
}

func (s *Service) publish(ctx context.Context, e domain.Elimination) {
	if s.journal != nil {
		if err := s.journal.RecordElimination(ctx, e); err != nil {
			slog.Error("Failed to journal elimination", "killer", e.Killer, "error", err)
			metrics.JournalWrites.WithLabelValues("failure").Inc()
		} else {
			metrics.JournalWrites.WithLabelValues("success").Inc()
		}
	}

	if s.notifier != nil {
		if err := s.notifier.SendEliminationNotification(e); err != nil {
			slog.Error("Failed to send elimination notification", "killer", e.Killer, "error", err)
		}
	}
}

func (s *Service) sessionID() string {
	return fmt.Sprintf("%d-%d", s.startedAt.Unix(), s.session.SessionID())
}
