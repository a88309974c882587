package ports

import (
	"context"

	"elimination-tracker/internal/core/domain"
)

type StatStore interface {
	Increment(name string)
	Get(name string) domain.PlayerStats
	Lookup(name string) (domain.PlayerStats, bool)
	GetAll() domain.Snapshot
	Reset()
	Len() int
}

type EliminationJournal interface {
	RecordElimination(ctx context.Context, e domain.Elimination) error
	Close()
}

type NotificationService interface {
	SendEliminationNotification(e domain.Elimination) error
}

type HealthSource interface {
	Health(name string) int
}

type TextMeasurer interface {
	Width(text string) float64
}

type DrawBatch interface {
	DisableDepthTest()
	EnableDepthTest()
	DrawText(cmd domain.DrawCommand)
	Flush()
}
