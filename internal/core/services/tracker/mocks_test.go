package tracker

import (
	"context"
	"sync"

	"elimination-tracker/internal/core/domain"
)

type mockJournal struct {
	mu         sync.Mutex
	recordFunc func(ctx context.Context, e domain.Elimination) error
	recorded   []domain.Elimination
}

func (m *mockJournal) RecordElimination(ctx context.Context, e domain.Elimination) error {
	m.mu.Lock()
	m.recorded = append(m.recorded, e)
	m.mu.Unlock()
	if m.recordFunc != nil {
		return m.recordFunc(ctx, e)
	}
	return nil
}

func (m *mockJournal) Close() {}

func (m *mockJournal) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.recorded)
}

type mockNotifier struct {
	sendFunc func(e domain.Elimination) error
	sent     chan domain.Elimination
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{sent: make(chan domain.Elimination, 16)}
}

func (m *mockNotifier) SendEliminationNotification(e domain.Elimination) error {
	m.sent <- e
	if m.sendFunc != nil {
		return m.sendFunc(e)
	}
	return nil
}
