package tracker

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"elimination-tracker/internal/config"
	"elimination-tracker/internal/core/domain"
	"elimination-tracker/internal/core/services/session"
	"elimination-tracker/internal/core/services/stats"
)

func newTestService(journal *mockJournal, notifier *mockNotifier) (*Service, *stats.Store) {
	store := stats.NewStore()
	deps := Dependencies{
		Config: &config.Config{
			TrackedServer:    "hoplite.gg",
			LeaderboardSize:  10,
			PublishQueueSize: 4,
		},
		Store:   store,
		Session: session.NewController("hoplite.gg", store),
	}
	if journal != nil {
		deps.Journal = journal
	}
	if notifier != nil {
		deps.Notifier = notifier
	}
	return NewService(deps), store
}

func chat(text string) domain.ChatMessage {
	return domain.ChatMessage{Text: text}
}

func TestService_IgnoresChatWhileIdle(t *testing.T) {
	svc, store := newTestService(nil, nil)

	if !svc.HandleChat(chat("[Hoplite] ELIMINATION! Alice was slain by Bob")) {
		t.Error("chat must never be suppressed")
	}
	if store.Len() != 0 {
		t.Errorf("expected no credit while idle, got %v", store.GetAll())
	}
}

func TestService_IgnoresOverlayMessages(t *testing.T) {
	svc, store := newTestService(nil, nil)
	svc.HandleJoin("mc.hoplite.gg:25565")

	msg := domain.ChatMessage{Text: "[Hoplite] ELIMINATION! Alice was slain by Bob", Overlay: true}
	if !svc.HandleChat(msg) {
		t.Error("chat must never be suppressed")
	}
	if store.Len() != 0 {
		t.Error("overlay messages must not be classified")
	}
}

func TestService_CreditsKills(t *testing.T) {
	svc, store := newTestService(nil, nil)
	svc.HandleJoin("mc.hoplite.gg:25565")

	lines := []string{
		"[Hoplite] ELIMINATION! Alice was slain by Bob",
		"[Hoplite] ELIMINATION! Carol was shot by Bob",
		"[Hoplite] ELIMINATION! Bob was killed by a Zombie",
		"[Hoplite] ELIMINATION! Dave was slain by Bob's Corpse",
		"[Hoplite] ELIMINATION! Erin was shot by Carol Smith",
		"[Hoplite] ELIMINATION! Frank hit the ground too hard while trying to escape Bob",
		"<Alice> gg",
	}
	for _, line := range lines {
		if !svc.HandleChat(chat(line)) {
			t.Errorf("chat suppressed: %q", line)
		}
	}

	snap := store.GetAll()
	if len(snap) != 1 {
		t.Fatalf("expected only Bob credited, got %v", snap)
	}
	if snap[0].Name != "Bob" || snap[0].Kills != 2 {
		t.Errorf("expected Bob with 2 kills, got %+v", snap[0])
	}
	if _, ok := svc.PlayerStats("Alice"); ok {
		t.Error("victim must not be credited")
	}
}

func TestService_JoinResetsSession(t *testing.T) {
	svc, store := newTestService(nil, nil)
	svc.HandleJoin("hoplite.gg")
	svc.HandleChat(chat("[Hoplite] ELIMINATION! Alice was slain by Bob"))

	svc.HandleJoin("hoplite.gg")

	if store.Len() != 0 {
		t.Errorf("expected stats reset on rejoin, got %v", store.GetAll())
	}
}

func TestService_LeaveStopsTracking(t *testing.T) {
	svc, store := newTestService(nil, nil)
	svc.HandleJoin("hoplite.gg")
	svc.HandleLeave()

	svc.HandleChat(chat("[Hoplite] ELIMINATION! Alice was slain by Bob"))

	if store.Len() != 0 {
		t.Error("expected no credit after leaving")
	}
	if svc.Tracking() {
		t.Error("expected idle after leave")
	}
}

func TestService_Leaderboard(t *testing.T) {
	svc, _ := newTestService(nil, nil)
	svc.HandleJoin("hoplite.gg")
	svc.HandleChat(chat("[Hoplite] ELIMINATION! Alice was slain by Bob"))
	svc.HandleChat(chat("[Hoplite] ELIMINATION! Bob was slain by Carol"))
	svc.HandleChat(chat("[Hoplite] ELIMINATION! Dave was slain by Carol"))

	got := svc.Leaderboard()
	want := "Kills Leaderboard:\n1. Carol - 2 kills\n2. Bob - 1 kills"
	if got != want {
		t.Errorf("unexpected leaderboard:\n%s", got)
	}
}

func TestService_PlayerNames(t *testing.T) {
	svc, store := newTestService(nil, nil)
	for _, name := range []string{"Bob", "Bobby", "Carol", "Rob"} {
		store.Increment(name)
	}

	got := svc.PlayerNames("ob", 0)
	if strings.Join(got, ",") != "Bob,Bobby,Rob" {
		t.Errorf("unexpected names %v", got)
	}

	if got := svc.PlayerNames("", 2); len(got) != 2 {
		t.Errorf("expected limit to apply, got %v", got)
	}
}

func TestService_ConcurrentChat(t *testing.T) {
	svc, store := newTestService(nil, nil)
	svc.HandleJoin("hoplite.gg")

	const n = 500
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.HandleChat(chat("[Hoplite] ELIMINATION! Alice was slain by Bob"))
		}()
	}
	wg.Wait()

	if got := store.Get("Bob").Kills; got != n {
		t.Errorf("expected %d kills, got %d", n, got)
	}
}

func TestService_PublishesCreditedEliminations(t *testing.T) {
	journal := &mockJournal{}
	notifier := newMockNotifier()
	svc, _ := newTestService(journal, notifier)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Start(ctx)

	svc.HandleJoin("mc.hoplite.gg:25565")
	svc.HandleChat(chat("[Hoplite] ELIMINATION! Alice was killed by a Zombie"))
	svc.HandleChat(chat("[Hoplite] ELIMINATION! Alice was slain by Bob"))

	select {
	case e := <-notifier.sent:
		if e.Killer != "Bob" || e.Victim != "Alice" {
			t.Errorf("unexpected event %+v", e)
		}
		if e.Server != "hoplite.gg" {
			t.Errorf("expected server hoplite.gg, got %q", e.Server)
		}
		if !strings.HasSuffix(e.SessionID, "-1") {
			t.Errorf("expected first session id, got %q", e.SessionID)
		}
		if !e.ObservedAt.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected timestamp %v", e.ObservedAt)
		}
	case <-time.After(time.Second):
		t.Fatal("notification not delivered")
	}

	if journal.count() != 1 {
		t.Errorf("expected 1 journal entry, got %d", journal.count())
	}

	select {
	case e := <-notifier.sent:
		t.Errorf("unexpected extra notification %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestService_PublishErrorsDoNotStopDelivery(t *testing.T) {
	journal := &mockJournal{
		recordFunc: func(ctx context.Context, e domain.Elimination) error {
			return errors.New("db down")
		},
	}
	notifier := newMockNotifier()
	svc, _ := newTestService(journal, notifier)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Start(ctx)

	svc.HandleJoin("hoplite.gg")
	svc.HandleChat(chat("[Hoplite] ELIMINATION! Alice was slain by Bob"))

	select {
	case <-notifier.sent:
	case <-time.After(time.Second):
		t.Fatal("notifier should still be called when journal fails")
	}
}

func TestService_QueueFullDropsWithoutBlocking(t *testing.T) {
	notifier := newMockNotifier()
	svc, store := newTestService(nil, notifier)
	svc.HandleJoin("hoplite.gg")

	done := make(chan struct{})
	go func() {
		for i := 0; i < 20; i++ {
			svc.HandleChat(chat("[Hoplite] ELIMINATION! Alice was slain by Bob"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("chat handling blocked on a full queue")
	}

	if got := store.Get("Bob").Kills; got != 20 {
		t.Errorf("expected all kills credited, got %d", got)
	}
	if len(svc.events) != cap(svc.events) {
		t.Errorf("expected queue to be full, got %d/%d", len(svc.events), cap(svc.events))
	}
}
