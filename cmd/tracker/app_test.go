package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"elimination-tracker/internal/config"
	"elimination-tracker/internal/core/ports"
)

type mockJournal struct {
	ports.EliminationJournal
	closed bool
}

func (m *mockJournal) Close() {
	m.closed = true
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ClientLogPath:      filepath.Join(t.TempDir(), "latest.log"),
		TrackedServer:      "hoplite.gg",
		PollInterval:       20 * time.Millisecond,
		LeaderboardSize:    10,
		PublishQueueSize:   8,
		DiscordChannelFeed: "eliminations",
		MetricsAddr:        "127.0.0.1:0",
	}
}

func TestNewApp_Minimal(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if app.trackerService == nil {
		t.Fatal("tracker service not initialized")
	}
	if app.tailer == nil {
		t.Fatal("tailer not initialized")
	}
	if app.discord != nil {
		t.Error("discord should be disabled without a token")
	}
	if app.journal != nil {
		t.Error("journal should be disabled without a database URL")
	}
}

func TestApp_RunCreditsKillsFromLog(t *testing.T) {
	cfg := testConfig(t)
	if err := os.WriteFile(cfg.ClientLogPath, nil, 0o644); err != nil {
		t.Fatalf("create log: %v", err)
	}

	app, err := NewApp(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if err := app.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	t.Cleanup(func() { _ = app.Shutdown(context.Background()) })

	// Lines present before the tailer opens the file are replayed without chat.
	time.Sleep(150 * time.Millisecond)

	f, err := os.OpenFile(cfg.ClientLogPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	lines := []string{
		"[12:00:00] [Render thread/INFO]: Connecting to play.hoplite.gg, 25565",
		"[12:00:05] [Render thread/INFO]: [CHAT] ELIMINATION! Alice was slain by Bob",
	}
	if _, err := f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		t.Fatalf("write log: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if p, ok := app.trackerService.PlayerStats("Bob"); ok && p.Kills == 1 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("kill from appended log line was not credited")
}

func TestApp_Shutdown(t *testing.T) {
	journal := &mockJournal{}
	trackerCtx, trackerCancel := context.WithCancel(context.Background())

	app := &App{
		config:        testConfig(t),
		journal:       journal,
		trackerCtx:    trackerCtx,
		trackerCancel: trackerCancel,
	}
	app.startMetricsServer()
	time.Sleep(10 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := app.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	if !journal.closed {
		t.Error("Journal was not closed")
	}

	select {
	case <-trackerCtx.Done():
	default:
		t.Error("Tracker context was not cancelled")
	}

	if err := app.metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		t.Errorf("expected metrics server to be closed, got %v", err)
	}
}

func TestApp_Shutdown_NilComponents(t *testing.T) {
	app := &App{
		config: &config.Config{},
	}

	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed with nil components: %v", err)
	}
}

func TestStartMetricsServer(t *testing.T) {
	app := &App{
		config: &config.Config{MetricsAddr: "127.0.0.1:0"},
	}

	app.startMetricsServer()

	if app.metricsServer == nil {
		t.Fatal("Metrics server not initialized")
	}
	if app.metricsServer.Addr != "127.0.0.1:0" {
		t.Errorf("unexpected addr %q", app.metricsServer.Addr)
	}

	_ = app.metricsServer.Close()
}
