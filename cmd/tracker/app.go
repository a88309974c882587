package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"elimination-tracker/internal/adapters/clientlog"
	"elimination-tracker/internal/adapters/discord"
	"elimination-tracker/internal/adapters/discord/commands"
	"elimination-tracker/internal/adapters/storage/postgres"
	"elimination-tracker/internal/config"
	"elimination-tracker/internal/core/ports"
	"elimination-tracker/internal/core/services/session"
	"elimination-tracker/internal/core/services/stats"
	"elimination-tracker/internal/core/services/tracker"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	config             *config.Config
	journal            ports.EliminationJournal
	discord            *discordgo.Session
	trackerService     *tracker.Service
	tailer             *clientlog.Tailer
	metricsServer      *http.Server
	trackerCtx         context.Context
	trackerCancel      context.CancelFunc
	registeredCommands []*discordgo.ApplicationCommand
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{config: cfg}

	store := stats.NewStore()
	deps := tracker.Dependencies{
		Config:  cfg,
		Store:   store,
		Session: session.NewController(cfg.TrackedServer, store),
	}

	if cfg.JournalEnabled() {
		journal, err := postgres.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect journal: %w", err)
		}
		app.journal = journal
		deps.Journal = journal
	}

	if cfg.DiscordEnabled() {
		dg, err := discord.NewSession(cfg)
		if err != nil {
			app.closeJournal()
			return nil, err
		}
		app.discord = dg

		if cfg.DiscordGuildID != "" {
			deps.Notifier = discord.NewAdapter(dg, cfg)
		} else {
			slog.Warn("DISCORD_GUILD_ID is not set, elimination feed disabled")
		}
	}

	app.trackerService = tracker.NewService(deps)
	app.tailer = clientlog.NewTailer(cfg.ClientLogPath, cfg.PollInterval, app.trackerService)

	if app.discord != nil {
		botHandlers := &commands.BotHandler{Config: cfg, Stats: app.trackerService}
		router := commands.NewRouter()
		botHandlers.Routes(router)

		app.discord.AddHandler(commands.ReadyHandler)
		app.discord.AddHandler(router.HandleFunc())
	}

	return app, nil
}

func (a *App) Run() error {
	a.startMetricsServer()

	if a.discord != nil {
		if err := a.discord.Open(); err != nil {
			slog.Error("Failed to open discord session", "error", err)
			return err
		}

		a.registeredCommands = commands.RegisterCommands(a.discord, commands.GetApplicationCommands(), a.discord.State.User.ID, a.config.DiscordGuildID)
	}

	a.trackerCtx, a.trackerCancel = context.WithCancel(context.Background())
	go a.trackerService.Start(a.trackerCtx)
	go a.runTailer(a.trackerCtx)

	slog.Info("Elimination tracker started",
		"log_path", a.config.ClientLogPath,
		"tracked_server", a.config.TrackedServer,
		"discord", a.discord != nil,
		"journal", a.journal != nil,
	)
	return nil
}

func (a *App) runTailer(ctx context.Context) {
	if err := a.tailer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Client log tailer stopped", "path", a.config.ClientLogPath, "error", err)
	}
}

func (a *App) startMetricsServer() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	a.metricsServer = &http.Server{
		Addr:              a.config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Metrics server listening", "addr", a.metricsServer.Addr)
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", "error", err)
		}
	}()
}

func (a *App) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down...")

	var errs []error

	if a.trackerCancel != nil {
		a.trackerCancel()
	}

	if a.discord != nil {
		if a.discord.State != nil && a.discord.State.User != nil {
			commands.CleanupCommands(a.discord, a.registeredCommands, a.discord.State.User.ID, a.config.DiscordGuildID)
		}
		if err := a.discord.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close discord: %w", err))
		}
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown metrics server: %w", err))
		}
	}

	a.closeJournal()

	return errors.Join(errs...)
}

func (a *App) closeJournal() {
	if a.journal != nil {
		a.journal.Close()
	}
}
