package commands

import (
	"log/slog"

	"elimination-tracker/internal/adapters/metrics"

	"github.com/bwmarrin/discordgo"
)

type CommandHandler func(s DiscordSession, i *discordgo.InteractionCreate)

type Router struct {
	routes map[string]CommandHandler
}

func NewRouter() *Router {
	return &Router{
		routes: make(map[string]CommandHandler),
	}
}

// Register binds handler to name. Middlewares wrap the handler outermost first.
func (r *Router) Register(name string, handler CommandHandler, middlewares ...Middleware) {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	r.routes[name] = handler
}

func (r *Router) Handle(s DiscordSession, i *discordgo.InteractionCreate) {
	if !isCommandInteraction(i.Type) {
		return
	}

	name := i.ApplicationCommandData().Name
	slog.Debug("Router received interaction", "type", i.Type, "name", name)

	handler, ok := r.routes[name]
	if !ok {
		slog.Warn("No handler found for command", "name", name)
		metrics.DiscordInteractions.WithLabelValues("unknown").Inc()
		return
	}

	metrics.DiscordInteractions.WithLabelValues(name).Inc()
	handler(s, i)
}

func (r *Router) HandleFunc() func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		r.Handle(s, i)
	}
}

func isCommandInteraction(t discordgo.InteractionType) bool {
	return t == discordgo.InteractionApplicationCommand ||
		t == discordgo.InteractionApplicationCommandAutocomplete
}
