package session

import (
	"log/slog"
	"net"
	"strings"

	"elimination-tracker/internal/core/ports"

	"go.uber.org/atomic"
	"golang.org/x/net/publicsuffix"
)

type State int32

const (
	Idle State = iota
	Tracking
)

func (s State) String() string {
	if s == Tracking {
		return "tracking"
	}
	return "idle"
}

type Controller struct {
	marker string
	store  ports.StatStore
	state  atomic.Int32
	server atomic.String
	id     atomic.Uint64
}

func NewController(marker string, store ports.StatStore) *Controller {
	return &Controller{
		marker: strings.ToLower(marker),
		store:  store,
	}
}

// Join moves the controller into Tracking when address names the tracked
// server, wiping the previous session's stats. Any other server goes Idle.
func (c *Controller) Join(address string) State {
	domain := ServerDomain(address)
	c.server.Store(domain)

	if c.marker == "" || !strings.Contains(strings.ToLower(address), c.marker) {
		c.state.Store(int32(Idle))
		slog.Info("Joined untracked server", "server", domain)
		return Idle
	}

	c.store.Reset()
	c.id.Inc()
	c.state.Store(int32(Tracking))
	slog.Info("Joined tracked server, session stats reset", "server", domain, "session", c.id.Load())
	return Tracking
}

func (c *Controller) Leave() {
	if State(c.state.Swap(int32(Idle))) == Tracking {
		slog.Info("Left tracked server", "server", c.server.Load())
	}
}

func (c *Controller) State() State {
	return State(c.state.Load())
}

func (c *Controller) Tracking() bool {
	return c.State() == Tracking
}

// Server returns the registrable domain of the last joined server.
func (c *Controller) Server() string {
	return c.server.Load()
}

// SessionID numbers tracked sessions since process start.
func (c *Controller) SessionID() uint64 {
	return c.id.Load()
}

// ServerDomain reduces a join address such as "mc.hoplite.gg:25565" to its
// registrable domain. IPs and unknown suffixes are returned as the bare host.
func ServerDomain(address string) string {
	host := strings.ToLower(strings.TrimSpace(address))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(host, ".")

	if host == "" || net.ParseIP(host) != nil {
		return host
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}
