package clientlog

import (
	"net"
	"strings"
)

type EventKind int

const (
	EventChat EventKind = iota
	EventJoin
	EventLeave
)

type Event struct {
	Kind    EventKind
	Text    string
	Address string
}

const (
	chatPrefix    = "[CHAT] "
	systemPrefix  = "[System] "
	connectPrefix = "Connecting to "
)

var leaveMessages = []string{
	"Disconnected from server",
	"Disconnecting from server",
	"Stopping!",
}

// ParseLine maps one client log line to an event. Lines look like
//
//	[12:01:33] [Render thread/INFO]: [System] [CHAT] ELIMINATION! Alice was slain by Bob
//	[12:00:02] [Render thread/INFO]: Connecting to mc.hoplite.gg, 25565
func ParseLine(line string) (Event, bool) {
	msg := strings.TrimRight(line, "\r\n")
	if i := strings.Index(msg, "]: "); i >= 0 {
		msg = msg[i+3:]
	}
	msg = strings.TrimPrefix(msg, systemPrefix)

	switch {
	case strings.HasPrefix(msg, chatPrefix):
		return Event{Kind: EventChat, Text: msg[len(chatPrefix):]}, true
	case strings.HasPrefix(msg, connectPrefix):
		addr := parseAddress(msg[len(connectPrefix):])
		if addr == "" {
			return Event{}, false
		}
		return Event{Kind: EventJoin, Address: addr}, true
	}

	for _, m := range leaveMessages {
		if strings.HasPrefix(msg, m) {
			return Event{Kind: EventLeave}, true
		}
	}

	return Event{}, false
}

// parseAddress turns "host, port" into "host:port".
func parseAddress(s string) string {
	host, port, found := strings.Cut(strings.TrimSpace(s), ",")
	host = strings.TrimSpace(host)
	if host == "" {
		return ""
	}
	if !found {
		return host
	}
	return net.JoinHostPort(host, strings.TrimSpace(port))
}
