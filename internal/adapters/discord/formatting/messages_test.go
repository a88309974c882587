package formatting

import "testing"

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"elimination", MsgElimination("Bob", "Alice", "was slain by"), "**Bob** eliminated Alice (was slain by)"},
		{"single kill", MsgPlayerKills("Bob", 1), "Bob has 1 kill this session."},
		{"many kills", MsgPlayerKills("Bob", 7), "Bob has 7 kills this session."},
		{"zero kills", MsgPlayerKills("Bob", 0), "Bob has 0 kills this session."},
		{"unknown", MsgPlayerUnknown("Eve"), "No kills recorded for Eve this session."},
		{"code block", MsgCodeBlock("a\nb"), "```\na\nb\n```"},
		{"channel error", MsgChannelError("eliminations"), "Failed to create or find #eliminations channel."},
		{"feed ready", MsgFeedReady("eliminations"), "Eliminations will be posted in #eliminations."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
