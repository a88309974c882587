package leaderboard

import (
	"fmt"
	"slices"
	"strings"

	"elimination-tracker/internal/core/domain"
)

const DefaultSize = 10

const (
	Header   = "Kills Leaderboard:"
	MsgEmpty = "No eliminations recorded this session."
)

type Entry struct {
	Rank  int
	Name  string
	Kills int
}

// Rank orders the snapshot by kills, highest first. Ties keep snapshot order.
func Rank(snap domain.Snapshot, size int) []Entry {
	if size <= 0 {
		size = DefaultSize
	}

	sorted := slices.Clone(snap)
	slices.SortStableFunc(sorted, func(a, b domain.PlayerStats) int {
		return max(b.Kills, 0) - max(a.Kills, 0)
	})

	if len(sorted) > size {
		sorted = sorted[:size]
	}

	entries := make([]Entry, len(sorted))
	for i, p := range sorted {
		entries[i] = Entry{Rank: i + 1, Name: p.Name, Kills: max(p.Kills, 0)}
	}
	return entries
}

func FormatEntry(e Entry) string {
	return fmt.Sprintf("%d. %s - %d kills", e.Rank, e.Name, e.Kills)
}

// Format renders the leaderboard as one text block.
func Format(snap domain.Snapshot, size int) string {
	entries := Rank(snap, size)

	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(MsgEmpty)
		return b.String()
	}
	for _, e := range entries {
		b.WriteString(FormatEntry(e))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
