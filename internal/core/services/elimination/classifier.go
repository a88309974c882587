// Package elimination recognises elimination broadcasts in chat text and
// decides which player, if any, earns the kill.
package elimination

import (
	"regexp"
	"strings"
	"unicode"

	"elimination-tracker/internal/core/domain"
)

const Marker = "ELIMINATION!"

const (
	CauseSlain  = "was slain by"
	CauseKilled = "was killed by"
	CauseShot   = "was shot by"
	CauseFall   = "hit the ground too hard while trying to escape"
	CauseFire   = "went up in flames while fighting"
)

var (
	eliminationRegex = regexp.MustCompile(
		`(?:^|\s)` + regexp.QuoteMeta(Marker) + ` (.+?) (` +
			strings.Join([]string{
				regexp.QuoteMeta(CauseSlain),
				regexp.QuoteMeta(CauseKilled),
				regexp.QuoteMeta(CauseShot),
				regexp.QuoteMeta(CauseFall),
				regexp.QuoteMeta(CauseFire),
			}, "|") +
			`)(?:\s+(.*))?$`,
	)
	formattingRegex = regexp.MustCompile(`§.`)
)

// killerCauses are the only phrases that name an attacker. Environmental
// deaths never credit whatever text trails them.
var killerCauses = map[string]bool{
	CauseSlain:  true,
	CauseKilled: true,
	CauseShot:   true,
}

// Classify parses one chat line. The boolean is false when the line is not an
// elimination broadcast. A returned event has an empty Killer when nobody
// should be credited.
func Classify(line string) (domain.EliminationEvent, bool) {
	if !strings.Contains(line, Marker) {
		return domain.EliminationEvent{}, false
	}

	m := eliminationRegex.FindStringSubmatch(StripFormatting(strings.TrimSpace(line)))
	if m == nil {
		return domain.EliminationEvent{}, false
	}

	event := domain.EliminationEvent{
		Victim: strings.TrimSpace(m[1]),
		Cause:  m[2],
	}

	if killerCauses[event.Cause] {
		if killer := strings.TrimSpace(m[3]); IsValidKiller(killer) {
			event.Killer = killer
		}
	}

	return event, true
}

// NamesAttacker reports whether cause is followed by the attacker's name.
func NamesAttacker(cause string) bool {
	return killerCauses[cause]
}

// Creditable reports whether the event awards a kill.
func Creditable(event domain.EliminationEvent) bool {
	return event.Killer != ""
}

// IsValidKiller rejects mobs, corpses, disconnects and anything that is not a
// single-word player name.
func IsValidKiller(name string) bool {
	switch {
	case name == "":
		return false
	case strings.HasPrefix(name, "a "), strings.HasPrefix(name, "an "):
		return false
	case strings.ContainsFunc(name, unicode.IsSpace):
		return false
	case strings.Contains(name, "'s Corpse"):
		return false
	case strings.Contains(name, "disconnected"):
		return false
	}
	return true
}

func StripFormatting(s string) string {
	return formattingRegex.ReplaceAllString(s, "")
}

