package scoreboard

import "sync"

// Scoreboard mirrors the server scoreboard objective shown in the player
// list, which the tracked server uses for live health.
type Scoreboard struct {
	mu        sync.RWMutex
	objective string
	scores    map[string]int
}

func New() *Scoreboard {
	return &Scoreboard{
		scores: make(map[string]int),
	}
}

// SetListObjective installs the objective displayed in the list slot and
// drops scores from the previous one. An empty name clears the slot.
func (s *Scoreboard) SetListObjective(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name != s.objective {
		s.scores = make(map[string]int)
	}
	s.objective = name
}

func (s *Scoreboard) SetScore(player string, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[player] = score
}

func (s *Scoreboard) RemovePlayer(player string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scores, player)
}

// Health returns the player's list-slot score, or 0 when no objective is shown.
func (s *Scoreboard) Health(player string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.objective == "" {
		return 0
	}
	return s.scores[player]
}
