package engine

// ScoreTracker accumulates shots fired and kills per player. A single shot
// destroys at most one tank, so kills can never outrun shots and the
// normalized score stays within [0, 1].
type ScoreTracker struct {
	shots []int
	kills []int
}

// NewScoreTracker creates a tracker for the given number of players.
func NewScoreTracker(players int) *ScoreTracker {
	return &ScoreTracker{
		shots: make([]int, players),
		kills: make([]int, players),
	}
}

// RecordShot counts one fired shell for the player.
func (s *ScoreTracker) RecordShot(player int) {
	s.shots[player]++
}

// RecordKill counts one destroyed tank for the player. Self-kills count too.
func (s *ScoreTracker) RecordKill(player int) {
	s.kills[player]++
}

// Shots returns how many shells the player has fired.
func (s *ScoreTracker) Shots(player int) int {
	return s.shots[player]
}

// Kills returns how many tanks the player has destroyed.
func (s *ScoreTracker) Kills(player int) int {
	return s.kills[player]
}

// Score returns kills per shot, capped at 1.0. A player who never fired
// scores 0.
func (s *ScoreTracker) Score(player int) float64 {
	shots := s.shots[player]
	if shots < 1 {
		shots = 1
	}
	score := float64(s.kills[player]) / float64(shots)
	if score > 1 {
		score = 1
	}
	return score
}
