// Package progression owns per-player cumulative statistics, XP/leveling,
// and achievement unlocking across sessions.
package progression

// GameStats are cumulative per-profile statistics. Every field is
// monotonically non-decreasing for the lifetime of a profile.
type GameStats struct {
	TotalScore      int `json:"totalScore"`
	TotalMoney      int `json:"totalMoney"`
	GamesPlayed     int `json:"gamesPlayed"`
	HeartsCollected int `json:"heartsCollected"`
	MaxCombo        int `json:"maxCombo"`
}

// StatsDelta is a partial stats update produced by a session. Counter
// fields are summed into the profile totals; MaxCombo is merged with max.
type StatsDelta struct {
	Score           int
	Money           int
	GamesPlayed     int
	HeartsCollected int
	MaxCombo        int
}

// merge folds a delta into cumulative stats.
func (s *GameStats) merge(d StatsDelta) {
	s.TotalScore += d.Score
	s.TotalMoney += d.Money
	s.GamesPlayed += d.GamesPlayed
	s.HeartsCollected += d.HeartsCollected
	if d.MaxCombo > s.MaxCombo {
		s.MaxCombo = d.MaxCombo
	}
}
