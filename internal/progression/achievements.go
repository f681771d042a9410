package progression

// Achievement is a static registry entry: an identifier plus a pure
// predicate over cumulative stats. Predicates are evaluated against the
// merged stats after every delta; unlocking is idempotent and an unlocked
// id is never removed.
type Achievement struct {
	ID        string
	Title     string
	Desc      string
	Predicate func(GameStats) bool
}

// Achievements is the full registry, in display order.
var Achievements = []Achievement{
	{
		ID:        "novice",
		Title:     "Novice",
		Desc:      "Score 100 points",
		Predicate: func(s GameStats) bool { return s.TotalScore >= 100 },
	},
	{
		ID:        "wealthy",
		Title:     "Wealthy",
		Desc:      "Earn 1000 credits",
		Predicate: func(s GameStats) bool { return s.TotalMoney >= 1000 },
	},
	{
		ID:        "survivor",
		Title:     "Survivor",
		Desc:      "Collect 50 hearts",
		Predicate: func(s GameStats) bool { return s.HeartsCollected >= 50 },
	},
	{
		ID:        "veteran",
		Title:     "Veteran",
		Desc:      "Play 50 games",
		Predicate: func(s GameStats) bool { return s.GamesPlayed >= 50 },
	},
	{
		ID:        "combo-king",
		Title:     "Combo King",
		Desc:      "Reach 50x combo",
		Predicate: func(s GameStats) bool { return s.MaxCombo >= 50 },
	},
}
