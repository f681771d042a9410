package progression

import (
	"testing"
	"time"
)

func newTestProfile() *UserProfile {
	return &UserProfile{ID: "p1", Name: "Tester", Level: 1, CreatedAt: time.Now()}
}

func TestApplyDeltaMergesStats(t *testing.T) {
	p := newTestProfile()
	p.Stats = GameStats{TotalScore: 50, MaxCombo: 12}

	p.ApplyDelta(StatsDelta{Score: 30, Money: 10, GamesPlayed: 1, HeartsCollected: 2, MaxCombo: 8}, 0)

	if p.Stats.TotalScore != 80 || p.Stats.TotalMoney != 10 {
		t.Errorf("score/money = %d/%d, want 80/10", p.Stats.TotalScore, p.Stats.TotalMoney)
	}
	if p.Stats.GamesPlayed != 1 || p.Stats.HeartsCollected != 2 {
		t.Errorf("games/hearts = %d/%d, want 1/2", p.Stats.GamesPlayed, p.Stats.HeartsCollected)
	}
	// MaxCombo takes the max, not the sum.
	if p.Stats.MaxCombo != 12 {
		t.Errorf("maxCombo = %d, want 12", p.Stats.MaxCombo)
	}

	p.ApplyDelta(StatsDelta{MaxCombo: 20}, 0)
	if p.Stats.MaxCombo != 20 {
		t.Errorf("maxCombo = %d, want raised to 20", p.Stats.MaxCombo)
	}
}

func TestLevelingSingleStep(t *testing.T) {
	p := newTestProfile()
	p.XP = 950

	p.ApplyDelta(StatsDelta{}, 100)

	if p.Level != 2 || p.XP != 50 {
		t.Fatalf("level/xp = %d/%d, want 2/50", p.Level, p.XP)
	}
}

func TestLevelingMultiLevelJump(t *testing.T) {
	p := newTestProfile()

	// 3500 XP from level 1: crosses 1000 then 2000, leaving 500 at level 3.
	p.ApplyDelta(StatsDelta{}, 3500)

	if p.Level != 3 || p.XP != 500 {
		t.Fatalf("level/xp = %d/%d, want 3/500", p.Level, p.XP)
	}
	if p.XPThreshold() != 3000 {
		t.Fatalf("threshold = %d, want 3000 at level 3", p.XPThreshold())
	}
}

func TestAchievementsUnlockInBatch(t *testing.T) {
	p := newTestProfile()

	unlocked := p.ApplyDelta(StatsDelta{Score: 150, Money: 1200}, 0)

	if len(unlocked) != 2 {
		t.Fatalf("unlocked = %v, want novice and wealthy together", unlocked)
	}
	if !p.HasAchievement("novice") || !p.HasAchievement("wealthy") {
		t.Fatalf("achievements = %v, want both present", p.Achievements)
	}
}

func TestAchievementsAreMonotonic(t *testing.T) {
	p := newTestProfile()
	p.ApplyDelta(StatsDelta{Score: 100}, 0)
	if !p.HasAchievement("novice") {
		t.Fatal("setup: novice should be unlocked")
	}

	// Further play never removes or re-reports an unlocked id.
	for i := 0; i < 5; i++ {
		unlocked := p.ApplyDelta(StatsDelta{Score: 10}, 0)
		for _, id := range unlocked {
			if id == "novice" {
				t.Fatal("novice reported unlocked twice")
			}
		}
	}
	if !p.HasAchievement("novice") {
		t.Fatal("novice was removed by further play")
	}
}

func TestManagerStartsWithDefaultProfile(t *testing.T) {
	m := NewManager()

	if len(m.Profiles()) != 1 {
		t.Fatalf("profile count = %d, want 1", len(m.Profiles()))
	}
	if m.Active().Name != DefaultProfileName {
		t.Fatalf("active = %q, want %q", m.Active().Name, DefaultProfileName)
	}
	if m.Active().Level != 1 {
		t.Fatalf("level = %d, want 1", m.Active().Level)
	}
}

func TestManagerCreateRespectsCap(t *testing.T) {
	m := NewManager()

	for len(m.Profiles()) < MaxProfiles {
		if m.Create("") == nil {
			t.Fatalf("Create refused below the cap at %d profiles", len(m.Profiles()))
		}
	}
	if p := m.Create("overflow"); p != nil {
		t.Fatalf("Create succeeded past the cap of %d", MaxProfiles)
	}
	if len(m.Profiles()) != MaxProfiles {
		t.Fatalf("profile count = %d, want %d", len(m.Profiles()), MaxProfiles)
	}
}

func TestManagerCreateActivatesNewProfile(t *testing.T) {
	m := NewManager()

	p := m.Create("Ada")
	if p == nil {
		t.Fatal("Create failed")
	}
	if m.ActiveID() != p.ID {
		t.Fatalf("active = %q, want the new profile %q", m.ActiveID(), p.ID)
	}
}

func TestManagerCannotDeleteLastProfile(t *testing.T) {
	m := NewManager()
	only := m.Active()

	m.Delete(only.ID)

	if len(m.Profiles()) != 1 {
		t.Fatal("last profile was deleted")
	}
}

func TestManagerDeleteActiveReassigns(t *testing.T) {
	m := NewManager()
	second := m.Create("Ada")

	m.Delete(second.ID)

	if len(m.Profiles()) != 1 {
		t.Fatalf("profile count = %d, want 1", len(m.Profiles()))
	}
	if m.Active().ID == second.ID {
		t.Fatal("active still points at the deleted profile")
	}
}

func TestManagerRestoreDegradesGracefully(t *testing.T) {
	// nil input gets a fresh default profile.
	m := NewManagerFrom(nil, "whatever")
	if len(m.Profiles()) != 1 || m.Active().Name != DefaultProfileName {
		t.Fatalf("restore from nil: got %d profiles, active %q", len(m.Profiles()), m.Active().Name)
	}

	// Unknown active id falls back to the first profile.
	stored := []*UserProfile{
		{ID: "a", Name: "One", Level: 1},
		{ID: "b", Name: "Two", Level: 3},
	}
	m = NewManagerFrom(stored, "missing")
	if m.ActiveID() != "a" {
		t.Fatalf("active = %q, want first profile", m.ActiveID())
	}

	// Damaged fields are repaired, entries without ids are dropped.
	m = NewManagerFrom([]*UserProfile{{ID: "x", Name: "X", Level: 0, XP: -5}, {ID: "", Name: "ghost"}}, "x")
	if got := m.Active(); got.Level != 1 || got.XP != 0 {
		t.Fatalf("restored level/xp = %d/%d, want repaired to 1/0", got.Level, got.XP)
	}
	if len(m.Profiles()) != 1 {
		t.Fatalf("profile count = %d, want id-less entries dropped", len(m.Profiles()))
	}
}
