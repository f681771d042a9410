package engine

import (
	"math/rand"
	"testing"
)

func TestRollTypeBands(t *testing.T) {
	cases := []struct {
		r    float64
		want ItemType
	}{
		{0.0, ItemHeart},
		{0.059, ItemHeart},
		{0.06, ItemGold},
		{0.119, ItemGold},
		{0.12, ItemBomb},
		{0.149, ItemBomb},
		{0.15, ItemNormal},
		{0.5, ItemNormal},
		{0.999, ItemNormal},
	}
	for _, tc := range cases {
		if got := rollType(tc.r); got != tc.want {
			t.Errorf("rollType(%v) = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestRollItemStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		it := rollItem(rng, int64(i))
		if it.Char < 'A' || it.Char > 'Z' {
			t.Fatalf("char %q outside A-Z", it.Char)
		}
		if it.X < spawnXMin || it.X >= spawnXMax {
			t.Fatalf("x = %v outside [%v,%v)", it.X, spawnXMin, spawnXMax)
		}
		if it.Y != spawnY {
			t.Fatalf("y = %v, want spawn height %v", it.Y, spawnY)
		}
		if it.Color != it.Type.Color() {
			t.Fatalf("color tag %v does not match type %v", it.Color, it.Type)
		}
	}
}

func TestOverlayStates(t *testing.T) {
	overlays := []State{StateShop, StateLeaderboard, StateProfile, StateAchievements}
	for _, s := range overlays {
		if !s.IsOverlay() {
			t.Errorf("%v should be an overlay", s)
		}
	}
	for _, s := range []State{StateStart, StatePlaying, StatePaused, StateResuming, StateGameOver} {
		if s.IsOverlay() {
			t.Errorf("%v should not be an overlay", s)
		}
	}
}
