package engine

import (
	"math/rand"

	"github.com/vovakirdan/typefall/internal/core"
)

// ItemType classifies a falling item.
type ItemType int

const (
	ItemNormal ItemType = iota
	ItemHeart
	ItemGold
	ItemBomb
)

// String returns the item type name.
func (t ItemType) String() string {
	switch t {
	case ItemHeart:
		return "heart"
	case ItemGold:
		return "gold"
	case ItemBomb:
		return "bomb"
	default:
		return "normal"
	}
}

// Color returns the color tag assigned at creation.
func (t ItemType) Color() core.Color {
	switch t {
	case ItemHeart:
		return core.ColorRose
	case ItemGold:
		return core.ColorAmber
	case ItemBomb:
		return core.ColorRed
	default:
		return core.ColorBlue
	}
}

// Item is a live falling letter. Owned exclusively by the engine: created
// by the spawn controller, moved only by the physics step, removed only by
// the physics step (exit) or the input matcher (match).
type Item struct {
	ID    int64
	Char  rune
	X     float64 // percent of field width, fixed at creation
	Y     float64 // percent of field height, unbounded above 100
	Type  ItemType
	Color core.Color
}

// Field geometry, in percent of field height/width.
const (
	spawnY    = -5.0
	spawnXMin = 5.0
	spawnXMax = 95.0
	exitY     = 100.0
)

// Cumulative probability bands for item types, evaluated in order.
const (
	bandHeart = 0.06
	bandGold  = 0.12
	bandBomb  = 0.15
)

// rollType maps one uniform draw in [0,1) onto an item type.
func rollType(r float64) ItemType {
	switch {
	case r < bandHeart:
		return ItemHeart
	case r < bandGold:
		return ItemGold
	case r < bandBomb:
		return ItemBomb
	default:
		return ItemNormal
	}
}

// rollItem draws a new item from the RNG stream: type from the bands,
// character uniformly from A-Z, x uniformly from [spawnXMin, spawnXMax].
// Pure function of the stream, no hidden state.
func rollItem(rng *rand.Rand, id int64) *Item {
	t := rollType(rng.Float64())
	char := rune('A' + rng.Intn(26))
	x := spawnXMin + rng.Float64()*(spawnXMax-spawnXMin)

	return &Item{
		ID:    id,
		Char:  char,
		X:     x,
		Y:     spawnY,
		Type:  t,
		Color: t.Color(),
	}
}
