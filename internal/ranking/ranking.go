// Package ranking maintains a bounded, sorted leaderboard of session
// results.
package ranking

import (
	"sort"
	"time"
)

// MaxEntries is the board capacity; inserts beyond it drop the tail.
const MaxEntries = 50

// ConfigSnapshot records the settings a score was achieved under.
type ConfigSnapshot struct {
	Speed           float64 `json:"speed"`
	SpawnIntervalMs int     `json:"spawnIntervalMs"`
	FontSize        int     `json:"fontSize"`
}

// Entry is a single leaderboard record. Entries are immutable once
// inserted.
type Entry struct {
	PlayerName string         `json:"playerName"`
	Score      int            `json:"score"`
	Timestamp  time.Time      `json:"timestamp"`
	Config     ConfigSnapshot `json:"config"`
}

// Board is the in-memory leaderboard. Owned by the single-threaded
// platform loop; persisted as JSON through the storage layer.
type Board struct {
	entries []Entry
}

// New creates an empty board.
func New() *Board {
	return &Board{}
}

// NewFrom restores a board from persisted entries, re-sorting and
// truncating in case the stored data was hand-edited or stale.
func NewFrom(entries []Entry) *Board {
	b := &Board{entries: append([]Entry(nil), entries...)}
	b.normalize()
	return b
}

// Insert appends an entry, sorts descending by score (stable, so ties
// keep insertion order) and truncates to the top MaxEntries.
func (b *Board) Insert(e Entry) {
	b.entries = append(b.entries, e)
	b.normalize()
}

func (b *Board) normalize() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if len(b.entries) > MaxEntries {
		b.entries = b.entries[:MaxEntries]
	}
}

// Entries returns a copy of the board in rank order.
func (b *Board) Entries() []Entry {
	return append([]Entry(nil), b.entries...)
}

// Len returns the number of entries on the board.
func (b *Board) Len() int {
	return len(b.entries)
}

// Best returns the top score, or 0 for an empty board.
func (b *Board) Best() int {
	if len(b.entries) == 0 {
		return 0
	}
	return b.entries[0].Score
}
