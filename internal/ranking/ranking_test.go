package ranking

import (
	"testing"
	"time"
)

func entry(name string, score int) Entry {
	return Entry{PlayerName: name, Score: score, Timestamp: time.Now()}
}

func TestInsertKeepsDescendingOrder(t *testing.T) {
	b := New()
	b.Insert(entry("a", 10))
	b.Insert(entry("b", 30))
	b.Insert(entry("c", 20))

	got := b.Entries()
	if got[0].Score != 30 || got[1].Score != 20 || got[2].Score != 10 {
		t.Fatalf("order = %d,%d,%d, want 30,20,10", got[0].Score, got[1].Score, got[2].Score)
	}
	if b.Best() != 30 {
		t.Fatalf("Best() = %d, want 30", b.Best())
	}
}

func TestInsertTruncatesAtCapacity(t *testing.T) {
	b := New()
	// Fill with scores 100 down to 1.
	for s := 100; s >= 1; s-- {
		b.Insert(entry("p", s))
	}
	if b.Len() != MaxEntries {
		t.Fatalf("Len() = %d, want %d", b.Len(), MaxEntries)
	}
	// Scores 100..51 survive; the minimum on the board is 51.
	entries := b.Entries()
	if entries[MaxEntries-1].Score != 51 {
		t.Fatalf("tail score = %d, want 51", entries[MaxEntries-1].Score)
	}

	// An entry below the board minimum is dropped by truncation.
	b.Insert(entry("late", 50))
	if b.Len() != MaxEntries {
		t.Fatalf("Len() = %d after low insert, want %d", b.Len(), MaxEntries)
	}
	for _, e := range b.Entries() {
		if e.PlayerName == "late" {
			t.Fatal("entry below the minimum was retained")
		}
	}

	// An entry beating the minimum displaces the tail.
	b.Insert(entry("contender", 52))
	found := false
	for _, e := range b.Entries() {
		if e.PlayerName == "contender" {
			found = true
		}
	}
	if !found {
		t.Fatal("entry above the minimum was dropped")
	}
	if b.Len() != MaxEntries {
		t.Fatalf("Len() = %d, want still %d", b.Len(), MaxEntries)
	}
}

func TestTiesKeepInsertionOrder(t *testing.T) {
	b := New()
	b.Insert(entry("first", 10))
	b.Insert(entry("second", 10))
	b.Insert(entry("third", 10))

	got := b.Entries()
	if got[0].PlayerName != "first" || got[1].PlayerName != "second" || got[2].PlayerName != "third" {
		t.Fatalf("tie order = %s,%s,%s, want insertion order kept",
			got[0].PlayerName, got[1].PlayerName, got[2].PlayerName)
	}
}

func TestNewFromRenormalizesStoredData(t *testing.T) {
	// Hand-edited storage: unsorted and over capacity.
	var stored []Entry
	for s := 1; s <= 60; s++ {
		stored = append(stored, entry("p", s))
	}

	b := NewFrom(stored)

	if b.Len() != MaxEntries {
		t.Fatalf("Len() = %d, want truncated to %d", b.Len(), MaxEntries)
	}
	if b.Best() != 60 {
		t.Fatalf("Best() = %d, want 60", b.Best())
	}
}

func TestEntriesReturnsACopy(t *testing.T) {
	b := New()
	b.Insert(entry("a", 10))

	got := b.Entries()
	got[0].Score = 999

	if b.Best() != 10 {
		t.Fatal("mutating the returned slice changed the board")
	}
}
