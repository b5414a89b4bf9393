package rng

import "testing"

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 50; i++ {
		va := a.Intn(1000)
		vb := b.Intn(1000)
		if va != vb {
			t.Fatalf("draw %d diverged: %d != %d", i, va, vb)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)

	same := true
	for i := 0; i < 20; i++ {
		if a.Intn(1_000_000) != b.Intn(1_000_000) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to diverge within 20 draws")
	}
}

func TestPickIndex(t *testing.T) {
	s := New(7)

	if got := s.PickIndex(0); got != -1 {
		t.Fatalf("PickIndex(0) = %d, want -1", got)
	}
	if got := s.PickIndex(1); got != 0 {
		t.Fatalf("PickIndex(1) = %d, want 0", got)
	}
	for i := 0; i < 100; i++ {
		got := s.PickIndex(5)
		if got < 0 || got >= 5 {
			t.Fatalf("PickIndex(5) out of range: %d", got)
		}
	}
}

func TestShuffleIsAPermutation(t *testing.T) {
	s := New(3)
	deck := []int{1, 2, 3, 4, 5, 6, 7, 8}
	seen := make(map[int]bool, len(deck))
	for _, v := range deck {
		seen[v] = true
	}

	s.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	if len(deck) != 8 {
		t.Fatalf("shuffle changed length to %d", len(deck))
	}
	for _, v := range deck {
		if !seen[v] {
			t.Fatalf("shuffle introduced unexpected value %d", v)
		}
		delete(seen, v)
	}
	if len(seen) != 0 {
		t.Fatalf("shuffle lost values: %v", seen)
	}
}
