package matchmaking

import (
	"testing"

	"laneclash/internal/catalog"
)

func TestJoinWaitsForSecondEntrant(t *testing.T) {
	q := New()
	_, paired := q.Join(Entry{PlayerID: "alice"})
	if paired {
		t.Fatal("the first entrant should wait, not pair")
	}
	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", q.Len())
	}
}

func TestJoinPairsSecondEntrantWithFirst(t *testing.T) {
	q := New()
	q.Join(Entry{PlayerID: "alice"})
	pairing, paired := q.Join(Entry{PlayerID: "bob"})

	if !paired {
		t.Fatal("second distinct entrant should complete a pairing")
	}
	if pairing.P1.PlayerID != "alice" || pairing.P2.PlayerID != "bob" {
		t.Fatalf("pairing = %+v, want P1=alice P2=bob", pairing)
	}
	if q.Len() != 0 {
		t.Fatalf("Len() after pairing = %d, want 0", q.Len())
	}
}

func TestJoinIgnoresDuplicatePlayerID(t *testing.T) {
	q := New()
	q.Join(Entry{PlayerID: "alice"})
	_, paired := q.Join(Entry{PlayerID: "alice"})
	if paired {
		t.Fatal("a duplicate join from the same player id must not pair with itself")
	}
}

func TestLeaveRemovesWaitingEntrant(t *testing.T) {
	q := New()
	q.Join(Entry{PlayerID: "alice"})
	q.Leave("alice")
	if q.Len() != 0 {
		t.Fatalf("Len() after Leave = %d, want 0", q.Len())
	}

	_, paired := q.Join(Entry{PlayerID: "bob"})
	if paired {
		t.Fatal("queue should be empty after Leave, so bob should wait, not pair")
	}
}

func TestResolveHero(t *testing.T) {
	if _, err := ResolveHero(Entry{PlayerID: "alice", HeroID: "ember_warden"}); err != nil {
		t.Fatalf("unexpected error for a known hero id: %v", err)
	}
	if _, err := ResolveHero(Entry{PlayerID: "alice", HeroID: "nonexistent"}); err == nil {
		t.Fatal("expected an error for an unknown hero id")
	}
}

func TestValidateDeck(t *testing.T) {
	cat := catalog.New(map[string]catalog.CardDefinition{
		"ember_scout": {BaseID: "ember_scout", Type: catalog.TypeUnit},
	})

	if err := ValidateDeck(Entry{PlayerID: "alice", Deck: []string{"ember_scout"}}, cat); err != nil {
		t.Fatalf("unexpected error for a valid deck: %v", err)
	}
	if err := ValidateDeck(Entry{PlayerID: "alice", Deck: []string{"ember_scout", "unknown_card"}}, cat); err == nil {
		t.Fatal("expected an error for a deck referencing an unknown card")
	}
}
