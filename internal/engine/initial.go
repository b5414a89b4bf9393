// Package engine implements the authoritative state-transition function:
// the combat tick, the input processor, the Active Response stack, and
// the initial-state factory. Update is the one entry point a driver
// calls, at a fixed cadence and whenever a validated input arrives.
package engine

import (
	"laneclash/internal/catalog"
	"laneclash/internal/hero"
	"laneclash/internal/match"
	"laneclash/internal/rng"
)

// InitialState builds a fresh match in PhaseMulligan:
// shuffles each deck from seed, deals five-card opening hands, and derives
// each side's maximum mana from deck color composition.
func InitialState(matchID, p1ID, p2ID string, h1, h2 hero.Hero, deck1, deck2 []string, seed int64, cat *catalog.Catalog) *match.State {
	source := rng.New(seed)

	d1 := append([]string(nil), deck1...)
	d2 := append([]string(nil), deck2...)
	source.Shuffle(len(d1), func(i, j int) { d1[i], d1[j] = d1[j], d1[i] })
	source.Shuffle(len(d2), func(i, j int) { d2[i], d2[j] = d2[j], d2[i] })

	max1 := maxManaFor(d1, h1.Color, cat)
	max2 := maxManaFor(d2, h2.Color, cat)

	p1 := match.NewPlayerState(p1ID, h1, d1, max1)
	p2 := match.NewPlayerState(p2ID, h2, d2, max2)

	dealOpeningHand(&p1)
	dealOpeningHand(&p2)

	st := &match.State{
		MatchID: matchID,
		Tick:    0,
		Phase:   match.PhaseMulligan,
		AR:      match.ActiveResponse{Priority: match.NoPriority},
		Players: [2]match.PlayerState{p1, p2},
		Seed:    seed,
		Winner:  match.NoWinner,
		RNG:     source,
	}
	return st
}

func dealOpeningHand(p *match.PlayerState) {
	for i := 0; i < match.OpeningHandSize; i++ {
		p.DrawOne()
	}
}

// maxManaFor derives maximum mana from deck color composition plus the
// hero's own color: 10 for one color, 7 for two, 4 for
// three or four.
func maxManaFor(deck []string, heroColor catalog.Color, cat *catalog.Catalog) float64 {
	colors := map[catalog.Color]bool{heroColor: true}
	for _, id := range deck {
		def, ok := cat.Resolve(id)
		if !ok {
			continue
		}
		colors[def.Color] = true
	}
	switch len(colors) {
	case 1:
		return 10
	case 2:
		return 7
	default:
		return 4
	}
}
