package engine

import "laneclash/internal/match"

// applyMulligan handles the mulligan input: any opening-hand card not
// named in KeptCards is returned to the bottom of the deck, the deck is
// reshuffled, and the hand is topped back up to OpeningHandSize. Each side
// may mulligan at most once; a second attempt this match is a no-op.
func applyMulligan(st *match.State, in *Input) {
	p := &st.Players[in.Player]

	if p.Counters["mulligan_used"] != 0 {
		return
	}
	p.Counters["mulligan_used"] = 1

	kept := make(map[string]int, len(in.KeptCards))
	for _, id := range in.KeptCards {
		kept[id]++
	}

	var keepHand, returned []string
	for _, id := range p.Hand {
		if kept[id] > 0 {
			keepHand = append(keepHand, id)
			kept[id]--
			continue
		}
		returned = append(returned, id)
	}
	p.Hand = keepHand
	p.Deck = append(p.Deck, returned...)

	st.RNG.Shuffle(len(p.Deck), func(i, j int) {
		p.Deck[i], p.Deck[j] = p.Deck[j], p.Deck[i]
	})

	for len(p.Hand) < match.OpeningHandSize && len(p.Deck) > 0 {
		p.DrawOne()
	}

	allMulliganed := true
	for i := range st.Players {
		if st.Players[i].Counters["mulligan_used"] == 0 {
			allMulliganed = false
			break
		}
	}
	if allMulliganed {
		st.Phase = match.PhasePlaying
	}
}
