// Package hero holds the small, hand-authored hero-art table. Heroes sit
// deliberately outside the effect DSL: "Heroes are OUT of
// the effect DSL and live in a small hand-authored table." A hero ultimate
// is wired as a Go function rather than a parsed token sequence, though it
// is free to reuse the same primitives the effect resolver uses.
package hero

import "laneclash/internal/catalog"

// Hero is immutable for the lifetime of a match.
type Hero struct {
	ID           string
	Name         string
	Color        catalog.Color
	ArtThreshold int // ability points required to invoke Ultimate; default 10
}

// Table is the closed set of heroes this build ships.
var Table = map[string]Hero{
	"ember_warden":   {ID: "ember_warden", Name: "Ember Warden", Color: catalog.ColorRed, ArtThreshold: 10},
	"verdant_keeper": {ID: "verdant_keeper", Name: "Verdant Keeper", Color: catalog.ColorGreen, ArtThreshold: 10},
	"arcane_seer":    {ID: "arcane_seer", Name: "Arcane Seer", Color: catalog.ColorPurple, ArtThreshold: 10},
	"dread_marshal":  {ID: "dread_marshal", Name: "Dread Marshal", Color: catalog.ColorBlack, ArtThreshold: 10},
}

// Lookup returns the hero for id, or the zero Hero and false on miss.
func Lookup(id string) (Hero, bool) {
	h, ok := Table[id]
	return h, ok
}

// Threshold returns h's ability-point threshold: the value the caster's
// ability-point counter must reach to fire their ultimate. Defaults to
// 10 when the hero declares no override.
func (h Hero) Threshold() int {
	if h.ArtThreshold <= 0 {
		return 10
	}
	return h.ArtThreshold
}
