package engine

import (
	"fmt"

	"laneclash/internal/catalog"
	"laneclash/internal/dsl"
	"laneclash/internal/effect"
	"laneclash/internal/match"
)

// requiredTargetKind inspects an Action card's script for a declared target
// requirement. The DSL's closed NAME/NAME:VALUE/TRIGGER:NAME:VALUE grammar
// has no string-valued slot to carry a target kind, so the kind is encoded
// as one of two reserved bare marker tokens, the same way status keywords
// are bare tokens rather than invoked effects.
func requiredTargetKind(script string) (kind string, required bool) {
	if dsl.HasToken(script, "target_friendly_unit") {
		return "friendly_unit", true
	}
	if dsl.HasToken(script, "target_friendly_hero") {
		return "friendly_hero", true
	}
	return "", false
}

// applyPlayCard handles both the ordinary play-card input and the
// active-response-action input, unified: the only extra rule an
// active-response-action needs is "only the priority holder may add to an
// already-open window," which the generic Action-card-during-AR check
// below also enforces for a plain play-card input. See DESIGN.md for why
// this unification is a faithful reading of the two input shapes rather
// than a behavior change.
func applyPlayCard(st *match.State, cat *catalog.Catalog, emit *match.Emitter, in *Input) {
	p := &st.Players[in.Player]

	def, ok := cat.Resolve(in.CardID)
	if !ok {
		diagnose(ReasonUnknownCard)
		return
	}

	if !p.ContainsInOrigin(in.FromEX, in.CardID) {
		diagnose(ReasonIllegalOrigin)
		return
	}

	if def.Type == catalog.TypeUnit && st.AR.Active {
		diagnose(ReasonIllegalPhase)
		return
	}
	if def.Type == catalog.TypeAction && st.AR.Active && in.Player != st.AR.Priority {
		diagnose(ReasonIllegalPhase)
		return
	}

	cost := float64(def.Cost)
	if p.AvailableMana() < cost {
		diagnose(ReasonInsufficientMana)
		return
	}

	var occupant *match.Unit
	if def.Type == catalog.TypeUnit {
		if in.Lane < 0 || in.Lane > 2 {
			diagnose(ReasonIllegalLane)
			return
		}
		if p.LaneLock[in.Lane] > 0 {
			diagnose(ReasonIllegalLane)
			return
		}
		if u, occupied := p.Field[in.Lane]; occupied {
			if !dsl.HasToken(def.Script, "awakening") || u.HasStatus("indestructible") {
				diagnose(ReasonIllegalLane)
				return
			}
			occupant = u
		}
	}

	var targetUnit *match.Unit
	targetPlayer := match.NoPriority
	if def.Type == catalog.TypeAction {
		if kind, required := requiredTargetKind(def.Script); required {
			switch kind {
			case "friendly_unit":
				if in.TargetIsHero || in.TargetUnitID == "" {
					diagnose(ReasonWrongTargetKind)
					return
				}
				targetUnit = p.FindUnit(in.TargetUnitID)
				if targetUnit == nil {
					diagnose(ReasonMissingTarget)
					return
				}
			case "friendly_hero":
				if !in.TargetIsHero {
					diagnose(ReasonWrongTargetKind)
					return
				}
				targetPlayer = in.Player
			}
		}
	}

	// --- commit --------------------------------------------------------

	p.RemoveFromOrigin(in.FromEX, in.CardID)
	if card, drew := p.DrawOne(); drew {
		emit.Emit(match.EventCardDrawn, match.CardDrawnPayload{Side: in.Player, CardID: card})
	}
	p.SpendMana(cost)
	p.CreditAbilityPoints(def.Cost)

	origin := "hand"
	if in.FromEX {
		origin = "ex"
	}
	emit.Emit(match.EventCardPlayed, match.CardPlayedPayload{Side: in.Player, CardID: in.CardID, Origin: origin, Lane: in.Lane})

	if def.Type == catalog.TypeAction {
		p.AppendGraveyard(catalog.StripOverlays(in.CardID))
		emit.Emit(match.EventCardToGraveyard, match.CardToGraveyardPayload{Side: in.Player, CardID: in.CardID, Reason: "card_played"})
	}

	ctx := &effect.Context{
		State:  st, Catalog: cat,
		Source: in.Player, TargetUnit: targetUnit, TargetPlayer: targetPlayer,
		Emit:   emit, RNG: st.RNG,
	}

	if def.Type == catalog.TypeUnit {
		playUnit(st, emit, in.Player, def, occupant, in.Lane, ctx)
		return
	}

	playAction(st, emit, in.Player, in.CardID, def, ctx)
}

func playUnit(st *match.State, emit *match.Emitter, side int, def catalog.CardDefinition, occupant *match.Unit, lane int, ctx *effect.Context) {
	p := &st.Players[side]

	if occupant != nil {
		// awakening replaces the occupant outright; shield/veil never apply
		// to this vacancy, only to combat and effect damage.
		delete(p.Field, lane)
		p.AppendGraveyard(occupant.BaseCardID)
		if emit != nil {
			emit.Emit(match.EventUnitDestroyed, match.UnitDestroyedPayload{
				Side:   side, UnitID: occupant.InstanceID, CardID: occupant.BaseCardID,
				Reason: "awakened_over",
			})
		}
	}

	stats := def.UnitStats
	life, atk, interval := 0, 0, 1000
	if stats != nil {
		life, atk, interval = stats.Life, stats.Attack, stats.AttackIntervalMs
	}

	u := &match.Unit{
		InstanceID:       fmt.Sprintf("%s-%d-%d", def.BaseID, side, st.Tick),
		SourceCardID:     def.BaseID,
		BaseCardID:       def.BaseID,
		Life:             life,
		MaxLife:          life,
		Attack:           atk,
		AttackIntervalMs: interval,
		Lane:             lane,
		Cost:             def.Cost,
	}
	p.Field[lane] = u
	ctx.SourceUnit = u

	for _, inv := range dsl.Parse(def.Script) {
		if !inv.IsStatus {
			continue
		}
		u.SetStatus(inv.Name, inv.Value)
		switch inv.Name {
		case "agility":
			half := u.AttackIntervalMs / 2
			if half < effect.MinAgilityIntervalMs {
				half = effect.MinAgilityIntervalMs
			}
			u.AttackIntervalMs = half
		case "rush":
			prefill := 1.0
			if u.AttackIntervalMs > 0 {
				prefill = 7000.0 / float64(u.AttackIntervalMs)
			}
			if prefill > 1.0 {
				prefill = 1.0
			}
			u.Gauge = prefill
		}
	}

	effect.FireTriggered(def.Script, dsl.TriggerPlay, ctx)
	effect.FireTriggered(def.Script, dsl.TriggerEnterField, ctx)
}

func playAction(st *match.State, emit *match.Emitter, side int, cardID string, def catalog.CardDefinition, ctx *effect.Context) {
	wasActive := st.AR.Active
	if !wasActive {
		st.AR.Open(side)
	}
	st.AR.Push(match.AREntry{PlayerIndex: side, CardID: cardID, Timestamp: 0})

	st.Players[0].BlueMana += 2
	st.Players[1].BlueMana += 2

	if !wasActive {
		emit.Emit(match.EventActiveResponseStarted, match.ActiveResponseStartedPayload{BySide: side, CardID: cardID})
	}

	effect.FireTriggered(def.Script, dsl.TriggerResonate, ctx)
}
