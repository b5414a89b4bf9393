// Package dsl tokenizes a card's effect script into typed
// invocations. It is a grammar only — it knows nothing about what an effect
// name does; internal/effect owns the handler table that gives each token
// meaning.
package dsl

import (
	"strconv"
	"strings"
)

// Trigger is the phase at which an effect invocation should fire.
type Trigger uint8

const (
	TriggerPlay Trigger = iota
	TriggerEnterField
	TriggerAttack
	TriggerDeath
	TriggerResonate
	TriggerDecimate
	TriggerExplore
	TriggerDamage
	TriggerEffectDamageDestroy
)

var triggerNames = map[string]Trigger{
	"play":                  TriggerPlay,
	"enter_field":           TriggerEnterField,
	"attack":                TriggerAttack,
	"death":                 TriggerDeath,
	"resonate":              TriggerResonate,
	"decimate":              TriggerDecimate,
	"explore":               TriggerExplore,
	"damage":                TriggerDamage,
	"effect_damage_destroy": TriggerEffectDamageDestroy,
}

// StatusNames is the closed set of keyword tokens that configure a unit's
// status at enter-field time rather than invoking a resolver handler.
var StatusNames = map[string]bool{
	"rush":         true,
	"flight":       true,
	"agility":      true,
	"heavy_pierce": true,
	"combo":        true,
	"spillover":    true,
	"revenge":      true,
	"mp_boost":     true,
}

// Invocation is one parsed token from an effect script.
type Invocation struct {
	Trigger   Trigger
	Name      string // lower-cased
	Value     int
	IsStatus  bool // true if Name is a status keyword, not a resolver effect
	RawTrig   string
	Malformed bool // token didn't fit any of the three recognized shapes
}

// Parse splits an effect script into tokens separated by ';' and classifies
// each one. Unknown trigger literals are kept as Malformed=false with the
// raw trigger text so the caller can log a diagnostic without halting
// resolution of the remaining tokens.
func Parse(script string) []Invocation {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil
	}

	rawTokens := strings.Split(script, ";")
	out := make([]Invocation, 0, len(rawTokens))
	for _, raw := range rawTokens {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}
		inv, ok := parseToken(tok)
		if !ok {
			continue
		}
		out = append(out, inv)
	}
	return out
}

func parseToken(tok string) (Invocation, bool) {
	parts := strings.Split(tok, ":")
	switch len(parts) {
	case 1:
		name := strings.ToLower(strings.TrimSpace(parts[0]))
		if name == "" {
			return Invocation{}, false
		}
		return Invocation{Trigger: TriggerPlay, Name: name, Value: 0, IsStatus: StatusNames[name]}, true
	case 2:
		name := strings.ToLower(strings.TrimSpace(parts[0]))
		if name == "" {
			return Invocation{}, false
		}
		val, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
		return Invocation{Trigger: TriggerPlay, Name: name, Value: val, IsStatus: StatusNames[name]}, true
	case 3:
		trigRaw := strings.ToLower(strings.TrimSpace(parts[0]))
		name := strings.ToLower(strings.TrimSpace(parts[1]))
		if name == "" {
			return Invocation{}, false
		}
		val, _ := strconv.Atoi(strings.TrimSpace(parts[2]))
		trig, known := triggerNames[trigRaw]
		if !known {
			trig = TriggerPlay
		}
		return Invocation{Trigger: trig, Name: name, Value: val, IsStatus: StatusNames[name], RawTrig: trigRaw, Malformed: !known}, true
	default:
		return Invocation{}, false
	}
}

// HasToken reports whether script contains a bare token with the given name
// (case-insensitive), ignoring its trigger/value. Used for cheap presence
// checks like "contains an awakening token" or "contains any
// resonate-triggered tokens".
func HasToken(script, name string) bool {
	for _, inv := range Parse(script) {
		if strings.EqualFold(inv.Name, name) {
			return true
		}
	}
	return false
}

// HasTrigger reports whether script contains any token tagged with trigger.
func HasTrigger(script string, trigger Trigger) bool {
	for _, inv := range Parse(script) {
		if inv.Trigger == trigger {
			return true
		}
	}
	return false
}
