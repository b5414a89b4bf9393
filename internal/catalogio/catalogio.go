// Package catalogio ingests the tabular card source into the in-memory
// map internal/catalog wraps. CSV ingestion is deliberately kept out of
// the core; this package is the one place that owns a concrete file
// format so internal/catalog never has to.
package catalogio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"laneclash/internal/catalog"
)

// expected column order: id,name,cost,type,color,rarity,life,attack,attackIntervalMs,defaultLane,script
var columns = []string{
	"id", "name", "cost", "type", "color", "rarity",
	"life", "attack", "attack_interval_ms", "default_lane", "script",
}

// Load parses r as a header-first CSV and returns a base-id -> definition
// map suitable for catalog.New. A malformed row is skipped with an error
// appended to the returned diagnostics slice rather than aborting the
// whole load, mirroring the engine's "skip and continue" posture toward
// bad input.
func Load(r io.Reader) (map[string]catalog.CardDefinition, []error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, []error{fmt.Errorf("catalogio: reading header: %w", err)}
	}
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}
	for _, want := range columns {
		if _, ok := index[want]; !ok {
			return nil, []error{fmt.Errorf("catalogio: missing column %q", want)}
		}
	}

	out := make(map[string]catalog.CardDefinition)
	var diagnostics []error

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			diagnostics = append(diagnostics, fmt.Errorf("catalogio: row error: %w", err))
			continue
		}

		def, err := parseRow(row, index)
		if err != nil {
			diagnostics = append(diagnostics, err)
			continue
		}
		out[def.BaseID] = def
	}

	return out, diagnostics
}

func parseRow(row []string, index map[string]int) (catalog.CardDefinition, error) {
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	id := get("id")
	if id == "" {
		return catalog.CardDefinition{}, fmt.Errorf("catalogio: row missing id")
	}

	cost, _ := strconv.Atoi(get("cost"))

	cardType, err := parseCardType(get("type"))
	if err != nil {
		return catalog.CardDefinition{}, fmt.Errorf("catalogio: card %s: %w", id, err)
	}

	color, err := parseColor(get("color"))
	if err != nil {
		return catalog.CardDefinition{}, fmt.Errorf("catalogio: card %s: %w", id, err)
	}

	rarity := catalog.RarityNormal
	if strings.EqualFold(get("rarity"), "legend") {
		rarity = catalog.RarityLegend
	}

	def := catalog.CardDefinition{
		BaseID: id,
		Name:   get("name"),
		Cost:   cost,
		Type:   cardType,
		Color:  color,
		Rarity: rarity,
		Script: get("script"),
	}

	if cardType == catalog.TypeUnit {
		life, _ := strconv.Atoi(get("life"))
		attack, _ := strconv.Atoi(get("attack"))
		interval, _ := strconv.Atoi(get("attack_interval_ms"))
		lane, _ := strconv.Atoi(get("default_lane"))
		if interval <= 0 {
			interval = 1000
		}
		def.UnitStats = &catalog.UnitStats{
			Life: life, Attack: attack, AttackIntervalMs: interval, DefaultLane: lane,
		}
	}

	return def, nil
}

func parseCardType(s string) (catalog.CardType, error) {
	switch strings.ToLower(s) {
	case "unit":
		return catalog.TypeUnit, nil
	case "action":
		return catalog.TypeAction, nil
	case "hero_art", "heroart":
		return catalog.TypeHeroArt, nil
	default:
		return 0, fmt.Errorf("unknown card type %q", s)
	}
}

func parseColor(s string) (catalog.Color, error) {
	switch strings.ToLower(s) {
	case "red":
		return catalog.ColorRed, nil
	case "green":
		return catalog.ColorGreen, nil
	case "purple":
		return catalog.ColorPurple, nil
	case "black":
		return catalog.ColorBlack, nil
	default:
		return 0, fmt.Errorf("unknown color %q", s)
	}
}
