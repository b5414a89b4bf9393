package effect

// Table is the fixed, closed vocabulary of effect names the resolver
// dispatches on. Status
// keywords (dsl.StatusNames) are never looked up here — the input processor
// and combat tick apply them directly at enter-field time.
var Table = map[string]Handler{
	// Single-target damage
	"damage_front_unit":      handlerDamageFrontUnit,
	"damage_random_enemy":    handlerDamageRandomEnemy,
	"damage_enemy_hero":      handlerDamageEnemyHero,
	"damage_target":          handlerDamageTarget,
	"pierce_damage_target":   handlerPierceDamageTarget,
	"damage_lowest_hp_enemy": handlerDamageLowestHPEnemy,
	"damage_self":            handlerDamageSelf,

	// Area damage
	"damage_all_units":            handlerDamageAllUnits,
	"damage_all_enemy_units_each": handlerDamageAllEnemyUnitsEach,
	"damage_all_units_and_heroes": handlerDamageAllUnitsAndHeroes,
	"damage_halted_enemies":       handlerDamageHaltedEnemies,
	"damage_flight_units":         handlerDamageFlightUnits,

	// Split damage
	"split_damage_all_enemy_units": handlerSplitDamageAllEnemyUnits,
	"split_heal_friendly":          handlerSplitHealFriendly,

	// Buffs / debuffs
	"buff_self_attack":            handlerBuffSelfAttack,
	"buff_self_hp":                handlerBuffSelfHP,
	"buff_self_attack_hp":         handlerBuffSelfAttackHP,
	"buff_all_friendly_attack":    handlerBuffAllFriendlyAttack,
	"buff_all_friendly_hp":        handlerBuffAllFriendlyHP,
	"buff_all_friendly_attack_hp": handlerBuffAllFriendlyAttackHP,
	"buff_random_friendly_attack": handlerBuffRandomFriendlyAttack,
	"buff_random_friendly_hp":     handlerBuffRandomFriendlyHP,
	"buff_target_attack":          handlerBuffTargetAttack,
	"buff_target_hp":              handlerBuffTargetHP,
	"debuff_random_enemy_attack":  handlerDebuffRandomEnemyAttack,
	"debuff_all_enemy_attack":     handlerDebuffAllEnemyAttack,

	// Temporary buffs
	"buff_self_attack_temp":         handlerBuffSelfAttackTemp,
	"buff_all_friendly_attack_temp": handlerBuffAllFriendlyAttackTemp,
	"buff_target_attack_temp":       handlerBuffTargetAttackTemp,
	"grant_crush_all_friendly_temp": handlerGrantCrushAllFriendlyTemp,
	"grant_combo_self_temp":         handlerGrantComboSelfTemp,
	"debuff_all_enemy_attack_temp":  handlerDebuffAllEnemyAttackTemp,

	// Status grants
	"grant_flight_self":            handlerGrantFlightSelf,
	"grant_agility_self":           handlerGrantAgilitySelf,
	"grant_shield_self":            handlerGrantShieldSelf,
	"grant_shield_random_friendly": handlerGrantShieldRandomFriendly,
	"grant_flight_target":          handlerGrantFlightTarget,
	"grant_agility_target":         handlerGrantAgilityTarget,
	"remove_flight":                handlerRemoveFlight,

	// Control & movement
	"control_enemy":                 handlerControlEnemy,
	"return_to_ex":                  handlerReturnToEX,
	"return_friendly_to_ex":         handlerReturnFriendlyToEX,
	"return_low_attack_enemy_to_ex": handlerReturnLowAttackEnemyToEX,
	"lock_lane":                     handlerLockLane,

	// Resource
	"mp_gain":         handlerMPGain,
	"heal_hero":       handlerHealHero,
	"life_sacrifice":  handlerLifeSacrifice,
	"halve_hero_life": handlerHalveHeroLife,
	"halve_mp":        handlerHalveMP,
	"art_charge":      handlerArtCharge,
	"draw_to_ex":      handlerDrawToEX,

	// Graveyard
	"revive_from_graveyard": handlerReviveFromGraveyard,
	"send_to_graveyard":     handlerSendToGraveyard,

	// Counter-play
	"negate_action":     handlerNegateAction,
	"negate_and_return": handlerNegateAndReturn,

	// Halt / seal
	"halt_random_enemy":               handlerHaltRandomEnemy,
	"halt_front_unit":                 handlerHaltFrontUnit,
	"halt_killer":                     handlerHaltKiller,
	"seal_front_unit":                 handlerSealFrontUnit,
	"seal_target":                     handlerSealTarget,
	"seal_random_enemy":               handlerSealRandomEnemy,
	"seal_random_enemy_exclude_front": handlerSealRandomEnemyExcludeFront,

	// Destruction
	"destroy_target":       handlerDestroyTarget,
	"destroy_random_enemy": handlerDestroyRandomEnemy,
	"destroy_friendly":     handlerDestroyFriendly,
	"destroy_self":         handlerDestroySelf,
	"destroy_low_attack":   handlerDestroyLowAttack,

	// Marker
	"action_effect": handlerActionEffect,
}

// Lookup returns the handler for name (already lower-cased by the DSL
// parser), or nil, false on a miss.
func Lookup(name string) (Handler, bool) {
	h, ok := Table[name]
	return h, ok
}
