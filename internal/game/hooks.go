package game

// Hook names an interception point in the combat pipeline. Effects and
// legacy callbacks are keyed by hook name.
type Hook string

const (
	// Attack resolution, in invocation order.
	HookPreENCost         Hook = "pre_en_cost"
	HookPreHitRate        Hook = "pre_hit_rate"
	HookPreMissRate       Hook = "pre_miss_rate"
	HookPreDodgeRate      Hook = "pre_dodge_rate"
	HookPreParryRate      Hook = "pre_parry_rate"
	HookPreBlockRate      Hook = "pre_block_rate"
	HookPreCritRate       Hook = "pre_crit_rate"
	HookPrePrecision      Hook = "pre_precision"
	HookOverrideResult    Hook = "override_result"
	HookPostRollResult    Hook = "post_roll_result"
	HookPreWeaponPower    Hook = "pre_weapon_power"
	HookPreStatBonus      Hook = "pre_stat_bonus"
	HookPreWillModifier   Hook = "pre_will_modifier"
	HookPreDamageMult     Hook = "pre_damage_mult"
	HookPreCritMultiplier Hook = "pre_crit_multiplier"
	HookPreDefenseLevel   Hook = "pre_defense_level"
	HookPreArmorValue     Hook = "pre_armor_value"
	HookPreMitigation     Hook = "pre_mitigation"
	HookPreBlockValue     Hook = "pre_block_value"
	HookOnDamageTaken     Hook = "on_damage_taken"
	HookOnDamageDealt     Hook = "on_damage_dealt"
	HookOnKill            Hook = "on_kill"
	HookOnAttackEnd       Hook = "on_attack_end"

	// Weapon selection.
	HookWeaponDistanceMod Hook = "weapon_distance_mod"

	// Initiative.
	HookInitiativeCheck Hook = "initiative_check"
	HookInitiativeScore Hook = "initiative_score"

	// Battle lifecycle.
	HookMaxRounds      Hook = "max_rounds"
	HookMaintainBattle Hook = "maintain_battle"
	HookOnTurnEnd      Hook = "on_turn_end"
	HookOnBattleEnd    Hook = "on_battle_end"
)
