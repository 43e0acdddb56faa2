package catalog

import "github.com/ericogr/mecha-tactics/internal/game"

// defaultSkills is the built-in skill, trait and spirit command data.
// Frame traits and pilot skills are applied as permanent effects; spirit
// commands keep their listed durations.
func defaultSkills() []SkillDef {
	return []SkillDef{
		// ---- pilot skills and frame traits -------------------------
		{
			ID: "potential", Name: "Potential",
			Description: "Deals more damage the more damage the frame has taken.",
			Effects: []EffectSpec{
				{ID: "potential_dmg", Hook: game.HookPreDamageMult, Operation: game.OpCallback, Value: game.String("cb_potential"), Duration: -1},
			},
		},
		{
			ID: "learning_computer", Name: "Learning Computer",
			Description: "Accuracy improves every round as the computer adapts.",
			Effects: []EffectSpec{
				{ID: "learning_hit", Hook: game.HookPreHitRate, Operation: game.OpCallback, Value: game.String("cb_learning"), Duration: -1},
			},
		},
		{
			ID: "gn_drive", Name: "GN Drive",
			Description: "Recovers EN at the end of every round.",
			Effects: []EffectSpec{
				{ID: "gn_drive_en", Hook: game.HookOnTurnEnd, Operation: game.OpCallback, Value: game.String("cb_gn_recover"), Duration: -1},
			},
		},
		{
			ID: "auto_repair", Name: "Auto Repair",
			Description: "Nanomachines patch a fifth of any damage taken.",
			Effects: []EffectSpec{
				{ID: "auto_repair_heal", Hook: game.HookOnDamageTaken, Operation: game.OpCallback, Value: game.String("cb_auto_repair"), Priority: 90, Duration: -1},
			},
		},
		{
			ID: "ablative_armor", Name: "Ablative Armor",
			Description: "Soaks a flat amount of physical damage.",
			Effects: []EffectSpec{
				{ID: "ablative_soak", Hook: game.HookOnDamageTaken, Operation: game.OpCallback, Value: game.String("cb_ablative"), Priority: 40, Duration: -1},
			},
		},
		{
			ID: "vampirism", Name: "Energy Drain",
			Description: "Heals a tenth of the damage dealt.",
			Effects: []EffectSpec{
				{ID: "vampirism_heal", Hook: game.HookOnDamageDealt, Operation: game.OpCallback, Value: game.String("cb_vampirism"), Duration: -1},
			},
		},
		{
			ID: "quick_reload", Name: "Quick Reload",
			Description: "Recovers EN after every attack.",
			Effects: []EffectSpec{
				{ID: "quick_reload_en", Hook: game.HookOnAttackEnd, Operation: game.OpCallback, Value: game.String("cb_quick_reload_en"), Duration: -1},
			},
		},
		{
			ID: "energy_saver", Name: "Energy Saver",
			Description: "Trickle-charges EN at the end of every round.",
			Effects: []EffectSpec{
				{ID: "energy_saver_en", Hook: game.HookOnTurnEnd, Operation: game.OpCallback, Value: game.String("cb_energy_save"), Duration: -1},
			},
		},
		{
			ID: "nano_repair", Name: "Nano Repair",
			Description: "Regenerates hull at the end of every round.",
			Effects: []EffectSpec{
				{ID: "nano_repair_hp", Hook: game.HookOnTurnEnd, Operation: game.OpCallback, Value: game.String("cb_regen_hp"), Duration: -1},
			},
		},
		{
			ID: "berserker", Name: "Berserker",
			Description: "Hits harder when the frame is close to destruction.",
			Effects: []EffectSpec{
				{
					ID: "berserker_dmg", Hook: game.HookPreDamageMult, Operation: game.OpAdd, Value: game.Number(0.3), Duration: -1,
					Conditions: []game.Condition{{Type: game.CondHPThreshold, Value: game.Number(0.3)}},
				},
			},
		},
		{
			ID: "rage_circuit", Name: "Rage Circuit",
			Description: "Taking damage feeds the pilot's will.",
			Effects: []EffectSpec{
				{ID: "rage_circuit_will", Hook: game.HookOnDamageTaken, Operation: game.OpCallback, Value: game.String("cb_rage_will"), Priority: 95, Duration: -1},
			},
		},
		{
			ID: "mercy", Name: "Mercy",
			Description: "Finishing an enemy steels the pilot's resolve.",
			Effects: []EffectSpec{
				{ID: "mercy_will", Hook: game.HookOnKill, Operation: game.OpCallback, Value: game.String("cb_mercy_will"), Duration: -1},
			},
		},
		{
			ID: "morale_boost", Name: "Morale Boost",
			Description: "A one-time surge of EN when the fighting starts.",
			Effects: []EffectSpec{
				{ID: "morale_boost_en", Hook: game.HookOnTurnEnd, Operation: game.OpCallback, Value: game.String("cb_morale_en"), Charges: 1, Duration: 1},
			},
		},

		// ---- spirit commands ---------------------------------------
		{
			ID: "spirit_strike", Name: "Strike",
			Description: "The next attack cannot miss.",
			Effects: []EffectSpec{
				{ID: "spirit_strike_hit", Hook: game.HookPreHitRate, Operation: game.OpAdd, Value: game.Number(100), Duration: 1, Charges: 1},
			},
		},
		{
			ID: "spirit_alert", Name: "Alert",
			Description: "Guarantees initiative this round.",
			Effects: []EffectSpec{
				{ID: "spirit_alert_init", Hook: game.HookInitiativeCheck, Operation: game.OpSet, Value: game.Boolean(true), Duration: 1},
			},
		},
		{
			ID: "spirit_valor", Name: "Valor",
			Description: "Doubles the damage of the next attack.",
			Effects: []EffectSpec{
				{ID: "spirit_valor_dmg", Hook: game.HookPreDamageMult, Operation: game.OpMul, Value: game.Number(2), Duration: 1, Charges: 1},
			},
		},
		{
			ID: "spirit_iron_wall", Name: "Iron Wall",
			Description: "Halves all damage taken this round.",
			Effects: []EffectSpec{
				{ID: "spirit_iron_wall_soak", Hook: game.HookOnDamageTaken, Operation: game.OpMul, Value: game.Number(0.5), Priority: 30, Duration: 1},
			},
		},
		{
			ID: "spirit_focus", Name: "Focus",
			Description: "Sharpened accuracy and evasion for three rounds.",
			Effects: []EffectSpec{
				{ID: "spirit_focus_hit", Hook: game.HookPreHitRate, Operation: game.OpAdd, Value: game.Number(30), Duration: 3},
				{ID: "spirit_focus_dodge", Hook: game.HookPreDodgeRate, Operation: game.OpAdd, Value: game.Number(10), Duration: 3},
			},
		},
		{
			ID: "spirit_dream", Name: "Dream",
			Description: "A surge of EN at the end of the round.",
			Effects: []EffectSpec{
				{ID: "spirit_dream_en", Hook: game.HookOnTurnEnd, Operation: game.OpCallback, Value: game.String("cb_morale_en"), Duration: 1, Charges: 1},
			},
		},
		{
			ID: "spirit_suppress", Name: "Suppress",
			Description: "Covering fire drains the enemy's will and EN.",
			Effects: []EffectSpec{
				{
					ID: "spirit_suppress_tick", Hook: game.HookOnTurnEnd, Operation: game.OpCallback, Value: game.String("cb_spirit_boost"), Duration: 1,
					SideEffects: []game.SideEffect{
						{Type: game.SideModifyWill, Target: game.TargetEnemy, Amount: -5},
						{Type: game.SideConsumeEN, Target: game.TargetEnemy, Amount: 10},
					},
				},
			},
		},
		{
			ID: "spirit_confuse", Name: "Confuse",
			Description: "Jamming shakes the enemy pilot's will.",
			Effects: []EffectSpec{
				{
					ID: "spirit_confuse_tick", Hook: game.HookOnTurnEnd, Operation: game.OpCallback, Value: game.String("cb_spirit_boost"), Duration: 1,
					SideEffects: []game.SideEffect{
						{Type: game.SideModifyWill, Target: game.TargetEnemy, Amount: -10},
					},
				},
			},
		},
		{
			ID: "spirit_miracle", Name: "Miracle",
			Description: "Fate intervenes: a pending miss becomes a hit.",
			Effects: []EffectSpec{
				{ID: "spirit_miracle_hit", Hook: game.HookOverrideResult, Operation: game.OpCallback, Value: game.String("cb_miracle_hit"), Duration: 1, Charges: 1},
			},
		},
		{
			ID: "spirit_instinct", Name: "Instinct",
			Description: "A chance to slip incoming hits for three rounds.",
			Effects: []EffectSpec{
				{ID: "spirit_instinct_dodge", Hook: game.HookPostRollResult, Operation: game.OpCallback, Value: game.String("cb_instinct_dodge"), Duration: 3},
			},
		},
		{
			ID: "spirit_fury", Name: "Fury",
			Description: "The next attack is far more likely to crit.",
			Effects: []EffectSpec{
				{ID: "spirit_fury_crit", Hook: game.HookPreCritRate, Operation: game.OpAdd, Value: game.Number(50), Duration: 1, Charges: 1},
			},
		},
		{
			ID: "spirit_rage", Name: "Rage",
			Description: "Every attack feeds the pilot's will for two rounds.",
			Effects: []EffectSpec{
				{ID: "spirit_rage_will", Hook: game.HookOnAttackEnd, Operation: game.OpCallback, Value: game.String("cb_rage_will"), Duration: 2},
			},
		},
		{
			ID: "spirit_effort", Name: "Effort",
			Description: "Marks kills for bonus experience.",
			Effects: []EffectSpec{
				{ID: "spirit_effort_mark", Hook: game.HookOnKill, Operation: game.OpCallback, Value: game.String("cb_effort_exp"), Duration: 3},
			},
		},
		{
			ID: "spirit_protract", Name: "Protract",
			Description: "Refuses judgment: the battle continues past the limit.",
			Effects: []EffectSpec{
				{ID: "spirit_protract_flag", Hook: game.HookMaintainBattle, Operation: game.OpSet, Value: game.Boolean(true), Duration: -1},
			},
		},
		{
			ID: "spirit_determination", Name: "Determination",
			Description: "Extends the battle limit by two rounds.",
			Effects: []EffectSpec{
				{ID: "spirit_determination_rounds", Hook: game.HookMaxRounds, Operation: game.OpAdd, Value: game.Number(2), Duration: -1},
			},
		},
		{
			ID: "spirit_reunion", Name: "Reunion",
			Description: "A promise to return; narrative only.",
			Effects: []EffectSpec{
				{ID: "spirit_reunion_mark", Hook: game.HookOnBattleEnd, Operation: game.OpCallback, Value: game.String("cb_reunion"), Duration: -1},
			},
		},
	}
}
