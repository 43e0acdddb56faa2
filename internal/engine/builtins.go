package engine

import "github.com/ericogr/mecha-tactics/internal/game"

// RegisterBuiltins installs the native callbacks the default catalog
// refers to. Callbacks receive the hook value and may touch the owner;
// value-preserving ones still count as triggered.
func RegisterBuiltins(r *Registry) {
	// Damage multiplier that grows as the owner's HP drops.
	r.RegisterCallback("cb_potential", func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value {
		n, ok := v.AsNumber()
		if !ok {
			return v
		}
		missing := 1 - owner.HPRatio()
		return game.Number(n + 0.5*missing*missing)
	})

	// Hit bonus that ramps up with the round number.
	r.RegisterCallback("cb_learning", func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value {
		n, ok := v.AsNumber()
		if !ok {
			return v
		}
		return game.Number(n + float64(ctx.Round)*5)
	})

	r.RegisterCallback("cb_gn_recover", func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value {
		owner.RestoreEN(10)
		return v
	})

	// Turns a pending miss (or an empty override slot) into a hit.
	r.RegisterCallback("cb_miracle_hit", func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value {
		if v.IsNil() {
			return game.String(string(game.OutcomeHit))
		}
		if s, ok := v.AsString(); ok && s == string(game.OutcomeMiss) {
			return game.String(string(game.OutcomeHit))
		}
		return v
	})

	// 30% chance to turn an incoming hit into a dodge.
	r.RegisterCallback("cb_instinct_dodge", func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value {
		s, ok := v.AsString()
		if !ok || s != string(game.OutcomeHit) {
			return v
		}
		if owner != ctx.Defender {
			return v
		}
		if r.rng != nil && r.rng.Float64() < 0.3 {
			return game.String(string(game.OutcomeDodge))
		}
		return v
	})

	// Repairs a fifth of the damage just taken.
	r.RegisterCallback("cb_auto_repair", func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value {
		n, ok := v.AsNumber()
		if !ok {
			return v
		}
		owner.Heal(int(n * 0.2))
		return v
	})

	// Flat damage soak against physical weapon fire.
	r.RegisterCallback("cb_ablative", func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value {
		n, ok := v.AsNumber()
		if !ok || ctx.Weapon == nil {
			return v
		}
		switch ctx.Weapon.Category {
		case game.WeaponMelee, game.WeaponShooting:
			n -= 200
			if n < 0 {
				n = 0
			}
			return game.Number(n)
		}
		return v
	})

	r.RegisterCallback("cb_rage_will", func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value {
		owner.ModifyWill(3)
		return v
	})

	// Heals a tenth of the damage dealt.
	r.RegisterCallback("cb_vampirism", func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value {
		n, ok := v.AsNumber()
		if !ok {
			return v
		}
		owner.Heal(int(n * 0.1))
		return v
	})

	r.RegisterCallback("cb_mercy_will", func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value {
		owner.ModifyWill(20)
		return v
	})

	r.RegisterCallback("cb_quick_reload_en", func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value {
		owner.RestoreEN(15)
		return v
	})

	r.RegisterCallback("cb_energy_save", func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value {
		owner.RestoreEN(5)
		return v
	})

	r.RegisterCallback("cb_regen_hp", func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value {
		owner.Heal(owner.MaxHP / 20)
		return v
	})

	r.RegisterCallback("cb_morale_en", func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value {
		owner.RestoreEN(30)
		return v
	})

	// Narrative-only callbacks kept so catalog data referencing them
	// still counts attempts in usage statistics.
	identity := func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value { return v }
	r.RegisterCallback("cb_effort_exp", identity)
	r.RegisterCallback("cb_spirit_boost", identity)
	r.RegisterCallback("cb_reunion", identity)
}
