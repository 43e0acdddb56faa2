package engine

import (
	"math/rand"

	"github.com/ericogr/mecha-tactics/internal/game"
)

// TableSegment is a half-open [Start, End) slice of the attack table.
type TableSegment struct {
	Outcome game.AttackOutcome `json:"outcome"`
	Start   float64            `json:"start"`
	End     float64            `json:"end"`
}

// AttackResolver turns one attack into an outcome and damage using a
// single roll against the six-way table.
type AttackResolver struct {
	reg *Registry
	rng *rand.Rand
}

func NewAttackResolver(reg *Registry, rng *rand.Rand) *AttackResolver {
	return &AttackResolver{reg: reg, rng: rng}
}

// tableRates holds the post-hook widths requested by each non-hit
// outcome, before the table squeezes them into the available space.
type tableRates struct {
	miss  float64
	dodge float64
	parry float64
	block float64
	crit  float64
}

// rates computes the requested segment widths for the current attack.
// When the post-hook hit bonus reaches the guaranteed-hit threshold, the
// miss and defensive rates are forced to zero and their hooks are not
// invoked at all.
func (ar *AttackResolver) rates(ctx *BattleContext) tableRates {
	att, def := ctx.Attacker, ctx.Defender

	var out tableRates
	hitBonus := ar.reg.processNumber(game.HookPreHitRate, float64(att.HitBonus), ctx)
	if hitBonus < GuaranteedHitThreshold {
		miss := ar.reg.processNumber(game.HookPreMissRate, MissPenalty(att.Pilot.WeaponProficiency), ctx)
		miss -= hitBonus
		if miss < 0 {
			miss = 0
		}
		out.miss = miss

		reduction := ar.reg.processNumber(game.HookPrePrecision, PrecisionReduction(att.Precision), ctx)
		if reduction < 0 {
			reduction = 0
		}
		if reduction > 1 {
			reduction = 1
		}
		scale := 1 - reduction

		dodge := ar.reg.processNumber(game.HookPreDodgeRate,
			DefenseRatio(def.Pilot.MechaProficiency, BaseDodgeRate)+float64(def.DodgeBonus), ctx) * scale
		parry := ar.reg.processNumber(game.HookPreParryRate,
			DefenseRatio(def.Pilot.MechaProficiency, BaseParryRate)+float64(def.ParryBonus), ctx) * scale
		block := ar.reg.processNumber(game.HookPreBlockRate,
			DefenseRatio(def.Pilot.MechaProficiency, BaseBlockRate)+float64(def.BlockBonus), ctx) * scale

		if parry > ParryRateCap {
			parry = ParryRateCap
		}
		if block > BlockRateCap {
			block = BlockRateCap
		}
		out.dodge = clampRate(dodge)
		out.parry = clampRate(parry)
		out.block = clampRate(block)
	}

	critBase := BaseCritRate + float64(att.CritBonus)
	if ctx.Weapon != nil {
		critBase += float64(ctx.Weapon.CritMod)
	}
	crit := ar.reg.processNumber(game.HookPreCritRate, critBase, ctx)
	if crit > CritRateCap {
		crit = CritRateCap
	}
	out.crit = clampRate(crit)
	return out
}

func clampRate(r float64) float64 {
	if r < 0 {
		return 0
	}
	return r
}

// Segments builds the attack table for the current context. Segments
// are packed in miss, dodge, parry, block, crit order; each takes at
// most the space left below 100 and the hit segment is whatever
// remains. Requested widths past 100 squeeze later segments out rather
// than renormalizing the table.
func (ar *AttackResolver) Segments(ctx *BattleContext) []TableSegment {
	rt := ar.rates(ctx)
	return buildSegments(rt)
}

func buildSegments(rt tableRates) []TableSegment {
	ordered := []struct {
		outcome game.AttackOutcome
		rate    float64
	}{
		{game.OutcomeMiss, rt.miss},
		{game.OutcomeDodge, rt.dodge},
		{game.OutcomeParry, rt.parry},
		{game.OutcomeBlock, rt.block},
		{game.OutcomeCrit, rt.crit},
	}

	segs := make([]TableSegment, 0, len(ordered)+1)
	cursor := 0.0
	for _, o := range ordered {
		if o.rate <= 0 {
			continue
		}
		space := 100 - cursor
		if space <= 0 {
			continue
		}
		width := o.rate
		if width > space {
			width = space
		}
		segs = append(segs, TableSegment{Outcome: o.outcome, Start: cursor, End: cursor + width})
		cursor += width
	}
	if cursor < 100 {
		segs = append(segs, TableSegment{Outcome: game.OutcomeHit, Start: cursor, End: 100})
	}
	return segs
}

// Resolve rolls the attack table, applies override and post-roll hooks,
// then applies will deltas and damage. The context carries the result.
func (ar *AttackResolver) Resolve(ctx *BattleContext) {
	segs := ar.Segments(ctx)

	var outcome game.AttackOutcome
	ov := ar.reg.ProcessHook(game.HookOverrideResult, game.Nil, ctx)
	if s, ok := ov.AsString(); ok {
		if forced, valid := game.ParseOutcome(s); valid {
			// Forced outcomes skip the roll entirely.
			outcome = forced
			ctx.Roll = -1
		}
	}
	if outcome == "" {
		roll := ar.rng.Float64() * 100
		ctx.Roll = roll
		outcome = game.OutcomeHit
		for _, seg := range segs {
			if roll >= seg.Start && roll < seg.End {
				outcome = seg.Outcome
				break
			}
		}
	}

	post := ar.reg.ProcessHook(game.HookPostRollResult, game.String(string(outcome)), ctx)
	if s, ok := post.AsString(); ok {
		if remapped, valid := game.ParseOutcome(s); valid {
			outcome = remapped
		}
	}
	ctx.Outcome = outcome

	ar.applyOutcome(ctx)
}

// willDeltas returns the fixed (attacker, defender) will changes for an
// outcome. Defenders gain will for clean defenses; attackers gain will
// for landing hits.
func willDeltas(outcome game.AttackOutcome) (int, int) {
	switch outcome {
	case game.OutcomeDodge:
		return 0, 5
	case game.OutcomeParry:
		return 0, 15
	case game.OutcomeBlock:
		return 0, 5
	case game.OutcomeHit:
		return 2, 1
	case game.OutcomeCrit:
		return 5, 0
	}
	return 0, 0
}

func (ar *AttackResolver) applyOutcome(ctx *BattleContext) {
	switch ctx.Outcome {
	case game.OutcomeMiss, game.OutcomeDodge, game.OutcomeParry:
		ctx.Damage = 0
	default:
		dmg := ar.damage(ctx)
		ctx.Defender.TakeDamage(dmg)
		ctx.Damage = dmg
	}

	attDelta, defDelta := willDeltas(ctx.Outcome)
	ctx.AttackerWillDelta = attDelta
	ctx.DefenderWillDelta = defDelta
	if attDelta != 0 {
		ctx.Attacker.ModifyWill(attDelta)
	}
	if defDelta != 0 {
		ctx.Defender.ModifyWill(defDelta)
	}
}

// damage runs the shared damage pipeline for hit, crit and block
// outcomes.
func (ar *AttackResolver) damage(ctx *BattleContext) int {
	att, def, w := ctx.Attacker, ctx.Defender, ctx.Weapon

	power := ar.reg.processNumber(game.HookPreWeaponPower, float64(w.Power), ctx)

	stat := 0
	switch w.Category {
	case game.WeaponMelee:
		stat = att.Pilot.Melee
	case game.WeaponShooting:
		stat = att.Pilot.Shooting
	case game.WeaponAwakening:
		stat = att.Pilot.Awakening
	}
	statBonus := ar.reg.processNumber(game.HookPreStatBonus, float64(stat), ctx)

	dmg := power + 2*statBonus
	dmg *= ar.reg.processNumber(game.HookPreWillModifier, WillDamageModifier(att.CurrentWill), ctx)
	dmg *= ar.reg.processNumber(game.HookPreDamageMult, 1.0, ctx)
	if ctx.Outcome == game.OutcomeCrit {
		dmg *= ar.reg.processNumber(game.HookPreCritMultiplier, CritMultiplier, ctx)
	}

	defense := ar.reg.processNumber(game.HookPreDefenseLevel, float64(def.Armor), ctx)
	defense = ar.reg.processNumber(game.HookPreArmorValue, defense, ctx)
	mitigation := ar.reg.processNumber(game.HookPreMitigation,
		ArmorMitigation(defense*WillDefenseModifier(def.CurrentWill)), ctx)
	if mitigation < 0 {
		mitigation = 0
	}
	if mitigation > 1 {
		mitigation = 1
	}
	dmg *= 1 - mitigation

	if ctx.Outcome == game.OutcomeBlock {
		dmg -= ar.reg.processNumber(game.HookPreBlockValue, float64(def.BlockReduction), ctx)
		if dmg < 0 {
			dmg = 0
		}
	}

	final := int(ar.reg.processNumber(game.HookOnDamageTaken, dmg, ctx))
	if final < 0 {
		final = 0
	}
	return final
}
