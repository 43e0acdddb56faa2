package engine

import (
	"math"

	"github.com/ericogr/mecha-tactics/internal/game"
)

// Pure balance formulas. Everything here is deterministic and free of
// hook processing; the resolver feeds the results through hooks.

// MissPenalty returns the base miss rate for an attacker with the given
// weapon proficiency. Proficiency at or above the threshold leaves only
// the base rate; below it a penalty grows on a power curve.
func MissPenalty(weaponProficiency int) float64 {
	p := float64(weaponProficiency)
	if p < 0 {
		p = 0
	}
	if p > WeaponProficiencyThreshold {
		p = WeaponProficiencyThreshold
	}
	ratio := p / WeaponProficiencyThreshold
	return BaseMissRate + MissPenaltyMax*(1-math.Pow(ratio, MissPenaltyExponent))
}

// DefenseRatio scales a base defensive rate by the defender's mecha
// proficiency on a log curve that reaches 1.0 at the threshold.
func DefenseRatio(mechaProficiency int, baseRate float64) float64 {
	p := float64(mechaProficiency)
	if p < 0 {
		p = 0
	}
	if p > MechaProficiencyThreshold {
		p = MechaProficiencyThreshold
	}
	return baseRate * math.Log(p+1) / math.Log(MechaProficiencyThreshold+1)
}

// WillDamageModifier converts attacker will into a damage multiplier
// (1.0 at will 100).
func WillDamageModifier(will int) float64 {
	return float64(will) / WillModifierBase
}

// WillDefenseModifier converts defender will into an armor multiplier
// (1.0 at will 100).
func WillDefenseModifier(will int) float64 {
	return float64(will) / WillModifierBase
}

// WillStabilityBonus is the small flat bonus high will grants to
// stability-style checks. Negative below will 100.
func WillStabilityBonus(will int) float64 {
	return float64(will-game.WillInitial) * WillStabilityCoefficient
}

// ArmorMitigation converts effective armor into a damage reduction
// fraction with diminishing returns.
func ArmorMitigation(effectiveArmor float64) float64 {
	if effectiveArmor <= 0 {
		return 0
	}
	return effectiveArmor / (effectiveArmor + ArmorK)
}

// PrecisionReduction is the fraction by which attacker precision scales
// down the defender's evasive rates, capped.
func PrecisionReduction(precision int) float64 {
	r := float64(precision) / 100.0
	if r < 0 {
		return 0
	}
	if r > PrecisionReductionCap {
		return PrecisionReductionCap
	}
	return r
}
