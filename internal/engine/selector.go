package engine

import "github.com/ericogr/mecha-tactics/internal/game"

// WeaponSelector picks the best usable weapon for an attack.
type WeaponSelector struct {
	reg *Registry
}

func NewWeaponSelector(reg *Registry) *WeaponSelector {
	return &WeaponSelector{reg: reg}
}

// Select returns the highest scoring weapon the attacker can use at the
// current distance. Ties keep the earliest weapon in loadout order.
// When nothing is usable a fallback ram attack is synthesized so an
// attack always happens.
func (s *WeaponSelector) Select(ctx *BattleContext) *game.WeaponSnapshot {
	att := ctx.Attacker

	var best *game.WeaponSnapshot
	var bestScore float64
	for _, w := range att.Weapons {
		if att.CurrentEN < w.ENCost {
			continue
		}
		if att.CurrentWill < w.WillReq {
			continue
		}
		prev := ctx.Weapon
		ctx.Weapon = w
		mod := s.reg.processNumber(game.HookWeaponDistanceMod, float64(w.HitModAt(ctx.Distance)), ctx)
		ctx.Weapon = prev
		if mod <= game.WeaponUnusable {
			continue
		}
		score := float64(w.Power) * (1 + mod/100)
		if best == nil || score > bestScore {
			best = w
			bestScore = score
		}
	}
	if best != nil {
		return best
	}
	return FallbackWeapon()
}

// FallbackWeapon is the zero-cost ram attack used when no real weapon
// can fire.
func FallbackWeapon() *game.WeaponSnapshot {
	return &game.WeaponSnapshot{
		UID:          "fallback",
		DefinitionID: "fallback",
		Name:         "Ram",
		Category:     game.WeaponFallback,
		Power:        FallbackWeaponPower,
		RangeMin:     0,
		RangeMax:     FallbackWeaponRangeMax,
	}
}
