package engine

import "github.com/ericogr/mecha-tactics/internal/game"

// checkConditions reports whether every condition on an effect passes.
// An effect with no conditions always passes.
func (r *Registry) checkConditions(conds []game.Condition, ctx *BattleContext, owner *game.MechaSnapshot) bool {
	for _, c := range conds {
		if !r.checkCondition(c, ctx, owner) {
			return false
		}
	}
	return true
}

// checkCondition evaluates a single condition. Unknown condition types
// and operand type mismatches evaluate to false.
func (r *Registry) checkCondition(c game.Condition, ctx *BattleContext, owner *game.MechaSnapshot) bool {
	target := ctx.ResolveTarget(c.Target, owner)

	switch c.Type {
	case game.CondHPThreshold:
		val, ok := c.Value.AsNumber()
		if !ok {
			return false
		}
		return compareNumbers(target.HPRatio(), orDefault(c.Compare, game.CmpLT), val)

	case game.CondWillThreshold:
		val, ok := c.Value.AsNumber()
		if !ok {
			return false
		}
		return compareNumbers(float64(target.CurrentWill), orDefault(c.Compare, game.CmpGE), val)

	case game.CondRoundNumber:
		val, ok := c.Value.AsNumber()
		if !ok {
			return false
		}
		return compareNumbers(float64(ctx.Round), orDefault(c.Compare, game.CmpEQ), val)

	case game.CondAttackResult:
		if ctx.Outcome == "" {
			return false
		}
		return matchesName(string(ctx.Outcome), c)

	case game.CondEnemyWillThreshold:
		val, ok := c.Value.AsNumber()
		if !ok {
			return false
		}
		enemy := ctx.Enemy(owner)
		return compareNumbers(float64(enemy.CurrentWill), orDefault(c.Compare, game.CmpGE), val)

	case game.CondEnemyStatCheck:
		val, ok := c.Value.AsNumber()
		if !ok {
			return false
		}
		enemy := ctx.Enemy(owner)
		stat, found := enemy.Pilot.Stat(c.Stat)
		if !found {
			return false
		}
		return compareNumbers(float64(stat), orDefault(c.Compare, game.CmpGT), val)

	case game.CondRefHook:
		cached, ok := ctx.CachedResult(c.RefHook)
		if !ok {
			return false
		}
		cur, okCur := cached.AsNumber()
		val, okVal := c.Value.AsNumber()
		if !okCur || !okVal {
			return false
		}
		return compareNumbers(cur, orDefault(c.Compare, game.CmpGT), val)

	case game.CondWeaponType:
		if ctx.Weapon == nil {
			return false
		}
		return matchesName(string(ctx.Weapon.Category), c)

	case game.CondDamageType:
		// Damage typing is not modeled yet; the condition exists in
		// catalog data and always passes.
		return true

	case game.CondDamageBelow:
		val, ok := c.Value.AsNumber()
		if !ok {
			return false
		}
		return float64(ctx.Damage) < val
	}
	return false
}

// matchesName checks a string condition against either its single value
// or its any_of list.
func matchesName(name string, c game.Condition) bool {
	if len(c.AnyOf) > 0 {
		for _, alt := range c.AnyOf {
			if alt == name {
				return true
			}
		}
		return false
	}
	want, ok := c.Value.AsString()
	return ok && want == name
}

func orDefault(op, def game.CompareOp) game.CompareOp {
	if op == "" {
		return def
	}
	return op
}

func compareNumbers(a float64, op game.CompareOp, b float64) bool {
	switch op {
	case game.CmpGT:
		return a > b
	case game.CmpLT:
		return a < b
	case game.CmpEQ:
		return a == b
	case game.CmpGE:
		return a >= b
	case game.CmpLE:
		return a <= b
	case game.CmpNE:
		return a != b
	}
	return false
}
