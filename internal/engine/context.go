package engine

import (
	"github.com/ericogr/mecha-tactics/internal/game"
)

// BattleContext carries the state of one attack (or lifecycle moment)
// through hook processing. A fresh context is created per attack; the
// hook stack and result cache therefore never leak across attacks.
type BattleContext struct {
	Round    int
	Distance int

	Attacker *game.MechaSnapshot
	Defender *game.MechaSnapshot
	Weapon   *game.WeaponSnapshot

	Roll    float64
	Outcome game.AttackOutcome
	Damage  int

	AttackerWillDelta int
	DefenderWillDelta int

	hookStack []game.Hook
	cached    map[game.Hook]game.Value
	fired     []string
}

func NewBattleContext(round, distance int, attacker, defender *game.MechaSnapshot) *BattleContext {
	return &BattleContext{
		Round:    round,
		Distance: distance,
		Attacker: attacker,
		Defender: defender,
		cached:   make(map[game.Hook]game.Value),
	}
}

// Enemy returns the opponent of the given combatant within this context.
func (c *BattleContext) Enemy(of *game.MechaSnapshot) *game.MechaSnapshot {
	if of == c.Attacker {
		return c.Defender
	}
	return c.Attacker
}

// ResolveTarget maps a target selector to a combatant, relative to the
// owner of the effect being evaluated.
func (c *BattleContext) ResolveTarget(sel game.TargetSelector, owner *game.MechaSnapshot) *game.MechaSnapshot {
	if sel == game.TargetEnemy {
		return c.Enemy(owner)
	}
	return owner
}

func (c *BattleContext) pushHook(h game.Hook) { c.hookStack = append(c.hookStack, h) }

func (c *BattleContext) popHook() {
	if len(c.hookStack) > 0 {
		c.hookStack = c.hookStack[:len(c.hookStack)-1]
	}
}

// hookDepth counts occurrences of h in the current stack.
func (c *BattleContext) hookDepth(h game.Hook) int {
	n := 0
	for _, s := range c.hookStack {
		if s == h {
			n++
		}
	}
	return n
}

// cacheResult stores the final scalar value of a hook so ref_hook
// conditions can compare against it later in the same context.
func (c *BattleContext) cacheResult(h game.Hook, v game.Value) {
	if v.Kind == game.KindNumber || v.Kind == game.KindBool {
		c.cached[h] = v
	}
}

// CachedResult returns the cached final value of an earlier hook.
func (c *BattleContext) CachedResult(h game.Hook) (game.Value, bool) {
	v, ok := c.cached[h]
	return v, ok
}

// recordFired remembers that an effect fired during this context.
func (c *BattleContext) recordFired(effectID string) {
	for _, id := range c.fired {
		if id == effectID {
			return
		}
	}
	c.fired = append(c.fired, effectID)
}

// FiredEffectIDs lists the distinct effects that fired in this context,
// in first-fire order.
func (c *BattleContext) FiredEffectIDs() []string {
	return c.fired
}
