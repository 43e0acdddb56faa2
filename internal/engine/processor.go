package engine

import (
	"sort"

	"github.com/ericogr/mecha-tactics/internal/game"
)

// candidate pairs an effect with the combatant that owns it.
type candidate struct {
	effect *game.Effect
	owner  *game.MechaSnapshot
}

// processEffects folds all matching effects from both combatants over
// the hook value. Effects run in (priority, sub_priority, id) order;
// each may mutate the value, fire side effects and spend charges.
func (r *Registry) processEffects(h game.Hook, v game.Value, ctx *BattleContext) game.Value {
	cands := r.collectCandidates(h, ctx)
	if len(cands) == 0 {
		return v
	}
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i].effect, cands[j].effect
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.SubPriority != b.SubPriority {
			return a.SubPriority < b.SubPriority
		}
		return a.ID < b.ID
	})

	for _, cand := range cands {
		e := cand.effect
		// Side effects from an earlier candidate may have spent this
		// one in the meantime.
		if !e.Active() {
			continue
		}
		if e.TriggerChance < 1.0 && r.rng != nil && r.rng.Float64() >= e.TriggerChance {
			r.events.Publish(TriggerEvent{
				EffectID:   e.ID,
				EffectName: e.Name,
				OwnerID:    cand.owner.InstanceID,
				Hook:       h,
				Before:     v,
				After:      v,
				Chance:     e.TriggerChance,
				Triggered:  false,
				Note:       "chance roll failed",
			})
			continue
		}

		out, usedCallback := r.applyOperation(e, v, ctx, cand.owner)
		triggered := usedCallback || !out.Equal(v)
		if triggered {
			r.events.Publish(TriggerEvent{
				EffectID:   e.ID,
				EffectName: e.Name,
				OwnerID:    cand.owner.InstanceID,
				Hook:       h,
				Before:     v,
				After:      out,
				Chance:     e.TriggerChance,
				Triggered:  true,
			})
			ctx.recordFired(e.ID)
			for _, se := range e.SideEffects {
				r.runSideEffect(e, se, ctx, cand.owner)
			}
			if e.Charges > 0 {
				e.Charges--
				if e.Charges == 0 {
					e.Duration = 0
					r.events.Publish(TriggerEvent{
						EffectID:   e.ID,
						EffectName: e.Name,
						OwnerID:    cand.owner.InstanceID,
						Hook:       h,
						Before:     out,
						After:      out,
						Chance:     e.TriggerChance,
						Triggered:  true,
						Note:       "exhausted",
					})
				}
			}
		}
		v = out
	}
	return v
}

// collectCandidates gathers active effects matching the hook whose
// conditions all pass, from the attacker first and then the defender.
func (r *Registry) collectCandidates(h game.Hook, ctx *BattleContext) []candidate {
	var cands []candidate
	add := func(owner *game.MechaSnapshot) {
		if owner == nil {
			return
		}
		for _, e := range owner.Effects {
			if e.Hook != h || !e.Active() {
				continue
			}
			if !r.checkConditions(e.Conditions, ctx, owner) {
				continue
			}
			cands = append(cands, candidate{effect: e, owner: owner})
		}
	}
	add(ctx.Attacker)
	if ctx.Defender != ctx.Attacker {
		add(ctx.Defender)
	}
	return cands
}

// applyOperation computes the new hook value for one effect. Unknown
// operations, operand type mismatches and division by zero all leave the
// value untouched. The second return reports whether a native callback
// ran (callbacks count as triggering even when they return the input).
func (r *Registry) applyOperation(e *game.Effect, v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) (game.Value, bool) {
	switch e.Operation {
	case game.OpCallback:
		id, ok := e.Value.AsString()
		if !ok {
			return v, false
		}
		fn, ok := r.callbacks[id]
		if !ok {
			return v, false
		}
		return fn(v, ctx, owner), true

	case game.OpSet:
		// set adopts the operand wholesale, including a type change.
		return e.Value, false

	case game.OpNot:
		if b, ok := v.AsBool(); ok {
			return game.Boolean(!b), false
		}
		return v, false

	case game.OpAnd, game.OpOr:
		cur, okCur := v.AsBool()
		operand, okOp := e.Value.AsBool()
		if !okCur || !okOp {
			return v, false
		}
		if e.Operation == game.OpAnd {
			return game.Boolean(cur && operand), false
		}
		return game.Boolean(cur || operand), false

	case game.OpAdd, game.OpSub, game.OpMul, game.OpDiv, game.OpMin, game.OpMax:
		cur, okCur := v.AsNumber()
		operand, okOp := e.Value.AsNumber()
		if !okCur || !okOp {
			return v, false
		}
		switch e.Operation {
		case game.OpAdd:
			return game.Number(cur + operand), false
		case game.OpSub:
			return game.Number(cur - operand), false
		case game.OpMul:
			return game.Number(cur * operand), false
		case game.OpDiv:
			if operand == 0 {
				return v, false
			}
			return game.Number(cur / operand), false
		case game.OpMin:
			if operand < cur {
				return game.Number(operand), false
			}
			return v, false
		case game.OpMax:
			if operand > cur {
				return game.Number(operand), false
			}
			return v, false
		}
	}
	return v, false
}
