package engine

import "github.com/ericogr/mecha-tactics/internal/game"

// runSideEffect executes one side effect of a fired effect. Unknown
// types are skipped; apply_effect may recurse into hook processing when
// the created effects later fire.
func (r *Registry) runSideEffect(parent *game.Effect, se game.SideEffect, ctx *BattleContext, owner *game.MechaSnapshot) {
	target := ctx.ResolveTarget(se.Target, owner)

	switch se.Type {
	case game.SideConsumeEN:
		target.ConsumeEN(se.Amount)
		r.events.Publish(TriggerEvent{
			EffectID:   parent.ID,
			EffectName: parent.Name,
			OwnerID:    target.InstanceID,
			Hook:       parent.Hook,
			Triggered:  true,
			Note:       "consume_en",
		})

	case game.SideModifyWill:
		target.ModifyWill(se.Amount)

	case game.SideApplyEffect:
		if r.source == nil || se.EffectID == "" {
			return
		}
		created := r.source.CreateEffects(se.EffectID, se.Duration)
		for _, e := range created {
			target.AddEffect(e)
			r.events.Publish(TriggerEvent{
				EffectID:   e.ID,
				EffectName: e.Name,
				OwnerID:    target.InstanceID,
				Hook:       e.Hook,
				Triggered:  true,
				Note:       "applied",
			})
		}

	case game.SideModifyStat, game.SideConsumeCharges:
		// Direct stat mutation and external charge spending are not
		// supported; these are accepted in data and do nothing.
	}
}
