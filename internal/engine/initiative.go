package engine

import (
	"math/rand"

	"github.com/ericogr/mecha-tactics/internal/game"
)

// InitiativeCalculator decides who attacks first each round. It tracks
// consecutive wins across rounds so one battle keeps one calculator.
type InitiativeCalculator struct {
	reg *Registry
	rng *rand.Rand

	wins         map[string]int
	lastWinnerID string
}

func NewInitiativeCalculator(reg *Registry, rng *rand.Rand) *InitiativeCalculator {
	return &InitiativeCalculator{reg: reg, rng: rng, wins: make(map[string]int)}
}

// Decide returns the first and second mover for the round and the reason
// the first mover won initiative.
func (ic *InitiativeCalculator) Decide(round, distance int, a, b *game.MechaSnapshot) (*game.MechaSnapshot, *game.MechaSnapshot, game.InitiativeReason) {
	// A streak at the threshold hands the round to the other side
	// before anything else is considered.
	if ic.wins[a.InstanceID] >= ConsecutiveWinsThreshold {
		ic.recordWinner(b.InstanceID)
		return b, a, game.ReasonForcedSwitch
	}
	if ic.wins[b.InstanceID] >= ConsecutiveWinsThreshold {
		ic.recordWinner(a.InstanceID)
		return a, b, game.ReasonForcedSwitch
	}

	ctxA := NewBattleContext(round, distance, a, b)
	ctxB := NewBattleContext(round, distance, b, a)

	// Force checks run in side order and the first hit wins, so side
	// b's hook is never consulted once side a's fires.
	if ic.reg.processBool(game.HookInitiativeCheck, false, ctxA) {
		ic.recordWinner(a.InstanceID)
		return a, b, game.ReasonPerformance
	}
	if ic.reg.processBool(game.HookInitiativeCheck, false, ctxB) {
		ic.recordWinner(b.InstanceID)
		return b, a, game.ReasonPerformance
	}

	scoreA := ic.score(a, ctxA)
	scoreB := ic.score(b, ctxB)

	if scoreA == scoreB {
		// Ties go to whoever lost the previous round.
		winner, loser := a, b
		if ic.lastWinnerID == a.InstanceID {
			winner, loser = b, a
		}
		ic.recordWinner(winner.InstanceID)
		return winner, loser, game.ReasonCounter
	}

	winner, loser := a, b
	if scoreB > scoreA {
		winner, loser = b, a
	}
	reason := ic.reason(winner, loser)
	ic.recordWinner(winner.InstanceID)
	return winner, loser, reason
}

// score computes the hooked initiative score for one combatant,
// including the round's random jitter.
func (ic *InitiativeCalculator) score(m *game.MechaSnapshot, ctx *BattleContext) float64 {
	base := float64(m.Mobility)*InitiativeMobilityWeight +
		float64(m.Pilot.Reaction)*InitiativeReactionWeight +
		float64(m.CurrentWill)*InitiativeWillWeight
	jitter := (ic.rng.Float64()*2 - 1) * InitiativeJitterRange
	return ic.reg.processNumber(game.HookInitiativeScore, base+jitter, ctx)
}

// reason attributes the score win to the stat with the widest gap.
func (ic *InitiativeCalculator) reason(winner, loser *game.MechaSnapshot) game.InitiativeReason {
	if float64(winner.Mobility-loser.Mobility) > MobilityReasonGap {
		return game.ReasonPerformance
	}
	if float64(winner.Pilot.Reaction-loser.Pilot.Reaction) > ReactionReasonGap {
		return game.ReasonPilot
	}
	if float64(winner.CurrentWill-loser.CurrentWill) > WillReasonGap {
		return game.ReasonAdvantage
	}
	return game.ReasonPerformance
}

// recordWinner updates the streak counters: a repeat winner extends the
// streak, any change resets both counters.
func (ic *InitiativeCalculator) recordWinner(id string) {
	if ic.lastWinnerID == id {
		ic.wins[id]++
		return
	}
	ic.wins = map[string]int{id: 1}
	ic.lastWinnerID = id
}
