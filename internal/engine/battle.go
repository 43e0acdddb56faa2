package engine

import (
	"math/rand"

	"github.com/ericogr/mecha-tactics/internal/game"
)

// Battle runs a full combat between two snapshots. Construct one per
// battle; it owns the round counter and the initiative streaks.
type Battle struct {
	a, b *game.MechaSnapshot

	reg        *Registry
	rng        *rand.Rand
	resolver   *AttackResolver
	initiative *InitiativeCalculator
	selector   *WeaponSelector

	maxRounds int
	round     int
	report    *game.BattleReport
}

// NewBattle wires a battle around a registry and a seeded random stream.
// The same stream feeds the attack roll, initiative jitter, trigger
// gates and distance generation, so a seed fully determines the battle.
func NewBattle(a, b *game.MechaSnapshot, reg *Registry, rng *rand.Rand) *Battle {
	return &Battle{
		a:          a,
		b:          b,
		reg:        reg,
		rng:        rng,
		resolver:   NewAttackResolver(reg, rng),
		initiative: NewInitiativeCalculator(reg, rng),
		selector:   NewWeaponSelector(reg),
		maxRounds:  DefaultMaxRounds,
		report:     &game.BattleReport{},
	}
}

// SetMaxRounds overrides the round limit before Run. Effects may still
// change it through the max_rounds hook.
func (bt *Battle) SetMaxRounds(n int) {
	if n > 0 {
		bt.maxRounds = n
	}
}

// Run plays the battle to its end and returns the report. The round
// limit is hooked once before the loop; once the limit is reached the
// maintain_battle hook may keep the fight going round by round, with no
// upper bound beyond destruction.
func (bt *Battle) Run() *game.BattleReport {
	startCtx := NewBattleContext(0, 0, bt.a, bt.b)
	maxRounds := int(bt.reg.processNumber(game.HookMaxRounds, float64(bt.maxRounds), startCtx))

	for bt.a.IsAlive() && bt.b.IsAlive() {
		if bt.round >= maxRounds {
			ctx := NewBattleContext(bt.round, 0, bt.a, bt.b)
			if !bt.reg.processBool(game.HookMaintainBattle, false, ctx) {
				break
			}
		}
		bt.round++
		bt.executeRound()
	}

	endCtx := NewBattleContext(bt.round, 0, bt.a, bt.b)
	bt.reg.ProcessHook(game.HookOnBattleEnd, game.Nil, endCtx)

	bt.conclude()
	return bt.report
}

// rollDistance picks the engagement distance for the round. The band
// narrows every round until it settles on close combat.
func (bt *Battle) rollDistance() int {
	elapsed := bt.round - 1
	minD := DistanceInitialMin - DistanceRoundReduce*elapsed
	maxD := DistanceInitialMax - DistanceRoundReduce*elapsed
	if minD < DistanceFinalMin {
		minD = DistanceFinalMin
	}
	if maxD < DistanceFinalMax {
		maxD = DistanceFinalMax
	}
	return bt.rng.Intn(maxD-minD+1) + minD
}

func (bt *Battle) executeRound() {
	distance := bt.rollDistance()
	first, second, reason := bt.initiative.Decide(bt.round, distance, bt.a, bt.b)

	bt.report.Snapshots = append(bt.report.Snapshots, game.RoundSnapshot{
		Round:            bt.round,
		Distance:         distance,
		FirstMoverID:     first.InstanceID,
		InitiativeReason: reason,
		SideA:            sideState(bt.a),
		SideB:            sideState(bt.b),
	})

	bt.executeAttack(first, second, distance)
	if !second.IsAlive() {
		return
	}
	bt.executeAttack(second, first, distance)
	if !first.IsAlive() {
		return
	}

	bt.a.ModifyWill(WillRecoveryPerRound)
	bt.b.ModifyWill(WillRecoveryPerRound)

	ctx := NewBattleContext(bt.round, distance, first, second)
	bt.reg.ProcessHook(game.HookOnTurnEnd, game.Nil, ctx)

	bt.a.TickEffects()
	bt.b.TickEffects()
}

// executeAttack runs one attack from att against def. An attacker that
// cannot pay the hooked EN cost skips the attack entirely: no debit, no
// roll, no record.
func (bt *Battle) executeAttack(att, def *game.MechaSnapshot, distance int) {
	ctx := NewBattleContext(bt.round, distance, att, def)
	bt.reg.Events().BeginAttack()

	weapon := bt.selector.Select(ctx)
	ctx.Weapon = weapon

	cost := int(bt.reg.processNumber(game.HookPreENCost, float64(weapon.ENCost), ctx))
	if att.CurrentEN < cost {
		bt.reg.Events().EndAttack()
		return
	}
	att.ConsumeEN(cost)

	bt.resolver.Resolve(ctx)

	if ctx.Damage > 0 {
		bt.reg.processNumber(game.HookOnDamageDealt, float64(ctx.Damage), ctx)
	}
	if !def.IsAlive() {
		bt.reg.ProcessHook(game.HookOnKill, game.Nil, ctx)
	}
	bt.reg.ProcessHook(game.HookOnAttackEnd, game.Nil, ctx)

	bt.reg.Events().EndAttack()

	bt.report.Attacks = append(bt.report.Attacks, game.AttackRecord{
		Round:             bt.round,
		AttackerID:        att.InstanceID,
		DefenderID:        def.InstanceID,
		WeaponID:          weapon.UID,
		WeaponName:        weapon.Name,
		Outcome:           ctx.Outcome,
		Damage:            ctx.Damage,
		Roll:              ctx.Roll,
		AttackerWillDelta: ctx.AttackerWillDelta,
		DefenderWillDelta: ctx.DefenderWillDelta,
		FiredEffectIDs:    ctx.FiredEffectIDs(),
	})
}

// conclude decides the winner: destruction beats everything, then the
// HP percentage judgment, then a draw.
func (bt *Battle) conclude() {
	bt.report.Rounds = bt.round

	aAlive, bAlive := bt.a.IsAlive(), bt.b.IsAlive()
	switch {
	case !aAlive && !bAlive:
		bt.report.EndReason = game.EndDestruction
	case !bAlive:
		bt.report.WinnerID = bt.a.InstanceID
		bt.report.EndReason = game.EndDestruction
	case !aAlive:
		bt.report.WinnerID = bt.b.InstanceID
		bt.report.EndReason = game.EndDestruction
	default:
		ra, rb := bt.a.HPRatio(), bt.b.HPRatio()
		switch {
		case ra > rb:
			bt.report.WinnerID = bt.a.InstanceID
			bt.report.EndReason = game.EndJudgment
		case rb > ra:
			bt.report.WinnerID = bt.b.InstanceID
			bt.report.EndReason = game.EndJudgment
		default:
			bt.report.EndReason = game.EndDraw
		}
	}
}

func sideState(m *game.MechaSnapshot) game.SideState {
	return game.SideState{
		InstanceID: m.InstanceID,
		HP:         m.CurrentHP,
		EN:         m.CurrentEN,
		Will:       m.CurrentWill,
	}
}
