package engine

import (
	"testing"

	"github.com/ericogr/mecha-tactics/internal/game"
)

func TestInitiative_ScoreAndForcedSwitch(t *testing.T) {
	// Fixed rand keeps the jitter at exactly zero.
	rng := fixedRand(1 << 62)
	reg := newTestRegistry(rng)
	ic := NewInitiativeCalculator(reg, rng)

	a, b := newTestMecha("a"), newTestMecha("b")
	a.Mobility = 90 // gap > 20 attributes the win to performance

	for round := 1; round <= 2; round++ {
		first, _, reason := ic.Decide(round, 5000, a, b)
		if first != a {
			t.Fatalf("round %d: expected the faster mecha to move first", round)
		}
		if reason != game.ReasonPerformance {
			t.Fatalf("round %d: expected performance reason, got %s", round, reason)
		}
	}

	// Two straight wins hand round three to the other side.
	first, second, reason := ic.Decide(3, 5000, a, b)
	if first != b || second != a {
		t.Fatal("expected the streak to force a switch")
	}
	if reason != game.ReasonForcedSwitch {
		t.Fatalf("expected forced_switch, got %s", reason)
	}
}

func TestInitiative_TieGoesToPreviousLoser(t *testing.T) {
	rng := fixedRand(1 << 62)
	reg := newTestRegistry(rng)
	ic := NewInitiativeCalculator(reg, rng)

	// Identical stats and zero jitter force a tie every round.
	a, b := newTestMecha("a"), newTestMecha("b")

	first1, _, reason := ic.Decide(1, 5000, a, b)
	if reason != game.ReasonCounter {
		t.Fatalf("expected counter reason on a tie, got %s", reason)
	}
	first2, _, _ := ic.Decide(2, 5000, a, b)
	if first1 == first2 {
		t.Fatal("expected ties to alternate the first mover")
	}
}

func TestInitiative_ReasonAttribution(t *testing.T) {
	rng := fixedRand(1 << 62)
	reg := newTestRegistry(rng)

	a, b := newTestMecha("a"), newTestMecha("b")
	// Only the reaction gap exceeds its threshold, so the win is
	// attributed to the pilot.
	a.Pilot.Reaction = 70
	first, _, reason := NewInitiativeCalculator(reg, rng).Decide(1, 5000, a, b)
	if first != a || reason != game.ReasonPilot {
		t.Fatalf("expected pilot reason, got first=%s reason=%s", first.InstanceID, reason)
	}

	a, b = newTestMecha("a"), newTestMecha("b")
	a.CurrentWill = 130 // only the will gap exceeds its threshold
	first, _, reason = NewInitiativeCalculator(reg, rng).Decide(1, 5000, a, b)
	if first != a || reason != game.ReasonAdvantage {
		t.Fatalf("expected advantage reason, got first=%s reason=%s", first.InstanceID, reason)
	}
}

func TestInitiative_CheckHookWins(t *testing.T) {
	rng := fixedRand(1 << 62)
	reg := newTestRegistry(rng)
	ic := NewInitiativeCalculator(reg, rng)

	a, b := newTestMecha("a"), newTestMecha("b")
	a.Mobility = 10 // the hook must beat a losing score

	// The initiative_check hook sees the checked side as the attacker.
	reg.RegisterHook(game.HookInitiativeCheck, func(v game.Value, ctx *BattleContext) game.Value {
		if ctx.Attacker == a {
			return game.Boolean(true)
		}
		return v
	})

	first, _, reason := ic.Decide(1, 5000, a, b)
	if first != a {
		t.Fatal("expected the forced check to win initiative")
	}
	if reason != game.ReasonPerformance {
		t.Fatalf("expected performance reason for a forced check, got %s", reason)
	}
}

func TestInitiative_CheckHookShortCircuits(t *testing.T) {
	rng := fixedRand(1 << 62)
	reg := newTestRegistry(rng)
	ic := NewInitiativeCalculator(reg, rng)

	a, b := newTestMecha("a"), newTestMecha("b")
	b.Mobility = 90 // the score would favor b

	// The hook fires for whichever side is checked; a is checked first
	// and wins before b's check ever runs.
	calls := 0
	reg.RegisterHook(game.HookInitiativeCheck, func(v game.Value, ctx *BattleContext) game.Value {
		calls++
		return game.Boolean(true)
	})

	first, _, reason := ic.Decide(1, 5000, a, b)
	if first != a {
		t.Fatal("expected the first checked side to win when both checks would fire")
	}
	if reason != game.ReasonPerformance {
		t.Fatalf("expected performance reason, got %s", reason)
	}
	if calls != 1 {
		t.Fatalf("expected the second check to be skipped, got %d calls", calls)
	}
}
