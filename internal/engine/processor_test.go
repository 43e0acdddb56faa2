package engine

import (
	"testing"

	"github.com/ericogr/mecha-tactics/internal/game"
)

const testHook game.Hook = "pre_damage_mult"

func TestProcessEffects_OrderAndFold(t *testing.T) {
	reg := newTestRegistry(fixedRand(1 << 62))
	att, def := newTestMecha("att"), newTestMecha("def")

	// Registered out of order on purpose; (priority, sub_priority, id)
	// must decide execution order. add-then-mul and mul-then-add differ.
	att.Effects = []*game.Effect{
		{ID: "mul", Hook: testHook, Operation: game.OpMul, Value: game.Number(2), Priority: 60, SubPriority: 500, TriggerChance: 1, Duration: -1, Charges: -1},
		{ID: "add", Hook: testHook, Operation: game.OpAdd, Value: game.Number(3), Priority: 40, SubPriority: 500, TriggerChance: 1, Duration: -1, Charges: -1},
	}

	ctx := NewBattleContext(1, 5000, att, def)
	out := reg.ProcessHook(testHook, game.Number(1), ctx)

	got, ok := out.AsNumber()
	if !ok || got != 8 {
		t.Fatalf("expected (1+3)*2 = 8, got %+v", out)
	}
}

func TestProcessEffects_TieBreaksOnSubPriorityThenID(t *testing.T) {
	reg := newTestRegistry(fixedRand(1 << 62))
	att, def := newTestMecha("att"), newTestMecha("def")

	att.Effects = []*game.Effect{
		{ID: "b-set", Hook: testHook, Operation: game.OpSet, Value: game.Number(7), Priority: 50, SubPriority: 500, TriggerChance: 1, Duration: -1, Charges: -1},
		{ID: "a-set", Hook: testHook, Operation: game.OpSet, Value: game.Number(3), Priority: 50, SubPriority: 500, TriggerChance: 1, Duration: -1, Charges: -1},
	}

	ctx := NewBattleContext(1, 5000, att, def)
	out := reg.ProcessHook(testHook, game.Number(0), ctx)

	// "a-set" runs first, "b-set" wins.
	if got, _ := out.AsNumber(); got != 7 {
		t.Fatalf("expected id tie-break to leave 7, got %v", got)
	}
}

func TestProcessEffects_ChargesExhaust(t *testing.T) {
	reg := newTestRegistry(fixedRand(1 << 62))
	att, def := newTestMecha("att"), newTestMecha("def")

	e := &game.Effect{ID: "one-shot", Hook: testHook, Operation: game.OpAdd, Value: game.Number(10), Priority: 50, SubPriority: 500, TriggerChance: 1, Duration: 3, Charges: 1}
	att.Effects = []*game.Effect{e}

	var notes []string
	reg.Events().Subscribe(func(ev TriggerEvent) { notes = append(notes, ev.Note) })

	ctx := NewBattleContext(1, 5000, att, def)
	out := reg.ProcessHook(testHook, game.Number(1), ctx)
	if got, _ := out.AsNumber(); got != 11 {
		t.Fatalf("expected first firing to add 10, got %v", got)
	}
	if e.Charges != 0 || e.Duration != 0 {
		t.Fatalf("expected effect spent after last charge, got charges=%d duration=%d", e.Charges, e.Duration)
	}
	if len(notes) != 2 || notes[1] != "exhausted" {
		t.Fatalf("expected trigger then exhausted events, got %v", notes)
	}

	// Spent effects are inert but stay attached.
	out = reg.ProcessHook(testHook, game.Number(1), NewBattleContext(1, 5000, att, def))
	if got, _ := out.AsNumber(); got != 1 {
		t.Fatalf("expected spent effect to be inert, got %v", got)
	}
}

func TestProcessEffects_TriggerChanceGate(t *testing.T) {
	// Fixed rand yields 0.5 on every draw.
	reg := newTestRegistry(fixedRand(1 << 62))
	att, def := newTestMecha("att"), newTestMecha("def")

	att.Effects = []*game.Effect{
		{ID: "lucky", Hook: testHook, Operation: game.OpAdd, Value: game.Number(1), Priority: 40, SubPriority: 500, TriggerChance: 0.6, Duration: -1, Charges: -1},
		{ID: "unlucky", Hook: testHook, Operation: game.OpAdd, Value: game.Number(100), Priority: 50, SubPriority: 500, TriggerChance: 0.4, Duration: -1, Charges: -1},
	}

	var failed []string
	reg.Events().Subscribe(func(ev TriggerEvent) {
		if ev.Note == "chance roll failed" {
			failed = append(failed, ev.EffectID)
		}
	})

	ctx := NewBattleContext(1, 5000, att, def)
	out := reg.ProcessHook(testHook, game.Number(0), ctx)

	if got, _ := out.AsNumber(); got != 1 {
		t.Fatalf("expected only the 0.6 chance effect to fire, got %v", got)
	}
	if len(failed) != 1 || failed[0] != "unlucky" {
		t.Fatalf("expected a failed chance event for 'unlucky', got %v", failed)
	}
}

func TestApplyOperation_NoOps(t *testing.T) {
	reg := newTestRegistry(fixedRand(1 << 62))
	att, def := newTestMecha("att"), newTestMecha("def")
	ctx := NewBattleContext(1, 5000, att, def)

	cases := []struct {
		name string
		e    game.Effect
	}{
		{"unknown op", game.Effect{Operation: "explode", Value: game.Number(1)}},
		{"div by zero", game.Effect{Operation: game.OpDiv, Value: game.Number(0)}},
		{"type mismatch", game.Effect{Operation: game.OpAdd, Value: game.String("three")}},
		{"bool op on number", game.Effect{Operation: game.OpAnd, Value: game.Boolean(true)}},
		{"missing callback", game.Effect{Operation: game.OpCallback, Value: game.String("cb_nope")}},
	}
	for _, tc := range cases {
		out, _ := reg.applyOperation(&tc.e, game.Number(5), ctx, att)
		if got, _ := out.AsNumber(); got != 5 {
			t.Fatalf("%s: expected value untouched, got %+v", tc.name, out)
		}
	}
}

func TestApplyOperation_SetChangesType(t *testing.T) {
	reg := newTestRegistry(fixedRand(1 << 62))
	att, def := newTestMecha("att"), newTestMecha("def")
	ctx := NewBattleContext(1, 5000, att, def)

	e := &game.Effect{Operation: game.OpSet, Value: game.String("crit")}
	out, _ := reg.applyOperation(e, game.Number(5), ctx, att)
	if s, ok := out.AsString(); !ok || s != "crit" {
		t.Fatalf("expected set to adopt the operand including its type, got %+v", out)
	}
}

func TestApplyOperation_MinMax(t *testing.T) {
	reg := newTestRegistry(fixedRand(1 << 62))
	att, def := newTestMecha("att"), newTestMecha("def")
	ctx := NewBattleContext(1, 5000, att, def)

	e := &game.Effect{Operation: game.OpMin, Value: game.Number(3)}
	out, _ := reg.applyOperation(e, game.Number(5), ctx, att)
	if got, _ := out.AsNumber(); got != 3 {
		t.Fatalf("expected min to lower 5 to 3, got %v", got)
	}

	e = &game.Effect{Operation: game.OpMax, Value: game.Number(10)}
	out, _ = reg.applyOperation(e, game.Number(5), ctx, att)
	if got, _ := out.AsNumber(); got != 10 {
		t.Fatalf("expected max to raise 5 to 10, got %v", got)
	}
}

func TestProcessHook_RecursionGuard(t *testing.T) {
	reg := newTestRegistry(fixedRand(1 << 62))
	att, def := newTestMecha("att"), newTestMecha("def")
	ctx := NewBattleContext(1, 5000, att, def)

	calls := 0
	reg.RegisterHook(testHook, func(v game.Value, ctx *BattleContext) game.Value {
		calls++
		return reg.ProcessHook(testHook, v, ctx)
	})

	reg.ProcessHook(testHook, game.Number(1), ctx)
	if calls != MaxHookDepth {
		t.Fatalf("expected recursion to stop after %d nested calls, got %d", MaxHookDepth, calls)
	}
}

func TestProcessHook_CachesScalarResults(t *testing.T) {
	reg := newTestRegistry(fixedRand(1 << 62))
	att, def := newTestMecha("att"), newTestMecha("def")
	ctx := NewBattleContext(1, 5000, att, def)

	reg.ProcessHook(game.HookPreDodgeRate, game.Number(42), ctx)
	cached, ok := ctx.CachedResult(game.HookPreDodgeRate)
	if !ok {
		t.Fatal("expected the hook result to be cached on the context")
	}
	if got, _ := cached.AsNumber(); got != 42 {
		t.Fatalf("expected cached value 42, got %v", got)
	}
}

func TestSideEffects_RunOnTrigger(t *testing.T) {
	src := &fakeSource{effects: map[string][]*game.Effect{
		"burn": {{ID: "burn-dot", Hook: game.HookOnTurnEnd, Operation: game.OpAdd, Value: game.Number(1), Priority: 50, SubPriority: 500, TriggerChance: 1, Duration: 2, Charges: -1}},
	}}
	reg := NewRegistry(src, NewEventBus(), fixedRand(1<<62))
	att, def := newTestMecha("att"), newTestMecha("def")

	att.Effects = []*game.Effect{{
		ID: "igniter", Hook: testHook, Operation: game.OpAdd, Value: game.Number(1),
		Priority: 50, SubPriority: 500, TriggerChance: 1, Duration: -1, Charges: -1,
		SideEffects: []game.SideEffect{
			{Type: game.SideConsumeEN, Target: game.TargetEnemy, Amount: 10},
			{Type: game.SideModifyWill, Target: game.TargetSelf, Amount: 5},
			{Type: game.SideApplyEffect, Target: game.TargetEnemy, EffectID: "burn", Duration: 3},
		},
	}}

	ctx := NewBattleContext(1, 5000, att, def)
	reg.ProcessHook(testHook, game.Number(0), ctx)

	if def.CurrentEN != 90 {
		t.Fatalf("expected enemy EN drained to 90, got %d", def.CurrentEN)
	}
	if att.CurrentWill != 105 {
		t.Fatalf("expected owner will raised to 105, got %d", att.CurrentWill)
	}
	if len(def.Effects) != 1 || def.Effects[0].ID != "burn-dot" {
		t.Fatalf("expected burn-dot applied to the enemy, got %+v", def.Effects)
	}
	if def.Effects[0].Duration != 3 {
		t.Fatalf("expected the side effect duration override, got %d", def.Effects[0].Duration)
	}
}
