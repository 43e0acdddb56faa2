package engine

import (
	"math/rand"

	"github.com/ericogr/mecha-tactics/internal/game"
)

// EffectSource resolves catalog ids into fresh effect instances. The
// catalog package implements it; tests use small fakes.
type EffectSource interface {
	CreateEffects(id string, durationOverride int) []*game.Effect
}

// HookFunc is a legacy hook callback: value in, value out.
type HookFunc func(v game.Value, ctx *BattleContext) game.Value

// CallbackFunc backs effects with operation "callback". The owner is the
// combatant carrying the effect.
type CallbackFunc func(v game.Value, ctx *BattleContext, owner *game.MechaSnapshot) game.Value

// Registry owns hook callbacks, named native callbacks and the effect
// pipeline. Every battle gets its own registry instance; there is no
// package-level registration.
type Registry struct {
	hooks     map[game.Hook][]HookFunc
	callbacks map[string]CallbackFunc
	events    *EventBus
	source    EffectSource
	rng       *rand.Rand
}

// NewRegistry builds a registry around an effect source, an event bus
// and the battle's random stream. source may be nil when apply_effect
// side effects are not used.
func NewRegistry(source EffectSource, events *EventBus, rng *rand.Rand) *Registry {
	if events == nil {
		events = NewEventBus()
	}
	return &Registry{
		hooks:     make(map[game.Hook][]HookFunc),
		callbacks: make(map[string]CallbackFunc),
		events:    events,
		source:    source,
		rng:       rng,
	}
}

// RegisterHook appends a legacy callback for the given hook. Hooks run
// in registration order, before effect processing.
func (r *Registry) RegisterHook(h game.Hook, fn HookFunc) {
	r.hooks[h] = append(r.hooks[h], fn)
}

// RegisterCallback binds a native callback id usable by effects with
// operation "callback".
func (r *Registry) RegisterCallback(id string, fn CallbackFunc) {
	r.callbacks[id] = fn
}

func (r *Registry) Events() *EventBus { return r.events }

// ProcessHook runs the hook pipeline: legacy callbacks first, then the
// effect fold, then caches the scalar result for ref_hook conditions.
// A hook already present MaxHookDepth times in the context stack returns
// its input unchanged, which bounds effect recursion.
func (r *Registry) ProcessHook(h game.Hook, v game.Value, ctx *BattleContext) game.Value {
	if ctx.hookDepth(h) >= MaxHookDepth {
		return v
	}
	ctx.pushHook(h)
	defer ctx.popHook()

	for _, fn := range r.hooks[h] {
		v = fn(v, ctx)
	}
	v = r.processEffects(h, v, ctx)
	ctx.cacheResult(h, v)
	return v
}

// processNumber runs a numeric hook and falls back to the input when the
// pipeline produced a non-numeric value.
func (r *Registry) processNumber(h game.Hook, n float64, ctx *BattleContext) float64 {
	out := r.ProcessHook(h, game.Number(n), ctx)
	if f, ok := out.AsNumber(); ok {
		return f
	}
	return n
}

// processBool runs a boolean hook with the same fallback rule.
func (r *Registry) processBool(h game.Hook, b bool, ctx *BattleContext) bool {
	out := r.ProcessHook(h, game.Boolean(b), ctx)
	if v, ok := out.AsBool(); ok {
		return v
	}
	return b
}
