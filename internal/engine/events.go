package engine

import "github.com/ericogr/mecha-tactics/internal/game"

// TriggerEvent describes one effect evaluation. Events are emitted both
// when an effect fires and when a trigger-chance gate fails, so external
// consumers can compute reliability statistics.
type TriggerEvent struct {
	EffectID   string     `json:"effect_id"`
	EffectName string     `json:"effect_name,omitempty"`
	OwnerID    string     `json:"owner_id"`
	Hook       game.Hook  `json:"hook"`
	Before     game.Value `json:"before"`
	After      game.Value `json:"after"`
	Chance     float64    `json:"chance"`
	Triggered  bool       `json:"triggered"`
	Note       string     `json:"note,omitempty"`
}

// EffectUsage aggregates attempts and successes for one effect id.
type EffectUsage struct {
	Attempts  int `json:"attempts"`
	Successes int `json:"successes"`
}

// EventBus distributes trigger events to subscribers and buffers them
// per attack. Each battle owns its own bus.
type EventBus struct {
	subscribers []func(TriggerEvent)
	buffer      []TriggerEvent
	buffering   bool
	usage       map[string]*EffectUsage
}

func NewEventBus() *EventBus {
	return &EventBus{usage: make(map[string]*EffectUsage)}
}

// Subscribe registers a callback invoked for every published event.
func (b *EventBus) Subscribe(fn func(TriggerEvent)) {
	b.subscribers = append(b.subscribers, fn)
}

// BeginAttack starts buffering events for the current attack.
func (b *EventBus) BeginAttack() {
	b.buffering = true
	b.buffer = b.buffer[:0]
}

// EndAttack stops buffering and returns the events captured since
// BeginAttack.
func (b *EventBus) EndAttack() []TriggerEvent {
	b.buffering = false
	out := make([]TriggerEvent, len(b.buffer))
	copy(out, b.buffer)
	b.buffer = b.buffer[:0]
	return out
}

// Publish records usage statistics and forwards the event.
func (b *EventBus) Publish(ev TriggerEvent) {
	u := b.usage[ev.EffectID]
	if u == nil {
		u = &EffectUsage{}
		b.usage[ev.EffectID] = u
	}
	u.Attempts++
	if ev.Triggered {
		u.Successes++
	}
	if b.buffering {
		b.buffer = append(b.buffer, ev)
	}
	for _, fn := range b.subscribers {
		fn(ev)
	}
}

// Usage returns a copy of the per-effect usage counters.
func (b *EventBus) Usage() map[string]EffectUsage {
	out := make(map[string]EffectUsage, len(b.usage))
	for id, u := range b.usage {
		out[id] = *u
	}
	return out
}
