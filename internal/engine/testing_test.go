package engine

import (
	"math/rand"

	"github.com/ericogr/mecha-tactics/internal/game"
)

// fixedSource always returns the same raw value, which makes
// rand.Float64 deterministic without depending on the generator's
// internals. 1<<62 yields Float64() == 0.5, i.e. a roll of 50.
type fixedSource struct{ v int64 }

func (s *fixedSource) Int63() int64 { return s.v }
func (s *fixedSource) Seed(int64)   {}

func fixedRand(v int64) *rand.Rand {
	return rand.New(&fixedSource{v: v})
}

// fakeSource is a minimal EffectSource for tests that exercise
// apply_effect side effects.
type fakeSource struct {
	effects map[string][]*game.Effect
}

func (f *fakeSource) CreateEffects(id string, durationOverride int) []*game.Effect {
	var out []*game.Effect
	for _, e := range f.effects[id] {
		cp := *e
		if durationOverride != 0 && cp.Duration != -1 {
			cp.Duration = durationOverride
		}
		out = append(out, &cp)
	}
	return out
}

func newTestMecha(id string) *game.MechaSnapshot {
	return &game.MechaSnapshot{
		InstanceID:   id,
		DefinitionID: id,
		Name:         id,
		MaxHP:        1000,
		CurrentHP:    1000,
		MaxEN:        100,
		CurrentEN:    100,
		CurrentWill:  game.WillInitial,
		Armor:        100,
		Mobility:     50,
		Pilot: game.PilotStats{
			Melee:             50,
			Shooting:          40,
			Awakening:         30,
			Defense:           40,
			Reaction:          50,
			WeaponProficiency: 1000,
			MechaProficiency:  4000,
		},
		Weapons: []*game.WeaponSnapshot{
			{
				UID:          id + "-w1",
				DefinitionID: "test-blade",
				Name:         "Test Blade",
				Category:     game.WeaponMelee,
				Power:        100,
				RangeMin:     0,
				RangeMax:     10000,
			},
		},
	}
}

func newTestRegistry(rng *rand.Rand) *Registry {
	return NewRegistry(nil, NewEventBus(), rng)
}
