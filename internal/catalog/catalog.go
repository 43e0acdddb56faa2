package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ericogr/mecha-tactics/internal/game"
)

// EffectSpec is the data shape of one effect inside a skill definition.
// Zero values for priority, sub-priority, trigger chance, duration and
// charges mean "use the default" (50, 500, 1.0, 1 round, unlimited).
type EffectSpec struct {
	ID            string              `json:"id"`
	Name          string              `json:"name,omitempty"`
	Hook          game.Hook           `json:"hook"`
	Operation     game.Operation      `json:"operation"`
	Value         game.Value          `json:"value"`
	Priority      int                 `json:"priority,omitempty"`
	SubPriority   int                 `json:"sub_priority,omitempty"`
	TriggerChance float64             `json:"trigger_chance,omitempty"`
	Target        game.TargetSelector `json:"target,omitempty"`
	Duration      int                 `json:"duration,omitempty"`
	Charges       int                 `json:"charges,omitempty"`
	Conditions    []game.Condition    `json:"conditions,omitempty"`
	SideEffects   []game.SideEffect   `json:"side_effects,omitempty"`
}

// SkillDef groups the effects granted by one skill, trait or spirit
// command.
type SkillDef struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Effects     []EffectSpec `json:"effects"`
}

// Catalog resolves skill ids into effect instances.
type Catalog struct {
	skills map[string]SkillDef
	order  []string
}

// New builds a catalog from definitions, applying spec defaults and
// rejecting duplicate skill or effect ids.
func New(defs []SkillDef) (*Catalog, error) {
	c := &Catalog{skills: make(map[string]SkillDef, len(defs))}
	effectIDs := make(map[string]string)
	for _, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("catalog: skill with empty id")
		}
		if _, exists := c.skills[def.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate skill id %q", def.ID)
		}
		for i := range def.Effects {
			spec := &def.Effects[i]
			if spec.ID == "" {
				return nil, fmt.Errorf("catalog: skill %q has an effect with empty id", def.ID)
			}
			if owner, exists := effectIDs[spec.ID]; exists && owner != def.ID {
				return nil, fmt.Errorf("catalog: effect id %q used by both %q and %q", spec.ID, owner, def.ID)
			}
			effectIDs[spec.ID] = def.ID
			applyDefaults(spec)
		}
		c.skills[def.ID] = def
		c.order = append(c.order, def.ID)
	}
	return c, nil
}

func applyDefaults(spec *EffectSpec) {
	if spec.Priority == 0 {
		spec.Priority = 50
	}
	if spec.SubPriority == 0 {
		spec.SubPriority = 500
	}
	if spec.TriggerChance == 0 {
		spec.TriggerChance = 1.0
	}
	if spec.Target == "" {
		spec.Target = game.TargetSelf
	}
	if spec.Duration == 0 {
		spec.Duration = 1
	}
	if spec.Charges == 0 {
		spec.Charges = -1
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultSkills())
	if err != nil {
		// The built-in data is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return c
}

// File is the on-disk shape of a skill catalog document.
type File struct {
	Skills []SkillDef `json:"skills"`
}

// Load reads extra skill definitions from a JSON file and merges them
// over the built-in catalog. File entries replace built-ins with the
// same id.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill catalog %s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("failed to parse skill catalog %s: %w", path, err)
	}

	merged := make([]SkillDef, 0, len(defaultSkills())+len(f.Skills))
	overridden := make(map[string]struct{}, len(f.Skills))
	for _, def := range f.Skills {
		overridden[def.ID] = struct{}{}
	}
	for _, def := range defaultSkills() {
		if _, ok := overridden[def.ID]; ok {
			continue
		}
		merged = append(merged, def)
	}
	merged = append(merged, f.Skills...)
	return New(merged)
}

// Skill returns one definition by id.
func (c *Catalog) Skill(id string) (SkillDef, bool) {
	def, ok := c.skills[id]
	return def, ok
}

// Skills lists all definitions in registration order.
func (c *Catalog) Skills() []SkillDef {
	out := make([]SkillDef, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.skills[id])
	}
	return out
}

// CreateEffects instantiates the effects of a skill. Each call returns
// fresh instances so charges and durations are never shared between
// combatants. A non-zero durationOverride replaces the defined duration
// except for permanent (-1) effects. Unknown ids yield nothing.
func (c *Catalog) CreateEffects(id string, durationOverride int) []*game.Effect {
	def, ok := c.skills[id]
	if !ok {
		return nil
	}
	out := make([]*game.Effect, 0, len(def.Effects))
	for _, spec := range def.Effects {
		duration := spec.Duration
		if durationOverride != 0 && duration != -1 {
			duration = durationOverride
		}
		name := spec.Name
		if name == "" {
			name = def.Name
		}
		e := &game.Effect{
			ID:            spec.ID,
			Name:          name,
			SourceID:      def.ID,
			Hook:          spec.Hook,
			Operation:     spec.Operation,
			Value:         spec.Value,
			Priority:      spec.Priority,
			SubPriority:   spec.SubPriority,
			TriggerChance: spec.TriggerChance,
			Target:        spec.Target,
			Duration:      duration,
			Charges:       spec.Charges,
			Conditions:    append([]game.Condition(nil), spec.Conditions...),
			SideEffects:   append([]game.SideEffect(nil), spec.SideEffects...),
		}
		out = append(out, e)
	}
	return out
}
