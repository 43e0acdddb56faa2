package engine

import "github.com/ericogr/mecha-tactics/internal/game"

// ApplySkills expands the snapshot's catalog skill ids (frame traits,
// pilot skills, equipment skills) into permanent effects. Duplicate ids
// collapse through the snapshot's refresh semantics.
func ApplySkills(m *game.MechaSnapshot, source EffectSource) {
	if source == nil {
		return
	}
	for _, id := range m.Skills {
		for _, e := range source.CreateEffects(id, -1) {
			m.AddEffect(e)
		}
	}
}

// ApplySpiritCommand attaches a spirit command's effects with their
// catalog durations. Spirit commands fire at battle start.
func ApplySpiritCommand(m *game.MechaSnapshot, source EffectSource, id string) {
	if source == nil {
		return
	}
	for _, e := range source.CreateEffects(id, 0) {
		m.AddEffect(e)
	}
}
