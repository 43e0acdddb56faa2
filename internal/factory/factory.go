package factory

import (
	"github.com/google/uuid"

	"github.com/ericogr/mecha-tactics/internal/game"
)

// Per-level upgrade bonuses applied to the frame before equipment.
const (
	UpgradeHPBonus       = 200
	UpgradeENBonus       = 5
	UpgradeArmorBonus    = 20
	UpgradeMobilityBonus = 2
	UpgradeHitBonus      = 1
)

// Loadout is everything needed to build one side of a battle.
type Loadout struct {
	Mecha        game.MechaDefinition
	Pilot        game.PilotDefinition
	Equipment    []game.EquipmentDefinition
	UpgradeLevel int
}

// BuildSnapshot merges a loadout into a runtime snapshot: upgrade
// bonuses first, then additive equipment modifiers, then weapons and
// skill ids from every source. The snapshot starts at full HP/EN and
// initial will.
func BuildSnapshot(l Loadout) *game.MechaSnapshot {
	m := l.Mecha
	lvl := l.UpgradeLevel
	if lvl < 0 {
		lvl = 0
	}

	s := &game.MechaSnapshot{
		InstanceID:     uuid.NewString(),
		DefinitionID:   m.ID,
		Name:           m.Name,
		MaxHP:          m.MaxHP + UpgradeHPBonus*lvl,
		MaxEN:          m.MaxEN + UpgradeENBonus*lvl,
		Armor:          m.Armor + UpgradeArmorBonus*lvl,
		Mobility:       m.Mobility + UpgradeMobilityBonus*lvl,
		HitBonus:       m.Hit + UpgradeHitBonus*lvl,
		Precision:      m.Precision,
		CritBonus:      m.Crit,
		DodgeBonus:     m.Dodge,
		ParryBonus:     m.Parry,
		BlockBonus:     m.Block,
		BlockReduction: m.BlockReduction,
		CurrentWill:    game.WillInitial,
		Pilot: game.PilotStats{
			Melee:             l.Pilot.Melee,
			Shooting:          l.Pilot.Shooting,
			Awakening:         l.Pilot.Awakening,
			Defense:           l.Pilot.Defense,
			Reaction:          l.Pilot.Reaction,
			WeaponProficiency: l.Pilot.WeaponProficiency,
			MechaProficiency:  l.Pilot.MechaProficiency,
		},
	}

	for _, eq := range l.Equipment {
		applyModifiers(s, eq.StatModifiers)
	}

	s.CurrentHP = s.MaxHP
	s.CurrentEN = s.MaxEN

	for _, w := range m.Weapons {
		s.Weapons = append(s.Weapons, buildWeapon(w))
	}
	for _, eq := range l.Equipment {
		if eq.Weapon != nil {
			s.Weapons = append(s.Weapons, buildWeapon(*eq.Weapon))
		}
	}

	s.Skills = append(s.Skills, m.Traits...)
	s.Skills = append(s.Skills, l.Pilot.Skills...)
	for _, eq := range l.Equipment {
		s.Skills = append(s.Skills, eq.Skills...)
	}
	s.Skills = dedupe(s.Skills)

	return s
}

func buildWeapon(def game.WeaponDefinition) *game.WeaponSnapshot {
	return &game.WeaponSnapshot{
		UID:          uuid.NewString(),
		DefinitionID: def.ID,
		Name:         def.Name,
		Category:     def.Category,
		Power:        def.Power,
		RangeMin:     def.RangeMin,
		RangeMax:     def.RangeMax,
		ENCost:       def.ENCost,
		WillReq:      def.WillReq,
		HitMod:       def.HitMod,
		CritMod:      def.CritMod,
		Tags:         append([]string(nil), def.Tags...),
	}
}

// applyModifiers adds equipment deltas keyed by snapshot stat name.
// Unknown keys are ignored.
func applyModifiers(s *game.MechaSnapshot, mods map[string]int) {
	for key, delta := range mods {
		switch key {
		case "max_hp":
			s.MaxHP += delta
		case "max_en":
			s.MaxEN += delta
		case "armor":
			s.Armor += delta
		case "mobility":
			s.Mobility += delta
		case "hit":
			s.HitBonus += delta
		case "precision":
			s.Precision += delta
		case "crit":
			s.CritBonus += delta
		case "dodge":
			s.DodgeBonus += delta
		case "parry":
			s.ParryBonus += delta
		case "block":
			s.BlockBonus += delta
		case "block_reduction":
			s.BlockReduction += delta
		}
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
