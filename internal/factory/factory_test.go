package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/mecha-tactics/internal/game"
)

func testMechaDef() game.MechaDefinition {
	return game.MechaDefinition{
		ID: "gf-01", Name: "Grappler",
		MaxHP: 4000, MaxEN: 120, Armor: 800, Mobility: 90, Hit: 5,
		Weapons: []game.WeaponDefinition{
			{ID: "beam-saber", Name: "Beam Saber", Category: game.WeaponMelee, Power: 2200, RangeMax: 1000},
		},
		Traits: []string{"auto_repair"},
	}
}

func testPilotDef() game.PilotDefinition {
	return game.PilotDefinition{
		ID: "ace", Name: "Ace",
		Melee: 160, Shooting: 140, Reaction: 150,
		WeaponProficiency: 800, MechaProficiency: 2500,
		Skills: []string{"potential"},
	}
}

func TestBuildSnapshot_Baseline(t *testing.T) {
	s := BuildSnapshot(Loadout{Mecha: testMechaDef(), Pilot: testPilotDef()})

	assert.NotEmpty(t, s.InstanceID)
	assert.Equal(t, "gf-01", s.DefinitionID)
	assert.Equal(t, 4000, s.CurrentHP)
	assert.Equal(t, 120, s.CurrentEN)
	assert.Equal(t, game.WillInitial, s.CurrentWill)
	assert.Equal(t, 160, s.Pilot.Melee)
	require.Len(t, s.Weapons, 1)
	assert.Equal(t, "beam-saber", s.Weapons[0].DefinitionID)
	assert.NotEmpty(t, s.Weapons[0].UID)
	assert.Equal(t, []string{"auto_repair", "potential"}, s.Skills)
}

func TestBuildSnapshot_Upgrades(t *testing.T) {
	s := BuildSnapshot(Loadout{Mecha: testMechaDef(), Pilot: testPilotDef(), UpgradeLevel: 3})

	assert.Equal(t, 4000+3*UpgradeHPBonus, s.MaxHP)
	assert.Equal(t, 120+3*UpgradeENBonus, s.MaxEN)
	assert.Equal(t, 800+3*UpgradeArmorBonus, s.Armor)
	assert.Equal(t, 90+3*UpgradeMobilityBonus, s.Mobility)
	assert.Equal(t, 5+3*UpgradeHitBonus, s.HitBonus)
	// Snapshots always start topped up.
	assert.Equal(t, s.MaxHP, s.CurrentHP)
	assert.Equal(t, s.MaxEN, s.CurrentEN)
}

func TestBuildSnapshot_NegativeLevelIgnored(t *testing.T) {
	s := BuildSnapshot(Loadout{Mecha: testMechaDef(), Pilot: testPilotDef(), UpgradeLevel: -2})
	assert.Equal(t, 4000, s.MaxHP)
}

func TestBuildSnapshot_Equipment(t *testing.T) {
	eq := game.EquipmentDefinition{
		ID: "booster", Name: "Booster",
		StatModifiers: map[string]int{"mobility": 20, "max_en": 30, "warp_factor": 9},
		Weapon:        &game.WeaponDefinition{ID: "missile-pod", Name: "Missile Pod", Category: game.WeaponShooting, Power: 1500, RangeMin: 2000, RangeMax: 9000},
		Skills:        []string{"quick_reload", "potential"},
	}
	s := BuildSnapshot(Loadout{Mecha: testMechaDef(), Pilot: testPilotDef(), Equipment: []game.EquipmentDefinition{eq}})

	assert.Equal(t, 110, s.Mobility)
	assert.Equal(t, 150, s.MaxEN)
	assert.Equal(t, 150, s.CurrentEN, "equipment EN applies before topping up")
	require.Len(t, s.Weapons, 2)
	assert.Equal(t, "missile-pod", s.Weapons[1].DefinitionID)
	// Unknown modifier keys are ignored, duplicate skill ids collapse.
	assert.Equal(t, []string{"auto_repair", "potential", "quick_reload"}, s.Skills)
}
