package game

// Definitions are the static configuration shapes loaded from the config
// file. Snapshots are built from them at battle start; the battle never
// mutates a definition.

type WeaponDefinition struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category WeaponCategory `json:"category"`
	Power    int            `json:"power"`
	RangeMin int            `json:"range_min"`
	RangeMax int            `json:"range_max"`
	ENCost   int            `json:"en_cost"`
	WillReq  int            `json:"will_req"`
	HitMod   int            `json:"hit_mod"`
	CritMod  int            `json:"crit_mod"`
	Tags     []string       `json:"tags,omitempty"`
}

type MechaDefinition struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	MaxHP          int                `json:"max_hp"`
	MaxEN          int                `json:"max_en"`
	Armor          int                `json:"armor"`
	Mobility       int                `json:"mobility"`
	Hit            int                `json:"hit"`
	Precision      int                `json:"precision"`
	Crit           int                `json:"crit"`
	Dodge          int                `json:"dodge"`
	Parry          int                `json:"parry"`
	Block          int                `json:"block"`
	BlockReduction int                `json:"block_reduction"`
	Weapons        []WeaponDefinition `json:"weapons"`
	// Traits are catalog skill ids innate to the frame, applied as
	// permanent effects.
	Traits []string `json:"traits,omitempty"`
}

type PilotDefinition struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Melee             int      `json:"stat_melee"`
	Shooting          int      `json:"stat_shooting"`
	Awakening         int      `json:"stat_awakening"`
	Defense           int      `json:"stat_defense"`
	Reaction          int      `json:"stat_reaction"`
	WeaponProficiency int      `json:"weapon_proficiency"`
	MechaProficiency  int      `json:"mecha_proficiency"`
	Skills            []string `json:"skills,omitempty"`
	// Spirits lists the spirit commands the pilot may fire at battle
	// start.
	Spirits []string `json:"spirits,omitempty"`
}

type EquipmentDefinition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// StatModifiers are additive deltas keyed by snapshot stat name
	// (max_hp, max_en, armor, mobility, hit, precision, crit, dodge,
	// parry, block, block_reduction).
	StatModifiers map[string]int `json:"stat_modifiers,omitempty"`
	// Weapon, when present, adds an extra weapon to the loadout.
	Weapon *WeaponDefinition `json:"weapon,omitempty"`
	Skills []string          `json:"skills,omitempty"`
}
