package game

// Will bounds. Will starts at 100 and is clamped on every change; the
// extended max exists for effects that explicitly raise the ceiling.
const (
	WillInitial     = 100
	WillMin         = 50
	WillMax         = 150
	WillExtendedMax = 200
)

// WeaponUnusable is the sentinel distance modifier meaning the weapon
// cannot be used at all for the current attack.
const WeaponUnusable = -999

// PilotStats is a read-only backup of pilot attributes taken when the
// snapshot is built. Effects and conditions read from it; nothing in the
// combat pipeline writes to it.
type PilotStats struct {
	Melee             int `json:"stat_melee"`
	Shooting          int `json:"stat_shooting"`
	Awakening         int `json:"stat_awakening"`
	Defense           int `json:"stat_defense"`
	Reaction          int `json:"stat_reaction"`
	WeaponProficiency int `json:"weapon_proficiency"`
	MechaProficiency  int `json:"mecha_proficiency"`
}

// Stat returns a pilot attribute by its config name.
func (p PilotStats) Stat(name string) (int, bool) {
	switch name {
	case "stat_melee":
		return p.Melee, true
	case "stat_shooting":
		return p.Shooting, true
	case "stat_awakening":
		return p.Awakening, true
	case "stat_defense":
		return p.Defense, true
	case "stat_reaction":
		return p.Reaction, true
	case "weapon_proficiency":
		return p.WeaponProficiency, true
	case "mecha_proficiency":
		return p.MechaProficiency, true
	}
	return 0, false
}

// WeaponSnapshot is a weapon as it exists for one battle, with all
// equipment and upgrade bonuses already folded in.
type WeaponSnapshot struct {
	UID          string         `json:"uid"`
	DefinitionID string         `json:"definition_id"`
	Name         string         `json:"name"`
	Category     WeaponCategory `json:"category"`
	Power        int            `json:"power"`
	RangeMin     int            `json:"range_min"`
	RangeMax     int            `json:"range_max"`
	ENCost       int            `json:"en_cost"`
	WillReq      int            `json:"will_req"`
	HitMod       int            `json:"hit_mod"`
	CritMod      int            `json:"crit_mod"`
	Tags         []string       `json:"tags,omitempty"`
}

// InRange reports whether the weapon reaches the given distance.
func (w *WeaponSnapshot) InRange(distance int) bool {
	return distance >= w.RangeMin && distance <= w.RangeMax
}

// HitModAt returns the weapon's hit modifier at the given distance, or
// WeaponUnusable when out of range.
func (w *WeaponSnapshot) HitModAt(distance int) int {
	if !w.InRange(distance) {
		return WeaponUnusable
	}
	return w.HitMod
}

// MechaSnapshot is one side of a battle: the merged result of mecha,
// pilot and equipment configuration plus all mutable combat state.
type MechaSnapshot struct {
	InstanceID   string `json:"instance_id"`
	DefinitionID string `json:"definition_id"`
	Name         string `json:"name"`

	MaxHP     int `json:"max_hp"`
	CurrentHP int `json:"current_hp"`
	MaxEN     int `json:"max_en"`
	CurrentEN int `json:"current_en"`

	// CurrentWill starts at WillInitial and is clamped to
	// [WillMin, WillMax] on every change.
	CurrentWill int `json:"current_will"`

	Armor          int `json:"armor"`
	Mobility       int `json:"mobility"`
	HitBonus       int `json:"hit"`
	Precision      int `json:"precision"`
	CritBonus      int `json:"crit"`
	DodgeBonus     int `json:"dodge"`
	ParryBonus     int `json:"parry"`
	BlockBonus     int `json:"block"`
	BlockReduction int `json:"block_reduction"`

	Pilot   PilotStats        `json:"pilot"`
	Weapons []*WeaponSnapshot `json:"weapons"`
	// Skills lists catalog ids to be expanded into permanent effects
	// before the battle starts.
	Skills  []string  `json:"skills,omitempty"`
	Effects []*Effect `json:"effects,omitempty"`
}

func (m *MechaSnapshot) IsAlive() bool { return m.CurrentHP > 0 }

// HPRatio returns current HP as a fraction of max HP.
func (m *MechaSnapshot) HPRatio() float64 {
	if m.MaxHP <= 0 {
		return 0
	}
	return float64(m.CurrentHP) / float64(m.MaxHP)
}

// TakeDamage reduces HP, flooring at zero.
func (m *MechaSnapshot) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	m.CurrentHP -= amount
	if m.CurrentHP < 0 {
		m.CurrentHP = 0
	}
}

// Heal restores HP up to max.
func (m *MechaSnapshot) Heal(amount int) {
	if amount <= 0 {
		return
	}
	m.CurrentHP += amount
	if m.CurrentHP > m.MaxHP {
		m.CurrentHP = m.MaxHP
	}
}

// ConsumeEN drains energy, flooring at zero.
func (m *MechaSnapshot) ConsumeEN(amount int) {
	if amount <= 0 {
		return
	}
	m.CurrentEN -= amount
	if m.CurrentEN < 0 {
		m.CurrentEN = 0
	}
}

// RestoreEN recovers energy up to max.
func (m *MechaSnapshot) RestoreEN(amount int) {
	if amount <= 0 {
		return
	}
	m.CurrentEN += amount
	if m.CurrentEN > m.MaxEN {
		m.CurrentEN = m.MaxEN
	}
}

// ModifyWill adjusts will and clamps it to the standard bounds.
func (m *MechaSnapshot) ModifyWill(delta int) {
	m.CurrentWill += delta
	if m.CurrentWill < WillMin {
		m.CurrentWill = WillMin
	}
	if m.CurrentWill > WillMax {
		m.CurrentWill = WillMax
	}
}

// AddEffect attaches an effect. If an effect with the same id is already
// present its duration is refreshed to the longer of the two instead of
// stacking a duplicate (-1 always wins as permanent).
func (m *MechaSnapshot) AddEffect(e *Effect) {
	for _, existing := range m.Effects {
		if existing.ID != e.ID {
			continue
		}
		if existing.Duration == -1 || e.Duration == -1 {
			existing.Duration = -1
		} else if e.Duration > existing.Duration {
			existing.Duration = e.Duration
		}
		return
	}
	m.Effects = append(m.Effects, e)
}

// TickEffects advances effect durations by one round and drops the ones
// that expired or ran out of charges. Permanent effects (duration -1)
// are never touched.
func (m *MechaSnapshot) TickEffects() {
	kept := m.Effects[:0]
	for _, e := range m.Effects {
		if e.Duration > 0 {
			e.Duration--
		}
		if e.Duration == 0 || e.Charges == 0 {
			continue
		}
		kept = append(kept, e)
	}
	m.Effects = kept
}
