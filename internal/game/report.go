package game

import "gorm.io/gorm"

// AttackRecord captures a single resolved attack for consumers outside
// the engine (reports, statistics, storage).
type AttackRecord struct {
	Round             int           `json:"round"`
	AttackerID        string        `json:"attacker_id"`
	DefenderID        string        `json:"defender_id"`
	WeaponID          string        `json:"weapon_id"`
	WeaponName        string        `json:"weapon_name,omitempty"`
	Outcome           AttackOutcome `json:"outcome"`
	Damage            int           `json:"damage"`
	Roll              float64       `json:"roll"`
	AttackerWillDelta int           `json:"attacker_will_delta"`
	DefenderWillDelta int           `json:"defender_will_delta"`
	FiredEffectIDs    []string      `json:"fired_effect_ids,omitempty"`
}

// SideState is a per-side HP/EN/will snapshot taken at a round boundary.
type SideState struct {
	InstanceID string `json:"instance_id"`
	HP         int    `json:"hp"`
	EN         int    `json:"en"`
	Will       int    `json:"will"`
}

// RoundSnapshot records the situation at the start of a round, after
// distance and initiative were decided.
type RoundSnapshot struct {
	Round            int              `json:"round"`
	Distance         int              `json:"distance"`
	FirstMoverID     string           `json:"first_mover_id"`
	InitiativeReason InitiativeReason `json:"initiative_reason"`
	SideA            SideState        `json:"side_a"`
	SideB            SideState        `json:"side_b"`
}

// BattleReport is the full outcome of one simulated battle.
type BattleReport struct {
	BattleID  string          `json:"battle_id"`
	Seed      int64           `json:"seed"`
	Rounds    int             `json:"rounds"`
	WinnerID  string          `json:"winner_id,omitempty"`
	EndReason BattleEndReason `json:"end_reason"`
	Attacks   []AttackRecord  `json:"attacks"`
	Snapshots []RoundSnapshot `json:"round_snapshots"`
}

// BattleRecord is the persisted row for a finished battle. The full
// report is stored as a JSON blob; the summary columns exist for listing
// and querying.
type BattleRecord struct {
	gorm.Model
	BattleID   string `json:"battle_id" gorm:"uniqueIndex"`
	Seed       int64  `json:"seed"`
	MechaAID   string `json:"mecha_a_id"`
	PilotAID   string `json:"pilot_a_id"`
	MechaBID   string `json:"mecha_b_id"`
	PilotBID   string `json:"pilot_b_id"`
	Rounds     int    `json:"rounds"`
	WinnerID   string `json:"winner_id"`
	EndReason  string `json:"end_reason"`
	ReportJSON []byte `json:"-" gorm:"column:report_json;type:blob"`
}

func (BattleRecord) TableName() string { return "battle_records" }
