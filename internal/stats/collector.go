package stats

import (
	"github.com/ericogr/mecha-tactics/internal/engine"
	"github.com/ericogr/mecha-tactics/internal/game"
)

// SideStats aggregates one combatant's performance over a battle.
type SideStats struct {
	InstanceID  string                     `json:"instance_id"`
	Attacks     int                        `json:"attacks"`
	Outcomes    map[game.AttackOutcome]int `json:"outcomes"`
	DamageDealt int                        `json:"damage_dealt"`
	BiggestHit  int                        `json:"biggest_hit"`
	DamageTaken int                        `json:"damage_taken"`
	WillGained  int                        `json:"will_gained"`
}

// BattleStatistics is the aggregate view of one finished battle.
type BattleStatistics struct {
	BattleID    string                        `json:"battle_id"`
	Rounds      int                           `json:"rounds"`
	WinnerID    string                        `json:"winner_id,omitempty"`
	EndReason   game.BattleEndReason          `json:"end_reason"`
	Sides       map[string]*SideStats         `json:"sides"`
	EffectUsage map[string]engine.EffectUsage `json:"effect_usage,omitempty"`
}

// Collector builds battle statistics from attack records and effect
// usage counters. Attach it to the battle's event bus before running,
// then feed it the finished report.
type Collector struct {
	bus *engine.EventBus
}

func NewCollector() *Collector {
	return &Collector{}
}

// Attach remembers the bus whose usage counters should appear in the
// final statistics.
func (c *Collector) Attach(bus *engine.EventBus) {
	c.bus = bus
}

// Observe folds a finished report into statistics.
func (c *Collector) Observe(report *game.BattleReport) *BattleStatistics {
	out := &BattleStatistics{
		BattleID:  report.BattleID,
		Rounds:    report.Rounds,
		WinnerID:  report.WinnerID,
		EndReason: report.EndReason,
		Sides:     make(map[string]*SideStats),
	}

	side := func(id string) *SideStats {
		s := out.Sides[id]
		if s == nil {
			s = &SideStats{InstanceID: id, Outcomes: make(map[game.AttackOutcome]int)}
			out.Sides[id] = s
		}
		return s
	}

	for _, rec := range report.Attacks {
		att := side(rec.AttackerID)
		def := side(rec.DefenderID)

		att.Attacks++
		att.Outcomes[rec.Outcome]++
		att.DamageDealt += rec.Damage
		if rec.Damage > att.BiggestHit {
			att.BiggestHit = rec.Damage
		}
		def.DamageTaken += rec.Damage
		att.WillGained += rec.AttackerWillDelta
		def.WillGained += rec.DefenderWillDelta
	}

	if c.bus != nil {
		out.EffectUsage = c.bus.Usage()
	}
	return out
}
