package game

// WeaponCategory classifies how a weapon deals damage and which pilot
// attribute backs it up.
type WeaponCategory string

const (
	WeaponMelee     WeaponCategory = "melee"
	WeaponShooting  WeaponCategory = "shooting"
	WeaponAwakening WeaponCategory = "awakening"
	WeaponSpecial   WeaponCategory = "special"
	WeaponFallback  WeaponCategory = "fallback"
)

// AttackOutcome is one of the six segments of the attack table.
type AttackOutcome string

const (
	OutcomeMiss  AttackOutcome = "miss"
	OutcomeDodge AttackOutcome = "dodge"
	OutcomeParry AttackOutcome = "parry"
	OutcomeBlock AttackOutcome = "block"
	OutcomeCrit  AttackOutcome = "crit"
	OutcomeHit   AttackOutcome = "hit"
)

// ParseOutcome maps an outcome name to its enum value. Unknown names
// return false so hook payloads can be ignored safely.
func ParseOutcome(s string) (AttackOutcome, bool) {
	switch AttackOutcome(s) {
	case OutcomeMiss, OutcomeDodge, OutcomeParry, OutcomeBlock, OutcomeCrit, OutcomeHit:
		return AttackOutcome(s), true
	}
	return "", false
}

// InitiativeReason explains why a combatant moved first in a round.
type InitiativeReason string

const (
	ReasonPerformance  InitiativeReason = "performance"
	ReasonPilot        InitiativeReason = "pilot"
	ReasonAdvantage    InitiativeReason = "advantage"
	ReasonCounter      InitiativeReason = "counter"
	ReasonForcedSwitch InitiativeReason = "forced_switch"
)

// Operation is the transformation an effect applies to a hook value.
// Unknown operations leave the value untouched.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSub      Operation = "sub"
	OpMul      Operation = "mul"
	OpDiv      Operation = "div"
	OpSet      Operation = "set"
	OpMin      Operation = "min"
	OpMax      Operation = "max"
	OpAnd      Operation = "and"
	OpOr       Operation = "or"
	OpNot      Operation = "not"
	OpCallback Operation = "callback"
)

// ConditionType selects the predicate evaluated before an effect fires.
// Unknown types evaluate to false.
type ConditionType string

const (
	CondHPThreshold        ConditionType = "hp_threshold"
	CondWillThreshold      ConditionType = "will_threshold"
	CondRoundNumber        ConditionType = "round_number"
	CondAttackResult       ConditionType = "attack_result"
	CondEnemyWillThreshold ConditionType = "enemy_will_threshold"
	CondEnemyStatCheck     ConditionType = "enemy_stat_check"
	CondRefHook            ConditionType = "ref_hook"
	CondWeaponType         ConditionType = "weapon_type"
	CondDamageType         ConditionType = "damage_type"
	CondDamageBelow        ConditionType = "damage_below"
)

// SideEffectType selects the state mutation performed when an effect
// fires. Unknown types are silently skipped.
type SideEffectType string

const (
	SideConsumeEN      SideEffectType = "consume_en"
	SideModifyWill     SideEffectType = "modify_will"
	SideApplyEffect    SideEffectType = "apply_effect"
	SideModifyStat     SideEffectType = "modify_stat"
	SideConsumeCharges SideEffectType = "consume_charges"
)

// TargetSelector resolves relative to the owner of the effect being
// evaluated.
type TargetSelector string

const (
	TargetSelf  TargetSelector = "self"
	TargetEnemy TargetSelector = "enemy"
)

// CompareOp is a comparison operator used by threshold conditions.
type CompareOp string

const (
	CmpGT CompareOp = ">"
	CmpLT CompareOp = "<"
	CmpEQ CompareOp = "=="
	CmpGE CompareOp = ">="
	CmpLE CompareOp = "<="
	CmpNE CompareOp = "!="
)

// BattleEndReason explains how a finished battle was decided.
type BattleEndReason string

const (
	EndDestruction BattleEndReason = "destruction"
	EndJudgment    BattleEndReason = "judgment"
	EndDraw        BattleEndReason = "draw"
)
