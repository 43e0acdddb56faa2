package engine

// Balance constants for the combat pipeline. These are the baseline
// values before any hook or effect touches them.
const (
	// Attack table base rates, in percent.
	BaseMissRate  = 12.0
	BaseDodgeRate = 6.0
	BaseParryRate = 5.0
	BaseBlockRate = 5.0
	BaseCritRate  = 5.0

	// Caps applied after precision scaling.
	ParryRateCap = 50.0
	BlockRateCap = 80.0
	CritRateCap  = 100.0

	// Hit bonus at or above this value forces a guaranteed hit.
	GuaranteedHitThreshold = 100.0

	// Proficiency curves.
	WeaponProficiencyThreshold = 1000
	MechaProficiencyThreshold  = 4000
	MissPenaltyMax             = 18.0
	MissPenaltyExponent        = 1.5

	// Damage.
	ArmorK         = 100.0
	CritMultiplier = 1.5

	// Will scaling.
	WillModifierBase         = 100.0
	WillStabilityCoefficient = 0.002

	// Precision reduces defensive rates by up to this fraction.
	PrecisionReductionCap = 0.8

	// Round flow.
	DefaultMaxRounds     = 4
	DistanceInitialMin   = 3000
	DistanceInitialMax   = 7000
	DistanceRoundReduce  = 1500
	DistanceFinalMin     = 0
	DistanceFinalMax     = 2000
	WillRecoveryPerRound = 1

	// Initiative.
	InitiativeMobilityWeight = 0.6
	InitiativeReactionWeight = 0.4
	InitiativeWillWeight     = 0.3
	InitiativeJitterRange    = 10.0
	ConsecutiveWinsThreshold = 2
	MobilityReasonGap        = 20.0
	ReactionReasonGap        = 15.0
	WillReasonGap            = 20.0

	// Fallback ram attack synthesized when no weapon is usable.
	FallbackWeaponPower    = 50
	FallbackWeaponRangeMax = 10000

	// A hook may appear at most this many times in one context stack
	// before further processing returns the input unchanged.
	MaxHookDepth = 3
)
