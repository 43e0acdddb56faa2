package game

// Condition gates an effect. All conditions on an effect must pass.
type Condition struct {
	Type    ConditionType  `json:"type"`
	Target  TargetSelector `json:"target,omitempty"`
	Compare CompareOp      `json:"op,omitempty"`
	Value   Value          `json:"val,omitempty"`
	// AnyOf lists alternative matches for attack_result conditions.
	AnyOf []string `json:"any_of,omitempty"`
	// Stat names a pilot attribute for enemy_stat_check conditions.
	Stat string `json:"stat,omitempty"`
	// RefHook names the cached hook result compared by ref_hook conditions.
	RefHook Hook `json:"ref_hook,omitempty"`
}

// SideEffect is a state mutation executed when its effect fires.
type SideEffect struct {
	Type     SideEffectType `json:"type"`
	Target   TargetSelector `json:"target,omitempty"`
	Amount   int            `json:"amount,omitempty"`
	EffectID string         `json:"effect_id,omitempty"`
	Duration int            `json:"duration,omitempty"`
}

// Effect is a live modifier attached to a mecha. Duration counts rounds
// (-1 permanent, 0 inert) and Charges counts remaining firings (-1
// unlimited, 0 inert).
type Effect struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	SourceID      string         `json:"source_id,omitempty"`
	Hook          Hook           `json:"hook"`
	Operation     Operation      `json:"operation"`
	Value         Value          `json:"value"`
	Priority      int            `json:"priority"`
	SubPriority   int            `json:"sub_priority"`
	TriggerChance float64        `json:"trigger_chance"`
	Target        TargetSelector `json:"target,omitempty"`
	Duration      int            `json:"duration"`
	Charges       int            `json:"charges"`
	Conditions    []Condition    `json:"conditions,omitempty"`
	SideEffects   []SideEffect   `json:"side_effects,omitempty"`
}

// Active reports whether the effect may still fire. Zero duration or
// zero charges make it inert without removing it from the list.
func (e *Effect) Active() bool {
	return e.Duration != 0 && e.Charges != 0
}
