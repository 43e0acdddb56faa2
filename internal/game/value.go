package game

import (
	"encoding/json"
	"fmt"
)

// ValueKind discriminates the payload carried by a Value.
type ValueKind int

const (
	KindNil ValueKind = iota
	KindNumber
	KindBool
	KindString
)

// Value is the tagged operand type flowing through hooks and effect
// operations. Numeric payloads are float64; call sites that need integers
// convert after the final hook.
type Value struct {
	Kind ValueKind
	Num  float64
	Bool bool
	Str  string
}

var Nil = Value{Kind: KindNil}

func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }
func Boolean(b bool) Value   { return Value{Kind: KindBool, Bool: b} }
func String(s string) Value  { return Value{Kind: KindString, Str: s} }

func (v Value) IsNil() bool { return v.Kind == KindNil }

func (v Value) AsNumber() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.Num, true
}

func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.Bool, true
}

func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNumber:
		return v.Num == o.Num
	case KindBool:
		return v.Bool == o.Bool
	case KindString:
		return v.Str == o.Str
	default:
		return true
	}
}

// MarshalJSON emits the raw payload (number, bool, string or null) so
// catalog files and API responses read naturally.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindString:
		return json.Marshal(v.Str)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a bare number, bool, string or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = Nil
	case float64:
		*v = Number(t)
	case bool:
		*v = Boolean(t)
	case string:
		*v = String(t)
	default:
		return fmt.Errorf("unsupported value payload %T", raw)
	}
	return nil
}
