package ingest

import (
	"strconv"
)

// Kind enumerates the closed set of shapes a raw cell can take. Uploaded
// documents are untrusted, so every coercer switches on the kind instead of
// guessing at runtime types.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
)

// Value is a single cell of a RawRecord.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
	Obj  map[string]Value
}

// RawRecord is one parsed row or JSON object: arbitrary source keys mapped to
// loosely typed cells. Records are never mutated by the engine.
type RawRecord map[string]Value

func StringValue(s string) Value  { return Value{Kind: KindString, Str: s} }
func NumberValue(f float64) Value { return Value{Kind: KindNumber, Num: f} }
func BoolValue(b bool) Value      { return Value{Kind: KindBool, Bool: b} }
func NullValue() Value            { return Value{Kind: KindNull} }

func ObjectValue(m map[string]Value) Value {
	return Value{Kind: KindObject, Obj: m}
}

// FromAny converts a decoded JSON value into the closed Value variant.
// Arrays and any other shapes collapse to null; the engine has no use for
// them.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return NullValue()
	case string:
		return StringValue(t)
	case float64:
		return NumberValue(t)
	case int:
		return NumberValue(float64(t))
	case int64:
		return NumberValue(float64(t))
	case bool:
		return BoolValue(t)
	case map[string]any:
		obj := make(map[string]Value, len(t))
		for k, inner := range t {
			obj[k] = FromAny(inner)
		}
		return ObjectValue(obj)
	default:
		return NullValue()
	}
}

// Text renders the value as the string the mappers and matchers compare on.
// Null and nested objects render empty.
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// IsNull reports whether the cell carries no value at all.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}
