package ast

import (
	"strconv"
	"time"
)

// ValueKind discriminates the payload of a Value.
type ValueKind int

const (
	ValueNumber ValueKind = iota
	ValueString
	ValueBool
	ValueTime
)

// Value is a plain literal carried by leaf conditions.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
	Bool bool
	Time time.Time
}

// NumberValue creates a numeric literal.
func NumberValue(n float64) Value {
	return Value{Kind: ValueNumber, Num: n}
}

// StringValue creates a string literal.
func StringValue(s string) Value {
	return Value{Kind: ValueString, Str: s}
}

// BoolValue creates a boolean literal.
func BoolValue(b bool) Value {
	return Value{Kind: ValueBool, Bool: b}
}

// TimeValue creates a temporal literal.
func TimeValue(t time.Time) Value {
	return Value{Kind: ValueTime, Time: t}
}

// IsNumber reports whether v holds a numeric payload.
func (v Value) IsNumber() bool { return v.Kind == ValueNumber }

// Equal reports whether two values have the same kind and payload.
// Times compare by instant, not by location.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case ValueNumber:
		return v.Num == o.Num
	case ValueString:
		return v.Str == o.Str
	case ValueBool:
		return v.Bool == o.Bool
	case ValueTime:
		return v.Time.Equal(o.Time)
	}
	return false
}

func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case ValueString:
		return v.Str
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	case ValueTime:
		return v.Time.UTC().Format(time.RFC3339)
	}
	return "<invalid>"
}
