package timetagger

import (
	"encoding/json"
	"fmt"
)

// ValueKind discriminates the JSON shape held by a SettingValue.
type ValueKind int

// JSON value shapes a setting may carry.
const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name for diagnostics.
func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// SettingValue is a tagged union over the JSON value shapes a
// TimeTagger setting can hold. The zero value is JSON null.
type SettingValue struct {
	kind ValueKind
	b    bool
	n    float64
	s    string
	a    []SettingValue
	o    map[string]SettingValue
}

// Null returns the null setting value.
func Null() SettingValue { return SettingValue{} }

// Bool wraps a boolean.
func Bool(b bool) SettingValue { return SettingValue{kind: KindBool, b: b} }

// Number wraps a number.
func Number(n float64) SettingValue { return SettingValue{kind: KindNumber, n: n} }

// String wraps a string.
func String(s string) SettingValue { return SettingValue{kind: KindString, s: s} }

// Array wraps a list of values.
func Array(items ...SettingValue) SettingValue {
	return SettingValue{kind: KindArray, a: items}
}

// Object wraps a string-keyed map of values.
func Object(fields map[string]SettingValue) SettingValue {
	return SettingValue{kind: KindObject, o: fields}
}

// Kind returns the JSON shape of the value.
func (v SettingValue) Kind() ValueKind { return v.kind }

// IsNull reports whether the value is JSON null.
func (v SettingValue) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean value; ok is false for other kinds.
func (v SettingValue) AsBool() (b bool, ok bool) { return v.b, v.kind == KindBool }

// AsNumber returns the numeric value; ok is false for other kinds.
func (v SettingValue) AsNumber() (n float64, ok bool) { return v.n, v.kind == KindNumber }

// AsString returns the string value; ok is false for other kinds.
func (v SettingValue) AsString() (s string, ok bool) { return v.s, v.kind == KindString }

// AsArray returns the array items; ok is false for other kinds.
func (v SettingValue) AsArray() (items []SettingValue, ok bool) { return v.a, v.kind == KindArray }

// AsObject returns the object fields; ok is false for other kinds.
func (v SettingValue) AsObject() (fields map[string]SettingValue, ok bool) {
	return v.o, v.kind == KindObject
}

// MarshalJSON implements json.Marshaler.
func (v SettingValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		return json.Marshal(v.n)
	case KindString:
		return json.Marshal(v.s)
	case KindArray:
		if v.a == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.a)
	case KindObject:
		if v.o == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.o)
	default:
		return nil, fmt.Errorf("cannot marshal %s setting value", v.kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler. The shape is decided by
// the first byte of the JSON token.
func (v *SettingValue) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty setting value")
	}

	switch data[0] {
	case 'n':
		*v = Null()
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	case '[':
		var items []SettingValue
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*v = SettingValue{kind: KindArray, a: items}
		return nil
	case '{':
		var fields map[string]SettingValue
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		*v = SettingValue{kind: KindObject, o: fields}
		return nil
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = Number(n)
		return nil
	}
}
