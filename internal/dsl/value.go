package dsl

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/guncekal/text-to-processflow/internal/errors"
)

// Kind identifies the variant held by a Value.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
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
		return "unknown"
	}
}

// Value is an immutable node of a decoded document tree.
// The zero Value is null.
type Value struct {
	kind  Kind
	b     bool
	num   float64
	isInt bool
	str   string
	arr   []Value
	obj   map[string]Value
	keys  []string
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer.
func Int(n int64) Value { return Value{kind: KindNumber, num: float64(n), isInt: true} }

// Float wraps a floating point number.
func Float(f float64) Value { return Value{kind: KindNumber, num: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array wraps a sequence of values.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, arr: items}
}

// Object wraps a set of named values.
func Object(fields map[string]Value) Value {
	obj := make(map[string]Value, len(fields))
	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		obj[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return Value{kind: KindObject, obj: obj, keys: keys}
}

// FromAny converts the output of a generic decoder into a Value.
//
// Maps, slices, strings, booleans, numbers and nil are mapped to their
// natural variants. Timestamps become RFC 3339 strings. Any other value is
// rendered with %v and stored as a string.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return Int(int64(t))
	case uint16:
		return Int(int64(t))
	case uint32:
		return Int(int64(t))
	case uint64:
		return fromUint(t)
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return Int(n)
		}
		f, err := strconv.ParseFloat(t.String(), 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			// out of range literals keep their ±Inf or zero value
			return Float(f)
		}
		return String(t.String())
	case time.Time:
		return String(t.Format(time.RFC3339))
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromAny(item)
		}
		return Array(items...)
	case []string:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = String(item)
		}
		return Array(items...)
	case []map[string]any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromAny(item)
		}
		return Array(items...)
	case map[string]any:
		fields := make(map[string]Value, len(t))
		for k, item := range t {
			fields[k] = FromAny(item)
		}
		return Object(fields)
	case map[any]any:
		fields := make(map[string]Value, len(t))
		for k, item := range t {
			fields[fmt.Sprint(k)] = FromAny(item)
		}
		return Object(fields)
	default:
		return String(fmt.Sprint(t))
	}
}

func fromUint(n uint64) Value {
	if n > math.MaxInt64 {
		return Float(float64(n))
	}
	return Int(int64(n))
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsNumber returns the number held by v.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// AsArray returns the items held by v.
// The returned slice must not be modified.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// IsObject reports whether v is an object.
func (v Value) IsObject() bool { return v.kind == KindObject }

// Keys returns the keys of an object in sorted order, or nil for other kinds.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Get returns the field named key. It reports false when v is not an object
// or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	f, ok := v.obj[key]
	return f, ok
}

// Field returns the field named key, or null when it is absent.
func (v Value) Field(key string) Value {
	f, _ := v.Get(key)
	return f
}

// TypeName returns the name reported for v in validation messages.
func (v Value) TypeName() string {
	switch v.kind {
	case KindNull:
		return "NoneType"
	case KindBool:
		return "bool"
	case KindNumber:
		if v.isInt {
			return "int"
		}
		return "float"
	case KindString:
		return "str"
	case KindArray:
		return "list"
	case KindObject:
		return "dict"
	default:
		return "unknown"
	}
}

// Interface converts v back to plain Go values: nil, bool, int64, float64,
// string, []any or map[string]any. Non-finite numbers, which JSON cannot
// carry, come back as the strings "Infinity", "-Infinity" and "NaN".
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		switch {
		case v.isInt:
			return int64(v.num)
		case math.IsInf(v.num, 1):
			return "Infinity"
		case math.IsInf(v.num, -1):
			return "-Infinity"
		case math.IsNaN(v.num):
			return "NaN"
		}
		return v.num
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, item := range v.obj {
			out[k] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON encodes v as its plain JSON equivalent.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
