package json5

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies which variant a [Value] holds.
type Kind int8

// These are the possible kinds of [Value]. The zero [Value] is a [NullKind].
const (
	NullKind = Kind(iota)
	BooleanKind
	IntegerKind
	FloatKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "Null"
	case BooleanKind:
		return "Boolean"
	case IntegerKind:
		return "Integer"
	case FloatKind:
		return "Float"
	case StringKind:
		return "String"
	case ArrayKind:
		return "Array"
	case ObjectKind:
		return "Object"
	default:
		panic("Unknown Kind")
	}
}

func (k Kind) GoString() string {
	return k.String()
}

// Value is a parsed JSON5 value.
//
// A Value is immutable once constructed. The zero Value is null, and every
// accessor is safe to call on every kind: asking for the wrong type reports
// absence instead of panicking, and indexing degrades to null. This means that
// lookups can be chained freely:
//
//	port, ok := doc.Get("servers").Index(0).Get("port").AsInt()
type Value struct {
	kind Kind
	b    bool
	i    int32
	f    float64
	s    string
	a    []Value
	o    map[string]Value
}

var null = Value{}

// Null returns the null value.
func Null() Value { return null }

// Bool returns a Boolean value.
func Bool(b bool) Value { return Value{kind: BooleanKind, b: b} }

// Int returns an Integer value.
func Int(i int32) Value { return Value{kind: IntegerKind, i: i} }

// Float returns a Float value. f may be NaN or infinite.
func Float(f float64) Value { return Value{kind: FloatKind, f: f} }

// String returns a String value.
func String(s string) Value { return Value{kind: StringKind, s: s} }

// Array returns an Array value holding a copy of elems.
func Array(elems ...Value) Value {
	return Value{kind: ArrayKind, a: slices.Clone(elems)}
}

// Object returns an Object value holding a copy of m.
func Object(m map[string]Value) Value {
	o := maps.Clone(m)
	if o == nil {
		o = map[string]Value{}
	}
	return Value{kind: ObjectKind, o: o}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == NullKind }

// AsBool returns the payload of a Boolean.
func (v Value) AsBool() (bool, bool) {
	if v.kind != BooleanKind {
		return false, false
	}
	return v.b, true
}

// AsInt returns the payload of an Integer, or a Float truncated toward zero.
// Floats outside the int32 range saturate at its bounds, and NaN becomes 0.
func (v Value) AsInt() (int32, bool) {
	switch v.kind {
	case IntegerKind:
		return v.i, true
	case FloatKind:
		switch {
		case math.IsNaN(v.f):
			return 0, true
		case v.f >= math.MaxInt32:
			return math.MaxInt32, true
		case v.f <= math.MinInt32:
			return math.MinInt32, true
		}
		return int32(v.f), true
	}
	return 0, false
}

// AsFloat returns the payload of a Float, or an Integer widened exactly.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case IntegerKind:
		return float64(v.i), true
	case FloatKind:
		return v.f, true
	}
	return 0, false
}

// AsString returns the payload of a String.
func (v Value) AsString() (string, bool) {
	if v.kind != StringKind {
		return "", false
	}
	return v.s, true
}

// AsArray returns the elements of an Array. The slice is shared with v and
// must not be modified.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != ArrayKind {
		return nil, false
	}
	return v.a, true
}

// AsObject returns the members of an Object. The map is shared with v and
// must not be modified.
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != ObjectKind {
		return nil, false
	}
	return v.o, true
}

// Len returns the number of elements in an Array or members in an Object,
// and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case ArrayKind:
		return len(v.a)
	case ObjectKind:
		return len(v.o)
	}
	return 0
}

// Index returns the i'th element of an Array. It returns null if v is not an
// Array or i is out of range.
func (v Value) Index(i int) Value {
	if v.kind != ArrayKind || i < 0 || i >= len(v.a) {
		return null
	}
	return v.a[i]
}

// Get returns the member of an Object named key. It returns null if v is not
// an Object or has no such member.
func (v Value) Get(key string) Value {
	if v.kind != ObjectKind {
		return null
	}
	if m, ok := v.o[key]; ok {
		return m
	}
	return null
}

// Equal reports whether v and other hold the same variant and payload,
// comparing composites element by element. Floats use ==, so a NaN is
// never equal to anything, itself included.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case NullKind:
		return true
	case BooleanKind:
		return v.b == other.b
	case IntegerKind:
		return v.i == other.i
	case FloatKind:
		return v.f == other.f
	case StringKind:
		return v.s == other.s
	case ArrayKind:
		return slices.EqualFunc(v.a, other.a, Value.Equal)
	case ObjectKind:
		return maps.EqualFunc(v.o, other.o, Value.Equal)
	}
	return false
}

// String renders v for debugging, for example `Array([Integer(1), Null])`.
// Object members are listed in key order.
func (v Value) String() string {
	var sb strings.Builder
	v.writeDebug(&sb)
	return sb.String()
}

func (v Value) GoString() string {
	return v.String()
}

func (v Value) writeDebug(sb *strings.Builder) {
	switch v.kind {
	case NullKind:
		sb.WriteString("Null")
	case BooleanKind:
		fmt.Fprintf(sb, "Boolean(%t)", v.b)
	case IntegerKind:
		fmt.Fprintf(sb, "Integer(%d)", v.i)
	case FloatKind:
		fmt.Fprintf(sb, "Float(%s)", strconv.FormatFloat(v.f, 'g', -1, 64))
	case StringKind:
		fmt.Fprintf(sb, "String(%q)", v.s)
	case ArrayKind:
		sb.WriteString("Array([")
		for i, e := range v.a {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.writeDebug(sb)
		}
		sb.WriteString("])")
	case ObjectKind:
		sb.WriteString("Object({")
		for i, k := range slices.Sorted(maps.Keys(v.o)) {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "%q: ", k)
			v.o[k].writeDebug(sb)
		}
		sb.WriteString("})")
	}
}
