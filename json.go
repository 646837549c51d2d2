package json5

import (
	"io"
	"maps"
	"math"
	"slices"

	jsoniter "github.com/json-iterator/go"
)

// Interface converts v to plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case BooleanKind:
		return v.b
	case IntegerKind:
		return int64(v.i)
	case FloatKind:
		return v.f
	case StringKind:
		return v.s
	case ArrayKind:
		out := make([]any, len(v.a))
		for i, e := range v.a {
			out[i] = e.Interface()
		}
		return out
	case ObjectKind:
		out := make(map[string]any, len(v.o))
		for k, m := range v.o {
			out[k] = m.Interface()
		}
		return out
	}
	return nil
}

// MarshalJSON encodes v as compact JSON with object keys sorted.
// It fails with [ErrNonFinite] if v contains NaN or an infinity.
func (v Value) MarshalJSON() ([]byte, error) {
	stream := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowStream(nil)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)

	if err := writeValue(stream, v); err != nil {
		return nil, err
	}
	if stream.Error != nil {
		return nil, stream.Error
	}
	return slices.Clone(stream.Buffer()), nil
}

// WriteJSON writes v to w as JSON followed by a newline. Nested values are
// indented by indent spaces per level, or written compactly if indent is 0.
func WriteJSON(w io.Writer, v Value, indent int) error {
	cfg := jsoniter.Config{IndentionStep: indent, SortMapKeys: true}.Froze()
	stream := jsoniter.NewStream(cfg, w, 4096)

	if err := writeValue(stream, v); err != nil {
		return err
	}
	stream.WriteRaw("\n")
	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}

func writeValue(stream *jsoniter.Stream, v Value) error {
	switch v.kind {
	case NullKind:
		stream.WriteNil()
	case BooleanKind:
		stream.WriteBool(v.b)
	case IntegerKind:
		stream.WriteInt32(v.i)
	case FloatKind:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return ErrNonFinite
		}
		stream.WriteFloat64(v.f)
	case StringKind:
		stream.WriteString(v.s)
	case ArrayKind:
		if len(v.a) == 0 {
			stream.WriteEmptyArray()
			return nil
		}
		stream.WriteArrayStart()
		for i, e := range v.a {
			if i > 0 {
				stream.WriteMore()
			}
			if err := writeValue(stream, e); err != nil {
				return err
			}
		}
		stream.WriteArrayEnd()
	case ObjectKind:
		if len(v.o) == 0 {
			stream.WriteEmptyObject()
			return nil
		}
		stream.WriteObjectStart()
		for i, k := range slices.Sorted(maps.Keys(v.o)) {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(k)
			if err := writeValue(stream, v.o[k]); err != nil {
				return err
			}
		}
		stream.WriteObjectEnd()
	}
	return nil
}
