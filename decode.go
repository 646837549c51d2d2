package json5

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var (
	valueType           = reflect.TypeFor[Value]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// Decode stores v in the Go value pointed to by target, which should be a
// non-nil pointer. Decode acts similarly to json.Unmarshal.
//
// For struct fields, Decode will first look for the name in a `json5:"name"` tag,
// then in a `json:"name"` tag, and finally match either the field name itself or
// its snake_case version. Members with no matching field are an error.
//
// When decoding into an interface, Objects become map[string]any, Arrays
// become []any, Integers become int64, Floats become float64 and Null becomes
// nil. A [Value] field receives the sub-tree unchanged.
//
// Strings are passed to [encoding.TextUnmarshaler] implementations, and are
// base64 decoded into []byte. Null leaves scalars and structs untouched and
// resets pointers, maps, slices and interfaces to nil.
func (v Value) Decode(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("json5: invalid target, must be a non-nil pointer")
	}
	return decodeValue(v, rv.Elem(), "$")
}

func mismatch(path string, v Value, t reflect.Type) error {
	return errors.Errorf("json5: %s: cannot decode %s into %s", path, v.Kind(), t)
}

func decodeValue(v Value, rv reflect.Value, path string) error {
	if !rv.CanSet() {
		panic(fmt.Errorf("cannot set value of type: %v", rv.Type()))
	}

	if rv.Type() == valueType {
		rv.Set(reflect.ValueOf(v))
		return nil
	}

	if v.IsNull() {
		switch rv.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
			rv.SetZero()
		}
		return nil
	}

	if rv.Kind() != reflect.Ptr && reflect.PointerTo(rv.Type()).Implements(textUnmarshalerType) {
		s, ok := v.AsString()
		if !ok {
			return mismatch(path, v, rv.Type())
		}
		if err := rv.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return errors.Wrapf(err, "json5: %s", path)
		}
		return nil
	}

	switch rv.Kind() {
	case reflect.Struct:
		return decodeStruct(v, rv, path)
	case reflect.Map:
		return decodeMap(v, rv, path)
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return mismatch(path, v, rv.Type())
		}
		rv.Set(reflect.ValueOf(v.Interface()))
		return nil
	case reflect.Ptr:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return decodeValue(v, rv.Elem(), path)
	case reflect.Array:
		return decodeArray(v, rv, path)
	case reflect.Slice:
		return decodeSlice(v, rv, path)
	case reflect.String:
		s, ok := v.AsString()
		if !ok {
			return mismatch(path, v, rv.Type())
		}
		rv.SetString(s)
		return nil
	case reflect.Bool:
		b, ok := v.AsBool()
		if !ok {
			return mismatch(path, v, rv.Type())
		}
		rv.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return decodeInteger(v, rv, path)
	case reflect.Float32, reflect.Float64:
		f, ok := v.AsFloat()
		if !ok {
			return mismatch(path, v, rv.Type())
		}
		if !math.IsInf(f, 0) && rv.OverflowFloat(f) {
			return errors.Errorf("json5: %s: %v overflows %s", path, f, rv.Type())
		}
		rv.SetFloat(f)
		return nil
	}

	return errors.Errorf("json5: %s: unsupported type: %v", path, rv.Type())
}

// decodeInteger accepts Integers, and Floats with no fractional part.
func decodeInteger(v Value, rv reflect.Value, path string) error {
	var i int64
	switch v.Kind() {
	case IntegerKind:
		n, _ := v.AsInt()
		i = int64(n)
	case FloatKind:
		f, _ := v.AsFloat()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return errors.Errorf("json5: %s: %v is not a valid %s", path, f, rv.Type())
		}
		i = int64(f)
	default:
		return mismatch(path, v, rv.Type())
	}

	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return errors.Errorf("json5: %s: %d overflows %s", path, i, rv.Type())
		}
		rv.SetUint(uint64(i))
	default:
		if rv.OverflowInt(i) {
			return errors.Errorf("json5: %s: %d overflows %s", path, i, rv.Type())
		}
		rv.SetInt(i)
	}
	return nil
}

func decodeStruct(v Value, rv reflect.Value, path string) error {
	members, ok := v.AsObject()
	if !ok {
		return mismatch(path, v, rv.Type())
	}

	t := rv.Type()
	fieldMap := make(map[string]reflect.Value)

	for i := 0; i < t.NumField(); i++ {
		field := rv.Field(i)
		fieldType := t.Field(i)

		if !fieldType.IsExported() {
			continue
		}

		if name, ok := tagName(fieldType); ok {
			if name != "-" {
				fieldMap[name] = field
			}
			continue
		}

		fieldMap[fieldType.Name] = field
		fieldMap[toSnakeCase(fieldType.Name)] = field
	}

	for key, member := range members {
		field, ok := fieldMap[key]
		if !ok {
			return errors.Errorf("json5: %s: unknown field %q", path, key)
		}
		if err := decodeValue(member, field, memberPath(path, key)); err != nil {
			return err
		}
	}
	return nil
}

// tagName returns the name from a json5 tag, falling back to a json tag.
func tagName(field reflect.StructField) (string, bool) {
	for _, key := range []string{"json5", "json"} {
		if tag, ok := field.Tag.Lookup(key); ok {
			if tag == "-" {
				return tag, true
			}
			if name, _, _ := strings.Cut(tag, ","); name != "" {
				return name, true
			}
		}
	}
	return "", false
}

func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			result.WriteRune('_')
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

func memberPath(path, key string) string {
	for _, r := range key {
		if !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return path + "[" + strconv.Quote(key) + "]"
		}
	}
	return path + "." + key
}

func elemPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func decodeMap(v Value, rv reflect.Value, path string) error {
	members, ok := v.AsObject()
	if !ok {
		return mismatch(path, v, rv.Type())
	}

	keyType := rv.Type().Key()
	elemType := rv.Type().Elem()

	if rv.IsNil() {
		rv.Set(reflect.MakeMapWithSize(rv.Type(), len(members)))
	}
	for k, member := range members {
		key := reflect.New(keyType).Elem()
		if err := setKey(k, key); err != nil {
			return errors.Wrapf(err, "json5: %s: invalid key %q", path, k)
		}
		value := reflect.New(elemType).Elem()
		if err := decodeValue(member, value, memberPath(path, k)); err != nil {
			return err
		}
		rv.SetMapIndex(key, value)
	}
	return nil
}

func decodeSlice(v Value, rv reflect.Value, path string) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		s, ok := v.AsString()
		if !ok {
			return mismatch(path, v, rv.Type())
		}
		r := strings.NewReplacer(" ", "", "\t", "", "\n", "", "=", "")
		output, err := base64.RawStdEncoding.DecodeString(r.Replace(s))
		if err != nil {
			return errors.Wrapf(err, "json5: %s", path)
		}
		rv.SetBytes(output)
		return nil
	}

	elems, ok := v.AsArray()
	if !ok {
		return mismatch(path, v, rv.Type())
	}

	out := reflect.MakeSlice(rv.Type(), len(elems), len(elems))
	for i, elem := range elems {
		if err := decodeValue(elem, out.Index(i), elemPath(path, i)); err != nil {
			return err
		}
	}
	rv.Set(out)
	return nil
}

func decodeArray(v Value, rv reflect.Value, path string) error {
	elems, ok := v.AsArray()
	if !ok {
		return mismatch(path, v, rv.Type())
	}
	if len(elems) > rv.Len() {
		return errors.Errorf("json5: %s: too many elements, limit %d", path, rv.Len())
	}

	for i, elem := range elems {
		if err := decodeValue(elem, rv.Index(i), elemPath(path, i)); err != nil {
			return err
		}
	}
	for i := len(elems); i < rv.Len(); i++ {
		rv.Index(i).SetZero()
	}
	return nil
}

// setKey converts an Object key to a map key type.
func setKey(s string, v reflect.Value) error {
	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		if v.OverflowInt(i) {
			return errors.Errorf("invalid %s: %v", v.Type(), i)
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		if v.OverflowUint(u) {
			return errors.Errorf("invalid %s: %v", v.Type(), u)
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		if v.OverflowFloat(f) {
			return errors.Errorf("invalid %s: %v", v.Type(), f)
		}
		v.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	default:
		return errors.Errorf("unsupported key type %s", v.Type())
	}
	return nil
}
