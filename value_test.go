package json5_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ConradIrwin/json5-go"
)

func TestIndex(t *testing.T) {
	null := json5.Null()
	integer := json5.Int(4)
	array := json5.Array(
		json5.Bool(true),
		json5.Int(2),
		json5.String("three"),
		json5.Array(json5.Int(5), json5.Int(5)),
	)
	object := json5.Object(map[string]json5.Value{
		"foo": json5.Int(10),
		"bar": json5.Array(json5.Int(20), json5.Int(30)),
	})

	assert.True(t, null.Index(0).IsNull())
	assert.True(t, null.Get("k").IsNull())
	assert.True(t, integer.Index(0).IsNull())
	assert.True(t, integer.Get("foo").IsNull())

	b, ok := array.Index(0).AsBool()
	assert.True(t, ok && b)
	i, ok := array.Index(3).Index(1).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int32(5), i)
	assert.True(t, array.Index(-1).IsNull())
	assert.True(t, array.Index(4).IsNull())
	assert.True(t, array.Get("foo").IsNull())

	assert.True(t, object.Index(0).IsNull())
	i, ok = object.Get("foo").AsInt()
	assert.True(t, ok)
	assert.Equal(t, int32(10), i)
	i, ok = object.Get("bar").Index(1).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int32(30), i)
	_, ok = object.Get("bar").Index(1).AsString()
	assert.False(t, ok)
	assert.True(t, object.Get("missing").Index(7).Get("deeper").IsNull())
}

func TestAccessors(t *testing.T) {
	all := []json5.Value{
		json5.Null(),
		json5.Bool(true),
		json5.Int(-3),
		json5.Float(1.5),
		json5.String("s"),
		json5.Array(),
		json5.Object(nil),
	}

	for _, v := range all {
		_, isBool := v.AsBool()
		_, isInt := v.AsInt()
		_, isFloat := v.AsFloat()
		_, isString := v.AsString()
		_, isArray := v.AsArray()
		_, isObject := v.AsObject()

		assert.Equal(t, v.Kind() == json5.NullKind, v.IsNull(), v.Kind())
		assert.Equal(t, v.Kind() == json5.BooleanKind, isBool, v.Kind())
		assert.Equal(t, v.Kind() == json5.IntegerKind || v.Kind() == json5.FloatKind, isInt, v.Kind())
		assert.Equal(t, v.Kind() == json5.IntegerKind || v.Kind() == json5.FloatKind, isFloat, v.Kind())
		assert.Equal(t, v.Kind() == json5.StringKind, isString, v.Kind())
		assert.Equal(t, v.Kind() == json5.ArrayKind, isArray, v.Kind())
		assert.Equal(t, v.Kind() == json5.ObjectKind, isObject, v.Kind())
	}

	var zero json5.Value
	assert.True(t, zero.IsNull())
}

func TestNumericViews(t *testing.T) {
	i, ok := json5.Int(-3).AsInt()
	require.True(t, ok)
	assert.Equal(t, int32(-3), i)

	f, ok := json5.Int(math.MaxInt32).AsFloat()
	require.True(t, ok)
	assert.Equal(t, float64(math.MaxInt32), f)

	f, ok = json5.Float(1.23).AsFloat()
	require.True(t, ok)
	assert.Equal(t, 1.23, f)

	for _, test := range []struct {
		in  float64
		out int32
	}{
		{2.9, 2},
		{-2.9, -2},
		{0.5, 0},
		{1e12, math.MaxInt32},
		{-1e12, math.MinInt32},
		{math.Inf(1), math.MaxInt32},
		{math.Inf(-1), math.MinInt32},
		{math.NaN(), 0},
	} {
		i, ok := json5.Float(test.in).AsInt()
		assert.True(t, ok)
		assert.Equal(t, test.out, i, "AsInt(%v)", test.in)
	}

	_, ok = json5.Bool(true).AsInt()
	assert.False(t, ok)
	_, ok = json5.String("1").AsFloat()
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	a := json5.Object(map[string]json5.Value{
		"list": json5.Array(json5.Int(1), json5.String("two"), json5.Null()),
		"nested": json5.Object(map[string]json5.Value{
			"f": json5.Float(0.5),
		}),
	})
	b := json5.Object(map[string]json5.Value{
		"nested": json5.Object(map[string]json5.Value{
			"f": json5.Float(0.5),
		}),
		"list": json5.Array(json5.Int(1), json5.String("two"), json5.Null()),
	})
	assert.True(t, a.Equal(b))
	assert.True(t, json5.Null().Equal(json5.Null()))

	assert.False(t, json5.Int(1).Equal(json5.Float(1)))
	assert.False(t, json5.Array(json5.Int(1)).Equal(json5.Array(json5.Int(1), json5.Int(1))))
	assert.False(t, json5.Object(map[string]json5.Value{"a": json5.Null()}).Equal(json5.Object(nil)))

	nan := json5.Float(math.NaN())
	assert.False(t, nan.Equal(nan))
	assert.False(t, json5.Array(nan).Equal(json5.Array(nan)))
}

func TestConstructorsCopy(t *testing.T) {
	elems := []json5.Value{json5.Int(1)}
	arr := json5.Array(elems...)
	elems[0] = json5.Int(2)
	assert.True(t, json5.Int(1).Equal(arr.Index(0)))

	m := map[string]json5.Value{"a": json5.Int(1)}
	obj := json5.Object(m)
	m["a"] = json5.Int(2)
	assert.True(t, json5.Int(1).Equal(obj.Get("a")))
	assert.Equal(t, 1, obj.Len())
	assert.Equal(t, 0, json5.String("abc").Len())
}

func TestString(t *testing.T) {
	v, err := json5.Parse(`{"b": [1, 2.5, null], "a": 'x', "c": false}`)
	require.NoError(t, err)
	assert.Equal(t,
		`Object({"a": String("x"), "b": Array([Integer(1), Float(2.5), Null]), "c": Boolean(false)})`,
		v.String())
	assert.Equal(t, "Float(+Inf)", json5.Float(math.Inf(1)).String())
	assert.Equal(t, "Object", json5.ObjectKind.String())
}
