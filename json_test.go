package json5_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ConradIrwin/json5-go"
)

func TestMarshalJSON(t *testing.T) {
	doc, err := json5.Parse(`{
		// config
		"name": 'demo',
		"ports": [80, 0x1bb,],
		"ratio": .25,
		"extra": {},
		"none": null,
	}`)
	require.NoError(t, err)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"extra":{},"name":"demo","none":null,"ports":[80,443],"ratio":0.25}`, string(out))

	var roundTrip map[string]any
	require.NoError(t, json.Unmarshal(out, &roundTrip))
	assert.Equal(t, "demo", roundTrip["name"])
}

func TestMarshalJSONNonFinite(t *testing.T) {
	for _, v := range []json5.Value{
		json5.Float(math.NaN()),
		json5.Float(math.Inf(1)),
		json5.Array(json5.Int(1), json5.Float(math.Inf(-1))),
	} {
		_, err := v.MarshalJSON()
		assert.ErrorIs(t, err, json5.ErrNonFinite, v.String())

		err = json5.WriteJSON(&bytes.Buffer{}, v, 0)
		assert.ErrorIs(t, err, json5.ErrNonFinite, v.String())
	}
}

func TestWriteJSON(t *testing.T) {
	doc, err := json5.Parse(`{"b": [1, 'two'], "a": true, "c": []}`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, json5.WriteJSON(&buf, doc, 0))
	assert.Equal(t, `{"a":true,"b":[1,"two"],"c":[]}`+"\n", buf.String())

	buf.Reset()
	require.NoError(t, json5.WriteJSON(&buf, doc, 2))
	var indented any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &indented))
	assert.Equal(t, doc.Interface().(map[string]any)["a"], indented.(map[string]any)["a"])
	assert.Contains(t, buf.String(), "\n  \"a\": true")
}

func TestInterface(t *testing.T) {
	doc, err := json5.Parse(`[null, true, 7, 1.5, "s", [], {"k": -1}]`)
	require.NoError(t, err)
	assert.Equal(t, []any{
		nil, true, int64(7), 1.5, "s", []any{}, map[string]any{"k": int64(-1)},
	}, doc.Interface())
}
