// Package json5 implements parsing of [JSON5]-style documents.
//
// JSON5 extends JSON with the conveniences people expect from a hand-edited
// configuration file: comments, trailing commas, single-quoted strings,
// hexadecimal and signed numbers, Infinity and NaN, and more escape sequences.
//
//	// a basic JSON5 document
//	{
//	  "name": "example",   /* keys must be quoted */
//	  'tags': ['a', 'b',],
//	  "mask": 0xff,
//	  "ratio": .5,
//	}
//
// [Parse] returns a [Value], an immutable tree of Null, Boolean, Integer (int32),
// Float (float64), String, Array and Object nodes. Values never panic on a type
// mismatch: [Value.AsInt] and friends report whether the value had that type, and
// [Value.Index] and [Value.Get] return null when there is nothing there, so
// lookups can be chained:
//
//	doc, err := json5.Parse(input)
//	if err != nil {
//	  return err
//	}
//	name, ok := doc.Get("servers").Index(0).Get("name").AsString()
//
// Like the builtin json package, a document can also be decoded straight into Go
// types with [Unmarshal] or [Value.Decode]:
//
//	type Config struct {
//	  Name string   `json5:"name"`
//	  Tags []string `json5:"tags"`
//	}
//
//	config := Config{}
//	json5.Unmarshal(data, &config)
//
// Parse errors are one of a few sentinel values ([ErrUnexpectedCharacter],
// [ErrUnexpectedEndOfJSON], [ErrUnparseableNumber], [ErrTooDeep]) and carry no
// position information.
//
// [JSON5]: https://json5.org
package json5
