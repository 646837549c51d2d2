package json5

import "unicode/utf8"

// Parse parses a complete JSON5 document.
//
// The document must hold exactly one value, optionally surrounded by
// whitespace and comments. Parsing stops at the first problem and returns one
// of [ErrUnexpectedCharacter], [ErrUnexpectedEndOfJSON], [ErrUnparseableNumber]
// or [ErrTooDeep]. Input that is not valid UTF-8 is rejected with
// [ErrUnexpectedCharacter].
func Parse(input string, opts ...Option) (Value, error) {
	if !utf8.ValidString(input) {
		return null, ErrUnexpectedCharacter
	}

	p := newParser(input, buildOptions(opts))
	if err := p.skipComments(); err != nil {
		return null, err
	}

	v, err := p.parseValue()
	if err != nil {
		return null, err
	}

	if err := p.skipComments(); err != nil {
		return null, err
	}
	if !p.eof {
		return null, ErrUnexpectedCharacter
	}
	return v, nil
}

// ParseBytes is like [Parse] but takes a byte slice.
func ParseBytes(data []byte, opts ...Option) (Value, error) {
	return Parse(string(data), opts...)
}

// Unmarshal parses data and stores the result in the value pointed to by v.
// See [Value.Decode] for how values are converted.
func Unmarshal(data []byte, v any, opts ...Option) error {
	doc, err := ParseBytes(data, opts...)
	if err != nil {
		return err
	}
	return doc.Decode(v)
}
