package json5

import "errors"

// The errors returned by [Parse]. Parsing stops at the first error, and the
// error is returned as-is so it can be compared with == or [errors.Is].
var (
	// ErrUnexpectedCharacter is returned when a character cannot continue
	// the value being parsed, or when anything but whitespace and comments
	// follows the document.
	ErrUnexpectedCharacter = errors.New("json5: unexpected character")
	// ErrUnexpectedEndOfJSON is returned when the input ends in the middle
	// of a value, a string or a comment.
	ErrUnexpectedEndOfJSON = errors.New("json5: unexpected end of JSON")
	// ErrUnparseableNumber is returned when a numeric literal is malformed
	// or does not fit its type.
	ErrUnparseableNumber = errors.New("json5: unparseable number")
	// ErrTooDeep is returned when arrays and objects nest deeper than the
	// limit set by [WithMaxDepth].
	ErrTooDeep = errors.New("json5: too deeply nested")
	// ErrNonFinite is returned when converting a NaN or infinite Float to JSON.
	ErrNonFinite = errors.New("json5: NaN and Infinity cannot be represented in JSON")
)
