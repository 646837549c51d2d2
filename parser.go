package json5

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

type parser struct {
	*cursor
	options
	depth int
}

func newParser(input string, opts options) *parser {
	return &parser{cursor: newCursor(input), options: opts}
}

func (p *parser) expect(ch rune) error {
	switch {
	case p.eof:
		return ErrUnexpectedEndOfJSON
	case p.ch != ch:
		return ErrUnexpectedCharacter
	}
	return nil
}

func (p *parser) consume(ch rune) error {
	if err := p.expect(ch); err != nil {
		return err
	}
	p.advance()
	return nil
}

func (p *parser) consumeSequence(s string) error {
	for _, ch := range s {
		if err := p.consume(ch); err != nil {
			return err
		}
	}
	return nil
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func hexVal(ch rune) rune {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0'
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10
	}
	return -1
}

// skipComments skips any mix of whitespace, // comments and /* */ comments.
func (p *parser) skipComments() error {
	p.skipWhitespace()

	for p.is('/') {
		next, ok := p.peek()
		switch {
		case !ok:
			return ErrUnexpectedEndOfJSON
		case next == '/':
			p.skipLineComment()
		case next == '*':
			if err := p.skipBlockComment(); err != nil {
				return err
			}
		default:
			return ErrUnexpectedCharacter
		}
		p.skipWhitespace()
	}
	return nil
}

func (p *parser) skipWhitespace() {
	for !p.eof && isSpace(p.ch) {
		p.advance()
	}
}

func (p *parser) skipLineComment() {
	p.advance()
	p.advance()

	for !p.eof {
		ch := p.ch
		p.advance()
		if ch == '\n' {
			return
		}
	}
}

func (p *parser) skipBlockComment() error {
	p.advance()
	p.advance()

	for !p.eof {
		ch := p.ch
		p.advance()
		if ch == '*' && p.is('/') {
			p.advance()
			return nil
		}
	}
	return ErrUnexpectedEndOfJSON
}

func (p *parser) parseValue() (Value, error) {
	if p.eof {
		return null, ErrUnexpectedEndOfJSON
	}

	switch p.ch {
	case 'n':
		return p.parseNull()
	case 't', 'f':
		return p.parseBoolean()
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '+', '-', '.', 'I', 'N':
		return p.parseNumber()
	case '"':
		return p.parseString()
	case '\'':
		if p.quotes == QuoteDouble {
			return null, ErrUnexpectedCharacter
		}
		return p.parseString()
	case '[':
		return p.parseArray()
	case '{':
		return p.parseObject()
	}
	return null, ErrUnexpectedCharacter
}

func (p *parser) parseNull() (Value, error) {
	p.advance()
	if err := p.consumeSequence("ull"); err != nil {
		return null, err
	}
	return null, nil
}

func (p *parser) parseBoolean() (Value, error) {
	if p.ch == 't' {
		p.advance()
		if err := p.consumeSequence("rue"); err != nil {
			return null, err
		}
		return Bool(true), nil
	}

	p.advance()
	if err := p.consumeSequence("alse"); err != nil {
		return null, err
	}
	return Bool(false), nil
}

// parseNumber handles an optional sign followed by Infinity, NaN, a 0x hex
// integer, or a decimal integer or float.
func (p *parser) parseNumber() (Value, error) {
	var sign rune
	if p.ch == '+' || p.ch == '-' {
		sign = p.ch
		p.advance()
	}

	if p.eof {
		return null, ErrUnexpectedEndOfJSON
	}

	switch p.ch {
	case '0':
		next, ok := p.peek()
		switch {
		case ok && isDigit(next):
			return null, ErrUnparseableNumber
		case ok && (next == 'x' || next == 'X'):
			return p.parseHexNumber(sign)
		}
	case 'I':
		return p.parseInfinity(sign)
	case 'N':
		return p.parseNaN()
	}
	return p.parseDecimalNumber(sign)
}

func (p *parser) parseHexNumber(sign rune) (Value, error) {
	buf := make([]byte, 0, 16)
	if sign != 0 {
		buf = append(buf, byte(sign))
	}
	p.advance()
	p.advance()

	for !p.eof && hexVal(p.ch) >= 0 {
		buf = append(buf, byte(p.ch))
		p.advance()
	}

	i, err := strconv.ParseInt(string(buf), 16, 32)
	if err != nil {
		return null, ErrUnparseableNumber
	}
	return Int(int32(i)), nil
}

func (p *parser) parseDecimalNumber(sign rune) (Value, error) {
	isFloat := false
	buf := make([]byte, 0, 16)
	if sign != 0 {
		buf = append(buf, byte(sign))
	}

loop:
	for !p.eof {
		switch p.ch {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '+', '-':
		case '.', 'e', 'E':
			isFloat = true
		default:
			break loop
		}
		buf = append(buf, byte(p.ch))
		p.advance()
	}

	if isFloat {
		f, err := strconv.ParseFloat(string(buf), 64)
		if err != nil {
			return null, ErrUnparseableNumber
		}
		return Float(f), nil
	}

	i, err := strconv.ParseInt(string(buf), 10, 32)
	if err != nil {
		return null, ErrUnparseableNumber
	}
	return Int(int32(i)), nil
}

func (p *parser) parseInfinity(sign rune) (Value, error) {
	p.advance()
	if err := p.consumeSequence("nfinity"); err != nil {
		return null, err
	}
	if sign == '-' {
		return Float(math.Inf(-1)), nil
	}
	return Float(math.Inf(1)), nil
}

// parseNaN ignores any sign that preceded it.
func (p *parser) parseNaN() (Value, error) {
	p.advance()
	if err := p.consumeSequence("aN"); err != nil {
		return null, err
	}
	return Float(math.NaN()), nil
}

func (p *parser) parseString() (Value, error) {
	quote := p.ch
	var sb strings.Builder

	p.advance()

	for !p.eof {
		switch ch := p.ch; ch {
		case quote:
			p.advance()
			return String(sb.String()), nil
		case '\n', '\r':
			return null, ErrUnexpectedCharacter
		case '\\':
			if err := p.parseEscape(&sb); err != nil {
				return null, err
			}
		default:
			sb.WriteRune(ch)
			p.advance()
		}
	}
	return null, ErrUnexpectedEndOfJSON
}

func (p *parser) parseEscape(sb *strings.Builder) error {
	p.advance()
	if p.eof {
		return ErrUnexpectedEndOfJSON
	}

	ch := p.ch
	p.advance()

	switch ch {
	case 'x':
		r, err := p.readHex(2)
		if err != nil {
			return err
		}
		if r >= 0x80 {
			return ErrUnexpectedCharacter
		}
		sb.WriteRune(r)
	case 'u':
		r, err := p.readUnicodeEscape()
		if err != nil {
			return err
		}
		sb.WriteRune(r)
	case '\'', '"', '\\':
		sb.WriteRune(ch)
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'v':
		sb.WriteByte('\v')
	case '0':
		sb.WriteByte(0)
	case '\r':
		if p.is('\n') {
			p.advance()
		}
	case '\n', '\u2028', '\u2029':
		// line continuation, nothing to write
	default:
		sb.WriteRune(ch)
	}
	return nil
}

// readUnicodeEscape reads the four hex digits after \u, and if they are a
// high surrogate, the \uXXXX low surrogate that must follow.
func (p *parser) readUnicodeEscape() (rune, error) {
	r, err := p.readHex(4)
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(r) {
		return r, nil
	}
	if r >= 0xDC00 {
		return 0, ErrUnexpectedCharacter
	}

	if err := p.consumeSequence(`\u`); err != nil {
		return 0, err
	}
	lo, err := p.readHex(4)
	if err != nil {
		return 0, err
	}
	combined := utf16.DecodeRune(r, lo)
	if combined == unicode.ReplacementChar {
		return 0, ErrUnexpectedCharacter
	}
	return combined, nil
}

func (p *parser) readHex(digits int) (rune, error) {
	var r rune
	for range digits {
		if p.eof {
			return 0, ErrUnexpectedEndOfJSON
		}
		d := hexVal(p.ch)
		if d < 0 {
			return 0, ErrUnexpectedCharacter
		}
		r = r<<4 | d
		p.advance()
	}
	return r, nil
}

func (p *parser) enter() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return ErrTooDeep
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) parseArray() (Value, error) {
	if err := p.enter(); err != nil {
		return null, err
	}
	defer p.leave()

	elems := []Value{}

	p.advance()
	if err := p.skipComments(); err != nil {
		return null, err
	}

	for !p.eof {
		if p.ch == ']' {
			p.advance()
			return Value{kind: ArrayKind, a: elems}, nil
		}

		v, err := p.parseValue()
		if err != nil {
			return null, err
		}
		elems = append(elems, v)
		if err := p.skipComments(); err != nil {
			return null, err
		}

		if p.eof {
			break
		}
		switch p.ch {
		case ']':
			p.advance()
			return Value{kind: ArrayKind, a: elems}, nil
		case ',':
			p.advance()
			if err := p.skipComments(); err != nil {
				return null, err
			}
		default:
			return null, ErrUnexpectedCharacter
		}
	}
	return null, ErrUnexpectedEndOfJSON
}

func (p *parser) parseObject() (Value, error) {
	if err := p.enter(); err != nil {
		return null, err
	}
	defer p.leave()

	members := map[string]Value{}

	p.advance()
	if err := p.skipComments(); err != nil {
		return null, err
	}

	for !p.eof {
		if p.ch == '}' {
			p.advance()
			return Value{kind: ObjectKind, o: members}, nil
		}

		k, err := p.parseValue()
		if err != nil {
			return null, err
		}
		key, ok := k.AsString()
		if !ok {
			return null, ErrUnexpectedCharacter
		}

		if err := p.skipComments(); err != nil {
			return null, err
		}
		if err := p.consume(':'); err != nil {
			return null, err
		}
		if err := p.skipComments(); err != nil {
			return null, err
		}

		v, err := p.parseValue()
		if err != nil {
			return null, err
		}
		members[key] = v
		if err := p.skipComments(); err != nil {
			return null, err
		}

		if p.eof {
			break
		}
		switch p.ch {
		case '}':
			p.advance()
			return Value{kind: ObjectKind, o: members}, nil
		case ',':
			p.advance()
			if err := p.skipComments(); err != nil {
				return null, err
			}
		default:
			return null, ErrUnexpectedCharacter
		}
	}
	return null, ErrUnexpectedEndOfJSON
}
