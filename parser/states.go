package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/oarkflow/jsondom/internal/automata"
	"github.com/oarkflow/jsondom/value"
)

type machine = automata.Machine[*Context]

// Context is the state shared by every parser state during one parse.
type Context struct {
	Input    *Input
	maxDepth int
	depth    int
}

func (c *Context) fail(msg string) error {
	return c.failAt(msg, c.Input.Location())
}

// failAt reports a syntax error at loc, unless the input failed to read,
// in which case the read error wins.
func (c *Context) failAt(msg string, loc Location) error {
	if err := c.readErr(); err != nil {
		return err
	}
	return &ParseError{Message: msg, Location: loc}
}

func (c *Context) readErr() error {
	if err := c.Input.Err(); err != nil {
		return errors.Wrapf(err, "read %s", c.Input.Name())
	}
	return nil
}

func (c *Context) skipWhitespace() {
	for isSpace(c.Input.Peek(1)) {
		c.Input.Advance(1)
	}
}

func (c *Context) enter() error {
	if c.maxDepth > 0 && c.depth >= c.maxDepth {
		return c.fail(fmt.Sprintf("Maximum nesting depth of %d exceeded.", c.maxDepth))
	}
	c.depth++
	return nil
}

func (c *Context) leave() { c.depth-- }

func isSpace(c int) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c int) bool { return c >= '0' && c <= '9' }

func isNumberChar(c int) bool {
	return isDigit(c) || c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E'
}

type valueState struct {
	out *value.Value
}

func (*valueState) Name() string { return "ValueState" }

func (s *valueState) Run(m *machine) error {
	c := m.Context()
	c.skipWhitespace()
	in := c.Input

	switch ch := in.Peek(1); {
	case ch == '{':
		if err := c.enter(); err != nil {
			return err
		}
		obj := value.NewObject()
		*s.out = obj
		in.Advance(1)
		return m.Transition(&objectState{obj: obj})
	case ch == '[':
		if err := c.enter(); err != nil {
			return err
		}
		arr := value.NewArray()
		*s.out = arr
		in.Advance(1)
		return m.Transition(&arrayState{arr: arr})
	case ch == '"':
		str, err := parseLiteral(c)
		if err != nil {
			return err
		}
		*s.out = value.NewString(str)
	case ch == '-' || ch == '.' || isDigit(ch):
		f, err := parseNumber(c)
		if err != nil {
			return err
		}
		*s.out = value.NewNumber(f)
	case in.ScanEqAdvance("true"):
		*s.out = value.NewBoolean(true)
	case in.ScanEqAdvance("false"):
		*s.out = value.NewBoolean(false)
	case in.ScanEqAdvance("null"):
		*s.out = value.NewNull()
	case ch == EOF:
		return c.fail("Unexpected end of input while parsing value.")
	default:
		return c.fail("Unexpected character in value expression.")
	}
	return m.Pop()
}

type objectState struct {
	obj *value.Object
}

func (*objectState) Name() string { return "ObjectState" }

func (s *objectState) Run(m *machine) error {
	c := m.Context()
	c.skipWhitespace()

	switch c.Input.Peek(1) {
	case '}':
		c.Input.Advance(1)
		c.leave()
		return m.Pop()
	case EOF:
		return c.fail("Unexpected end of input while parsing object.")
	}
	m.Push(&objectValueState{obj: s.obj})
	return nil
}

type memberPhase uint8

const (
	phaseKey memberPhase = iota
	phaseColon
	phaseCommit
)

// objectValueState reads one "key": value member and the separator after it.
type objectValueState struct {
	obj   *value.Object
	phase memberPhase
	key   string
	val   value.Value
}

func (*objectValueState) Name() string { return "ObjectValueState" }

func (s *objectValueState) Run(m *machine) error {
	c := m.Context()
	c.skipWhitespace()
	in := c.Input

	switch s.phase {
	case phaseKey:
		switch in.Peek(1) {
		case '"':
		case EOF:
			return c.fail("Unexpected end of input while parsing object.")
		default:
			return c.fail("Expected string literal for object key.")
		}
		key, err := parseLiteral(c)
		if err != nil {
			return err
		}
		s.key, s.phase = key, phaseColon
		return nil

	case phaseColon:
		if in.Peek(1) != ':' {
			return c.fail("Missing colon between object key and value.")
		}
		in.Advance(1)
		s.phase = phaseCommit
		m.Push(&valueState{out: &s.val})
		return nil
	}

	s.obj.Put(s.key, s.val)
	switch in.Peek(1) {
	case ',':
		in.Advance(1)
		return m.Transition(&objectValueState{obj: s.obj})
	case '}':
		return m.Pop()
	case EOF:
		return c.fail("Unexpected end of input while parsing object.")
	}
	return c.fail("Missing comma between object values.")
}

type arrayState struct {
	arr *value.Array
}

func (*arrayState) Name() string { return "ArrayState" }

func (s *arrayState) Run(m *machine) error {
	c := m.Context()
	c.skipWhitespace()

	switch c.Input.Peek(1) {
	case ']':
		c.Input.Advance(1)
		c.leave()
		return m.Pop()
	case EOF:
		return c.fail("Unexpected end of input while parsing array.")
	}
	m.Push(&arrayValueState{arr: s.arr})
	return nil
}

type arrayValueState struct {
	arr     *value.Array
	val     value.Value
	started bool
}

func (*arrayValueState) Name() string { return "ArrayValueState" }

func (s *arrayValueState) Run(m *machine) error {
	c := m.Context()
	c.skipWhitespace()
	in := c.Input

	if !s.started {
		s.started = true
		m.Push(&valueState{out: &s.val})
		return nil
	}

	s.arr.Append(s.val)
	switch in.Peek(1) {
	case ',':
		in.Advance(1)
		return m.Transition(&arrayValueState{arr: s.arr})
	case ']':
		return m.Pop()
	case EOF:
		return c.fail("Unexpected end of input while parsing array.")
	}
	return c.fail("Missing comma between array values.")
}

var escapes = map[int]byte{
	'a':  '\a',
	'b':  '\b',
	'e':  0x1b,
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'"':  '"',
	'\\': '\\',
	'/':  '/',
}

// parseLiteral reads a double-quoted string literal. Raw bytes, including
// control characters, are copied through unchanged.
func parseLiteral(c *Context) (string, error) {
	in := c.Input
	if in.Getc() != '"' {
		return "", c.fail("Input is not a string literal.")
	}

	var sb strings.Builder
	for {
		ch := in.Getc()
		switch ch {
		case EOF:
			return "", c.fail("Unterminated string literal.")
		case '"':
			return sb.String(), nil
		case '\\':
		default:
			sb.WriteByte(byte(ch))
			continue
		}

		esc := in.Getc()
		if b, ok := escapes[esc]; ok {
			sb.WriteByte(b)
			continue
		}
		switch esc {
		case EOF:
			return "", c.fail("Unterminated string literal.")
		case 'x':
			hi, lo := in.Getc(), in.Getc()
			if hi == EOF || lo == EOF {
				return "", c.fail("Unexpected end of input while parsing '\\x' escape sequence.")
			}
			b, err := strconv.ParseUint(string([]byte{byte(hi), byte(lo)}), 16, 8)
			if err != nil {
				return "", c.fail("Malformed hexadecimal number in '\\x' escape sequence.")
			}
			sb.WriteByte(byte(b))
		case 'u':
			r, err := parseUnicode(c)
			if err != nil {
				return "", err
			}
			var buf [utf8.UTFMax]byte
			sb.Write(buf[:utf8.EncodeRune(buf[:], r)])
		default:
			return "", c.fail(fmt.Sprintf("Unknown escape sequence '\\%c' in string literal.", rune(esc)))
		}
	}
}

// parseUnicode reads the hex digits of a \u escape, joining a surrogate
// pair into one rune.
func parseUnicode(c *Context) (rune, error) {
	r1, ok := hex4(c.Input)
	if !ok {
		return 0, c.fail("Malformed '\\u' escape sequence.")
	}
	if !utf16.IsSurrogate(r1) {
		return r1, nil
	}
	if !c.Input.ScanEqAdvance("\\u") {
		return 0, c.fail("Malformed '\\u' escape sequence.")
	}
	r2, ok := hex4(c.Input)
	if !ok {
		return 0, c.fail("Malformed '\\u' escape sequence.")
	}
	r := utf16.DecodeRune(r1, r2)
	if r == utf8.RuneError {
		return 0, c.fail("Malformed '\\u' escape sequence.")
	}
	return r, nil
}

func hex4(in *Input) (rune, bool) {
	var r rune
	for i := 0; i < 4; i++ {
		ch := in.Getc()
		r <<= 4
		switch {
		case ch >= '0' && ch <= '9':
			r |= rune(ch - '0')
		case ch >= 'a' && ch <= 'f':
			r |= rune(ch - 'a' + 10)
		case ch >= 'A' && ch <= 'F':
			r |= rune(ch - 'A' + 10)
		default:
			return 0, false
		}
	}
	return r, true
}

// parseNumber greedily consumes number characters and converts them as a
// double. Errors are reported at the first byte of the literal.
func parseNumber(c *Context) (float64, error) {
	loc := c.Input.Location()
	var sb strings.Builder
	for isNumberChar(c.Input.Peek(1)) {
		sb.WriteByte(byte(c.Input.Getc()))
	}
	f, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return 0, c.failAt("Malformed double precision value.", loc)
	}
	return f, nil
}
