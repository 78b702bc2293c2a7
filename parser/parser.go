// Package parser reads JSON text into value trees.
//
// Parsing is driven by an explicit pushdown automaton, so deeply nested
// documents never grow the goroutine stack. Every syntax error is a
// *ParseError carrying the input name and the 1-based line and column of
// the offending byte.
package parser

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/oarkflow/jsondom/internal/automata"
	"github.com/oarkflow/jsondom/value"
)

const (
	DefaultName = "<input>"
	StringName  = "<str>"

	cursorWidth = 70
)

type options struct {
	logger   *log.Logger
	maxDepth int
}

type Option func(*options)

// WithLogger traces every state transition at debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMaxDepth bounds container nesting; zero means unbounded.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// Parser reads consecutive JSON values from one input.
type Parser struct {
	in   *Input
	opts options
}

func New(r io.Reader, name string, opts ...Option) *Parser {
	if name == "" {
		name = DefaultName
	}
	p := &Parser{in: NewInput(r, name)}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Location returns the position of the next unread byte.
func (p *Parser) Location() Location { return p.in.Location() }

// Parse reads exactly one value and fails if anything but whitespace
// follows it.
func (p *Parser) Parse() (value.Value, error) {
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	ctx := &Context{Input: p.in}
	ctx.skipWhitespace()
	if p.in.Peek(1) != EOF {
		return nil, ctx.fail("Unexpected trailing characters after JSON value.")
	}
	if err := ctx.readErr(); err != nil {
		return nil, err
	}
	return v, nil
}

// Next reads the next value of a stream of concatenated documents. It
// returns io.EOF once only whitespace remains.
func (p *Parser) Next() (value.Value, error) {
	ctx := &Context{Input: p.in}
	ctx.skipWhitespace()
	if p.in.Peek(1) == EOF {
		if err := ctx.readErr(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return p.value()
}

// More reports whether anything but whitespace remains in the input.
func (p *Parser) More() bool {
	ctx := &Context{Input: p.in}
	ctx.skipWhitespace()
	return p.in.Peek(1) != EOF
}

func (p *Parser) value() (value.Value, error) {
	var out value.Value
	ctx := &Context{Input: p.in, maxDepth: p.opts.maxDepth}
	m := automata.New[*Context](ctx, &valueState{out: &out})
	if p.opts.logger != nil {
		m.AddTracer(p.trace)
	}
	if err := m.RunUntilComplete(); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Parser) trace(ev automata.Event, m *machine) {
	p.opts.logger.Debug(ev.String(),
		"stack", strings.Join(m.Stack(), " > "),
		"loc", p.in.Location().String(),
		"cursor", strconv.Quote(p.in.Cursor(cursorWidth)),
	)
}

// Parse reads a single value from r.
func Parse(r io.Reader, name string, opts ...Option) (value.Value, error) {
	return New(r, name, opts...).Parse()
}

func ParseString(s string, opts ...Option) (value.Value, error) {
	return Parse(strings.NewReader(s), StringName, opts...)
}

func ParseBytes(b []byte, opts ...Option) (value.Value, error) {
	return Parse(bytes.NewReader(b), DefaultName, opts...)
}
