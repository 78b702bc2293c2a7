package parser

import (
	"bufio"
	"io"
)

// EOF is returned by Peek and Getc once the input is exhausted.
const EOF = -1

// Input is a byte reader with arbitrary lookahead that tracks the 1-based
// line and column of the next unread byte.
type Input struct {
	r    *bufio.Reader
	name string
	buf  []byte
	line int
	col  int
	err  error
}

func NewInput(r io.Reader, name string) *Input {
	return &Input{r: bufio.NewReader(r), name: name, line: 1, col: 1}
}

func (in *Input) Name() string { return in.name }

func (in *Input) Location() Location {
	return Location{Name: in.name, Line: in.line, Col: in.col}
}

// Err returns the first read error other than io.EOF.
func (in *Input) Err() error { return in.err }

func (in *Input) fill(n int) bool {
	for len(in.buf) < n {
		if in.err != nil {
			return false
		}
		b, err := in.r.ReadByte()
		if err != nil {
			if err != io.EOF {
				in.err = err
			}
			return false
		}
		in.buf = append(in.buf, b)
	}
	return true
}

// Peek returns the byte offset positions ahead without consuming it;
// Peek(1) is the next byte.
func (in *Input) Peek(offset int) int {
	if offset < 1 || !in.fill(offset) {
		return EOF
	}
	return int(in.buf[offset-1])
}

// Getc consumes and returns the next byte.
func (in *Input) Getc() int {
	c := in.Peek(1)
	if c == EOF {
		return EOF
	}
	in.buf = in.buf[1:]
	if c == '\n' {
		in.line++
		in.col = 1
	} else {
		in.col++
	}
	return c
}

func (in *Input) Advance(n int) {
	for ; n > 0; n-- {
		if in.Getc() == EOF {
			return
		}
	}
}

// ScanEq reports whether the upcoming bytes equal s.
func (in *Input) ScanEq(s string) bool {
	for i := 0; i < len(s); i++ {
		if in.Peek(i+1) != int(s[i]) {
			return false
		}
	}
	return true
}

// ScanEqAdvance consumes s if the upcoming bytes equal it.
func (in *Input) ScanEqAdvance(s string) bool {
	if !in.ScanEq(s) {
		return false
	}
	in.Advance(len(s))
	return true
}

// Cursor returns up to n upcoming bytes without consuming them.
func (in *Input) Cursor(n int) string {
	in.fill(n)
	if len(in.buf) < n {
		n = len(in.buf)
	}
	return string(in.buf[:n])
}
