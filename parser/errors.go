package parser

import (
	"errors"
	"fmt"

	"github.com/oarkflow/jsondom/value"
)

var ErrParse = fmt.Errorf("%w: parse error", value.ErrJSON)

// Location is a 1-based position in a named input.
type Location struct {
	Name string
	Line int
	Col  int
}

func (l Location) String() string {
	return fmt.Sprintf("%s, line %d, col %d", l.Name, l.Line, l.Col)
}

// ParseError is a syntax error located at the byte the parser was looking
// at when it failed.
type ParseError struct {
	Message  string
	Location Location
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Location)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse || target == value.ErrJSON
}

// AsParseError unwraps err to a *ParseError if it holds one.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	ok := errors.As(err, &pe)
	return pe, ok
}
