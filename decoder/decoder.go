// Package decoder reads a stream of concatenated or newline-delimited JSON
// documents.
package decoder

import (
	"io"

	"github.com/oarkflow/jsondom/parser"
	"github.com/oarkflow/jsondom/value"
)

type Decoder struct {
	p *parser.Parser
}

// New returns a Decoder reading from r. name labels parse error locations
// and defaults to parser.DefaultName.
func New(r io.Reader, name string, opts ...parser.Option) *Decoder {
	return &Decoder{p: parser.New(r, name, opts...)}
}

// Decode returns the next document, or io.EOF at the end of the stream.
func (d *Decoder) Decode() (value.Value, error) {
	return d.p.Next()
}

func (d *Decoder) More() bool { return d.p.More() }
