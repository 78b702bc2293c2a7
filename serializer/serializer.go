// Package serializer writes value trees as JSON text.
package serializer

import (
	"io"
	"math"
	"strconv"
	"sync"

	"github.com/oarkflow/jsondom/value"
)

// FormatOptions controls the layout of serialized output.
type FormatOptions struct {
	// Pretty puts every member on its own line, indented by Indent spaces
	// per nesting level.
	Pretty bool `yaml:"pretty"`
	// Spacing adds a space after ',' and ':' in compact output.
	Spacing  bool `yaml:"spacing"`
	SortKeys bool `yaml:"sort_keys"`
	Indent   int  `yaml:"indent"`
	// Strict restricts string escapes to those every RFC 8259 decoder
	// understands.
	Strict bool `yaml:"strict"`
}

func DefaultOptions() FormatOptions {
	return FormatOptions{Spacing: true, Indent: 4}
}

// Serializer appends the JSON text of values to byte slices.
type Serializer struct {
	opts FormatOptions
}

func New(opts FormatOptions) *Serializer {
	if opts.Indent < 0 {
		opts.Indent = 0
	}
	return &Serializer{opts: opts}
}

func (s *Serializer) Options() FormatOptions { return s.opts }

// Append writes v to dst and returns the extended slice. A nil v, or a
// nil *Object or *Array, is written as null.
func (s *Serializer) Append(dst []byte, v value.Value) []byte {
	return s.append(dst, v, 0)
}

func (s *Serializer) append(dst []byte, v value.Value, depth int) []byte {
	switch value.TypeOf(v) {
	case value.TypeBoolean:
		if v.(*value.Boolean).Bool() {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case value.TypeNumber:
		return appendNumber(dst, v.(*value.Number).Float64())
	case value.TypeString:
		return AppendQuote(dst, v.(*value.String).Text(), s.opts.Strict)
	case value.TypeArray:
		return s.appendArray(dst, v.(*value.Array), depth)
	case value.TypeObject:
		return s.appendObject(dst, v.(*value.Object), depth)
	}
	return append(dst, "null"...)
}

func (s *Serializer) appendArray(dst []byte, a *value.Array, depth int) []byte {
	dst = append(dst, '[')
	if a.Empty() {
		return append(dst, ']')
	}
	n := a.Len()
	for i, v := range a.All() {
		dst = s.newline(dst, depth+1)
		dst = s.append(dst, v, depth+1)
		if i+1 < n {
			dst = s.comma(dst)
		}
	}
	dst = s.newline(dst, depth)
	return append(dst, ']')
}

func (s *Serializer) appendObject(dst []byte, o *value.Object, depth int) []byte {
	dst = append(dst, '{')
	if o.Empty() {
		return append(dst, '}')
	}
	keys := o.Keys()
	if s.opts.SortKeys {
		keys = o.SortedKeys()
	}
	for i, k := range keys {
		v, _ := o.Lookup(k)
		dst = s.newline(dst, depth+1)
		dst = AppendQuote(dst, k, s.opts.Strict)
		dst = append(dst, ':')
		if s.opts.Pretty || s.opts.Spacing {
			dst = append(dst, ' ')
		}
		dst = s.append(dst, v, depth+1)
		if i+1 < len(keys) {
			dst = s.comma(dst)
		}
	}
	dst = s.newline(dst, depth)
	return append(dst, '}')
}

func (s *Serializer) newline(dst []byte, depth int) []byte {
	if !s.opts.Pretty {
		return dst
	}
	dst = append(dst, '\n')
	for i := 0; i < depth*s.opts.Indent; i++ {
		dst = append(dst, ' ')
	}
	return dst
}

func (s *Serializer) comma(dst []byte) []byte {
	dst = append(dst, ',')
	if s.opts.Spacing && !s.opts.Pretty {
		dst = append(dst, ' ')
	}
	return dst
}

// appendNumber uses the shortest representation that parses back to f.
// JSON has no spelling for NaN or infinities, so they become null.
func appendNumber(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	return strconv.AppendFloat(dst, f, 'g', -1, 64)
}

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 4096)
		return &b
	},
}

// Serialize writes v to w.
func Serialize(w io.Writer, v value.Value, opts FormatOptions) error {
	bp := bufPool.Get().(*[]byte)
	buf := New(opts).Append((*bp)[:0], v)
	_, err := w.Write(buf)
	*bp = buf
	bufPool.Put(bp)
	return err
}

func ToString(v value.Value, opts FormatOptions) string {
	bp := bufPool.Get().(*[]byte)
	buf := New(opts).Append((*bp)[:0], v)
	s := string(buf)
	*bp = buf
	bufPool.Put(bp)
	return s
}
