// Package encoder writes a stream of JSON documents, one per line.
package encoder

import (
	"io"

	"github.com/oarkflow/jsondom/serializer"
	"github.com/oarkflow/jsondom/value"
)

// Encoder writes each value followed by a newline. The write buffer is
// reused between calls.
type Encoder struct {
	w   io.Writer
	ser *serializer.Serializer
	buf []byte
}

func New(w io.Writer) *Encoder {
	return &Encoder{
		w:   w,
		ser: serializer.New(serializer.DefaultOptions()),
		buf: make([]byte, 0, 4096),
	}
}

func (e *Encoder) SetOptions(opts serializer.FormatOptions) {
	e.ser = serializer.New(opts)
}

func (e *Encoder) Encode(v value.Value) error {
	e.buf = e.ser.Append(e.buf[:0], v)
	e.buf = append(e.buf, '\n')
	_, err := e.w.Write(e.buf)
	return err
}
