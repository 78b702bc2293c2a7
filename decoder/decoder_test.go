package decoder

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/jsondom/parser"
	"github.com/oarkflow/jsondom/value"
)

func TestDecodeStream(t *testing.T) {
	dec := NewDecoder(strings.NewReader("{\"a\": 1}\n{\"a\": 2}\n"))

	var sum int
	for dec.More() {
		v, err := dec.Decode()
		require.NoError(t, err)
		n, err := value.ObjectGet[int](v.(*value.Object), "a")
		require.NoError(t, err)
		sum += n
	}
	assert.Equal(t, 3, sum)

	_, err := dec.Decode()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestDecodeError(t *testing.T) {
	dec := New(strings.NewReader("[1]\n[2,,]"), "events.ndjson")
	_, err := dec.Decode()
	require.NoError(t, err)

	_, err = dec.Decode()
	pe, ok := parser.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, "events.ndjson", pe.Location.Name)
	assert.Equal(t, 2, pe.Location.Line)
}

type fixedDecoder struct{ done bool }

func (f *fixedDecoder) Decode() (value.Value, error) {
	if f.done {
		return nil, io.EOF
	}
	f.done = true
	return value.NewBoolean(true), nil
}

func (f *fixedDecoder) More() bool { return !f.done }

func TestSetDecoder(t *testing.T) {
	defer SetDecoder(nil)

	SetDecoder(func(io.Reader) IDecoder { return &fixedDecoder{} })
	v, err := NewDecoder(strings.NewReader("ignored")).Decode()
	require.NoError(t, err)
	assert.Equal(t, value.TypeBoolean, v.Type())

	SetDecoder(nil)
	_, ok := NewDecoder(strings.NewReader("")).(*Decoder)
	assert.True(t, ok)
}
