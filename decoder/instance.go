package decoder

import (
	"io"

	"github.com/oarkflow/jsondom/value"
)

type IDecoder interface {
	Decode() (value.Value, error)
	More() bool
}

type Factory func(io.Reader) IDecoder

var decoderFactory Factory

// Initialize the package with the built-in parser-backed decoder.
func init() {
	decoderFactory = defaultFactory
}

func defaultFactory(r io.Reader) IDecoder {
	return New(r, "")
}

// SetDecoder allows you to set a custom decoder factory. A nil factory
// restores the default.
func SetDecoder(factory Factory) {
	if factory == nil {
		factory = defaultFactory
	}
	decoderFactory = factory
}

// NewDecoder creates a new decoder using the currently set decoder factory.
func NewDecoder(r io.Reader) IDecoder {
	return decoderFactory(r)
}

func Instance() Factory {
	return decoderFactory
}
