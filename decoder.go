package jsondom

import (
	"io"

	"github.com/oarkflow/jsondom/decoder"
)

type (
	IDecoder       = decoder.IDecoder
	DecoderFactory = decoder.Factory
)

// SetDecoder allows you to set a custom decoder factory.
func SetDecoder(factory DecoderFactory) {
	decoder.SetDecoder(factory)
}

// NewDecoder creates a new decoder using the currently set decoder factory.
func NewDecoder(r io.Reader) IDecoder {
	return decoder.NewDecoder(r)
}
