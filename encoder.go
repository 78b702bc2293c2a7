package jsondom

import (
	"io"

	"github.com/oarkflow/jsondom/encoder"
)

type (
	IEncoder       = encoder.IEncoder
	EncoderFactory = encoder.Factory
)

// SetEncoder allows you to set a custom encoder factory.
func SetEncoder(factory EncoderFactory) {
	encoder.SetEncoder(factory)
}

// NewEncoder creates a new encoder using the currently set encoder factory.
func NewEncoder(w io.Writer) IEncoder {
	return encoder.NewEncoder(w)
}
