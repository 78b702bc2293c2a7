package encoder

import (
	"io"

	"github.com/oarkflow/jsondom/serializer"
	"github.com/oarkflow/jsondom/value"
)

type IEncoder interface {
	Encode(value.Value) error
	SetOptions(serializer.FormatOptions)
}

type Factory func(io.Writer) IEncoder

var encoderFactory Factory

// Initialize the package with the built-in serializer-backed encoder.
func init() {
	encoderFactory = defaultFactory
}

func defaultFactory(w io.Writer) IEncoder {
	return New(w)
}

// SetEncoder allows you to set a custom encoder factory. A nil factory
// restores the default.
func SetEncoder(factory Factory) {
	if factory == nil {
		factory = defaultFactory
	}
	encoderFactory = factory
}

// NewEncoder creates a new encoder using the currently set encoder factory.
func NewEncoder(w io.Writer) IEncoder {
	return encoderFactory(w)
}

func Instance() Factory {
	return encoderFactory
}
