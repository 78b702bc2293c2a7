package jsondom

import (
	"github.com/oarkflow/jsondom/marshaler"
)

type Marshaler = marshaler.Marshaler

// SetMarshaler replaces the native codec behind Marshal and FromNative.
// A nil marshaler restores goccy/go-json.
func SetMarshaler(m Marshaler) {
	marshaler.SetMarshaler(m)
}
