package jsondom

import (
	"github.com/oarkflow/jsondom/unmarshaler"
)

type Unmarshaler = unmarshaler.Unmarshaler

// SetUnmarshaler replaces the native codec behind Unmarshal and ToNative.
func SetUnmarshaler(m Unmarshaler) {
	unmarshaler.SetUnmarshaler(m)
}
