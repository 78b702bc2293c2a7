// Package marshaler holds the native Go-to-JSON codec used when a Go value
// has no mapping of its own.
package marshaler

import (
	"github.com/goccy/go-json"
)

type Marshaler func(any) ([]byte, error)

var (
	marshaler Marshaler
)

func init() {
	marshaler = json.Marshal
}

func SetMarshaler(m Marshaler) {
	if m == nil {
		m = json.Marshal
	}
	marshaler = m
}

func Instance() Marshaler {
	return marshaler
}
