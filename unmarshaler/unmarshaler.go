// Package unmarshaler holds the native JSON-to-Go codec used when a
// destination has no mapping of its own.
package unmarshaler

import (
	"github.com/goccy/go-json"
)

type Unmarshaler func([]byte, any) error

var (
	unmarshaler Unmarshaler
)

func init() {
	unmarshaler = json.Unmarshal
}

func SetUnmarshaler(m Unmarshaler) {
	if m == nil {
		m = json.Unmarshal
	}
	unmarshaler = m
}

func Instance() Unmarshaler {
	return unmarshaler
}
