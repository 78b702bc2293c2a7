package jsondom

import (
	"github.com/oarkflow/jsondom/parser"
	"github.com/oarkflow/jsondom/serializer"
	"github.com/oarkflow/jsondom/value"
)

// Document embeds a value tree in structs handled by other JSON codecs.
// A nil Value marshals as null.
type Document struct {
	Value value.Value
}

func (d Document) MarshalJSON() ([]byte, error) {
	if d.Value == nil {
		return []byte("null"), nil
	}
	return serializer.New(compact).Append(nil, d.Value), nil
}

func (d *Document) UnmarshalJSON(b []byte) error {
	v, err := parser.ParseBytes(b)
	if err != nil {
		return err
	}
	d.Value = v
	return nil
}
