// Package jsondom reads, writes and maps dynamically typed JSON documents.
//
// Documents are trees of value.Value. Read parses text into a tree with
// located errors, Write and ToString serialize a tree, and Map / MapInto
// bind trees to Go types through the mapping package. Marshal and
// Unmarshal cover plain Go values, preferring declared or tag-derived
// mappings and falling back to the configured native codec.
package jsondom

import (
	"bytes"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/oarkflow/jsondom/mapping"
	"github.com/oarkflow/jsondom/marshaler"
	"github.com/oarkflow/jsondom/parser"
	"github.com/oarkflow/jsondom/serializer"
	"github.com/oarkflow/jsondom/unmarshaler"
	"github.com/oarkflow/jsondom/value"
)

type FormatOptions = serializer.FormatOptions

func DefaultOptions() FormatOptions { return serializer.DefaultOptions() }

// compact is the layout used wherever output is handed to other decoders.
var compact = FormatOptions{Strict: true}

// Read parses a single document from r. name labels error locations.
func Read(r io.Reader, name string, opts ...parser.Option) (value.Value, error) {
	return parser.Parse(r, name, opts...)
}

func ReadString(s string, opts ...parser.Option) (value.Value, error) {
	return parser.ParseString(s, opts...)
}

func ReadBytes(b []byte, opts ...parser.Option) (value.Value, error) {
	return parser.ParseBytes(b, opts...)
}

// ReadFile parses the file at path, using the path as the location name.
func ReadFile(path string, opts ...parser.Option) (value.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return parser.Parse(f, path, opts...)
}

// ReadAs parses a document and extracts its root as a T.
func ReadAs[T value.Native](r io.Reader, name string, opts ...parser.Option) (T, error) {
	v, err := Read(r, name, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return value.Get[T](v)
}

func Write(w io.Writer, v value.Value, opts FormatOptions) error {
	return serializer.Serialize(w, v, opts)
}

func WriteFile(path string, v value.Value, opts FormatOptions) error {
	b := serializer.New(opts).Append(nil, v)
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

func ToString(v value.Value, opts FormatOptions) string {
	return serializer.ToString(v, opts)
}

// Valid reports whether b holds exactly one well-formed document.
func Valid(b []byte) bool {
	_, err := parser.ParseBytes(b)
	return err == nil
}

// Is is a cheap shape check: s must be an object or array whose brackets
// balance outside string literals. It does not validate the content.
func Is(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return false
	}
	if s[0] != '{' && s[0] != '[' {
		return false
	}
	if s[len(s)-1] != '}' && s[len(s)-1] != ']' {
		return false
	}
	const maxDepth = 1024
	var stack [maxDepth]byte
	sp := 0

	for i := 0; i < len(s); i++ {
		char := s[i]
		switch char {
		case '{', '[':
			if sp >= maxDepth {
				return false
			}
			stack[sp] = char
			sp++
		case '}', ']':
			if sp == 0 {
				return false
			}
			sp--
			opening := stack[sp]
			if (char == '}' && opening != '{') || (char == ']' && opening != '[') {
				return false
			}
		case '"':
			i++
			for i < len(s) && s[i] != '"' {
				if s[i] == '\\' {
					i++
				}
				i++
			}
			if i >= len(s) {
				return false
			}
		}
	}
	return sp == 0
}

// Map converts a self-mapping value to an Object.
func Map(m mapping.Mappable) (*value.Object, error) {
	return mapping.To(m)
}

// MapInto stores obj into a self-mapping value.
func MapInto(m mapping.Mappable, obj *value.Object) error {
	return mapping.Into(m, obj)
}

// FromNative converts a Go value to a Value. Values pass through, Mappable
// types use their mapping, and anything else goes through the configured
// marshaler and the parser.
func FromNative(x any) (value.Value, error) {
	switch t := x.(type) {
	case value.Value:
		return t, nil
	case mapping.Mappable:
		obj, err := mapping.To(t)
		if err != nil {
			return nil, err
		}
		return obj, nil
	}
	b, err := marshaler.Instance()(x)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s", typeName(x))
	}
	return parser.Parse(bytes.NewReader(b), typeName(x))
}

// ToNative stores v into dst, which must be a non-nil pointer.
func ToNative(v value.Value, dst any) error {
	if err := checkPointer(dst); err != nil {
		return err
	}
	switch t := dst.(type) {
	case *value.Value:
		*t = v
		return nil
	case mapping.Mappable:
		if obj, ok := v.(*value.Object); ok {
			return mapping.Into(t, obj)
		}
	}
	b := serializer.New(compact).Append(nil, v)
	if err := unmarshaler.Instance()(b, dst); err != nil {
		return errors.Wrapf(err, "unmarshal into %s", typeName(dst))
	}
	return nil
}

// Marshal encodes x as compact JSON. Values and Mappable types are
// serialized directly, struct pointers through a tag-derived mapping, and
// everything else with the configured marshaler.
func Marshal(x any) ([]byte, error) {
	v, err := mapped(x)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return marshaler.Instance()(x)
	}
	return serializer.New(compact).Append(nil, v), nil
}

func mapped(x any) (value.Value, error) {
	switch t := x.(type) {
	case value.Value:
		return t, nil
	case mapping.Mappable:
		return FromNative(t)
	}
	return autoToJSON(x)
}

// Unmarshal decodes data into dst, mirroring Marshal.
func Unmarshal(data []byte, dst any) error {
	if err := checkPointer(dst); err != nil {
		return err
	}
	switch t := dst.(type) {
	case *value.Value:
		v, err := parser.ParseBytes(data)
		if err != nil {
			return err
		}
		*t = v
		return nil
	case mapping.Mappable:
		obj, err := readObject(data)
		if err != nil {
			return err
		}
		return mapping.Into(t, obj)
	}
	ok, err := autoFromJSON(data, dst)
	if ok || err != nil {
		return err
	}
	return unmarshaler.Instance()(data, dst)
}

func readObject(data []byte) (*value.Object, error) {
	v, err := parser.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	return value.Ref[*value.Object](v)
}

func checkPointer(dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.Errorf("dst is not a non-nil pointer: %s", typeName(dst))
	}
	return nil
}
