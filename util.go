package jsondom

import (
	"github.com/goccy/go-reflect"
	"github.com/pkg/errors"

	"github.com/oarkflow/jsondom/mapping"
	"github.com/oarkflow/jsondom/value"
)

type (
	jsonMarshaler   interface{ MarshalJSON() ([]byte, error) }
	jsonUnmarshaler interface{ UnmarshalJSON([]byte) error }
)

func typeName(x any) string {
	if x == nil {
		return "nil"
	}
	return reflect.TypeOf(x).String()
}

// autoStruct reports whether x is a non-nil pointer to a struct other than
// a Value.
func autoStruct(x any) bool {
	if _, ok := x.(value.Value); ok {
		return false
	}
	rv := reflect.ValueOf(x)
	return rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
}

// autoToJSON maps a struct pointer through its tags. It returns a nil
// Value when x should go to the native marshaler instead.
func autoToJSON(x any) (value.Value, error) {
	if _, ok := x.(jsonMarshaler); ok || !autoStruct(x) {
		return nil, nil
	}
	m, err := mapping.Reflect(x)
	if errors.Is(err, mapping.ErrUnsupported) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	obj, err := m.MapToJSON()
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// autoFromJSON is the inverse of autoToJSON. ok is false when dst should
// go to the native unmarshaler instead.
func autoFromJSON(data []byte, dst any) (ok bool, err error) {
	if _, ok := dst.(jsonUnmarshaler); ok || !autoStruct(dst) {
		return false, nil
	}
	m, err := mapping.Reflect(dst)
	if errors.Is(err, mapping.ErrUnsupported) {
		return false, nil
	}
	if err != nil {
		return true, err
	}
	obj, err := readObject(data)
	if err != nil {
		return true, err
	}
	return true, m.Bind(obj)
}
