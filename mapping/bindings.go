package mapping

import (
	"fmt"
	"time"

	"github.com/oarkflow/date"

	"github.com/oarkflow/jsondom/value"
)

type fieldMapping[T value.Native] struct {
	base
	ptr *T
}

// Field binds name to the variable at ptr.
func Field[T value.Native](name string, ptr *T, opts ...Option) Mapping {
	return &fieldMapping[T]{base: newBase(name, opts), ptr: ptr}
}

func (f *fieldMapping[T]) Get() (value.Value, error) { return value.Of(*f.ptr), nil }

func (f *fieldMapping[T]) Set(v value.Value) error {
	x, err := value.Get[T](v)
	if err != nil {
		return f.mismatch(v)
	}
	*f.ptr = x
	return nil
}

type propertyMapping[T value.Native] struct {
	base
	get func() T
	set func(T)
}

// Property binds name to an accessor pair, typically method values.
func Property[T value.Native](name string, get func() T, set func(T), opts ...Option) Mapping {
	return &propertyMapping[T]{base: newBase(name, opts), get: get, set: set}
}

func (p *propertyMapping[T]) Get() (value.Value, error) { return value.Of(p.get()), nil }

func (p *propertyMapping[T]) Set(v value.Value) error {
	x, err := value.Get[T](v)
	if err != nil {
		return p.mismatch(v)
	}
	p.set(x)
	return nil
}

type nestedMapping[T any, PT interface {
	*T
	Mappable
}] struct {
	base
	ptr *T
}

// Nested binds name to a value that maps itself. Reading requires a JSON
// object and applies the nested mapper to it.
func Nested[T any, PT interface {
	*T
	Mappable
}](name string, ptr *T, opts ...Option) Mapping {
	return &nestedMapping[T, PT]{base: newBase(name, opts), ptr: ptr}
}

func (n *nestedMapping[T, PT]) Get() (value.Value, error) {
	obj, err := PT(n.ptr).MapJSON().MapToJSON()
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (n *nestedMapping[T, PT]) Set(v value.Value) error {
	obj, ok := v.(*value.Object)
	if !ok {
		return &value.TypeError{
			Key:     n.name,
			Message: fmt.Sprintf("Can't apply non-object mapping to %q object.", n.name),
		}
	}
	return PT(n.ptr).MapJSON().Bind(obj)
}

type sliceMapping[T value.Native] struct {
	base
	ptr *[]T
}

// Slice binds name to a slice of natives. A JSON null reads as a nil slice.
func Slice[T value.Native](name string, ptr *[]T, opts ...Option) Mapping {
	return &sliceMapping[T]{base: newBase(name, opts), ptr: ptr}
}

func (s *sliceMapping[T]) Get() (value.Value, error) {
	if *s.ptr == nil {
		return value.NewNull(), nil
	}
	return value.ArrayOf(*s.ptr...), nil
}

func (s *sliceMapping[T]) Set(v value.Value) error {
	switch x := v.(type) {
	case *value.Null:
		*s.ptr = nil
		return nil
	case *value.Array:
		xs, err := value.ArrayExtract[T](x)
		if err != nil {
			return s.elementMismatch(err)
		}
		*s.ptr = xs
		return nil
	}
	return s.mismatch(v)
}

func (b *base) elementMismatch(err error) error {
	return &value.TypeError{
		Key:     b.name,
		Message: fmt.Sprintf("Can't save elements to the %q field mapping: %v", b.name, err),
	}
}

type mapMapping[T value.Native] struct {
	base
	ptr *map[string]T
}

// Map binds name to a string-keyed map of natives.
func Map[T value.Native](name string, ptr *map[string]T, opts ...Option) Mapping {
	return &mapMapping[T]{base: newBase(name, opts), ptr: ptr}
}

func (m *mapMapping[T]) Get() (value.Value, error) {
	if *m.ptr == nil {
		return value.NewNull(), nil
	}
	return value.ObjectOf(*m.ptr), nil
}

func (m *mapMapping[T]) Set(v value.Value) error {
	switch x := v.(type) {
	case *value.Null:
		*m.ptr = nil
		return nil
	case *value.Object:
		xs, err := value.ObjectExtract[T](x)
		if err != nil {
			return m.elementMismatch(err)
		}
		*m.ptr = xs
		return nil
	}
	return m.mismatch(v)
}

type timeMapping struct {
	base
	ptr *time.Time
}

// Time binds name to a time.Time. Times are written as RFC 3339 with
// nanoseconds; any layout the date parser recognises is accepted on read.
func Time(name string, ptr *time.Time, opts ...Option) Mapping {
	return &timeMapping{base: newBase(name, opts), ptr: ptr}
}

func (t *timeMapping) Get() (value.Value, error) {
	return value.NewString(t.ptr.Format(time.RFC3339Nano)), nil
}

func (t *timeMapping) Set(v value.Value) error {
	tm, err := parseTime(t.name, v)
	if err != nil {
		return err
	}
	*t.ptr = tm
	return nil
}

func parseTime(name string, v value.Value) (time.Time, error) {
	s, err := value.Get[string](v)
	if err != nil {
		return time.Time{}, &value.TypeError{
			Key:     name,
			Message: fmt.Sprintf("Can't save value of type %s to the %q time mapping.", value.TypeOf(v), name),
		}
	}
	tm, err := date.Parse(s)
	if err != nil {
		return time.Time{}, &value.TypeError{
			Key:     name,
			Message: fmt.Sprintf("Can't parse %q as a time for the %q mapping: %v", s, name, err),
		}
	}
	return tm, nil
}

type rawMapping struct {
	base
	ptr *value.Value
}

// Raw binds name to an untyped Value handle.
func Raw(name string, ptr *value.Value, opts ...Option) Mapping {
	return &rawMapping{base: newBase(name, opts), ptr: ptr}
}

func (r *rawMapping) Get() (value.Value, error) {
	if *r.ptr == nil {
		return value.NewNull(), nil
	}
	return *r.ptr, nil
}

func (r *rawMapping) Set(v value.Value) error {
	*r.ptr = v
	return nil
}
