// Package mapping binds Go values to JSON objects.
//
// A Mapper holds an ordered list of Mappings, each tying one JSON key to a
// field or accessor pair of a Go value. Mappers are cheap and meant to be
// built on demand, usually from a MapJSON method:
//
//	func (p *Person) MapJSON() mapping.Binder {
//		return mapping.New(p).Add(
//			mapping.Field("name", &p.Name, mapping.Required()),
//			mapping.Field("age", &p.Age),
//		)
//	}
package mapping

import (
	"fmt"

	"github.com/oarkflow/jsondom/value"
)

// Mapping is a named binding between a JSON key and a Go location.
type Mapping interface {
	Name() string
	Required() bool
	// Get reads the bound location as a Value.
	Get() (value.Value, error)
	// Set stores v in the bound location. It fails with a *value.TypeError
	// when v does not have the bound type.
	Set(v value.Value) error
}

// Binder is the type-erased side of a Mapper, used to nest mappers of
// different types.
type Binder interface {
	MapToJSON() (*value.Object, error)
	Bind(obj *value.Object) error
}

// Mappable is implemented by types that describe their own JSON layout.
type Mappable interface {
	MapJSON() Binder
}

type base struct {
	name     string
	required bool
}

func (b *base) Name() string { return b.name }
func (b *base) Required() bool { return b.required }

func newBase(name string, opts []Option) base {
	b := base{name: name}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// mismatch is the error for a value that cannot be stored in a binding.
func (b *base) mismatch(v value.Value) error {
	return &value.TypeError{
		Key:     b.name,
		Message: fmt.Sprintf("Can't save value of type %s to the %q field mapping.", value.TypeOf(v), b.name),
	}
}

type Option func(*base)

// Required makes MapFromJSON fail when the key is absent.
func Required() Option {
	return func(b *base) { b.required = true }
}

// Mapper maps one instance of C to and from JSON objects.
type Mapper[C any] struct {
	instance *C
	mappings []Mapping
}

func New[C any](instance *C) *Mapper[C] {
	return &Mapper[C]{instance: instance}
}

func (m *Mapper[C]) Add(mappings ...Mapping) *Mapper[C] {
	m.mappings = append(m.mappings, mappings...)
	return m
}

func (m *Mapper[C]) Instance() *C { return m.instance }

func (m *Mapper[C]) Mappings() []Mapping { return m.mappings }

// MapToJSON builds a new Object holding every binding.
func (m *Mapper[C]) MapToJSON() (*value.Object, error) {
	obj := value.NewObject()
	for _, mp := range m.mappings {
		v, err := mp.Get()
		if err != nil {
			return nil, err
		}
		obj.Put(mp.Name(), v)
	}
	return obj, nil
}

// MapFromJSON stores the members of obj into the instance. Absent optional
// keys leave their location untouched.
func (m *Mapper[C]) MapFromJSON(obj *value.Object) (*C, error) {
	for _, mp := range m.mappings {
		v, ok := obj.Lookup(mp.Name())
		if !ok {
			if mp.Required() {
				return nil, missing(mp.Name())
			}
			continue
		}
		if err := mp.Set(v); err != nil {
			return nil, err
		}
	}
	return m.instance, nil
}

func (m *Mapper[C]) Bind(obj *value.Object) error {
	_, err := m.MapFromJSON(obj)
	return err
}

func missing(name string) error {
	return &value.TypeError{
		Key:     name,
		Message: fmt.Sprintf("Missing required field %q on JSON object.", name),
	}
}

// To maps x to a new Object.
func To(x Mappable) (*value.Object, error) {
	return x.MapJSON().MapToJSON()
}

// Into stores obj into x.
func Into(x Mappable, obj *value.Object) error {
	return x.MapJSON().Bind(obj)
}

// From allocates a T and fills it from obj.
func From[T any, PT interface {
	*T
	Mappable
}](obj *value.Object) (*T, error) {
	t := new(T)
	if err := PT(t).MapJSON().Bind(obj); err != nil {
		return nil, err
	}
	return t, nil
}
