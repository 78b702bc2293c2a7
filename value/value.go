// Package value implements the JSON document model: a closed set of
// dynamically typed values (null, boolean, number, string, object, array)
// shared by handle, with typed extraction helpers that fail with a
// *TypeError when the dynamic type does not match.
package value

// Type is the discriminant of a Value.
type Type uint8

const (
	TypeNone Type = iota
	TypeBoolean
	TypeNumber
	TypeString
	TypeObject
	TypeArray
)

var typeNames = [...]string{
	TypeNone:    "NONE",
	TypeBoolean: "BOOLEAN",
	TypeNumber:  "NUMBER",
	TypeString:  "STRING",
	TypeObject:  "OBJECT",
	TypeArray:   "ARRAY",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "UNKNOWN"
}

// Value is any JSON datum. The set of implementations is closed to this
// package; use Type to discriminate and Get or Ref to downcast.
type Value interface {
	Type() Type
	// Clone copies scalar content. Containers copy their handle table
	// only, so children stay shared between the two.
	Clone() Value
	sealed()
}

// TypeOf returns the type of v. A nil handle, including a nil *Object or
// *Array, reports TypeNone.
func TypeOf(v Value) Type {
	switch x := v.(type) {
	case nil:
		return TypeNone
	case *Object:
		if x == nil {
			return TypeNone
		}
	case *Array:
		if x == nil {
			return TypeNone
		}
	}
	return v.Type()
}

type Null struct{}

func NewNull() *Null { return &Null{} }

func (*Null) Type() Type { return TypeNone }
func (*Null) Clone() Value { return &Null{} }
func (*Null) sealed() {}

type Boolean struct {
	v bool
}

func NewBoolean(b bool) *Boolean { return &Boolean{v: b} }

func (*Boolean) Type() Type { return TypeBoolean }
func (b *Boolean) Clone() Value { return &Boolean{v: b.v} }
func (*Boolean) sealed() {}
func (b *Boolean) Bool() bool { return b.v }
func (b *Boolean) Set(v bool) *Boolean {
	b.v = v
	return b
}

// Number holds every JSON number as a float64. Integers outside the exact
// range of a double lose precision.
type Number struct {
	v float64
}

func NewNumber(f float64) *Number { return &Number{v: f} }

func (*Number) Type() Type { return TypeNumber }
func (n *Number) Clone() Value { return &Number{v: n.v} }
func (*Number) sealed() {}
func (n *Number) Float64() float64 { return n.v }
func (n *Number) Set(v float64) *Number {
	n.v = v
	return n
}

// String holds raw bytes; no encoding is assumed or enforced.
type String struct {
	s string
}

func NewString(s string) *String { return &String{s: s} }

func (*String) Type() Type { return TypeString }
func (s *String) Clone() Value { return &String{s: s.s} }
func (*String) sealed() {}
func (s *String) Text() string { return s.s }
func (s *String) Set(v string) *String {
	s.s = v
	return s
}
