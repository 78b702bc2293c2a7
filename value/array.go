package value

import (
	"iter"
	"slices"
)

// Array is an ordered, 0-indexed container.
type Array struct {
	vs []Value
}

func NewArray(vs ...Value) *Array {
	a := &Array{vs: make([]Value, 0, len(vs))}
	return a.Append(vs...)
}

// ArrayOf builds an Array from native elements.
func ArrayOf[T Native](xs ...T) *Array {
	a := &Array{vs: make([]Value, 0, len(xs))}
	return ArrayAppend(a, xs...)
}

func (*Array) Type() Type { return TypeArray }
func (a *Array) Clone() Value { return a.clone() }
func (*Array) sealed() {}

func (a *Array) clone() *Array {
	return &Array{vs: slices.Clone(a.vs)}
}

// elems is the read side of the array; a nil Array reads as empty.
func (a *Array) elems() []Value {
	if a == nil {
		return nil
	}
	return a.vs
}

func (a *Array) Len() int { return len(a.elems()) }
func (a *Array) Empty() bool { return len(a.elems()) == 0 }

func (a *Array) check(i int) error {
	if n := len(a.elems()); i < 0 || i >= n {
		return &IndexError{Index: i, Size: n}
	}
	return nil
}

// Index returns the live handle at offset i.
func (a *Array) Index(i int) (Value, error) {
	if err := a.check(i); err != nil {
		return nil, err
	}
	return a.vs[i], nil
}

func (a *Array) SetIndex(i int, v Value) error {
	if err := a.check(i); err != nil {
		return err
	}
	if v == nil {
		v = NewNull()
	}
	a.vs[i] = v
	return nil
}

// Append adds vs to the end; nil handles are stored as null.
func (a *Array) Append(vs ...Value) *Array {
	for _, v := range vs {
		if v == nil {
			v = NewNull()
		}
		a.vs = append(a.vs, v)
	}
	return a
}

// Extend appends the handles held by b. Children are shared, not copied.
func (a *Array) Extend(b *Array) *Array {
	a.vs = append(a.vs, b.vs...)
	return a
}

// Pop removes and returns the last element.
func (a *Array) Pop() (Value, error) {
	return a.PopAt(a.Len() - 1)
}

// PopAt removes and returns the element at offset i.
func (a *Array) PopAt(i int) (Value, error) {
	if err := a.check(i); err != nil {
		return nil, err
	}
	v := a.vs[i]
	a.vs = slices.Delete(a.vs, i, i+1)
	return v, nil
}

func (a *Array) Clear() { a.vs = a.vs[:0] }

func (a *Array) Values() []Value { return slices.Clone(a.elems()) }

func (a *Array) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i := 0; i < a.Len(); i++ {
			if !yield(i, a.vs[i]) {
				return
			}
		}
	}
}

func ArrayGet[T Native](a *Array, i int) (T, error) {
	v, err := a.Index(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return Get[T](v)
}

func ArraySet[T Native](a *Array, i int, x T) error {
	return a.SetIndex(i, Of(x))
}

func ArrayAppend[T Native](a *Array, xs ...T) *Array {
	for _, x := range xs {
		a.vs = append(a.vs, Of(x))
	}
	return a
}

func ArrayExtend[T Native](a *Array, xs []T) *Array {
	return ArrayAppend(a, xs...)
}

// ArrayPop removes the last element as a T. On a type mismatch the array
// is left unchanged.
func ArrayPop[T Native](a *Array) (T, error) {
	return ArrayPopAt[T](a, a.Len()-1)
}

func ArrayPopAt[T Native](a *Array, i int) (T, error) {
	x, err := ArrayGet[T](a, i)
	if err != nil {
		return x, err
	}
	a.vs = slices.Delete(a.vs, i, i+1)
	return x, nil
}

// ArrayExtract converts every element to a T.
func ArrayExtract[T Native](a *Array) ([]T, error) {
	out := make([]T, 0, a.Len())
	for _, v := range a.elems() {
		x, err := Get[T](v)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

// ArrayIterate yields typed elements; the first mismatch is yielded as an
// error and ends the sequence.
func ArrayIterate[T Native](a *Array) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, v := range a.All() {
			x, err := Get[T](v)
			if !yield(x, err) || err != nil {
				return
			}
		}
	}
}
