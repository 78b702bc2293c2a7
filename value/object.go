package value

import (
	"iter"
	"maps"
	"slices"
)

// Object is an unordered string-keyed container. Iteration order is
// unspecified; use SortedKeys when a stable order is needed.
type Object struct {
	m map[string]Value
}

func NewObject() *Object { return &Object{m: make(map[string]Value)} }

// ObjectOf builds an Object from a native map.
func ObjectOf[T Native](m map[string]T) *Object {
	o := &Object{m: make(map[string]Value, len(m))}
	for k, x := range m {
		o.m[k] = Of(x)
	}
	return o
}

func (*Object) Type() Type { return TypeObject }
func (o *Object) Clone() Value { return o.clone() }
func (*Object) sealed() {}

func (o *Object) clone() *Object {
	return &Object{m: maps.Clone(o.table())}
}

func (o *Object) table() map[string]Value {
	if o.m == nil {
		o.m = make(map[string]Value)
	}
	return o.m
}

// members is the read side of the table; a nil Object reads as empty.
func (o *Object) members() map[string]Value {
	if o == nil {
		return nil
	}
	return o.m
}

func (o *Object) Len() int { return len(o.members()) }
func (o *Object) Empty() bool { return len(o.members()) == 0 }

func (o *Object) Contains(key string) bool {
	_, ok := o.members()[key]
	return ok
}

// Lookup returns the live handle stored under key.
func (o *Object) Lookup(key string) (Value, bool) {
	v, ok := o.members()[key]
	return v, ok
}

// Put stores v under key, replacing any previous value. A nil v is stored
// as null.
func (o *Object) Put(key string, v Value) *Object {
	if v == nil {
		v = NewNull()
	}
	o.table()[key] = v
	return o
}

// GetOrPut returns the value under key, storing v first if key is absent.
func (o *Object) GetOrPut(key string, v Value) Value {
	if cur, ok := o.m[key]; ok {
		return cur
	}
	o.Put(key, v)
	return o.m[key]
}

// Unset removes key and reports whether it was present.
func (o *Object) Unset(key string) bool {
	_, ok := o.m[key]
	delete(o.m, key)
	return ok
}

func (o *Object) Clear() { clear(o.m) }

func (o *Object) Keys() []string {
	return slices.Collect(maps.Keys(o.members()))
}

func (o *Object) SortedKeys() []string {
	return slices.Sorted(maps.Keys(o.members()))
}

func (o *Object) Values() []Value {
	return slices.Collect(maps.Values(o.members()))
}

// All iterates over the members present when the range starts. Members
// removed during the range are skipped.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range o.Keys() {
			v, ok := o.members()[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

func (o *Object) KeySeq() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range o.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (o *Object) ValueSeq() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range o.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Pair is a typed Object member produced by ObjectIterate.
type Pair[T Native] struct {
	Key   string
	Value T
}

// ObjectGet extracts the member under key as a T.
func ObjectGet[T Native](o *Object, key string) (T, error) {
	v, ok := o.Lookup(key)
	if !ok {
		var zero T
		return zero, &KeyNotFoundError{Key: key}
	}
	return getKey[T](key, v)
}

// ObjectGetOr is ObjectGet with a fallback for an absent key. A present
// member of the wrong type is still an error.
func ObjectGetOr[T Native](o *Object, key string, def T) (T, error) {
	v, ok := o.Lookup(key)
	if !ok {
		return def, nil
	}
	return getKey[T](key, v)
}

// ObjectGetOrSet returns the member under key, inserting def first when
// the key is absent.
func ObjectGetOrSet[T Native](o *Object, key string, def T) (T, error) {
	v, ok := o.m[key]
	if !ok {
		v = Of(def)
		o.table()[key] = v
	}
	return getKey[T](key, v)
}

// ObjectSet replaces the member under key with a new Value holding x.
func ObjectSet[T Native](o *Object, key string, x T) *Object {
	delete(o.m, key)
	o.table()[key] = Of(x)
	return o
}

// ObjectExtract converts every member to a T.
func ObjectExtract[T Native](o *Object) (map[string]T, error) {
	out := make(map[string]T, o.Len())
	for k, v := range o.members() {
		x, err := getKey[T](k, v)
		if err != nil {
			return nil, err
		}
		out[k] = x
	}
	return out, nil
}

// ObjectIterate yields typed members. The first mismatch is yielded as an
// error and ends the sequence.
func ObjectIterate[T Native](o *Object) iter.Seq2[Pair[T], error] {
	return func(yield func(Pair[T], error) bool) {
		for k, v := range o.All() {
			x, err := getKey[T](k, v)
			if err != nil {
				yield(Pair[T]{Key: k}, err)
				return
			}
			if !yield(Pair[T]{Key: k, Value: x}, nil) {
				return
			}
		}
	}
}

func ObjectIterateValues[T Native](o *Object) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for p, err := range ObjectIterate[T](o) {
			if !yield(p.Value, err) || err != nil {
				return
			}
		}
	}
}
