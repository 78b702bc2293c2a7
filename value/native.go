package value

// Native is the closed set of Go types that can be stored in or extracted
// from a Value. Using any other type with Of, Get or the container helpers
// is a compile error.
type Native interface {
	bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		string |
		Null | *Object | *Array
}

// Handle is the set of concrete Value implementations that Ref can expose.
type Handle interface {
	*Null | *Boolean | *Number | *String | *Object | *Array
}

// TypeFor returns the Value type that stores T.
func TypeFor[T Native]() Type {
	var zero T
	switch any(zero).(type) {
	case bool:
		return TypeBoolean
	case string:
		return TypeString
	case Null:
		return TypeNone
	case *Object:
		return TypeObject
	case *Array:
		return TypeArray
	default:
		return TypeNumber
	}
}

// Is reports whether v holds a T.
func Is[T Native](v Value) bool {
	if v == nil {
		return false
	}
	return v.Type() == TypeFor[T]()
}

// Get extracts a T from v. Scalars are copied out; containers are returned
// as a shallow clone, so use Ref to mutate a container in place.
func Get[T Native](v Value) (T, error) {
	return getKey[T]("", v)
}

func getKey[T Native](key string, v Value) (T, error) {
	var out T
	if !Is[T](v) {
		return out, mismatch(key, TypeFor[T](), TypeOf(v))
	}
	switch p := any(&out).(type) {
	case *bool:
		*p = v.(*Boolean).v
	case *string:
		*p = v.(*String).s
	case *Null:
	case **Object:
		*p = v.(*Object).clone()
	case **Array:
		*p = v.(*Array).clone()
	case *float64:
		*p = v.(*Number).v
	case *float32:
		*p = float32(v.(*Number).v)
	case *int:
		*p = int(v.(*Number).v)
	case *int8:
		*p = int8(v.(*Number).v)
	case *int16:
		*p = int16(v.(*Number).v)
	case *int32:
		*p = int32(v.(*Number).v)
	case *int64:
		*p = int64(v.(*Number).v)
	case *uint:
		*p = uint(v.(*Number).v)
	case *uint8:
		*p = uint8(v.(*Number).v)
	case *uint16:
		*p = uint16(v.(*Number).v)
	case *uint32:
		*p = uint32(v.(*Number).v)
	case *uint64:
		*p = uint64(v.(*Number).v)
	}
	return out, nil
}

// Ref exposes the live handle behind v.
func Ref[T Handle](v Value) (T, error) {
	if h, ok := any(v).(T); ok && v != nil {
		return h, nil
	}
	var zero T
	return zero, &TypeError{Message: "value is " + TypeOf(v).String() + ", not the requested handle type"}
}

// Of wraps x in a new Value. Containers are cloned; a nil container
// pointer becomes null.
func Of[T Native](x T) Value {
	switch x := any(x).(type) {
	case bool:
		return NewBoolean(x)
	case string:
		return NewString(x)
	case Null:
		return NewNull()
	case *Object:
		if x == nil {
			return NewNull()
		}
		return x.clone()
	case *Array:
		if x == nil {
			return NewNull()
		}
		return x.clone()
	case float64:
		return NewNumber(x)
	case float32:
		return NewNumber(float64(x))
	case int:
		return NewNumber(float64(x))
	case int8:
		return NewNumber(float64(x))
	case int16:
		return NewNumber(float64(x))
	case int32:
		return NewNumber(float64(x))
	case int64:
		return NewNumber(float64(x))
	case uint:
		return NewNumber(float64(x))
	case uint8:
		return NewNumber(float64(x))
	case uint16:
		return NewNumber(float64(x))
	case uint32:
		return NewNumber(float64(x))
	case uint64:
		return NewNumber(float64(x))
	}
	// unreachable: the Native constraint is exhaustive above
	return NewNull()
}

// Interface converts v into plain Go data: nil, bool, float64, string,
// map[string]any and []any.
func Interface(v Value) any {
	switch x := v.(type) {
	case *Boolean:
		return x.v
	case *Number:
		return x.v
	case *String:
		return x.s
	case *Object:
		if x == nil {
			return nil
		}
		m := make(map[string]any, len(x.m))
		for k, c := range x.m {
			m[k] = Interface(c)
		}
		return m
	case *Array:
		if x == nil {
			return nil
		}
		s := make([]any, len(x.vs))
		for i, c := range x.vs {
			s[i] = Interface(c)
		}
		return s
	}
	return nil
}
