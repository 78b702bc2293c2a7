package value

// Equal reports whether a and b hold the same document. Object member order
// never matters; numbers compare with ==, so NaN is never equal to itself.
func Equal(a, b Value) bool {
	ta := TypeOf(a)
	if ta != TypeOf(b) {
		return false
	}
	if ta == TypeNone {
		return true
	}
	switch x := a.(type) {
	case *Boolean:
		return x.v == b.(*Boolean).v
	case *Number:
		return x.v == b.(*Number).v
	case *String:
		return x.s == b.(*String).s
	case *Array:
		y := b.(*Array)
		if len(x.vs) != len(y.vs) {
			return false
		}
		for i := range x.vs {
			if !Equal(x.vs[i], y.vs[i]) {
				return false
			}
		}
		return true
	case *Object:
		y := b.(*Object)
		if len(x.m) != len(y.m) {
			return false
		}
		for k, v := range x.m {
			w, ok := y.m[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	}
	return false
}
