package value_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/jsondom/value"
)

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "NONE", value.TypeNone.String())
	assert.Equal(t, "BOOLEAN", value.TypeBoolean.String())
	assert.Equal(t, "NUMBER", value.TypeNumber.String())
	assert.Equal(t, "STRING", value.TypeString.String())
	assert.Equal(t, "OBJECT", value.TypeObject.String())
	assert.Equal(t, "ARRAY", value.TypeArray.String())
	assert.Equal(t, "UNKNOWN", value.Type(42).String())
	assert.Equal(t, value.TypeNone, value.TypeOf(nil))
}

func TestGetTypeSafety(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want value.Type
	}{
		{"null", value.NewNull(), value.TypeNone},
		{"bool", value.NewBoolean(true), value.TypeBoolean},
		{"number", value.NewNumber(1.5), value.TypeNumber},
		{"string", value.NewString("x"), value.TypeString},
		{"object", value.NewObject(), value.TypeObject},
		{"array", value.NewArray(), value.TypeArray},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Type())
			assert.Equal(t, tt.want == value.TypeBoolean, value.Is[bool](tt.v))
			assert.Equal(t, tt.want == value.TypeNumber, value.Is[int](tt.v))
			assert.Equal(t, tt.want == value.TypeString, value.Is[string](tt.v))

			_, err := value.Get[string](tt.v)
			if tt.want == value.TypeString {
				assert.NoError(t, err)
			} else {
				var te *value.TypeError
				require.ErrorAs(t, err, &te)
				assert.ErrorIs(t, err, value.ErrType)
				assert.ErrorIs(t, err, value.ErrJSON)
				assert.Contains(t, te.Message, tt.want.String())
			}
		})
	}
}

func TestNumberConversions(t *testing.T) {
	v := value.Of(42)
	require.Equal(t, value.TypeNumber, v.Type())

	i, err := value.Get[int](v)
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	u8, err := value.Get[uint8](v)
	require.NoError(t, err)
	assert.Equal(t, uint8(42), u8)

	f, err := value.Get[float32](value.Of(0.5))
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), f)
}

func TestRefMutatesInPlace(t *testing.T) {
	o := value.NewObject()
	o.Put("list", value.NewArray())

	v, _ := o.Lookup("list")
	a, err := value.Ref[*value.Array](v)
	require.NoError(t, err)
	value.ArrayAppend(a, 1, 2)

	got, err := value.ObjectGet[*value.Array](o, "list")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())

	_, err = value.Ref[*value.String](v)
	assert.ErrorIs(t, err, value.ErrType)
}

func TestGetContainerIsShallowClone(t *testing.T) {
	inner := value.NewString("shared")
	a := value.NewArray(inner)

	c, err := value.Get[*value.Array](a)
	require.NoError(t, err)
	c.Append(value.NewNull())
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, c.Len())

	first, _ := c.Index(0)
	first.(*value.String).Set("changed")
	assert.Equal(t, "changed", inner.Text())
}

func TestOfNilContainer(t *testing.T) {
	var o *value.Object
	assert.Equal(t, value.TypeNone, value.Of(o).Type())
	var a *value.Array
	assert.Equal(t, value.TypeNone, value.Of(a).Type())
}

func TestCloneScalars(t *testing.T) {
	s := value.NewString("a")
	c := s.Clone().(*value.String)
	c.Set("b")
	assert.Equal(t, "a", s.Text())

	n := value.NewNumber(1)
	n.Clone().(*value.Number).Set(2)
	assert.Equal(t, 1.0, n.Float64())
}

func TestEqual(t *testing.T) {
	a := value.NewObject().
		Put("x", value.NewNumber(1)).
		Put("y", value.NewArray(value.NewString("s"), value.NewBoolean(false)))
	b := value.NewObject().
		Put("y", value.NewArray(value.NewString("s"), value.NewBoolean(false))).
		Put("x", value.NewNumber(1))
	assert.True(t, value.Equal(a, b))

	b.Put("z", value.NewNull())
	assert.False(t, value.Equal(a, b))

	assert.False(t, value.Equal(value.NewNumber(1), value.NewString("1")))
	assert.False(t, value.Equal(value.NewArray(value.NewNumber(1)), value.NewArray(value.NewNumber(2))))
	assert.True(t, value.Equal(value.NewNull(), value.NewNull()))
}

func TestErrorTaxonomy(t *testing.T) {
	var err error = &value.KeyNotFoundError{Key: "k"}
	assert.True(t, errors.Is(err, value.ErrKeyNotFound))
	assert.True(t, errors.Is(err, value.ErrValue))
	assert.False(t, errors.Is(err, value.ErrType))
	assert.Contains(t, err.Error(), `"k"`)

	err = &value.IndexError{Index: 3, Size: 2}
	assert.True(t, errors.Is(err, value.ErrIndexOutOfBounds))
	assert.True(t, errors.Is(err, value.ErrJSON))
	assert.Contains(t, err.Error(), "[0, 2)")

	assert.True(t, errors.Is(value.ErrType, value.ErrJSON))
}

func TestInterface(t *testing.T) {
	v := value.NewObject().
		Put("n", value.NewNumber(1)).
		Put("s", value.NewString("x")).
		Put("l", value.NewArray(value.NewBoolean(true), value.NewNull()))

	assert.Equal(t, map[string]any{
		"n": 1.0,
		"s": "x",
		"l": []any{true, nil},
	}, value.Interface(v))
	assert.Nil(t, value.Interface(nil))
}
