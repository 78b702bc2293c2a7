package mapping_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/jsondom/mapping"
	"github.com/oarkflow/jsondom/parser"
	"github.com/oarkflow/jsondom/value"
)

type Address struct {
	Street string
	City   string
}

func (a *Address) MapJSON() mapping.Binder {
	return mapping.New(a).Add(
		mapping.Field("street", &a.Street, mapping.Required()),
		mapping.Field("city", &a.City),
	)
}

type Person struct {
	Name    string
	Age     int
	Tags    []string
	Scores  map[string]float64
	Born    time.Time
	Home    Address
	Extra   value.Value
	balance float64
}

func (p *Person) Balance() float64 { return p.balance }
func (p *Person) SetBalance(b float64) { p.balance = b }

func (p *Person) MapJSON() mapping.Binder {
	return mapping.New(p).Add(
		mapping.Field("name", &p.Name, mapping.Required()),
		mapping.Field("age", &p.Age),
		mapping.Slice("tags", &p.Tags),
		mapping.Map("scores", &p.Scores),
		mapping.Time("born", &p.Born),
		mapping.Nested[Address]("home", &p.Home),
		mapping.Raw("extra", &p.Extra),
		mapping.Property("balance", p.Balance, p.SetBalance),
	)
}

func parseObject(t *testing.T, s string) *value.Object {
	t.Helper()
	v, err := parser.ParseString(s)
	require.NoError(t, err)
	obj, err := value.Ref[*value.Object](v)
	require.NoError(t, err)
	return obj
}

func TestMapToJSON(t *testing.T) {
	p := &Person{
		Name:    "Ada",
		Age:     36,
		Tags:    []string{"math"},
		Scores:  map[string]float64{"x": 1.5},
		Born:    time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC),
		Home:    Address{Street: "St James's Square", City: "London"},
		balance: 12.5,
	}
	obj, err := mapping.To(p)
	require.NoError(t, err)

	name, err := value.ObjectGet[string](obj, "name")
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)

	age, err := value.ObjectGet[int](obj, "age")
	require.NoError(t, err)
	assert.Equal(t, 36, age)

	born, err := value.ObjectGet[string](obj, "born")
	require.NoError(t, err)
	assert.Equal(t, "1815-12-10T00:00:00Z", born)

	home, err := value.ObjectGet[*value.Object](obj, "home")
	require.NoError(t, err)
	city, err := value.ObjectGet[string](home, "city")
	require.NoError(t, err)
	assert.Equal(t, "London", city)

	bal, err := value.ObjectGet[float64](obj, "balance")
	require.NoError(t, err)
	assert.Equal(t, 12.5, bal)

	extra, ok := obj.Lookup("extra")
	require.True(t, ok)
	assert.Equal(t, value.TypeNone, extra.Type())
}

func TestMapFromJSON(t *testing.T) {
	obj := parseObject(t, `{
		"name": "Grace",
		"age": 85,
		"tags": ["navy", "cobol"],
		"scores": {"a": 1, "b": 2},
		"born": "1906-12-09T00:00:00Z",
		"home": {"street": "Main", "city": "Arlington"},
		"extra": [1, {"k": null}],
		"balance": 3.25
	}`)

	p, err := mapping.From[Person](obj)
	require.NoError(t, err)
	assert.Equal(t, "Grace", p.Name)
	assert.Equal(t, 85, p.Age)
	assert.Equal(t, []string{"navy", "cobol"}, p.Tags)
	assert.Equal(t, map[string]float64{"a": 1, "b": 2}, p.Scores)
	assert.Equal(t, 1906, p.Born.Year())
	assert.Equal(t, Address{Street: "Main", City: "Arlington"}, p.Home)
	assert.Equal(t, value.TypeArray, p.Extra.Type())
	assert.Equal(t, 3.25, p.Balance())
}

func TestOptionalAbsentKeepsDefault(t *testing.T) {
	p := &Person{Age: 7, Tags: []string{"keep"}}
	require.NoError(t, mapping.Into(p, parseObject(t, `{"name": "x"}`)))
	assert.Equal(t, 7, p.Age)
	assert.Equal(t, []string{"keep"}, p.Tags)
}

func TestMissingRequired(t *testing.T) {
	_, err := mapping.From[Person](parseObject(t, `{"age": 1}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, value.ErrType)
	assert.Contains(t, err.Error(), `Missing required field "name" on JSON object.`)

	var te *value.TypeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "name", te.Key)
}

func TestNestedRequiredPropagates(t *testing.T) {
	_, err := mapping.From[Person](parseObject(t, `{"name": "x", "home": {"city": "c"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"street"`)
}

func TestTypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		key  string
	}{
		{"field", `{"name": 1}`, "name"},
		{"slice", `{"name": "x", "tags": "nope"}`, "tags"},
		{"slice element", `{"name": "x", "tags": [1]}`, "tags"},
		{"map", `{"name": "x", "scores": []}`, "scores"},
		{"time", `{"name": "x", "born": 5}`, "born"},
		{"time layout", `{"name": "x", "born": "not a date"}`, "born"},
		{"nested", `{"name": "x", "home": "street"}`, "home"},
		{"property", `{"name": "x", "balance": "lots"}`, "balance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapping.From[Person](parseObject(t, tt.doc))
			require.Error(t, err)
			var te *value.TypeError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tt.key, te.Key)
		})
	}
}

func TestNullClearsSlicesAndMaps(t *testing.T) {
	p := &Person{Tags: []string{"a"}, Scores: map[string]float64{"a": 1}}
	require.NoError(t, mapping.Into(p, parseObject(t, `{"name": "x", "tags": null, "scores": null}`)))
	assert.Nil(t, p.Tags)
	assert.Nil(t, p.Scores)
}

func TestMapperInstance(t *testing.T) {
	var n int
	m := mapping.New(&n).Add(mapping.Field("n", &n))
	assert.Same(t, &n, m.Instance())
	assert.Len(t, m.Mappings(), 1)

	got, err := m.MapFromJSON(value.ObjectOf(map[string]int{"n": 3}))
	require.NoError(t, err)
	assert.Equal(t, 3, *got)
}

func TestRoundTrip(t *testing.T) {
	in := &Person{
		Name:   "Linus",
		Age:    54,
		Tags:   []string{"kernel", "git"},
		Scores: map[string]float64{},
		Born:   time.Date(1969, 12, 28, 5, 30, 0, 0, time.UTC),
		Home:   Address{Street: "Somewhere", City: "Portland"},
		Extra:  value.NewString("raw"),
	}
	obj, err := mapping.To(in)
	require.NoError(t, err)

	out, err := mapping.From[Person](obj)
	require.NoError(t, err)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Tags, out.Tags)
	assert.Equal(t, in.Scores, out.Scores)
	assert.True(t, in.Born.Equal(out.Born))
	assert.Equal(t, in.Home, out.Home)
	assert.True(t, value.Equal(in.Extra, out.Extra))
}

func TestMapFromNilObject(t *testing.T) {
	var n int
	m := mapping.New(&n).Add(mapping.Field("n", &n))
	_, err := m.MapFromJSON(nil)
	require.NoError(t, err)

	_, err = mapping.From[Person](nil)
	assert.ErrorIs(t, err, value.ErrType)
	assert.ErrorContains(t, err, `"name"`)
}
