package serializer_test

import (
	"bytes"
	"math"
	"testing"

	goccy "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/jsondom/generate"
	"github.com/oarkflow/jsondom/parser"
	"github.com/oarkflow/jsondom/serializer"
	"github.com/oarkflow/jsondom/value"
)

func sample() *value.Object {
	return value.NewObject().
		Put("a", value.NewNumber(1)).
		Put("b", value.ArrayOf(1, 2)).
		Put("c", value.NewObject()).
		Put("d", value.NewArray())
}

func TestFormats(t *testing.T) {
	tests := []struct {
		name string
		opts serializer.FormatOptions
		want string
	}{
		{
			name: "compact spaced",
			opts: serializer.FormatOptions{Spacing: true, SortKeys: true},
			want: `{"a": 1, "b": [1, 2], "c": {}, "d": []}`,
		},
		{
			name: "compact tight",
			opts: serializer.FormatOptions{SortKeys: true},
			want: `{"a":1,"b":[1,2],"c":{},"d":[]}`,
		},
		{
			name: "pretty",
			opts: serializer.FormatOptions{Pretty: true, SortKeys: true, Indent: 2},
			want: "{\n  \"a\": 1,\n  \"b\": [\n    1,\n    2\n  ],\n  \"c\": {},\n  \"d\": []\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serializer.ToString(sample(), tt.opts))
		})
	}
}

func TestDefaults(t *testing.T) {
	opts := serializer.DefaultOptions()
	assert.False(t, opts.Pretty)
	assert.True(t, opts.Spacing)
	assert.False(t, opts.SortKeys)
	assert.Equal(t, 4, opts.Indent)
	assert.False(t, opts.Strict)

	assert.Equal(t, "[1, 2]", serializer.ToString(value.ArrayOf(1, 2), opts))
}

func TestScalars(t *testing.T) {
	opts := serializer.DefaultOptions()
	tests := []struct {
		v    value.Value
		want string
	}{
		{value.NewNull(), "null"},
		{nil, "null"},
		{(*value.Object)(nil), "null"},
		{(*value.Array)(nil), "null"},
		{value.NewBoolean(true), "true"},
		{value.NewBoolean(false), "false"},
		{value.NewNumber(42), "42"},
		{value.NewNumber(-0.5), "-0.5"},
		{value.NewNumber(1e21), "1e+21"},
		{value.NewNumber(0.1), "0.1"},
		{value.NewNumber(math.NaN()), "null"},
		{value.NewNumber(math.Inf(1)), "null"},
		{value.NewNumber(math.Inf(-1)), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, serializer.ToString(tt.v, opts))
		})
	}
}

func TestNilContainerHandles(t *testing.T) {
	var obj *value.Object
	var arr *value.Array
	doc := value.NewObject().Put("o", obj).Put("a", arr)
	assert.Equal(t, `{"a": null, "o": null}`, serializer.ToString(doc, serializer.FormatOptions{Spacing: true, SortKeys: true}))
	assert.Equal(t, "[null, null]", serializer.ToString(value.NewArray(obj, arr), serializer.DefaultOptions()))
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		strict string
	}{
		{"line1\nline2", `"line1\nline2"`, `"line1\nline2"`},
		{`say "hi" \o/`, `"say \"hi\" \\o/"`, `"say \"hi\" \\o/"`},
		{"\a\b\x1b\f\r\t\v", `"\a\b\e\f\r\t\v"`, `"\u0007\b\u001b\f\r\t\u000b"`},
		{"\x00\x01\x7f", `"\x00\x01\x7f"`, "\"\\u0000\\u0001\x7f\""},
		{"é日本", `"é日本"`, `"é日本"`},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, serializer.Quote(tt.in, false))
			assert.Equal(t, tt.strict, serializer.Quote(tt.in, true))
		})
	}
}

func TestStrictOutputDecodesWithGoccy(t *testing.T) {
	s := "tab\tbell\aesc\x1bnul\x00"
	out := serializer.Quote(s, true)

	var got string
	require.NoError(t, goccy.Unmarshal([]byte(out), &got))
	assert.Equal(t, s, got)
}

func TestSerializeWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, serializer.Serialize(&buf, value.ArrayOf("x"), serializer.DefaultOptions()))
	assert.Equal(t, `["x"]`, buf.String())
}

func TestAppend(t *testing.T) {
	s := serializer.New(serializer.FormatOptions{})
	out := s.Append([]byte("prefix:"), value.NewString("v"))
	assert.Equal(t, `prefix:"v"`, string(out))
}

func TestEscapeRoundTrip(t *testing.T) {
	v := value.NewString("line1\nline2")
	out := serializer.ToString(v, serializer.DefaultOptions())
	assert.Equal(t, `"line1\nline2"`, out)

	back, err := parser.ParseString(out)
	require.NoError(t, err)
	assert.True(t, value.Equal(v, back))
}

func TestRoundTripGenerated(t *testing.T) {
	optionSets := []serializer.FormatOptions{
		serializer.DefaultOptions(),
		{},
		{Pretty: true, Indent: 4},
		{Pretty: true, Indent: 0, SortKeys: true},
		{Strict: true, Spacing: true},
		{Strict: true, Pretty: true, Indent: 2},
	}
	for seed := int64(1); seed <= 40; seed++ {
		doc := generate.New(seed).Value()
		for _, opts := range optionSets {
			text := serializer.ToString(doc, opts)
			back, err := parser.ParseString(text)
			require.NoError(t, err, "seed %d opts %+v:\n%s", seed, opts, text)
			assert.True(t, value.Equal(doc, back), "seed %d opts %+v:\n%s", seed, opts, text)
		}
	}
}

func TestSortedOutputIsStable(t *testing.T) {
	doc := generate.New(99).Object()
	opts := serializer.FormatOptions{SortKeys: true}
	first := serializer.ToString(doc, opts)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, serializer.ToString(doc, opts))
	}
}

func BenchmarkSerialize(b *testing.B) {
	doc := generate.New(3).Object()
	s := serializer.New(serializer.DefaultOptions())
	buf := make([]byte, 0, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = s.Append(buf[:0], doc)
	}
}
