// Package generate builds random value trees for round-trip testing and
// sample documents.
package generate

import (
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/oarkflow/jsondom/value"
)

const (
	DefaultMaxDepth = 4
	DefaultMaxWidth = 6
)

// fragments are mixed into generated strings so that serialized output
// exercises every escape sequence.
var fragments = []string{
	"\n", "\t", "\r", "\"", "\\", "/", "\x00", "\x1b", "\a", "\b", "\f", "\v", "\x7f", "é", "日本",
}

type Generator struct {
	MaxDepth int
	MaxWidth int

	faker *gofakeit.Faker
}

// New returns a Generator whose output is fully determined by seed.
func New(seed int64) *Generator {
	return &Generator{
		MaxDepth: DefaultMaxDepth,
		MaxWidth: DefaultMaxWidth,
		faker:    gofakeit.New(seed),
	}
}

// Value returns a random value of any type. Containers are only produced
// while the depth budget lasts.
func (g *Generator) Value() value.Value {
	return g.value(0)
}

func (g *Generator) Object() *value.Object {
	return g.object(0)
}

func (g *Generator) Array() *value.Array {
	return g.array(0)
}

func (g *Generator) value(depth int) value.Value {
	kinds := 4
	if depth < g.MaxDepth {
		kinds = 6
	}
	switch g.faker.IntRange(0, kinds-1) {
	case 0:
		return value.NewNull()
	case 1:
		return value.NewBoolean(g.faker.Bool())
	case 2:
		return value.NewNumber(g.number())
	case 3:
		return value.NewString(g.String())
	case 4:
		return g.array(depth + 1)
	}
	return g.object(depth + 1)
}

func (g *Generator) object(depth int) *value.Object {
	o := value.NewObject()
	for n := g.width(); n > 0; n-- {
		o.Put(g.key(), g.value(depth))
	}
	return o
}

func (g *Generator) array(depth int) *value.Array {
	a := value.NewArray()
	for n := g.width(); n > 0; n-- {
		a.Append(g.value(depth))
	}
	return a
}

func (g *Generator) width() int {
	if g.MaxWidth <= 0 {
		return 0
	}
	return g.faker.IntRange(0, g.MaxWidth)
}

func (g *Generator) key() string {
	if g.faker.IntRange(0, 9) == 0 {
		return g.String()
	}
	return g.faker.Word()
}

func (g *Generator) number() float64 {
	switch g.faker.IntRange(0, 2) {
	case 0:
		return float64(g.faker.IntRange(-1000000, 1000000))
	case 1:
		return g.faker.Float64Range(-1e6, 1e6)
	}
	return g.faker.Float64Range(-1, 1) * 1e-9
}

// String returns a sentence with escape-worthy bytes spliced in.
func (g *Generator) String() string {
	var sb strings.Builder
	sb.WriteString(g.faker.Sentence(g.faker.IntRange(1, 6)))
	for n := g.faker.IntRange(0, 3); n > 0; n-- {
		sb.WriteString(g.faker.RandomString(fragments))
		sb.WriteString(g.faker.Word())
	}
	return sb.String()
}
