package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/oarkflow/jsondom"
	"github.com/oarkflow/jsondom/generate"
)

type sampleCommand struct {
	*cli
	seed   *int64
	depth  *int
	width  *int
	format formatFlags
}

func (cmd *sampleCommand) run(*kingpin.ParseContext) error {
	g := generate.New(*cmd.seed)
	g.MaxDepth = *cmd.depth
	g.MaxWidth = *cmd.width
	_, err := fmt.Fprintln(cmd.stdout, jsondom.ToString(g.Object(), cmd.format.apply(cmd.cfg.Format)))
	return err
}

func addSampleCommand(app *kingpin.Application, c *cli) {
	cmd := &sampleCommand{cli: c}
	clause := app.Command("sample", "Print a random document.").Action(cmd.run)
	cmd.seed = clause.Flag("seed", "Random seed.").Default("1").Int64()
	cmd.depth = clause.Flag("depth", "Maximum nesting depth.").Default(fmt.Sprint(generate.DefaultMaxDepth)).Int()
	cmd.width = clause.Flag("width", "Maximum members per container.").Default(fmt.Sprint(generate.DefaultMaxWidth)).Int()
	cmd.format.register(clause)
}
