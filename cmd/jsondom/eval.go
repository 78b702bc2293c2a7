package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oarkflow/expr"
	"github.com/pkg/errors"

	"github.com/oarkflow/jsondom"
	"github.com/oarkflow/jsondom/value"
)

// evalCommand evaluates an expression with the members of an object
// document as variables.
type evalCommand struct {
	*cli
	expr   *string
	file   *string
	format formatFlags
}

func (cmd *evalCommand) run(*kingpin.ParseContext) error {
	doc, err := jsondom.ReadFile(*cmd.file)
	if err != nil {
		return err
	}
	obj, err := value.Ref[*value.Object](doc)
	if err != nil {
		return errors.Wrapf(err, "%s", *cmd.file)
	}
	env, _ := value.Interface(obj).(map[string]any)

	out, err := expr.Eval(*cmd.expr, env)
	if err != nil {
		return errors.Wrapf(err, "eval %q", *cmd.expr)
	}
	cmd.logger.Debug("evaluated", "expr", *cmd.expr, "type", fmt.Sprintf("%T", out))

	v, err := jsondom.FromNative(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.stdout, jsondom.ToString(v, cmd.format.apply(cmd.cfg.Format)))
	return err
}

func addEvalCommand(app *kingpin.Application, c *cli) {
	cmd := &evalCommand{cli: c}
	clause := app.Command("eval", "Evaluate an expression against an object document.").Action(cmd.run)
	cmd.expr = clause.Flag("expr", "Expression; object members are its variables.").Short('e').Required().String()
	cmd.format.register(clause)
	cmd.file = clause.Arg("file", "Object document.").Required().ExistingFile()
}
