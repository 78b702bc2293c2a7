package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/oarkflow/jsondom"
	"github.com/oarkflow/jsondom/decoder"
	"github.com/oarkflow/jsondom/parser"
)

// checkCommand parses files and reports the first error of each.
type checkCommand struct {
	*cli
	files    *[]string
	stream   *bool
	quick    *bool
	trace    *bool
	maxDepth *int
}

func (cmd *checkCommand) run(*kingpin.ParseContext) error {
	failed := 0
	for _, name := range *cmd.files {
		n, err := cmd.checkFile(name)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.stdout, "FAIL %v\n", err)
			continue
		}
		cmd.logger.Info("ok", "file", name, "documents", n)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(*cmd.files))
	}
	return nil
}

func (cmd *checkCommand) checkFile(name string) (int, error) {
	if *cmd.quick {
		b, err := os.ReadFile(name)
		if err != nil {
			return 0, errors.Wrapf(err, "read %s", name)
		}
		if !jsondom.Is(string(b)) {
			return 0, fmt.Errorf("%s: unbalanced object or array", name)
		}
		return 1, nil
	}

	opts := []parser.Option{parser.WithMaxDepth(*cmd.maxDepth)}
	if *cmd.trace {
		tracer := cmd.logger.With("file", name)
		tracer.SetLevel(log.DebugLevel)
		opts = append(opts, parser.WithLogger(tracer))
	}
	if !*cmd.stream {
		_, err := jsondom.ReadFile(name, opts...)
		return 1, err
	}

	f, err := os.Open(name)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", name)
	}
	defer f.Close()
	dec := decoder.New(f, name, opts...)
	n := 0
	for {
		_, err := dec.Decode()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}

func addCheckCommand(app *kingpin.Application, c *cli) {
	cmd := &checkCommand{cli: c}
	clause := app.Command("check", "Parse JSON files and report syntax errors.").Action(cmd.run)
	cmd.stream = clause.Flag("stream", "Files hold a sequence of documents.").Bool()
	cmd.quick = clause.Flag("quick", "Only check that brackets balance.").Bool()
	cmd.trace = clause.Flag("trace", "Log every parser state transition.").Bool()
	cmd.maxDepth = clause.Flag("max-depth", "Maximum nesting depth, 0 for unbounded.").Default("0").Int()
	cmd.files = clause.Arg("files", "Files to check.").Required().ExistingFiles()
}
