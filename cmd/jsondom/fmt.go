package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/alecthomas/kingpin/v2"
	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"

	"github.com/oarkflow/jsondom"
	"github.com/oarkflow/jsondom/serializer"
)

// fmtCommand reformats files, each on its own worker.
type fmtCommand struct {
	*cli
	files  *[]string
	write  *bool
	format formatFlags
}

type fmtResult struct {
	out []byte
	err error
}

func (cmd *fmtCommand) run(*kingpin.ParseContext) error {
	opts := cmd.format.apply(cmd.cfg.Format)
	results := make([]fmtResult, len(*cmd.files))

	pool, err := ants.NewPool(cmd.cfg.Workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, name := range *cmd.files {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			results[i] = cmd.formatFile(name, opts)
		})
		if err != nil {
			wg.Done()
			results[i].err = err
		}
	}
	wg.Wait()

	failed := 0
	for i, name := range *cmd.files {
		res := results[i]
		if res.err != nil {
			failed++
			cmd.logger.Error("format failed", "file", name, "err", res.err)
			continue
		}
		if !*cmd.write {
			if _, err := cmd.stdout.Write(res.out); err != nil {
				return err
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(*cmd.files))
	}
	return nil
}

func (cmd *fmtCommand) formatFile(name string, opts jsondom.FormatOptions) fmtResult {
	v, err := jsondom.ReadFile(name)
	if err != nil {
		return fmtResult{err: err}
	}
	out := append(serializer.New(opts).Append(nil, v), '\n')
	if *cmd.write {
		if err := os.WriteFile(name, out, 0o644); err != nil {
			return fmtResult{err: errors.Wrapf(err, "write %s", name)}
		}
		cmd.logger.Debug("formatted", "file", name, "bytes", len(out))
	}
	return fmtResult{out: out}
}

func addFmtCommand(app *kingpin.Application, c *cli) {
	cmd := &fmtCommand{cli: c}
	clause := app.Command("fmt", "Reformat JSON files.").Action(cmd.run)
	cmd.write = clause.Flag("write", "Rewrite files in place instead of printing them.").Short('w').Bool()
	cmd.format.register(clause)
	cmd.files = clause.Arg("files", "Files to format.").Required().ExistingFiles()
}
