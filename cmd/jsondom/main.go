// Command jsondom formats, checks and queries JSON documents.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/charmbracelet/log"
)

// cli is the state shared by every command.
type cli struct {
	stdout io.Writer
	logger *log.Logger

	logLevel   *string
	configPath *string
	cfg        config
}

func newApp(stdout, stderr io.Writer) (*kingpin.Application, *cli) {
	app := kingpin.New("jsondom", "Format, check and query JSON documents.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	c := &cli{
		stdout: stdout,
		logger: log.NewWithOptions(stderr, log.Options{Prefix: "jsondom"}),
		cfg:    defaultConfig(),
	}
	c.logLevel = app.Flag("log-level", "Log level: debug, info, warn or error.").Default("info").String()
	c.configPath = app.Flag("config", "YAML file with format options and worker count.").ExistingFile()
	app.PreAction(c.setup)

	addFmtCommand(app, c)
	addCheckCommand(app, c)
	addEvalCommand(app, c)
	addSampleCommand(app, c)
	return app, c
}

func (c *cli) setup(*kingpin.ParseContext) error {
	level, err := log.ParseLevel(*c.logLevel)
	if err != nil {
		return err
	}
	c.logger.SetLevel(level)

	if *c.configPath != "" {
		cfg, err := loadConfig(*c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
		c.logger.Debug("loaded config", "path", *c.configPath, "workers", cfg.Workers)
	}
	return nil
}

func main() {
	app, _ := newApp(os.Stdout, os.Stderr)
	kingpin.MustParse(app.Parse(os.Args[1:]))
}
