package main

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/oarkflow/jsondom"
)

// config is the optional YAML file given with --config:
//
//	workers: 8
//	format:
//	  pretty: true
//	  indent: 2
//	  sort_keys: true
type config struct {
	Format  jsondom.FormatOptions `yaml:"format"`
	Workers int                   `yaml:"workers"`
}

func defaultConfig() config {
	return config{
		Format:  jsondom.DefaultOptions(),
		Workers: runtime.NumCPU(),
	}
}

// loadConfig reads path over the defaults, so absent keys keep their
// default value.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return cfg, nil
}
