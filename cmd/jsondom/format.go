package main

import (
	"github.com/alecthomas/kingpin/v2"

	"github.com/oarkflow/jsondom"
)

// formatFlags lets the command line override the configured layout. Only
// flags given explicitly take effect.
type formatFlags struct {
	pretty, spacing, sortKeys, strict         bool
	indent                                    int
	prettySet, spacingSet, sortSet, strictSet bool
	indentSet                                 bool
}

func (f *formatFlags) register(cmd *kingpin.CmdClause) {
	cmd.Flag("pretty", "One member per line.").IsSetByUser(&f.prettySet).BoolVar(&f.pretty)
	cmd.Flag("spacing", "Space after ',' and ':' in compact output.").IsSetByUser(&f.spacingSet).BoolVar(&f.spacing)
	cmd.Flag("sort-keys", "Write object members in key order.").IsSetByUser(&f.sortSet).BoolVar(&f.sortKeys)
	cmd.Flag("strict", "Only use escapes every JSON decoder understands.").IsSetByUser(&f.strictSet).BoolVar(&f.strict)
	cmd.Flag("indent", "Spaces per nesting level with --pretty.").IsSetByUser(&f.indentSet).IntVar(&f.indent)
}

func (f *formatFlags) apply(opts jsondom.FormatOptions) jsondom.FormatOptions {
	if f.prettySet {
		opts.Pretty = f.pretty
	}
	if f.spacingSet {
		opts.Spacing = f.spacing
	}
	if f.sortSet {
		opts.SortKeys = f.sortKeys
	}
	if f.strictSet {
		opts.Strict = f.strict
	}
	if f.indentSet {
		opts.Indent = f.indent
	}
	return opts
}
