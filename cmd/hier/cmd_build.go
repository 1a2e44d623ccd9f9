package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// linkFlags are shared by build and stats.
type linkFlags struct {
	id, parent, label string
	inputFormat       string
	query             string
	fold, strict      bool
	sort              bool
}

func (f *linkFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.id, "id", "", "field holding the record id")
	cmd.Flags().StringVar(&f.parent, "parent", "", "field holding the parent id")
	cmd.Flags().StringVar(&f.label, "label", "", "field shown as the node label")
	cmd.Flags().StringVar(&f.inputFormat, "input-format", "", "input format (json, jsonl, yaml, toml, msgpack); default by extension, json for stdin")
	cmd.Flags().StringVar(&f.query, "query", "", "treat inputs as SQLite databases and read records from this query")
	cmd.Flags().BoolVar(&f.fold, "fold", false, "compare ids case-insensitively")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "fail on records without an id")
	cmd.Flags().BoolVar(&f.sort, "sort", false, "order siblings by label")
}

// options merges flags over the loaded config.
func (f *linkFlags) options(cmd *cobra.Command, cfg Config) linkOptions {
	opts := linkOptions{
		idField:     cfg.ID,
		parentField: cfg.Parent,
		labelField:  cfg.Label,
		fold:        cfg.Fold,
		sort:        cfg.Sort,
		strict:      f.strict,
	}
	if cmd.Flags().Changed("id") {
		opts.idField = f.id
	}
	if cmd.Flags().Changed("parent") {
		opts.parentField = f.parent
	}
	if cmd.Flags().Changed("label") {
		opts.labelField = f.label
	}
	if cmd.Flags().Changed("fold") {
		opts.fold = f.fold
	}
	if cmd.Flags().Changed("sort") {
		opts.sort = f.sort
	}
	return opts
}

func (f *linkFlags) input() inputSpec {
	return inputSpec{format: f.inputFormat, query: f.query}
}

func newBuildCmd(a *app) *cobra.Command {
	var lf linkFlags
	var format string
	var width int
	var compress, noColor bool

	cmd := &cobra.Command{
		Use:   "build [file|-]...",
		Short: "Link records into a tree and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := lf.options(cmd, a.cfg)
			ropts := renderOptions{width: a.cfg.Width, zstd: compress, noColor: noColor}
			if cmd.Flags().Changed("width") {
				ropts.width = width
			}
			name := a.cfg.Format
			if cmd.Flags().Changed("format") {
				name = format
			}
			of, err := outputFormats.Parse(name)
			if err != nil {
				return fmt.Errorf("build: --format: %w", err)
			}
			ropts.format = of

			sources, err := readInputs(cmd.Context(), args, lf.input(), cmd.InOrStdin(), a.logger)
			if err != nil {
				return err
			}
			rep, err := linkSources(sources, opts, a.logger)
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}
			a.logger.Debug("linked",
				zap.Int("roots", len(rep.Roots)),
				zap.Int("links", rep.Linked))
			return render(cmd.OutOrStdout(), rep.Roots, ropts)
		},
	}
	lf.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: tree, json, yaml, msgpack")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "truncate tree labels to this many columns (0 = no limit)")
	cmd.Flags().BoolVar(&compress, "zstd", false, "zstd-compress the output")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored tree output")
	return cmd
}
