package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/odvcencio/prodx/pkg/hierarchy"
	"github.com/odvcencio/prodx/pkg/seqx"
)

func newStatsCmd(a *app) *cobra.Command {
	var lf linkFlags

	cmd := &cobra.Command{
		Use:   "stats [file|-]...",
		Short: "Print link counts for a record set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := readInputs(cmd.Context(), args, lf.input(), cmd.InOrStdin(), a.logger)
			if err != nil {
				return err
			}
			rep, err := linkSources(sources, lf.options(cmd, a.cfg), a.logger)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}

			out := cmd.OutOrStdout()
			nodes := hierarchy.Flatten(rep.Roots, children)
			fmt.Fprintf(out, "roots:      %d\n", len(rep.Roots))
			fmt.Fprintf(out, "explicit:   %d\n", rep.Explicit)
			fmt.Fprintf(out, "unresolved: %d\n", rep.Unresolved)
			fmt.Fprintf(out, "skipped:    %d\n", rep.Skipped)
			fmt.Fprintf(out, "links:      %d\n", rep.Linked)
			fmt.Fprintf(out, "nodes:      %d\n", len(nodes))
			fmt.Fprintf(out, "depth:      %d\n", hierarchy.Depth(rep.Roots, children))

			widest, ok := seqx.MaxFunc(slices.Values(nodes), func(x, y *node) int {
				return len(x.Children) - len(y.Children)
			})
			if ok && len(widest.Children) > 0 {
				fmt.Fprintf(out, "widest:     %s (%d children)\n", widest.ID, len(widest.Children))
			}

			for _, g := range seqx.GroupBy(slices.Values(nodes), func(n *node) string { return n.Source }) {
				fmt.Fprintf(out, "source %s: %d nodes\n", g.Key, len(g.Values))
			}
			return nil
		},
	}
	lf.register(cmd)
	return cmd
}
