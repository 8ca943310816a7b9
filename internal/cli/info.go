// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RonaldPonguillo/mumoro/bfs"
	"github.com/RonaldPonguillo/mumoro/core"
	"github.com/RonaldPonguillo/mumoro/netfile"
)

// infoCommand creates the "info" command.
func (c *CLI) infoCommand() *cobra.Command {
	var (
		from  string
		modes []string
	)

	cmd := &cobra.Command{
		Use:   "info <network>",
		Short: "Summarize a network document",
		Long: `Info prints vertex and edge counts, the attribute schema and the number of
edges per mode. With --from, it also reports how many stops can be reached
from that stop at all, ignoring schedules, and the largest number of legs
needed to reach one of them. --mode restricts the walk to the given modes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			g, err := netfile.Load(args[0])
			if err != nil {
				return err
			}
			prog.done("Loaded network")

			w := cmd.OutOrStdout()
			printTitle(w, args[0])
			printKeyValue(w, "vertices", number(g.Order()))
			printKeyValue(w, "edges", number(g.Size()))
			attrs := g.Attributes()
			if len(attrs) == 0 {
				printKeyValue(w, "attributes", styleDim.Render("none"))
			} else {
				printKeyValue(w, "attributes", strings.Join(attrs, ", "))
			}
			for _, mc := range modeCounts(g) {
				printKeyValue(w, "mode "+string(mc.mode), number(mc.n))
			}

			if from == "" {
				return nil
			}
			opts := []bfs.Option{bfs.WithContext(cmd.Context())}
			if len(modes) > 0 {
				ms := make([]core.Mode, len(modes))
				for i, m := range modes {
					ms[i] = core.Mode(m)
				}
				opts = append(opts, bfs.WithModes(ms...))
			}
			res, err := bfs.BFS(g, from, opts...)
			if err != nil {
				return err
			}
			legs := 0
			for _, d := range res.Depth {
				legs = max(legs, d)
			}
			printKeyValue(w, "reachable", fmt.Sprintf("%d/%d from %s", len(res.Order), g.Order(), from))
			printKeyValue(w, "max legs", number(legs))

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "report reachability from this stop")
	cmd.Flags().StringSliceVar(&modes, "mode", nil, "only follow edges of these modes with --from (repeatable)")

	return cmd
}

type modeCount struct {
	mode core.Mode
	n    int
}

// modeCounts tallies edges per mode, most frequent first.
func modeCounts(g *core.Graph) []modeCount {
	counts := make(map[core.Mode]int)
	for i := 0; i < g.Order(); i++ {
		for _, e := range g.OutEdges(i) {
			counts[e.Mode]++
		}
	}
	out := make([]modeCount, 0, len(counts))
	for m, n := range counts {
		out = append(out, modeCount{m, n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].n != out[j].n {
			return out[i].n > out[j].n
		}
		return out[i].mode < out[j].mode
	})

	return out
}

// describeCost renders a cost vector with the objective names.
func describeCost(names []string, cost []float64) string {
	parts := make([]string, 0, len(cost))
	parts = append(parts, "arrive "+number(formatClock(cost[0])))
	for i := 1; i < len(cost) && i-1 < len(names); i++ {
		parts = append(parts, fmt.Sprintf("%s %s", names[i-1], number(cost[i])))
	}
	return strings.Join(parts, "  ")
}
