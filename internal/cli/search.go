// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/RonaldPonguillo/mumoro/core"
	"github.com/RonaldPonguillo/mumoro/martins"
	"github.com/RonaldPonguillo/mumoro/netfile"
)

// transfersObjective is the reserved objective name counting transfer edges.
const transfersObjective = "transfers"

// searchFlags holds the flag values of the search command.
type searchFlags struct {
	from        string
	to          string
	at          string
	objectives  []string
	relaxed     bool
	timeSlack   float64
	secondSlack float64
	tradeRatio  float64
	maxLabels   int
}

// searchCommand creates the "search" command.
func (c *CLI) searchCommand() *cobra.Command {
	def := martins.DefaultRelaxed()
	f := searchFlags{
		at:          "0",
		timeSlack:   def.TimeSlack,
		secondSlack: def.SecondSlack,
		tradeRatio:  def.TradeRatio,
	}

	cmd := &cobra.Command{
		Use:   "search <network>",
		Short: "Print the Pareto-optimal itineraries between two stops",
		Long: `Search loads a network document (TOML or YAML, optionally .zst) and prints
every itinerary that is not dominated on arrival time and the selected
objectives. Objectives name edge attributes of the document; "transfers"
counts transfer edges. Without --to, a summary per reachable stop is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSearch(cmd, args[0], f)
		},
	}

	cmd.Flags().StringVar(&f.from, "from", "", "source stop ID (required)")
	cmd.Flags().StringVar(&f.to, "to", "", "destination stop ID (empty: every stop)")
	cmd.Flags().StringVar(&f.at, "at", f.at, "departure time: seconds, HH:MM or HH:MM:SS")
	cmd.Flags().StringSliceVarP(&f.objectives, "objective", "o", nil, "objective to minimize besides time (repeatable)")
	cmd.Flags().BoolVar(&f.relaxed, "relaxed", false, "use relaxed dominance to shrink the result set")
	cmd.Flags().Float64Var(&f.timeSlack, "time-slack", f.timeSlack, "relaxed: tolerated loss in arrival time")
	cmd.Flags().Float64Var(&f.secondSlack, "second-slack", f.secondSlack, "relaxed: tolerated loss in the first objective")
	cmd.Flags().Float64Var(&f.tradeRatio, "trade-ratio", f.tradeRatio, "relaxed: max second-objective loss per time unit saved (0 disables)")
	cmd.Flags().IntVar(&f.maxLabels, "max-labels", 0, "abort after settling this many labels (0: unlimited)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func (c *CLI) runSearch(cmd *cobra.Command, path string, f searchFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	w := cmd.OutOrStdout()

	start, err := parseClock(f.at)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	g, err := netfile.Load(path)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Loaded %d vertices, %d edges", g.Order(), g.Size()))

	objs, err := objectives(g, f.objectives)
	if err != nil {
		return err
	}

	opts := []martins.Option{
		martins.Source(f.from),
		martins.Target(f.to),
		martins.StartTime(start),
		martins.WithObjectives(objs...),
		martins.WithMaxLabels(f.maxLabels),
		martins.WithContext(ctx),
		martins.WithLogger(logger),
	}
	if f.relaxed {
		opts = append(opts, martins.WithDominance(martins.Relaxed{
			TimeSlack:   f.timeSlack,
			SecondSlack: f.secondSlack,
			TradeRatio:  f.tradeRatio,
		}))
	}

	res, err := martins.Search(g, opts...)
	if err != nil {
		return err
	}

	if f.to == "" {
		printReached(w, res, f.objectives)
		return nil
	}
	if len(res.Paths) == 0 {
		printWarning(w, "%s is unreachable from %s after %s", f.to, f.from, formatClock(start))
		return nil
	}
	printSuccess(w, "%s Pareto-optimal itineraries %s %s %s",
		number(len(res.Paths)), f.from, iconArrow, f.to)
	for i, p := range res.Paths {
		fmt.Fprintf(w, "  %s  %s\n", number(i+1), describeCost(f.objectives, p.Cost))
		printRoute(w, p.Nodes)
	}

	return nil
}

// objectives resolves objective names: "transfers" counts transfer edges,
// anything else must be an edge attribute of g.
func objectives(g *core.Graph, names []string) ([]martins.Objective, error) {
	objs := make([]martins.Objective, 0, len(names))
	for _, name := range names {
		if name == transfersObjective {
			objs = append(objs, martins.ModeChange(core.Transfer))
			continue
		}
		named, err := martins.Named(g, name)
		if err != nil {
			return nil, err
		}
		objs = append(objs, named...)
	}

	return objs, nil
}

// printReached summarizes an all-destinations search, one line per stop.
func printReached(w io.Writer, res *martins.Result, names []string) {
	reached := res.Reached()
	printSuccess(w, "%s stops reachable", number(len(reached)))
	for _, id := range reached {
		paths := res.PathsTo(id)
		printInfo(w, "%s  %s option(s), fastest: %s", id, number(len(paths)), describeCost(names, paths[0].Cost))
	}
}
