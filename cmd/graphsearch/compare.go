package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aiclass/generic/graph/path"
	"github.com/aiclass/generic/graph/search"
)

func (a *app) compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Search for a path with every strategy and compare the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := a.v.GetString("output")
			if output != "text" && output != "json" {
				return fmt.Errorf("unknown output format %q (want text or json)", output)
			}
			p, err := a.loadProblem()
			if err != nil {
				return err
			}
			start, goal, err := a.endpoints(p)
			if err != nil {
				return err
			}
			var results []result
			for _, kind := range search.Kinds() {
				res, err := a.search(cmd.Context(), p, kind, start, goal, false)
				if err != nil {
					return err
				}
				results = append(results, newResult(kind, start, goal, res))
			}
			if output == "json" {
				return writeJSON(a.stdout, results)
			}
			tw := tabwriter.NewWriter(a.stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintf(tw, "STRATEGY\tITERATIONS\tCOST\tPATH\n")
			for _, r := range results {
				cost, route := "-", "no path"
				if r.Found {
					cost = path.FormatCost(r.Cost)
					route = strings.Join(r.Path, " -> ")
				}
				fmt.Fprintf(tw, "%v\t%d\t%s\t%s\n", r.Strategy, r.Iterations, cost, route)
			}
			return tw.Flush()
		},
	}
	flags := cmd.Flags()
	addProblemFlags(flags)
	addEndpointFlags(flags)
	flags.String("output", "text", "output format (text or json)")
	return cmd
}
