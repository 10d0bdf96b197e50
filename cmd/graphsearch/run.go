package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aiclass/generic/graph/path"
	"github.com/aiclass/generic/graph/search"
	"github.com/aiclass/generic/mermaid"
	"github.com/aiclass/generic/problem"
)

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search for a path with one strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd.Context())
		},
	}
	flags := cmd.Flags()
	addProblemFlags(flags)
	addEndpointFlags(flags)
	flags.String("strategy", search.AStar.String(), "search strategy (bfs, dfs, ucs or astar)")
	flags.Bool("trace", false, "log every path selected for expansion")
	flags.String("output", "text", "output format (text, json or mermaid)")
	return cmd
}

// result is the JSON form of a search result.
type result struct {
	Strategy   search.Kind `json:"strategy"`
	From       string      `json:"from"`
	To         string      `json:"to"`
	Found      bool        `json:"found"`
	Path       []string    `json:"path,omitempty"`
	Cost       float64     `json:"cost"`
	Length     int         `json:"length"`
	Iterations int         `json:"iterations"`
}

func newResult(kind search.Kind, from, to string, res search.Result[string]) result {
	r := result{
		Strategy:   kind,
		From:       from,
		To:         to,
		Found:      res.Found,
		Iterations: res.Iterations,
	}
	if res.Found {
		r.Path = res.Path.Nodes()
		r.Cost = res.Path.Cost()
		r.Length = res.Path.Len()
	}
	return r
}

func (a *app) runSearch(ctx context.Context) error {
	output := a.v.GetString("output")
	switch output {
	case "text", "json", "mermaid":
	default:
		return fmt.Errorf("unknown output format %q (want text, json or mermaid)", output)
	}
	kind, err := search.ParseKind(a.v.GetString("strategy"))
	if err != nil {
		return err
	}
	p, err := a.loadProblem()
	if err != nil {
		return err
	}
	start, goal, err := a.endpoints(p)
	if err != nil {
		return err
	}
	res, err := a.search(ctx, p, kind, start, goal, a.v.GetBool("trace"))
	if err != nil {
		return err
	}
	switch output {
	case "json":
		return writeJSON(a.stdout, newResult(kind, start, goal, res))
	case "mermaid":
		_, err := a.stdout.Write(mermaid.Render(p.Graph, res.Path))
		return err
	}
	if !res.Found {
		_, err := fmt.Fprintf(a.stdout, "no path from %s to %s (%v, %d iterations)\n", start, goal, kind, res.Iterations)
		return err
	}
	_, err = fmt.Fprintf(a.stdout, "strategy:   %v\npath:       %s\ncost:       %s\nlength:     %d\niterations: %d\n",
		kind,
		strings.Join(res.Path.Nodes(), " -> "),
		path.FormatCost(res.Path.Cost()),
		res.Path.Len(),
		res.Iterations,
	)
	return err
}

// search runs one search of p, logging each selected path
// when trace is set.
func (a *app) search(ctx context.Context, p *problem.Problem, kind search.Kind, start, goal string, trace bool) (search.Result[string], error) {
	if kind == search.AStar && !p.HasHeuristic(goal) {
		a.log.Warn().Str("goal", goal).Msg("no heuristic estimates for goal; A* will behave like uniform-cost search")
	}
	opts := []search.Option[string]{
		search.WithHeuristic(p.Heuristic()),
	}
	if trace {
		log := a.log.With().Stringer("strategy", kind).Logger()
		opts = append(opts, search.WithTrace(func(i int, sp *path.Path[string]) {
			logSelect(&log, i, sp)
		}))
	}
	res, err := search.Search(ctx, p.Graph, start, goal, kind, opts...)
	if err != nil {
		return res, err
	}
	a.log.Debug().
		Stringer("strategy", kind).
		Bool("found", res.Found).
		Int("iterations", res.Iterations).
		Msg("search finished")
	return res, nil
}

func logSelect(log *zerolog.Logger, iteration int, p *path.Path[string]) {
	log.Info().
		Int("iteration", iteration).
		Str("node", p.End()).
		Float64("cost", p.Cost()).
		Int("length", p.Len()).
		Msg("select")
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
