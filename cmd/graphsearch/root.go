package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aiclass/generic/logging"
	"github.com/aiclass/generic/problem"
)

// version is set at link time.
var version = "devel"

// app holds the state shared by all subcommands
// of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer
	v      *viper.Viper
	log    zerolog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		v:      viper.New(),
		log:    zerolog.Nop(),
	}
	cmd := &cobra.Command{
		Use:   "graphsearch",
		Short: "Search for paths through weighted graphs",
		Long: `graphsearch finds paths through weighted undirected graphs using
breadth-first, depth-first, uniform-cost or A* search.

Problems are read from YAML files (--problem) or chosen from the
built-in examples (--example romania).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.String("config", "", "read default flag values from this YAML `file`")
	flags.String("log-level", "info", "minimum log level (trace, debug, info, warn, error, disabled)")
	flags.String("log-format", "console", "log format (console or json)")

	cmd.AddCommand(
		a.runCmd(),
		a.compareCmd(),
		a.renderCmd(),
		a.versionCmd(),
	)
	return cmd
}

// init binds the flags of the command being run into a.v,
// reads the config file if any, and sets up the logger.
func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("GRAPHSEARCH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if cfgFile := a.v.GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("cannot read config: %w", err)
		}
	}
	log, err := logging.New(logging.Config{
		Level:  a.v.GetString("log-level"),
		Format: a.v.GetString("log-format"),
		Output: a.stderr,
	})
	if err != nil {
		return err
	}
	a.log = log
	if f := a.v.ConfigFileUsed(); f != "" {
		a.log.Debug().Str("file", f).Msg("config loaded")
	}
	return nil
}

// addProblemFlags adds the flags that choose a problem.
func addProblemFlags(flags *pflag.FlagSet) {
	flags.String("problem", "", "read the problem from this YAML `file`")
	flags.String("example", "romania", "use the named built-in problem when --problem is not set")
}

// addEndpointFlags adds the flags that override the
// problem's start and goal.
func addEndpointFlags(flags *pflag.FlagSet) {
	flags.String("from", "", "start node (default: the problem's start)")
	flags.String("to", "", "goal node (default: the problem's goal)")
}

// loadProblem returns the problem chosen by the problem flags.
func (a *app) loadProblem() (*problem.Problem, error) {
	var (
		p   *problem.Problem
		err error
	)
	if file := a.v.GetString("problem"); file != "" {
		p, err = problem.ParseFile(file)
	} else {
		p, err = problem.Example(a.v.GetString("example"))
	}
	if err != nil {
		return nil, err
	}
	a.log.Debug().
		Str("name", p.Name).
		Int("nodes", p.Graph.Len()).
		Msg("problem loaded")
	return p, nil
}

// endpoints returns the start and goal for a search of p,
// checking that both are nodes of its graph.
func (a *app) endpoints(p *problem.Problem) (start, goal string, err error) {
	start, goal = a.v.GetString("from"), a.v.GetString("to")
	if start == "" {
		start = p.Start
	}
	if goal == "" {
		goal = p.Goal
	}
	for _, n := range []struct{ flag, node string }{{"from", start}, {"to", goal}} {
		if n.node == "" {
			return "", "", fmt.Errorf("no %s node given and the problem has no default", n.flag)
		}
		if !p.Graph.HasNode(n.node) {
			return "", "", fmt.Errorf("unknown %s node %q", n.flag, n.node)
		}
	}
	return start, goal, nil
}
