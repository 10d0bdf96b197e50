// The graphsearch command searches for paths through weighted
// undirected graphs loaded from YAML problem files.
//
// Usage:
//
//	graphsearch run [--problem FILE | --example NAME] [--strategy KIND] [--from NODE] [--to NODE] [--trace] [--output text|json|mermaid]
//	graphsearch compare [--problem FILE | --example NAME] [--from NODE] [--to NODE] [--output text|json]
//	graphsearch render [--problem FILE | --example NAME]
//	graphsearch version
//
// Every flag may also be set in a YAML file named by --config or
// through an environment variable such as GRAPHSEARCH_STRATEGY.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "graphsearch: %v\n", err)
		return 1
	}
	return 0
}
