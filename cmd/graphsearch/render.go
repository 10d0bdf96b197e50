package main

import (
	"github.com/spf13/cobra"

	"github.com/aiclass/generic/mermaid"
)

func (a *app) renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the problem graph as a Mermaid flowchart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadProblem()
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(mermaid.Render[string](p.Graph, nil))
			return err
		},
	}
	addProblemFlags(cmd.Flags())
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.stdout.Write([]byte("graphsearch " + version + "\n"))
			return err
		},
	}
}
