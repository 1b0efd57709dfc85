package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/tarn-lang/tarn/pkg/ast"
	"github.com/tarn-lang/tarn/pkg/loader"
	"github.com/tarn-lang/tarn/pkg/widen"
)

func lubCmd(cfg *Config) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "lub GRAPH.toml TYPE TYPE...",
		Short: "Compute the lowest upper bound of two or more types",
		Long: `lub loads a type graph and prints the most specific type all the given
types are assignable to. When no declared type captures the bound, the
result is a virtual type and its components are listed.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cfg.Debug)

			graph, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			if verbose {
				_, _ = pretty.Fprintf(os.Stderr, "%# v\n", graph.Classes())
			}

			types := make([]ast.Type, 0, len(args)-1)
			for _, expr := range args[1:] {
				t, err := graph.Lookup(expr)
				if err != nil {
					return err
				}
				slog.Debug("resolved operand", "expr", expr, "type", t.Text())
				types = append(types, t)
			}

			lub, err := widen.LowestUpperBoundAll(types)
			if err != nil {
				return err
			}
			if vt, ok := lub.(*widen.VirtualType); ok {
				fmt.Printf("%s (virtual)\n", vt.Text())
				fmt.Printf("  name:    %s\n", vt.LubName())
				fmt.Printf("  class:   %s\n", vt.Upper().Text())
				for _, in := range vt.InterfaceSet() {
					fmt.Printf("  implements %s\n", in.Text())
				}
				return nil
			}
			fmt.Println(lub.Text())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Dump the resolved type graph to stderr")
	return cmd
}
