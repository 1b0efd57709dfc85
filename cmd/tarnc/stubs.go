package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tarn-lang/tarn/pkg/loader"
	"github.com/tarn-lang/tarn/pkg/stubgen"
)

func stubsCmd(cfg *Config) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "stubs GRAPH.toml",
		Short: "Generate Java stubs for joint compilation",
		Long: `stubs loads a type graph and writes one .java stub per declared class,
mirroring each class's package as a directory structure. The stubs carry
signatures only; javac compiles against them while the Tarn compiler
produces the real bytecode.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cfg.Debug)

			graph, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			classes := graph.Classes()
			for _, cn := range classes {
				slog.Debug("generating stub", "class", cn.Name())
			}
			gen := &stubgen.Generator{OutputDir: outputDir}
			if err := gen.GenerateAll(cmd.Context(), classes); err != nil {
				return err
			}
			slog.Info("stubs generated", "classes", len(classes), "dir", outputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "stubs", "Directory to write stubs into")
	return cmd
}
