package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Config holds the flags shared by every tarnc subcommand.
type Config struct {
	Debug bool
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "tarnc",
		Short: "Tarn joint-compilation tools",
		Long: `tarnc hosts the pieces of the Tarn toolchain that cooperate with javac:
Java stub generation for joint compilation and the static type checker's
widening queries over a type graph.`,
		Example: `  # Generate Java stubs for a type graph
  tarnc stubs graph.toml -o build/stubs

  # Ask for the lowest upper bound of two types
  tarnc lub graph.toml com.acme.B com.acme.C`,
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.AddCommand(lubCmd(&cfg))
	rootCmd.AddCommand(stubsCmd(&cfg))

	ctx := context.Background()
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
