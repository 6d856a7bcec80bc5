package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/tidaw/dsp/node"
	"github.com/cwbudde/tidaw/internal/playback"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the effective engine configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			cfg := a.engine.Config()

			fmt.Fprintf(w, "sample rate: %g Hz\n", cfg.SampleRate)
			fmt.Fprintf(w, "buffer size: %d samples (%s)\n", cfg.BlockSize,
				playback.BufferDuration(cfg.BlockSize, cfg.SampleRate))
			fmt.Fprintf(w, "encoding:    %s\n", a.enc)
			fmt.Fprintf(w, "chain:       %s\n", strings.Join(a.engine.Chain(), " -> "))
			fmt.Fprintf(w, "node types:  %s\n", strings.Join(node.DefaultRegistry().Types(), ", "))
		},
	}
}

func newGreetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "greet NAME",
		Short: "Send a greeting through the engine notifier",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			a.engine.Greet(args[0])
		},
	}
}
