package main

import (
	"bufio"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cwbudde/tidaw/codec"
	"github.com/cwbudde/tidaw/engine"
)

func addToneFlags(cmd *cobra.Command, p *engine.OscillatorParams) {
	cmd.Flags().Float64VarP(&p.Frequency, "frequency", "f", 440, "tone frequency in Hz")
	cmd.Flags().Float64VarP(&p.Duration, "duration", "d", 1, "tone duration in seconds")
}

func newGenerateCmd(a *app) *cobra.Command {
	var p engine.OscillatorParams

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a sine tone to stdout as raw PCM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			samples, err := a.engine.Generate(p)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			n, err := a.writePCM(cmd, samples)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			a.logger.Info("Generated tone",
				"frequency", p.Frequency,
				"samples", humanize.Comma(int64(len(samples))),
				"bytes", humanize.Bytes(uint64(n)))
			return nil
		},
	}
	addToneFlags(cmd, &p)

	return cmd
}

// writePCM encodes samples to the command's stdout and returns the byte count.
func (a *app) writePCM(cmd *cobra.Command, samples []float32) (int, error) {
	w := bufio.NewWriter(cmd.OutOrStdout())
	if err := codec.Encode(w, codec.NewBuffer(samples, a.engine.SampleRate()), a.enc); err != nil {
		return 0, err
	}
	if err := w.Flush(); err != nil {
		return 0, err
	}
	return len(samples) * a.enc.BytesPerSample(), nil
}
