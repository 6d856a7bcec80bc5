package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cwbudde/tidaw/measure/tone"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Report peak, RMS and dominant frequency of raw PCM on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			samples, err := a.readPCM(cmd)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}

			res, err := tone.Analyze(samples, a.engine.SampleRate())
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}

			printResult(cmd.OutOrStdout(), res, a.engine.SampleRate())
			return nil
		},
	}
}

func printResult(w io.Writer, res tone.Result, sampleRate float64) {
	length := time.Duration(float64(res.Samples) / sampleRate * float64(time.Second))

	fmt.Fprintf(w, "samples:   %s (%s)\n", humanize.Comma(int64(res.Samples)), length.Round(time.Millisecond))
	fmt.Fprintf(w, "peak:      %.4f (%.2f dBFS)\n", res.Peak, res.PeakDBFS)
	fmt.Fprintf(w, "rms:       %.4f\n", res.RMS)
	fmt.Fprintf(w, "dominant:  %s\n", humanize.SIWithDigits(res.DominantHz, 2, "Hz"))
}
