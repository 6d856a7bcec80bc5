package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cwbudde/tidaw/codec"
)

func newProcessCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Run raw PCM from stdin through the processing chain to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.readPCM(cmd)
			if err != nil {
				return fmt.Errorf("process: %w", err)
			}

			out := processBlocks(a.engine.Process, in, a.engine.BufferSize())

			n, err := a.writePCM(cmd, out)
			if err != nil {
				return fmt.Errorf("process: %w", err)
			}

			a.logger.Info("Processed stream",
				"chain", a.engine.Chain(),
				"samples", humanize.Comma(int64(len(out))),
				"bytes", humanize.Bytes(uint64(n)))
			return nil
		},
	}
}

// processBlocks feeds in to process in blocks of at most size samples and
// concatenates the results.
func processBlocks(process func([]float32) []float32, in []float32, size int) []float32 {
	out := make([]float32, 0, len(in))
	for start := 0; start < len(in); start += size {
		end := min(start+size, len(in))
		out = append(out, process(in[start:end])...)
	}
	return out
}

func (a *app) readPCM(cmd *cobra.Command) ([]float32, error) {
	buf, err := codec.Decode(cmd.InOrStdin(), codec.MonoFormat(a.engine.SampleRate()), a.enc)
	if err != nil {
		return nil, err
	}
	return buf.Data, nil
}
