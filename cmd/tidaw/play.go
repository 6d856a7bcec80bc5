package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/tidaw/engine"
	"github.com/cwbudde/tidaw/internal/playback"
)

func newPlayCmd(a *app) *cobra.Command {
	var p engine.OscillatorParams

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a sine tone on the default audio device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			samples, err := a.engine.Generate(p)
			if err != nil {
				return fmt.Errorf("play: %w", err)
			}

			player, err := playback.New(a.engine.SampleRate(), a.engine.BufferSize())
			if err != nil {
				return err
			}

			a.logger.Info("Playing tone", "frequency", p.Frequency, "duration", p.Duration)

			err = player.Play(cmd.Context(), samples)
			if errors.Is(err, context.Canceled) {
				a.logger.Warn("Playback interrupted")
				return nil
			}
			return err
		},
	}
	addToneFlags(cmd, &p)

	return cmd
}
