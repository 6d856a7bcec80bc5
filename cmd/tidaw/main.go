// Command tidaw drives the audio engine from the shell.
//
// Samples travel as headerless PCM on stdin/stdout so the command composes
// with tools such as aplay or sox.
//
// Usage:
//
//	tidaw [flags] <command>
//
// Examples:
//
//	tidaw generate -f 440 -d 1 | aplay -f FLOAT_LE -r 44100 -c 1
//	tidaw generate -f 1000 -d 0.5 | tidaw process --chain '[{"type":"gain","params":{"gainDB":-6}}]' | tidaw analyze
//	tidaw play -f 220 -d 2
//	tidaw info
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
