package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/tidaw/codec"
	"github.com/cwbudde/tidaw/engine"
	"github.com/cwbudde/tidaw/internal/config"
	"github.com/cwbudde/tidaw/internal/logging"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string

	cfg    config.Config
	logger *log.Logger
	engine *engine.Engine
	enc    codec.Encoding
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "tidaw",
		Short:         "Generate, process and analyze audio buffers with the tidaw engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./tidaw.yaml or ~/.config/tidaw/tidaw.yaml)")
	flags.Float64P("sample-rate", "r", 0, "sample rate in Hz")
	flags.IntP("buffer-size", "b", 0, "buffer size in samples")
	flags.String("chain", "", `processing chain as JSON, e.g. [{"type":"gain","params":{"volume":80}}]`)
	flags.StringP("encoding", "e", "", "PCM encoding on stdin/stdout (f32le, s16le)")

	_ = a.v.BindPFlag(config.KeySampleRate, flags.Lookup("sample-rate"))
	_ = a.v.BindPFlag(config.KeyBufferSize, flags.Lookup("buffer-size"))
	_ = a.v.BindPFlag(config.KeyChain, flags.Lookup("chain"))
	_ = a.v.BindPFlag(config.KeyEncoding, flags.Lookup("encoding"))

	root.AddCommand(
		newGenerateCmd(a),
		newProcessCmd(a),
		newAnalyzeCmd(a),
		newPlayCmd(a),
		newInfoCmd(a),
		newGreetCmd(a),
	)

	return root
}

// setup loads configuration, builds the logger and constructs the engine.
func (a *app) setup(cmd *cobra.Command) error {
	envCfg, err := config.LoadEnv()
	if err != nil {
		return err
	}

	a.logger, err = logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:  envCfg.LogLevel,
		Format: envCfg.LogFormat,
		Prefix: "tidaw",
	})
	if err != nil {
		return err
	}

	a.cfg, err = config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("Using configuration file", "path", used)
	}

	a.enc, err = a.cfg.PCMEncoding()
	if err != nil {
		return err
	}

	opts, err := a.cfg.EngineOptions()
	if err != nil {
		return err
	}
	opts = append(opts, engine.WithNotifier(func(msg string) { a.logger.Info(msg) }))

	a.engine, err = engine.New(a.cfg.SampleRate, a.cfg.BufferSize, opts...)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	a.logger.Debug("Engine ready",
		"sampleRate", a.engine.SampleRate(),
		"bufferSize", a.engine.BufferSize(),
		"chain", a.engine.Chain(),
		"encoding", a.enc)

	return nil
}
