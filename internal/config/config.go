// Package config loads host configuration for the tidaw command.
//
// Engine settings come from viper (flags, an optional config file, and
// TIDAW_* environment variables). Logging settings are read straight from the
// environment so they apply before any config file is parsed.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"

	"github.com/cwbudde/tidaw/codec"
	"github.com/cwbudde/tidaw/dsp/core"
	"github.com/cwbudde/tidaw/dsp/node"
	"github.com/cwbudde/tidaw/engine"
)

// EnvPrefix prefixes every environment variable the command reads.
const EnvPrefix = "TIDAW"

// Viper keys.
const (
	KeySampleRate = "sample_rate"
	KeyBufferSize = "buffer_size"
	KeyChain      = "chain"
	KeyEncoding   = "encoding"
)

// Env holds settings read directly from the environment.
type Env struct {
	LogLevel  string `env:"TIDAW_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"TIDAW_LOG_FORMAT" envDefault:"text"`
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	cfg, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}

// Config holds the engine settings of one command invocation.
type Config struct {
	SampleRate float64 `mapstructure:"sample_rate"`
	BufferSize int     `mapstructure:"buffer_size"`
	Chain      string  `mapstructure:"chain"`
	Encoding   string  `mapstructure:"encoding"`
}

// SetDefaults registers defaults on v so every key is known to Unmarshal
// and to AutomaticEnv.
func SetDefaults(v *viper.Viper) {
	def := core.ApplyProcessorOptions()
	v.SetDefault(KeySampleRate, def.SampleRate)
	v.SetDefault(KeyBufferSize, def.BlockSize)
	v.SetDefault(KeyChain, "")
	v.SetDefault(KeyEncoding, codec.Float32LE.String())
}

// Load reads configuration into a Config. configFile may be empty, in which
// case tidaw.{yaml,toml,json} is looked up in the working directory and the
// user config dir; a missing file is not an error.
func Load(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("tidaw")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/tidaw")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// EngineOptions turns the chain setting into engine options.
func (c Config) EngineOptions() ([]engine.Option, error) {
	stages, err := node.ParseChain(c.Chain)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyChain, err)
	}

	if len(stages) == 0 {
		return nil, nil
	}

	return []engine.Option{engine.WithChain(stages...)}, nil
}

// PCMEncoding parses the encoding setting.
func (c Config) PCMEncoding() (codec.Encoding, error) {
	enc, err := codec.ParseEncoding(c.Encoding)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", KeyEncoding, err)
	}
	return enc, nil
}
