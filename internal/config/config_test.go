package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/cwbudde/tidaw/codec"
	"github.com/cwbudde/tidaw/engine"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Config{SampleRate: 44100, BufferSize: 512, Encoding: "f32le"}
	if cfg != want {
		t.Fatalf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TIDAW_SAMPLE_RATE", "48000")
	t.Setenv("TIDAW_BUFFER_SIZE", "256")
	t.Setenv("TIDAW_ENCODING", "s16le")

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SampleRate != 48000 || cfg.BufferSize != 256 || cfg.Encoding != "s16le" {
		t.Fatalf("Load() = %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stream.yaml")
	content := "sample_rate: 96000\nbuffer_size: 1024\nchain: '[{\"type\":\"gain\",\"params\":{\"volume\":75}}]'\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SampleRate != 96000 || cfg.BufferSize != 1024 {
		t.Fatalf("Load() = %+v", cfg)
	}

	opts, err := cfg.EngineOptions()
	if err != nil {
		t.Fatalf("EngineOptions() error = %v", err)
	}

	e, err := engine.New(cfg.SampleRate, cfg.BufferSize, opts...)
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}
	if out := e.Process([]float32{1}); out[0] != 0.75 {
		t.Fatalf("Process([1]) = %v, want [0.75]", out)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestEngineOptionsBadChain(t *testing.T) {
	if _, err := (Config{Chain: "[{"}).EngineOptions(); err == nil {
		t.Fatal("expected error for malformed chain")
	}
}

func TestPCMEncoding(t *testing.T) {
	enc, err := Config{Encoding: "s16le"}.PCMEncoding()
	if err != nil || enc != codec.Int16LE {
		t.Fatalf("PCMEncoding() = %v, %v", enc, err)
	}
	if _, err := (Config{Encoding: "opus"}).PCMEncoding(); err == nil {
		t.Fatal("expected error for unsupported encoding")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("TIDAW_LOG_LEVEL", "debug")

	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "text" {
		t.Fatalf("LoadEnv() = %+v", cfg)
	}
}
