// Package playback sends rendered buffers to the default audio device.
package playback

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/tidaw/codec"
)

const pollInterval = 10 * time.Millisecond

// Player owns the process-wide oto context. Only one Player may exist per
// process.
type Player struct {
	ctx        *oto.Context
	sampleRate int
}

// New opens the audio device for mono float32 output at sampleRate.
func New(sampleRate float64, bufferSize int) (*Player, error) {
	rate := int(math.Round(sampleRate))
	if rate <= 0 {
		return nil, fmt.Errorf("playback: sample rate must be > 0: %v", sampleRate)
	}

	op := &oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   BufferDuration(bufferSize, sampleRate),
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("playback: create oto context: %w", err)
	}
	<-ready

	return &Player{ctx: ctx, sampleRate: rate}, nil
}

// Play blocks until samples have been played or ctx is done.
func (p *Player) Play(ctx context.Context, samples []float32) error {
	data, err := encode(samples, p.sampleRate)
	if err != nil {
		return err
	}

	player := p.ctx.NewPlayer(bytes.NewReader(data))
	defer player.Close()

	player.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	if err := player.Err(); err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	return nil
}

// BufferDuration converts a buffer size in samples to the device buffer
// duration oto expects. Non-positive sizes select oto's default.
func BufferDuration(bufferSize int, sampleRate float64) time.Duration {
	if bufferSize <= 0 || !(sampleRate > 0) {
		return 0
	}
	return time.Duration(float64(bufferSize) / sampleRate * float64(time.Second))
}

func encode(samples []float32, sampleRate int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(samples) * codec.Float32LE.BytesPerSample())

	if err := codec.Encode(&buf, codec.NewBuffer(samples, float64(sampleRate)), codec.Float32LE); err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}

	return buf.Bytes(), nil
}
