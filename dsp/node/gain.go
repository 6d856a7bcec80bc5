package node

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/tidaw/dsp/buffer"
	"github.com/cwbudde/tidaw/dsp/core"
)

const maxVolumePercent = 100

// Gain scales every sample by a fixed linear factor.
type Gain struct {
	gain float64
	pool *buffer.Pool
}

// NewGain creates a gain node. A negative or non-finite gain is rejected.
func NewGain(gain float64) (*Gain, error) {
	if !core.IsFinite(gain) || gain < 0 {
		return nil, core.InvalidConfigf("gain must be finite and >= 0: %v", gain)
	}
	return &Gain{gain: gain, pool: buffer.NewPool()}, nil
}

// NewGainFromParams builds a Gain from stage parameters. "gainDB" takes
// precedence over "volume" (percent, 0..100), which takes precedence over the
// linear "gain" (default 1).
func NewGainFromParams(p Params) (*Gain, error) {
	for _, key := range []string{"gainDB", "volume", "gain"} {
		if v, bad := p.finite(key); bad {
			return nil, core.InvalidConfigf("gain parameter %q must be finite: %v", key, v)
		}
	}

	switch {
	case p.Has("gainDB"):
		return NewGain(core.DBToLinear(p.GetNum("gainDB", 0)))
	case p.Has("volume"):
		vol := p.GetNum("volume", maxVolumePercent)
		if vol < 0 || vol > maxVolumePercent {
			return nil, core.InvalidConfigf("volume must be in [0,%d]: %v", maxVolumePercent, vol)
		}
		return NewGain(vol / maxVolumePercent)
	default:
		return NewGain(p.GetNum("gain", 1))
	}
}

// Linear returns the linear gain factor.
func (g *Gain) Linear() float64 {
	return g.gain
}

// Process writes src scaled by the gain into dst.
func (g *Gain) Process(dst, src []float32) {
	scratch := g.pool.Widen(src)
	vecmath.ScaleBlockInPlace(scratch.Samples(), g.gain)
	g.pool.Narrow(dst, scratch)
}
