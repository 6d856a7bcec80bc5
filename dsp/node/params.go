package node

import "github.com/cwbudde/tidaw/dsp/core"

// Params holds the parsed parameters for a single chain stage.
type Params struct {
	Type     string
	Bypassed bool
	Num      map[string]float64
}

// GetNum safely extracts a numeric parameter, returning def if missing or invalid.
func (p Params) GetNum(key string, def float64) float64 {
	v, ok := p.Num[key]
	if !ok || !core.IsFinite(v) {
		return def
	}

	return v
}

// Has reports whether key was supplied, regardless of its value.
func (p Params) Has(key string) bool {
	_, ok := p.Num[key]
	return ok
}

// finite returns the raw value for key and whether it is present but not finite.
func (p Params) finite(key string) (v float64, bad bool) {
	v, ok := p.Num[key]
	if !ok {
		return 0, false
	}

	return v, !core.IsFinite(v)
}
