package lfo

import "math"

// Waveform constants.
const (
	WaveSaw      = 0
	WaveSquare   = 1
	WaveTriangle = 2
	WaveSine     = 3
)

// LFO is a low-frequency modulator evaluated at absolute time.
// The output is Offset + Depth*wave(t/Period), so a sine LFO with
// Offset 0.5 and Depth 0.5 sweeps [0, 1] once per Period.
//
// There is no phase accumulator: At(t) depends only on t, which keeps
// block-parallel rendering bit-identical to a sequential pass.
type LFO struct {
	Offset   float64
	Depth    float64 // peak deviation from Offset
	Period   float64 // seconds per cycle
	Waveform int     // 0=saw, 1=square, 2=triangle, 3=sine
}

// New returns an LFO; unknown waveforms fall back to sine.
func New(offset, depth, period float64, waveform int) LFO {
	if waveform < 0 || waveform > 3 {
		waveform = WaveSine
	}
	return LFO{Offset: offset, Depth: depth, Period: period, Waveform: waveform}
}

// At returns the modulation value at time t (seconds).
// An inactive LFO returns Offset.
func (l LFO) At(t float64) float64 {
	if !l.Active() {
		return l.Offset
	}
	return l.Offset + l.Depth*l.wave(t/l.Period)
}

func (l LFO) wave(phase float64) float64 {
	switch l.Waveform {
	case WaveSaw:
		p := phase - math.Floor(phase)
		return 1.0 - 2.0*p
	case WaveSquare:
		p := phase - math.Floor(phase)
		if p < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveTriangle:
		p := phase - math.Floor(phase)
		if p < 0.5 {
			return 4.0*p - 1.0
		}
		return 3.0 - 4.0*p
	default: // WaveSine
		return math.Sin(2.0 * math.Pi * phase)
	}
}

// Active returns true if the LFO has non-zero depth and period.
func (l LFO) Active() bool {
	return l.Depth != 0 && l.Period != 0
}
