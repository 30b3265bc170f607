package effects

import "math"

// LowPass is a one-pole RC low-pass filter applied independently per channel.
//
//	out[0] = α·in[0]
//	out[i] = out[i-1] + α·(in[i] - out[i-1])
//
// with α = dt/(RC+dt), RC = 1/(2π·cutoff), dt = 1/sampleRate.
type LowPass struct {
	alpha    float64
	lpL, lpR float64 // previous output per channel
}

// NewLowPass creates a low-pass filter. A cutoff <= 0 passes audio through.
func NewLowPass(sampleRate int, cutoff float64) *LowPass {
	return &LowPass{alpha: LowPassAlpha(sampleRate, cutoff)}
}

// LowPassAlpha returns the smoothing coefficient for cutoff at sampleRate.
func LowPassAlpha(sampleRate int, cutoff float64) float64 {
	if cutoff <= 0 || sampleRate <= 0 {
		return 1
	}
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	dt := 1.0 / float64(sampleRate)
	return dt / (rc + dt)
}

func (f *LowPass) Alpha() float64 { return f.alpha }

func (f *LowPass) Process(l, r float64) (float64, float64) {
	f.lpL += f.alpha * (l - f.lpL)
	f.lpR += f.alpha * (r - f.lpR)
	return f.lpL, f.lpR
}

func (f *LowPass) Reset() {
	f.lpL, f.lpR = 0, 0
}
