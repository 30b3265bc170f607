// Package osc provides stateless oscillators addressed by absolute phase.
//
// Phase is measured in cycles (t * freq), so every sample can be computed
// independently of the ones before it.
package osc

import "math"

const twoPi = math.Pi * 2

// Saw maps phase to a rising ramp in [-1, 1).
func Saw(phase float64) float64 {
	return 2.0*frac(phase) - 1.0
}

// Sine maps phase to sin(2π·phase).
func Sine(phase float64) float64 {
	return math.Sin(twoPi * phase)
}

// MIDIToFreq converts a MIDI note number to equal-tempered Hz (A4 = 440).
func MIDIToFreq(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

// Detune offsets freq by a fractional amount (0.01 = +1%).
func Detune(freq, amount float64) float64 {
	return freq * (1 + amount)
}

// frac returns phase mod 1, always in [0, 1).
func frac(phase float64) float64 {
	f := phase - math.Floor(phase)
	if f >= 1 {
		return 0
	}
	return f
}
