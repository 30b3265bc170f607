// Package holdmusic synthesizes a seamlessly loopable dark-synthwave hold
// music clip and writes it as a 16-bit stereo PCM WAV file.
package holdmusic

import (
	"errors"
	"math"
)

// Config holds the fixed render parameters.
type Config struct {
	SampleRate      int
	DurationSeconds float64
	BPM             float64
}

func DefaultConfig() Config {
	return Config{
		SampleRate:      44100,
		DurationSeconds: 15.0,
		BPM:             100,
	}
}

func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return errors.New("sampleRate must be positive")
	}
	if !(c.DurationSeconds > 0) || math.IsInf(c.DurationSeconds, 0) {
		return errors.New("duration must be positive")
	}
	if !(c.BPM > 0) || math.IsInf(c.BPM, 0) {
		return errors.New("bpm must be positive")
	}
	return nil
}

// NumSamples returns the per-channel length, round(SampleRate * DurationSeconds).
func (c Config) NumSamples() int {
	return int(math.Round(float64(c.SampleRate) * c.DurationSeconds))
}

// Beat returns seconds per beat.
func (c Config) Beat() float64 {
	return 60.0 / c.BPM
}

// Mastering holds the post-synthesis stages applied to the full mix.
type Mastering struct {
	CutoffHz    float64 // one-pole low-pass cutoff
	TargetPeak  float64 // normalization target
	FadeSeconds float64 // loop crossfade length
}

func DefaultMastering() Mastering {
	return Mastering{
		CutoffHz:    2000,
		TargetPeak:  0.85,
		FadeSeconds: 0.5,
	}
}

// FadeSamples returns the crossfade length in samples for sampleRate.
func (m Mastering) FadeSamples(sampleRate int) int {
	return int(math.Round(float64(sampleRate) * m.FadeSeconds))
}
