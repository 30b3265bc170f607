package synth

import (
	"math"

	"github.com/cbegin/holdmusic/internal/lfo"
	"github.com/cbegin/holdmusic/internal/osc"
)

// Params fixes the layer set: sub-bass, saw arpeggio and two detuned saw pads.
type Params struct {
	BPM float64

	BassFreq float64
	BassGain float64

	ArpNotes      []int   // MIDI notes, cycled once per sixteenth
	ArpGain       float64
	ArpDecaySlope float64 // env = max(0, 1 - slope*stepProgress)

	PadFreq    float64
	PadDetunes []float64
	PadGain    float64

	FifthFreq    float64
	FifthDetunes []float64
	FifthGain    float64

	SwellBeats  float64 // pad swell period in beats
	SwellOffset float64
	SwellDepth  float64

	// Stereo weights. Bass is centered.
	ArpLeft, ArpRight float64
	PadLeft, PadRight float64
}

func DefaultParams() Params {
	return Params{
		BPM:           100,
		BassFreq:      55.0, // A1
		BassGain:      0.35,
		ArpNotes:      []int{57, 60, 64, 67, 64, 60}, // Am7 up and back down
		ArpGain:       0.15,
		ArpDecaySlope: 1.5,
		PadFreq:       220.0, // A3
		PadDetunes:    []float64{-0.03, -0.01, 0.0, 0.01, 0.03},
		PadGain:       0.04,
		FifthFreq:     329.63, // E4
		FifthDetunes:  []float64{-0.02, 0.0, 0.02},
		FifthGain:     0.025,
		SwellBeats:    8,
		SwellOffset:   0.6,
		SwellDepth:    0.4,
		ArpLeft:       0.7,
		ArpRight:      1.1,
		PadLeft:       1.1,
		PadRight:      0.7,
	}
}

// Engine renders stereo frames as a pure function of time.
// It holds no per-sample state and is safe for concurrent use.
type Engine struct {
	params     Params
	sampleRate float64
	beat       float64
	sixteenth  float64
	arpFreqs   []float64
	padFreqs   []float64
	fifthFreqs []float64
	bassPulse  lfo.LFO
	swell      lfo.LFO
}

func New(sampleRate int, params Params) *Engine {
	beat := 60.0 / params.BPM
	e := &Engine{
		params:     params,
		sampleRate: float64(sampleRate),
		beat:       beat,
		sixteenth:  beat / 4.0,
		bassPulse:  lfo.New(0.5, 0.5, beat, lfo.WaveSine),
		swell:      lfo.New(params.SwellOffset, params.SwellDepth, beat*params.SwellBeats, lfo.WaveSine),
	}
	e.arpFreqs = make([]float64, len(params.ArpNotes))
	for i, n := range params.ArpNotes {
		e.arpFreqs[i] = osc.MIDIToFreq(n)
	}
	e.padFreqs = detuned(params.PadFreq, params.PadDetunes)
	e.fifthFreqs = detuned(params.FifthFreq, params.FifthDetunes)
	return e
}

func detuned(base float64, amounts []float64) []float64 {
	out := make([]float64, len(amounts))
	for i, d := range amounts {
		out[i] = osc.Detune(base, d)
	}
	return out
}

// Beat returns the beat period in seconds.
func (e *Engine) Beat() float64 { return e.beat }

// Time returns the absolute time of sample index i.
func (e *Engine) Time(i int) float64 {
	return float64(i) / e.sampleRate
}

// RenderFrame returns the dry stereo mix for sample index i.
func (e *Engine) RenderFrame(i int) (float64, float64) {
	t := e.Time(i)
	bass := e.Bass(t)
	arp := e.Arp(t)
	pad := e.Pad(t)
	p := &e.params
	return bass + arp*p.ArpLeft + pad*p.PadLeft,
		bass + arp*p.ArpRight + pad*p.PadRight
}

// Render fills dst[from:to] of both channels.
func (e *Engine) Render(left, right []float64, from, to int) {
	for i := from; i < to; i++ {
		left[i], right[i] = e.RenderFrame(i)
	}
}

// Bass is the sub-bass sine pulsing once per beat.
func (e *Engine) Bass(t float64) float64 {
	return osc.Sine(t*e.params.BassFreq) * e.bassPulse.At(t) * e.params.BassGain
}

// ArpStep returns the arpeggio note index active at time t.
func (e *Engine) ArpStep(t float64) int {
	if len(e.arpFreqs) == 0 {
		return -1
	}
	return int(t/e.sixteenth) % len(e.arpFreqs)
}

// ArpEnvelope is a linear decay restarting every sixteenth note.
func (e *Engine) ArpEnvelope(t float64) float64 {
	stepT := math.Mod(t, e.sixteenth) / e.sixteenth
	return math.Max(0, 1.0-stepT*e.params.ArpDecaySlope)
}

// Arp is the saw arpeggio over the note list.
func (e *Engine) Arp(t float64) float64 {
	step := e.ArpStep(t)
	if step < 0 {
		return 0
	}
	return osc.Saw(t*e.arpFreqs[step]) * e.ArpEnvelope(t) * e.params.ArpGain
}

// Pad is both detuned saw stacks under the slow swell.
func (e *Engine) Pad(t float64) float64 {
	var pad float64
	for _, f := range e.padFreqs {
		pad += osc.Saw(t * f)
	}
	pad *= e.params.PadGain

	var fifth float64
	for _, f := range e.fifthFreqs {
		fifth += osc.Saw(t * f)
	}
	fifth *= e.params.FifthGain

	return (pad + fifth) * e.swell.At(t)
}
