package synth

import (
	"math"
	"testing"
)

func TestEngineGeneratesSignal(t *testing.T) {
	e := New(44100, DefaultParams())
	var nonZero bool
	for i := 0; i < 5000; i++ {
		l, r := e.RenderFrame(i)
		if l != 0 || r != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Fatalf("expected non-zero output")
	}
}

func TestBeatFollowsTempo(t *testing.T) {
	p := DefaultParams()
	e := New(44100, p)
	if math.Abs(e.Beat()-0.6) > 1e-12 {
		t.Fatalf("beat = %v, want 0.6 at 100 BPM", e.Beat())
	}
	p.BPM = 120
	if got := New(44100, p).Beat(); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("beat = %v, want 0.5 at 120 BPM", got)
	}
}

func TestArpStepsEverySixteenth(t *testing.T) {
	e := New(44100, DefaultParams())
	sixteenth := e.Beat() / 4
	for _, tc := range []struct {
		t    float64
		want int
	}{
		{0, 0},
		{sixteenth * 0.5, 0},
		{sixteenth * 1.5, 1},
		{sixteenth * 3.5, 3},
		{sixteenth * 5.5, 5},
		{sixteenth * 6.5, 0},
		{sixteenth * 13.5, 1},
	} {
		if got := e.ArpStep(tc.t); got != tc.want {
			t.Errorf("ArpStep(%v) = %d, want %d", tc.t, got, tc.want)
		}
	}
}

func TestArpEnvelopeDecays(t *testing.T) {
	e := New(44100, DefaultParams())
	sixteenth := e.Beat() / 4
	if got := e.ArpEnvelope(0); got != 1 {
		t.Errorf("envelope at step start = %v, want 1", got)
	}
	if got := e.ArpEnvelope(sixteenth * 0.5); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("envelope at half step = %v, want 0.25", got)
	}
	// 1 - 1.5*x hits zero at two thirds of the step and stays there.
	if got := e.ArpEnvelope(sixteenth * 0.8); got != 0 {
		t.Errorf("envelope late in step = %v, want 0", got)
	}
	if got := e.ArpEnvelope(sixteenth * 2.1); math.Abs(got-0.85) > 1e-6 {
		t.Errorf("envelope should restart each step, got %v", got)
	}
}

func TestBassLayer(t *testing.T) {
	e := New(44100, DefaultParams())
	// Quarter cycle of 55 Hz is the sine peak; pulse = 0.5+0.5*sin(2π t/0.6).
	tq := 1.0 / 55.0 / 4.0
	pulse := 0.5 + 0.5*math.Sin(2*math.Pi*tq/0.6)
	want := 1.0 * pulse * 0.35
	if got := e.Bass(tq); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Bass(%v) = %v, want %v", tq, got, want)
	}
	if got := e.Bass(0); got != 0 {
		t.Fatalf("Bass(0) = %v, want 0", got)
	}
}

func TestPadAtTimeZero(t *testing.T) {
	e := New(44100, DefaultParams())
	// Every saw starts at -1; swell starts at its offset.
	want := (-5*0.04 + -3*0.025) * 0.6
	if got := e.Pad(0); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Pad(0) = %v, want %v", got, want)
	}
}

func TestStereoWeights(t *testing.T) {
	e := New(44100, DefaultParams())
	for _, i := range []int{0, 1234, 22050, 500000} {
		ti := e.Time(i)
		bass, arp, pad := e.Bass(ti), e.Arp(ti), e.Pad(ti)
		l, r := e.RenderFrame(i)
		if wl := bass + arp*0.7 + pad*1.1; math.Abs(l-wl) > 1e-12 {
			t.Errorf("left[%d] = %v, want %v", i, l, wl)
		}
		if wr := bass + arp*1.1 + pad*0.7; math.Abs(r-wr) > 1e-12 {
			t.Errorf("right[%d] = %v, want %v", i, r, wr)
		}
	}
}

func TestSilentParams(t *testing.T) {
	p := DefaultParams()
	p.BassGain, p.ArpGain, p.PadGain, p.FifthGain = 0, 0, 0, 0
	e := New(44100, p)
	for i := 0; i < 4096; i++ {
		if l, r := e.RenderFrame(i); l != 0 || r != 0 {
			t.Fatalf("frame %d = (%v, %v), want silence", i, l, r)
		}
	}
}

func TestEmptyArpIsSilent(t *testing.T) {
	p := DefaultParams()
	p.ArpNotes = nil
	e := New(44100, p)
	if got := e.Arp(0.123); got != 0 {
		t.Fatalf("Arp with no notes = %v, want 0", got)
	}
}

func TestRenderRangeMatchesFrames(t *testing.T) {
	e := New(44100, DefaultParams())
	left := make([]float64, 1000)
	right := make([]float64, 1000)
	e.Render(left, right, 200, 700)
	for i := range left {
		if i < 200 || i >= 700 {
			if left[i] != 0 || right[i] != 0 {
				t.Fatalf("index %d outside range was written", i)
			}
			continue
		}
		l, r := e.RenderFrame(i)
		if left[i] != l || right[i] != r {
			t.Fatalf("index %d = (%v, %v), want (%v, %v)", i, left[i], right[i], l, r)
		}
	}
}
