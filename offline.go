package holdmusic

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	intfx "github.com/cbegin/holdmusic/internal/effects"
	intsynth "github.com/cbegin/holdmusic/internal/synth"
	intwav "github.com/cbegin/holdmusic/internal/wavfile"
)

// minBlock keeps tiny renders on a single goroutine.
const minBlock = 4096

// RenderOptions tunes how a render is executed, never what it produces.
type RenderOptions struct {
	Workers   int // 0 = GOMAXPROCS, 1 = sequential
	Params    *intsynth.Params
	Mastering *Mastering
}

// Render synthesizes both channels for cfg with default options.
func Render(cfg Config) (left, right []float64, err error) {
	return RenderWithOptions(cfg, RenderOptions{})
}

// RenderWithOptions synthesizes the dry mix in parallel blocks, then
// low-passes, normalizes and loop-crossfades it in that order.
func RenderWithOptions(cfg Config, opts RenderOptions) (left, right []float64, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	params := intsynth.DefaultParams()
	if opts.Params != nil {
		params = *opts.Params
	}
	params.BPM = cfg.BPM
	master := DefaultMastering()
	if opts.Mastering != nil {
		master = *opts.Mastering
	}

	n := cfg.NumSamples()
	left = make([]float64, n)
	right = make([]float64, n)
	engine := intsynth.New(cfg.SampleRate, params)
	if err := renderBlocks(engine, left, right, opts.Workers); err != nil {
		return nil, nil, err
	}

	intfx.ProcessBlock(intfx.NewChain(intfx.NewLowPass(cfg.SampleRate, master.CutoffHz)), left, right)
	intfx.Normalize(master.TargetPeak, left, right)
	fade := master.FadeSamples(cfg.SampleRate)
	intfx.LoopCrossfade(left, fade)
	intfx.LoopCrossfade(right, fade)
	return left, right, nil
}

// renderBlocks splits [0, len(left)) into contiguous ranges, one per worker.
// Workers write disjoint ranges, so the result matches a sequential pass.
func renderBlocks(engine *intsynth.Engine, left, right []float64, workers int) error {
	n := len(left)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if maxWorkers := (n + minBlock - 1) / minBlock; workers > maxWorkers {
		workers = maxWorkers
	}
	if workers <= 1 {
		engine.Render(left, right, 0, n)
		return nil
	}
	block := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for from := 0; from < n; from += block {
		to := min(from+block, n)
		g.Go(func() error {
			engine.Render(left, right, from, to)
			return nil
		})
	}
	return g.Wait()
}

// Generate renders cfg and returns the complete WAV file.
func Generate(cfg Config) ([]byte, error) {
	left, right, err := Render(cfg)
	if err != nil {
		return nil, err
	}
	return intwav.EncodeBytes(left, right, cfg.SampleRate)
}

// WriteFile renders cfg and writes it to path, replacing any existing file.
func WriteFile(path string, cfg Config, opts RenderOptions) error {
	left, right, err := RenderWithOptions(cfg, opts)
	if err != nil {
		return err
	}
	return intwav.WriteFile(path, left, right, cfg.SampleRate)
}
