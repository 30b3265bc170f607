package wavfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteFile encodes left and right to path. The file is written to a
// temporary sibling and renamed into place, so readers never observe a
// partial file; an existing file at path is replaced.
func WriteFile(path string, left, right []float64, sampleRate int) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err = Encode(tmp, left, right, sampleRate); err != nil {
		return fmt.Errorf("failed to encode WAV: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync WAV: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close WAV: %w", err)
	}
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to set WAV permissions: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// Info is what a standard decoder reports for a WAV file.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Frames     int
	Duration   time.Duration
	Size       int64 // bytes on disk
}

// Inspect decodes the header of the WAV file at path.
func Inspect(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open WAV file: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return Info{}, err
	}
	info, err := InspectReader(f)
	if err != nil {
		return Info{}, err
	}
	info.Size = st.Size()
	return info, nil
}

// InspectReader decodes a WAV header from r and positions the decoder at
// the start of the PCM data.
func InspectReader(r io.ReadSeeker) (Info, error) {
	_, info, err := openPCM(r)
	return info, err
}

// ReadFrames decodes a 16-bit stereo WAV file back into per-channel samples.
func ReadFrames(r io.ReadSeeker) (left, right []int16, err error) {
	d, info, err := openPCM(r)
	if err != nil {
		return nil, nil, err
	}
	if info.Channels != 2 || info.BitDepth != 16 {
		return nil, nil, fmt.Errorf("%w: %d ch, %d bit", ErrUnsupportedFormat, info.Channels, info.BitDepth)
	}
	buf := &audio.IntBuffer{
		Format:         d.Format(),
		Data:           make([]int, info.Frames*info.Channels),
		SourceBitDepth: info.BitDepth,
	}
	n, err := d.PCMBuffer(buf)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode PCM: %w", err)
	}
	frames := n / info.Channels
	left = make([]int16, frames)
	right = make([]int16, frames)
	for i := 0; i < frames; i++ {
		left[i] = int16(buf.Data[2*i])
		right[i] = int16(buf.Data[2*i+1])
	}
	return left, right, nil
}

func openPCM(r io.ReadSeeker) (*wav.Decoder, Info, error) {
	d := wav.NewDecoder(r)
	d.ReadInfo()
	if !d.IsValidFile() {
		return nil, Info{}, errors.New("invalid WAV file format")
	}
	if err := d.FwdToPCM(); err != nil {
		return nil, Info{}, fmt.Errorf("failed to locate PCM data: %w", err)
	}
	format := d.Format()
	bitDepth := int(d.SampleBitDepth())
	if bitDepth == 0 || format == nil || format.NumChannels == 0 || format.SampleRate == 0 {
		return nil, Info{}, errors.New("invalid WAV format chunk")
	}
	blockAlign := format.NumChannels * ((bitDepth-1)/8 + 1)
	frames := int(d.PCMLen()) / blockAlign
	return d, Info{
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		BitDepth:   bitDepth,
		Frames:     frames,
		Duration:   time.Duration(float64(frames) / float64(format.SampleRate) * float64(time.Second)),
	}, nil
}
