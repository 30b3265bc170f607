// Package wavfile writes and inspects canonical RIFF/WAVE PCM files.
package wavfile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	// HeaderSize is the length of the canonical RIFF + fmt + data header.
	HeaderSize = 44

	formatPCM    = 1
	fmtChunkSize = 16
	maxDataSize  = math.MaxUint32 - (HeaderSize - 8)
)

var (
	ErrUnsupportedFormat = errors.New("wavfile: only 2-channel 16-bit PCM is supported")
	ErrChannelLength     = errors.New("wavfile: left and right channels differ in length")
	ErrTooLarge          = errors.New("wavfile: data exceeds RIFF size limit")
)

// Format describes the PCM layout written to the fmt chunk.
type Format struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
}

// Stereo16 returns the only layout Encode writes.
func Stereo16(sampleRate int) Format {
	return Format{SampleRate: sampleRate, Channels: 2, BitsPerSample: 16}
}

func (f Format) BytesPerSample() int { return f.BitsPerSample / 8 }
func (f Format) BlockAlign() int     { return f.Channels * f.BytesPerSample() }
func (f Format) ByteRate() int       { return f.SampleRate * f.BlockAlign() }

func (f Format) validate() error {
	if f.Channels != 2 || f.BitsPerSample != 16 || f.SampleRate <= 0 {
		return fmt.Errorf("%w: %d ch, %d bit, %d Hz", ErrUnsupportedFormat, f.Channels, f.BitsPerSample, f.SampleRate)
	}
	return nil
}

// Header builds the 44-byte header for frames frames of format f.
func Header(f Format, frames int) ([]byte, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	dataSize := uint64(frames) * uint64(f.BlockAlign())
	if frames < 0 || dataSize > maxDataSize {
		return nil, ErrTooLarge
	}
	out := make([]byte, HeaderSize)
	copy(out[0:], "RIFF")
	binary.LittleEndian.PutUint32(out[4:], uint32(36+dataSize))
	copy(out[8:], "WAVE")
	copy(out[12:], "fmt ")
	binary.LittleEndian.PutUint32(out[16:], fmtChunkSize)
	binary.LittleEndian.PutUint16(out[20:], formatPCM)
	binary.LittleEndian.PutUint16(out[22:], uint16(f.Channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(out[32:], uint16(f.BlockAlign()))
	binary.LittleEndian.PutUint16(out[34:], uint16(f.BitsPerSample))
	copy(out[36:], "data")
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))
	return out, nil
}

// Quantize16 scales x by 32767, clamps to the int16 range and truncates
// toward zero. NaN maps to 0.
func Quantize16(x float64) int16 {
	v := x * 32767
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}

// Encode writes left and right as an interleaved 16-bit stereo WAV stream.
func Encode(w io.Writer, left, right []float64, sampleRate int) error {
	if len(left) != len(right) {
		return ErrChannelLength
	}
	hdr, err := Header(Stereo16(sampleRate), len(left))
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(w, 64*1024)
	if _, err := bw.Write(hdr); err != nil {
		return err
	}
	var frame [4]byte
	for i := range left {
		binary.LittleEndian.PutUint16(frame[0:], uint16(Quantize16(left[i])))
		binary.LittleEndian.PutUint16(frame[2:], uint16(Quantize16(right[i])))
		if _, err := bw.Write(frame[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeBytes returns the complete WAV file for left and right.
func EncodeBytes(left, right []float64, sampleRate int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(left)*4)
	if err := Encode(&buf, left, right, sampleRate); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
