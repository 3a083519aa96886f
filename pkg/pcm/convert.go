// Package pcm implements the Sample Converter (spec.md C1): converting an
// interleaved multichannel PCM frame of arbitrary sample width to mono
// float32 in [-1, 1]. Grounded on glyphoxa's pkg/audio.FormatConverter, which
// performs the analogous "normalize then downmix" conversion for Discord
// voice frames — generalized here to int8/int16/int32/float32 source widths
// since SS9K talks to raw OS audio callbacks rather than a fixed Opus PCM
// format.
package pcm

import (
	"fmt"
	"math"
)

// SampleFormat identifies the interleaved source sample encoding.
type SampleFormat uint8

const (
	FormatI8 SampleFormat = iota
	FormatI16
	FormatI32
	FormatF32
)

// Converter downmixes interleaved frames to mono float32. It keeps a single
// reusable output buffer across calls so that after the first invocation's
// allocation, converting a same-size frame is allocation-free — required
// because Convert runs inside the audio driver's real-time callback
// (spec.md §4.1).
type Converter struct {
	Channels int
	out      []float32
}

// NewConverter builds a Converter for a fixed channel count.
func NewConverter(channels int) (*Converter, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("pcm: channel count must be positive, got %d", channels)
	}
	return &Converter{Channels: channels}, nil
}

// Convert downmixes an interleaved frame of the given format to mono
// float32. The returned slice is owned by the Converter and is only valid
// until the next call to Convert — callers that need to retain samples past
// the capture gate must copy them (the capture-buffer append in C5 does this
// under its own short-held lock).
func (c *Converter) Convert(frame []byte, format SampleFormat) ([]float32, error) {
	width := sampleWidth(format)
	if width == 0 {
		return nil, fmt.Errorf("pcm: unsupported sample format %d", format)
	}
	frameBytes := width * c.Channels
	if frameBytes == 0 || len(frame)%frameBytes != 0 {
		return nil, fmt.Errorf("pcm: frame length %d is not a multiple of %d bytes (width=%d, channels=%d)", len(frame), frameBytes, width, c.Channels)
	}
	n := len(frame) / frameBytes
	if cap(c.out) < n {
		c.out = make([]float32, n)
	}
	c.out = c.out[:n]

	for i := 0; i < n; i++ {
		var sum float32
		base := i * frameBytes
		for ch := 0; ch < c.Channels; ch++ {
			off := base + ch*width
			sum += decodeNormalized(frame[off:off+width], format)
		}
		c.out[i] = sum / float32(c.Channels)
	}
	return c.out, nil
}

func sampleWidth(f SampleFormat) int {
	switch f {
	case FormatI8:
		return 1
	case FormatI16:
		return 2
	case FormatI32, FormatF32:
		return 4
	default:
		return 0
	}
}

func decodeNormalized(b []byte, format SampleFormat) float32 {
	switch format {
	case FormatI8:
		v := int8(b[0])
		return float32(v) / 128.0
	case FormatI16:
		v := int16(uint16(b[0]) | uint16(b[1])<<8)
		return float32(v) / 32768.0
	case FormatI32:
		v := int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
		return float32(v) / 2147483648.0
	case FormatF32:
		bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
		return math.Float32frombits(bits)
	default:
		return 0
	}
}
