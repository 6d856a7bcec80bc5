package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-audio/audio"
)

// Encoding selects the PCM sample layout.
type Encoding int

const (
	// Float32LE is IEEE-754 single precision, little endian.
	Float32LE Encoding = iota
	// Int16LE is signed 16-bit PCM, little endian.
	Int16LE
)

const int16Scale = 32767

var (
	errNilBuffer    = errors.New("codec: nil buffer")
	errNilFormat    = errors.New("codec: nil format")
	errTrailingData = errors.New("codec: trailing partial sample")
)

// ParseEncoding maps "f32le"/"float32" and "s16le"/"int16" to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f32le", "float32", "f32":
		return Float32LE, nil
	case "s16le", "int16", "s16":
		return Int16LE, nil
	default:
		return 0, fmt.Errorf("codec: unsupported encoding %q", s)
	}
}

// String returns the canonical encoding name.
func (e Encoding) String() string {
	switch e {
	case Float32LE:
		return "f32le"
	case Int16LE:
		return "s16le"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// BytesPerSample returns the encoded width of one sample.
func (e Encoding) BytesPerSample() int {
	if e == Int16LE {
		return 2
	}
	return 4
}

// MonoFormat describes a single-channel stream at sampleRate rounded to the
// nearest integer Hz.
func MonoFormat(sampleRate float64) *audio.Format {
	return &audio.Format{
		NumChannels: 1,
		SampleRate:  int(math.Round(sampleRate)),
	}
}

// NewBuffer wraps mono samples at sampleRate without copying.
func NewBuffer(samples []float32, sampleRate float64) *audio.Float32Buffer {
	return &audio.Float32Buffer{
		Format:         MonoFormat(sampleRate),
		Data:           samples,
		SourceBitDepth: 32,
	}
}

// Encode writes the buffer's samples to w.
func Encode(w io.Writer, buf *audio.Float32Buffer, enc Encoding) error {
	if buf == nil {
		return errNilBuffer
	}

	bw := bufio.NewWriter(w)
	b := make([]byte, enc.BytesPerSample())

	for _, v := range buf.Data {
		switch enc {
		case Float32LE:
			binary.LittleEndian.PutUint32(b, math.Float32bits(v))
		case Int16LE:
			binary.LittleEndian.PutUint16(b, uint16(Float32ToInt16(v)))
		default:
			return fmt.Errorf("codec: unsupported encoding %v", enc)
		}

		if _, err := bw.Write(b); err != nil {
			return fmt.Errorf("codec: write sample: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("codec: flush: %w", err)
	}

	return nil
}

// Decode reads samples from r until EOF. A stream ending inside a sample is
// an error.
func Decode(r io.Reader, format *audio.Format, enc Encoding) (*audio.Float32Buffer, error) {
	if format == nil {
		return nil, errNilFormat
	}
	if enc != Float32LE && enc != Int16LE {
		return nil, fmt.Errorf("codec: unsupported encoding %v", enc)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("codec: read: %w", err)
	}

	width := enc.BytesPerSample()
	if len(raw)%width != 0 {
		return nil, fmt.Errorf("%w: %d bytes", errTrailingData, len(raw)%width)
	}

	out := &audio.Float32Buffer{
		Format:         &audio.Format{NumChannels: format.NumChannels, SampleRate: format.SampleRate},
		Data:           make([]float32, len(raw)/width),
		SourceBitDepth: width * 8,
	}

	for i := range out.Data {
		chunk := raw[i*width : (i+1)*width]
		if enc == Float32LE {
			out.Data[i] = math.Float32frombits(binary.LittleEndian.Uint32(chunk))
		} else {
			out.Data[i] = Int16ToFloat32(int16(binary.LittleEndian.Uint16(chunk)))
		}
	}

	return out, nil
}

// Float32ToInt16 clamps x to [-1, 1] and scales it by 32767. NaN maps to 0.
func Float32ToInt16(x float32) int16 {
	if x != x {
		return 0
	}
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int16(math.Round(float64(x) * int16Scale))
}

// Int16ToFloat32 maps a 16-bit sample back to [-1, 1]. -32768 maps to
// slightly below -1.
func Int16ToFloat32(s int16) float32 {
	return float32(float64(s) / int16Scale)
}
