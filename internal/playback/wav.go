package playback

import (
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var (
	ErrNotWAV            = errors.New("not a valid WAV file")
	ErrUnsupportedFormat = errors.New("unsupported audio encoding")
)

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE
)

// Clip is decoded interleaved PCM16 audio.
type Clip struct {
	Samples    []int16
	SampleRate int
	Channels   int
}

// Duration in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate == 0 || c.Channels == 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate*c.Channels)
}

// DecodeWAVFile reads and decodes an integer PCM WAV file.
func DecodeWAVFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	clip, err := DecodeWAV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return clip, nil
}

// DecodeWAV decodes 8, 16, 24 or 32 bit integer PCM and converts it to 16
// bit. The sample buffer grows as data is read, so a header claiming more
// data than the stream holds costs nothing extra.
func DecodeWAV(r io.ReadSeeker) (*Clip, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, ErrNotWAV
	}
	if d.WavAudioFormat != wavFormatPCM && d.WavAudioFormat != wavFormatExtensible {
		return nil, fmt.Errorf("%w: WAV format %d", ErrUnsupportedFormat, d.WavAudioFormat)
	}
	buf, err := d.FullPCMBuffer()
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: %v", ErrNotWAV, err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 || buf.Format.SampleRate < 1 {
		return nil, ErrNotWAV
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		switch d.BitDepth {
		case 8:
			samples[i] = int16((v - 128) << 8)
		case 16:
			samples[i] = int16(v)
		case 24:
			samples[i] = int16(v >> 8)
		case 32:
			samples[i] = int16(v >> 16)
		default:
			return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedFormat, d.BitDepth)
		}
	}
	return &Clip{Samples: samples, SampleRate: buf.Format.SampleRate, Channels: buf.Format.NumChannels}, nil
}

// EncodeWAV writes clip as 16 bit PCM. The header sizes are patched on
// close, hence the WriteSeeker.
func EncodeWAV(w io.WriteSeeker, clip *Clip) error {
	enc := wav.NewEncoder(w, clip.SampleRate, 16, clip.Channels, wavFormatPCM)
	data := make([]int, len(clip.Samples))
	for i, s := range clip.Samples {
		data[i] = int(s)
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: clip.Channels, SampleRate: clip.SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

// WriteWAVFile encodes clip into a new file at path.
func WriteWAVFile(path string, clip *Clip) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeWAV(f, clip); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
