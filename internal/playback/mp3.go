package playback

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"
)

var ErrNotMP3 = errors.New("not a valid MP3 file")

// DecodeMP3 decodes an MP3 stream. The decoder always produces 16 bit
// stereo.
func DecodeMP3(r io.Reader) (*Clip, error) {
	d, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotMP3, err)
	}
	pcm, err := io.ReadAll(d)
	if err != nil && len(pcm) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNotMP3, err)
	}
	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}
	return &Clip{Samples: samples, SampleRate: d.SampleRate(), Channels: 2}, nil
}

func DecodeMP3File(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	clip, err := DecodeMP3(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return clip, nil
}
