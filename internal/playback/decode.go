package playback

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxSoundFileSize bounds what a single handle will load into memory.
const maxSoundFileSize = 256 << 20

// DecodeFile picks a decoder by file extension.
func DecodeFile(path string) (*Clip, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxSoundFileSize {
		return nil, fmt.Errorf("%s: %w: file is %d bytes", path, ErrUnsupportedFormat, info.Size())
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return DecodeWAVFile(path)
	case ".mp3":
		return DecodeMP3File(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}
