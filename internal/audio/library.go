package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/cozyfocus/internal/config"
	"github.com/akyairhashvil/cozyfocus/internal/models"
)

// Library maps selections to files.
type Library struct {
	Dir    string
	Tracks []string
}

func NewLibrary(dir string) Library {
	return Library{Dir: dir, Tracks: config.BuiltInTracks}
}

func (l Library) has(track string) bool {
	for _, t := range l.Tracks {
		if t == track {
			return true
		}
	}
	return false
}

// file returns the first existing name.ext in Dir, or name+fallback when
// none is present yet.
func (l Library) file(name, fallback string) string {
	for _, ext := range config.SoundFileExts {
		path := filepath.Join(l.Dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(l.Dir, name+fallback)
}

// Resolve returns the source for a non-None selection.
func (l Library) Resolve(sel models.SoundSelection) (Source, error) {
	switch sel.Kind {
	case models.SoundBuiltIn:
		if !l.has(sel.Track) {
			return Source{}, fmt.Errorf("%w: %q", ErrUnknownTrack, sel.Track)
		}
		return Source{Name: sel.Track, Path: l.file(sel.Track, config.SoundFileExts[0])}, nil
	case models.SoundCustom:
		if strings.TrimSpace(sel.Ref) == "" {
			return Source{}, ErrEmptyReference
		}
		return Source{Name: sel.Label(), Path: sel.Ref}, nil
	default:
		return Source{}, fmt.Errorf("nothing to resolve for %s selection", sel.Kind)
	}
}

// AlertSource is the chime used for both alert slots. A generated WAV chime
// stands in when no recording is installed.
func (l Library) AlertSource() Source {
	return Source{Name: config.TimerEndSound, Path: l.file(config.TimerEndSound, config.ChimeFileExt)}
}
