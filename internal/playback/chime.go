package playback

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
)

const chimeRate = 22050

// Chime synthesizes a short two-note bell used when no timer-end sound has
// been installed.
func Chime() *Clip {
	notes := []float64{880, 1318.5}
	noteLen := chimeRate * 6 / 10
	samples := make([]int16, 0, noteLen*len(notes))
	for _, freq := range notes {
		for i := 0; i < noteLen; i++ {
			t := float64(i) / chimeRate
			env := math.Exp(-4 * t)
			v := 0.6 * env * (math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t))
			samples = append(samples, int16(v*32767/1.3))
		}
	}
	return &Clip{Samples: samples, SampleRate: chimeRate, Channels: 1}
}

// EnsureFile writes clip to path unless a file is already there. It reports
// whether it wrote one.
func EnsureFile(path string, clip *Clip) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create sounds dir: %w", err)
	}
	if err := WriteWAVFile(path, clip); err != nil {
		return false, fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return true, nil
}
