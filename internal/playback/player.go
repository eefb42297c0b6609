// Package playback plays WAV and MP3 files through PortAudio. It implements
// audio.Media.
package playback

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/akyairhashvil/cozyfocus/internal/audio"
	"github.com/akyairhashvil/cozyfocus/internal/util"
	"github.com/gordonklaus/portaudio"
)

const framesPerBuffer = 1024

// Player opens handles and owns the PortAudio session.
type Player struct {
	mu          sync.Mutex
	handles     map[*Handle]struct{}
	locked      bool
	initialized bool
	closed      bool
	openStream  func(h *Handle) (stream, error)
}

// stream is the subset of *portaudio.Stream a handle drives.
type stream interface {
	Start() error
	Stop() error
	Close() error
}

// NewPlayer initializes PortAudio. With autoplay off, Play returns
// audio.ErrAutoplayBlocked until Unlock is called.
func NewPlayer(autoplay bool) (*Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize portaudio: %w", err)
	}
	p := newPlayer(autoplay)
	p.initialized = true
	p.openStream = openPortAudioStream
	return p, nil
}

func newPlayer(autoplay bool) *Player {
	return &Player{
		handles: make(map[*Handle]struct{}),
		locked:  !autoplay,
	}
}

func openPortAudioStream(h *Handle) (stream, error) {
	clip := h.loadedClip()
	return portaudio.OpenDefaultStream(0, clip.Channels, float64(clip.SampleRate), framesPerBuffer, h.fill)
}

// Unlock lifts the autoplay gate after the first user interaction.
func (p *Player) Unlock() {
	p.mu.Lock()
	p.locked = false
	p.mu.Unlock()
}

func (p *Player) isLocked() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.locked
}

// Open starts decoding src on a goroutine and returns immediately. The
// outcome is delivered through notify.
func (p *Player) Open(src audio.Source, notify audio.Notify) (audio.Handle, error) {
	if strings.TrimSpace(src.Path) == "" {
		return nil, audio.ErrEmptyReference
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, errors.New("player closed")
	}
	h := &Handle{player: p, src: src, volume: 1}
	p.handles[h] = struct{}{}
	go h.load(notify)
	return h, nil
}

// Close releases every handle and terminates PortAudio.
func (p *Player) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	handles := make([]*Handle, 0, len(p.handles))
	for h := range p.handles {
		handles = append(handles, h)
	}
	p.mu.Unlock()

	for _, h := range handles {
		_ = h.Close()
	}
	if p.initialized {
		return portaudio.Terminate()
	}
	return nil
}

func (p *Player) forget(h *Handle) {
	p.mu.Lock()
	delete(p.handles, h)
	p.mu.Unlock()
}

// Handle is one sound. Play, Pause, Rewind and Close are called from the
// controller goroutine; fill runs on the PortAudio callback thread.
type Handle struct {
	player *Player
	src    audio.Source

	// owned by the controller goroutine
	stream  stream
	started bool

	mu      sync.Mutex
	clip    *Clip
	pos     int
	loop    bool
	volume  float64
	playing bool
	closed  bool
}

func (h *Handle) load(notify audio.Notify) {
	clip, err := DecodeFile(h.src.Path)
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	if err == nil {
		h.clip = clip
	}
	h.mu.Unlock()

	if err != nil {
		util.Logger.Warn("sound failed to load", "source", h.src.Name, "err", err)
		notify(audio.Event{Handle: h, Kind: audio.EventError, Err: err})
		return
	}
	util.Logger.Debug("sound loaded", "source", h.src.Name, "seconds", clip.Duration())
	notify(audio.Event{Handle: h, Kind: audio.EventReady})
}

func (h *Handle) loadedClip() *Clip {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clip
}

func (h *Handle) Play() error {
	h.mu.Lock()
	closed, loaded := h.closed, h.clip != nil
	h.mu.Unlock()
	switch {
	case closed:
		return audio.ErrHandleClosed
	case !loaded:
		return audio.ErrNotReady
	case h.player.isLocked():
		return audio.ErrAutoplayBlocked
	}

	if h.stream == nil {
		if h.player.openStream == nil {
			return errors.New("no audio output")
		}
		s, err := h.player.openStream(h)
		if err != nil {
			return fmt.Errorf("open output stream: %w", err)
		}
		h.stream = s
	}
	h.mu.Lock()
	h.playing = true
	h.mu.Unlock()
	if !h.started {
		if err := h.stream.Start(); err != nil {
			h.mu.Lock()
			h.playing = false
			h.mu.Unlock()
			return fmt.Errorf("start output stream: %w", err)
		}
		h.started = true
	}
	return nil
}

// Pause silences the handle and stops its stream. The stream is stopped
// without holding mu since Stop waits for the callback to return.
func (h *Handle) Pause() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return audio.ErrHandleClosed
	}
	h.playing = false
	h.mu.Unlock()
	if h.stream != nil && h.started {
		h.started = false
		return h.stream.Stop()
	}
	return nil
}

func (h *Handle) SetVolume(v float64) {
	h.mu.Lock()
	h.volume = util.Clamp(v, 0, 1)
	h.mu.Unlock()
}

func (h *Handle) SetLoop(loop bool) {
	h.mu.Lock()
	h.loop = loop
	h.mu.Unlock()
}

func (h *Handle) Rewind() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return audio.ErrHandleClosed
	}
	h.pos = 0
	return nil
}

func (h *Handle) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.playing = false
	h.mu.Unlock()
	h.player.forget(h)

	if h.stream == nil {
		return nil
	}
	var errs []error
	if h.started {
		errs = append(errs, h.stream.Stop())
		h.started = false
	}
	errs = append(errs, h.stream.Close())
	h.stream = nil
	return errors.Join(errs...)
}

// fill is the PortAudio output callback. Non-looping sounds go silent at the
// end of the clip until rewound.
func (h *Handle) fill(out []int16) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.playing || h.clip == nil || len(h.clip.Samples) == 0 {
		clear(out)
		return
	}
	samples := h.clip.Samples
	for i := range out {
		if h.pos >= len(samples) {
			if !h.loop {
				out[i] = 0
				continue
			}
			h.pos = 0
		}
		v := float64(samples[h.pos]) * h.volume
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		out[i] = int16(v)
		h.pos++
	}
}

var _ audio.Media = (*Player)(nil)
