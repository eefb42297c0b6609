// Package testutil holds fakes shared by package tests.
package testutil

import (
	"errors"
	"sync"

	"github.com/akyairhashvil/cozyfocus/internal/audio"
)

// FakeMedia is an audio.Media whose handles become ready only when a test
// says so. It never produces sound.
type FakeMedia struct {
	mu      sync.Mutex
	Handles []*FakeHandle
	// OpenErr is returned by the next Open call and then cleared.
	OpenErr error
	// Blocked makes Play return audio.ErrAutoplayBlocked.
	Blocked bool
}

func NewFakeMedia() *FakeMedia {
	return &FakeMedia{}
}

func (m *FakeMedia) Open(src audio.Source, notify audio.Notify) (audio.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.OpenErr; err != nil {
		m.OpenErr = nil
		return nil, err
	}
	h := &FakeHandle{Source: src, Volume: 1, media: m, notify: notify}
	m.Handles = append(m.Handles, h)
	return h, nil
}

// ByName returns every handle opened for the named source.
func (m *FakeMedia) ByName(name string) []*FakeHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*FakeHandle
	for _, h := range m.Handles {
		if h.Source.Name == name {
			out = append(out, h)
		}
	}
	return out
}

// LiveLooping counts handles that are open and looping, i.e. ambient streams.
func (m *FakeMedia) LiveLooping() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, h := range m.Handles {
		if h.Loop && !h.Closed {
			n++
		}
	}
	return n
}

// PlayingLooping counts ambient handles currently producing sound.
func (m *FakeMedia) PlayingLooping() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, h := range m.Handles {
		if h.Loop && h.Playing && !h.Closed {
			n++
		}
	}
	return n
}

func (m *FakeMedia) isBlocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Blocked
}

// FakeHandle records what the controller asked of it.
type FakeHandle struct {
	Source  audio.Source
	Loop    bool
	Volume  float64
	Playing bool
	Closed  bool
	Plays   int
	Rewinds int
	// PlayErr is returned by Play when set.
	PlayErr error

	media  *FakeMedia
	notify audio.Notify
}

// Ready reports a successful load.
func (h *FakeHandle) Ready() {
	h.notify(audio.Event{Handle: h, Kind: audio.EventReady})
}

// Fail reports a load failure.
func (h *FakeHandle) Fail(err error) {
	h.notify(audio.Event{Handle: h, Kind: audio.EventError, Err: err})
}

func (h *FakeHandle) Play() error {
	if h.Closed {
		return audio.ErrHandleClosed
	}
	if h.PlayErr != nil {
		return h.PlayErr
	}
	if h.media.isBlocked() {
		return audio.ErrAutoplayBlocked
	}
	h.Playing = true
	h.Plays++
	return nil
}

func (h *FakeHandle) Pause() error {
	if h.Closed {
		return audio.ErrHandleClosed
	}
	h.Playing = false
	return nil
}

func (h *FakeHandle) SetVolume(v float64) { h.Volume = v }

func (h *FakeHandle) SetLoop(loop bool) { h.Loop = loop }

func (h *FakeHandle) Rewind() error {
	if h.Closed {
		return audio.ErrHandleClosed
	}
	h.Rewinds++
	return nil
}

func (h *FakeHandle) Close() error {
	if h.Closed {
		return errors.New("double close")
	}
	h.Closed = true
	h.Playing = false
	return nil
}

// EventQueue collects backend events so a test can deliver them on its own
// goroutine, the way the UI loop does.
type EventQueue struct {
	mu     sync.Mutex
	events []audio.Event
}

func (q *EventQueue) Push(ev audio.Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Drain hands every queued event to apply in FIFO order.
func (q *EventQueue) Drain(apply func(audio.Event)) int {
	q.mu.Lock()
	events := q.events
	q.events = nil
	q.mu.Unlock()
	for _, ev := range events {
		apply(ev)
	}
	return len(events)
}
