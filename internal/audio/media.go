// Package audio manages the ambient sound and the alert chimes.
//
// The controller is not safe for concurrent use. Media backends load and
// decode on their own goroutines and report back through a Notify callback;
// the owner forwards those events to Controller.HandleEvent on the same
// goroutine that issues commands.
package audio

import "errors"

var (
	// ErrAutoplayBlocked is returned by Handle.Play when the host refuses to
	// start audio before the user has interacted with it.
	ErrAutoplayBlocked = errors.New("playback blocked until user interaction")
	ErrUnknownTrack    = errors.New("unknown built-in track")
	ErrEmptyReference  = errors.New("empty sound reference")
	ErrHandleClosed    = errors.New("audio handle closed")
	ErrNotReady        = errors.New("audio handle not ready")
)

// Source names something playable.
type Source struct {
	Name string
	Path string
}

type EventKind int

const (
	EventReady EventKind = iota
	EventError
)

func (k EventKind) String() string {
	if k == EventError {
		return "error"
	}
	return "ready"
}

// Event is the asynchronous result of loading a handle.
type Event struct {
	Handle Handle
	Kind   EventKind
	Err    error
}

// Notify delivers events from a backend. Implementations must not call back
// into the controller directly.
type Notify func(Event)

// Handle is one loaded (or loading) sound. Every handle reports exactly one
// EventReady or EventError after Open, unless it is closed first.
type Handle interface {
	Play() error
	Pause() error
	SetVolume(v float64)
	SetLoop(loop bool)
	Rewind() error
	Close() error
}

// Media opens handles.
//
//go:generate mockgen -source=media.go -destination=mock_media_test.go -package=audio
type Media interface {
	Open(src Source, notify Notify) (Handle, error)
}
