package models

import (
	"fmt"
	"strings"
)

// TodoItem is a single entry of the in-memory todo list.
type TodoItem struct {
	Text      string
	Completed bool
}

// TimerPhase enumerates the observable states of the countdown.
type TimerPhase int

const (
	PhaseIdle TimerPhase = iota
	PhaseRunning
	PhaseExpired
)

func (p TimerPhase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseExpired:
		return "expired"
	default:
		return "idle"
	}
}

// TimerState is a snapshot of the countdown.
type TimerState struct {
	RemainingSeconds  int
	ConfiguredMinutes int
	Running           bool
	ExpiredPendingAck bool
}

// Phase derives the state machine position from the flags.
func (s TimerState) Phase() TimerPhase {
	switch {
	case s.ExpiredPendingAck:
		return PhaseExpired
	case s.Running:
		return PhaseRunning
	default:
		return PhaseIdle
	}
}

// Clock renders the remaining time as m:ss.
func (s TimerState) Clock() string {
	return FormatClock(s.RemainingSeconds)
}

// Progress returns the elapsed fraction of the configured duration.
func (s TimerState) Progress() float64 {
	total := s.ConfiguredMinutes * 60
	if total <= 0 {
		return 0
	}
	if s.RemainingSeconds >= total {
		return 0
	}
	return float64(total-s.RemainingSeconds) / float64(total)
}

// FormatClock renders seconds as m:ss. Negative input renders as 0:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// SoundKind tags a SoundSelection.
type SoundKind int

const (
	SoundNone SoundKind = iota
	SoundBuiltIn
	SoundCustom
)

func (k SoundKind) String() string {
	switch k {
	case SoundBuiltIn:
		return "built-in"
	case SoundCustom:
		return "custom"
	default:
		return "none"
	}
}

// SoundSelection is the ambient audio choice: nothing, a built-in track or a
// user supplied file.
type SoundSelection struct {
	Kind  SoundKind
	Track string // built-in track name
	Ref   string // custom file reference
}

func NoSound() SoundSelection { return SoundSelection{Kind: SoundNone} }

func BuiltInSound(track string) SoundSelection {
	return SoundSelection{Kind: SoundBuiltIn, Track: track}
}

func CustomSound(ref string) SoundSelection {
	return SoundSelection{Kind: SoundCustom, Ref: ref}
}

// Label is a short human readable name for the selection.
func (s SoundSelection) Label() string {
	switch s.Kind {
	case SoundBuiltIn:
		return s.Track
	case SoundCustom:
		if i := strings.LastIndexAny(s.Ref, `/\`); i >= 0 {
			return s.Ref[i+1:]
		}
		return s.Ref
	default:
		return "off"
	}
}

// AudioState is a snapshot of the ambient audio controller.
type AudioState struct {
	Selection SoundSelection
	Playing   bool
	Volume    float64
}

// Preferences are the durable user settings.
type Preferences struct {
	ThemeColorName     string
	ThemeColorHex      string
	DarkMode           bool
	BackgroundImageRef string // empty means no background
	AppTitle           string
}
