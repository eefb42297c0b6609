package session

import "github.com/akyairhashvil/cozyfocus/internal/models"

type NotificationKind int

const (
	NotifyTick NotificationKind = iota
	NotifyExpired
	NotifyPlaybackError
)

func (k NotificationKind) String() string {
	switch k {
	case NotifyExpired:
		return "expired"
	case NotifyPlaybackError:
		return "playbackError"
	default:
		return "tick"
	}
}

// Notification is pushed to the presentation layer. Timer is set for tick
// and expired; Message for playback errors.
type Notification struct {
	Kind    NotificationKind
	Timer   models.TimerState
	Message string
}

// Notifier receives notifications on the controller goroutine.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Inbox buffers notifications until the owner drains them.
type Inbox struct {
	pending []Notification
}

func (b *Inbox) Notify(n Notification) {
	b.pending = append(b.pending, n)
}

// Drain returns and clears the buffered notifications.
func (b *Inbox) Drain() []Notification {
	out := b.pending
	b.pending = nil
	return out
}
