package audio

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/cozyfocus/internal/models"
	"github.com/akyairhashvil/cozyfocus/internal/timer"
	"github.com/akyairhashvil/cozyfocus/internal/util"
)

// Listener is told about media failures the user should see.
type Listener interface {
	PlaybackError(message string)
}

// slot tracks one handle. Playback is only requested once the handle has
// reported ready, so a handle replaced while loading is never started.
type slot struct {
	h        Handle
	ready    bool
	wantPlay bool
}

func (s *slot) release() {
	if s.h == nil {
		return
	}
	// pause racing a teardown is cosmetic
	_ = s.h.Pause()
	util.LogError("close audio handle", s.h.Close())
	*s = slot{}
}

// Controller owns at most one ambient handle plus the two alert handles.
type Controller struct {
	media    Media
	library  Library
	notify   Notify
	listener Listener

	selection models.SoundSelection
	playing   bool
	volume    float64

	ambient slot
	alerts  [2]slot

	blocked    bool
	retryArmed bool
	closed     bool
}

// NewController opens the alert handles and starts with no ambient sound.
// notify is handed to the backend for every handle; listener may be nil.
func NewController(media Media, library Library, notify Notify, listener Listener, volume float64) *Controller {
	c := &Controller{
		media:      media,
		library:    library,
		notify:     notify,
		listener:   listener,
		selection:  models.NoSound(),
		volume:     util.Clamp(volume, 0, 1),
		retryArmed: true,
	}
	for i := range c.alerts {
		c.openAlert(timer.Alert(i))
	}
	return c
}

func (c *Controller) openAlert(which timer.Alert) {
	src := c.library.AlertSource()
	h, err := c.media.Open(src, c.notify)
	if err != nil {
		c.report(fmt.Sprintf("Could not load %s chime: %v", which, err))
		return
	}
	h.SetLoop(false)
	h.SetVolume(c.volume)
	c.alerts[which] = slot{h: h}
}

// Snapshot returns the current selection, playing flag and volume.
func (c *Controller) Snapshot() models.AudioState {
	return models.AudioState{Selection: c.selection, Playing: c.playing, Volume: c.volume}
}

// SetSource replaces the ambient sound. The previous handle is paused and
// closed before the next one is opened. Playing is reported true as soon as a
// handle exists; whether sound is actually audible depends on the host.
func (c *Controller) SetSource(sel models.SoundSelection) error {
	if c.closed {
		return nil
	}
	var src Source
	if sel.Kind != models.SoundNone {
		var err error
		if src, err = c.library.Resolve(sel); err != nil {
			return err
		}
	}

	c.ambient.release()
	c.blocked = false
	c.selection = sel
	c.playing = false
	if sel.Kind == models.SoundNone {
		return nil
	}

	h, err := c.media.Open(src, c.notify)
	if err != nil {
		c.report(fmt.Sprintf("Could not play %s: %v", src.Name, err))
		return nil
	}
	h.SetLoop(true)
	h.SetVolume(c.volume)
	c.ambient = slot{h: h, wantPlay: true}
	c.playing = true
	util.Logger.Debug("ambient source set", "source", src.Name, "path", src.Path)
	return nil
}

// SetVolume clamps v to [0,1] and applies it to every handle.
func (c *Controller) SetVolume(v float64) {
	c.volume = util.Clamp(v, 0, 1)
	if c.ambient.h != nil {
		c.ambient.h.SetVolume(c.volume)
	}
	for i := range c.alerts {
		if c.alerts[i].h != nil {
			c.alerts[i].h.SetVolume(c.volume)
		}
	}
}

// TogglePlayback pauses or resumes the ambient handle. No-op without one.
func (c *Controller) TogglePlayback() {
	if c.closed || c.ambient.h == nil {
		return
	}
	if c.playing {
		c.playing = false
		c.ambient.wantPlay = false
		c.blocked = false
		_ = c.ambient.h.Pause()
		return
	}
	c.playing = true
	c.ambient.wantPlay = true
	if c.ambient.ready {
		c.startAmbient()
	}
}

// PlayAlert starts an alert from the beginning without touching the ambient
// handle.
func (c *Controller) PlayAlert(which timer.Alert) {
	s := c.alertSlot(which)
	if s == nil || s.h == nil {
		return
	}
	s.wantPlay = true
	if s.ready {
		c.startAlert(which, s)
	}
}

// SilenceAlert pauses an alert and rewinds it.
func (c *Controller) SilenceAlert(which timer.Alert) {
	s := c.alertSlot(which)
	if s == nil || s.h == nil {
		return
	}
	s.wantPlay = false
	_ = s.h.Pause()
	_ = s.h.Rewind()
}

// NotifyInteraction marks a user-initiated interaction. The first one retries
// an ambient start the host blocked; later ones do nothing.
func (c *Controller) NotifyInteraction() {
	if !c.retryArmed {
		return
	}
	c.retryArmed = false
	if c.closed || c.ambient.h == nil || !c.blocked || !c.playing {
		return
	}
	c.blocked = false
	util.Logger.Debug("retrying blocked ambient playback")
	c.startAmbient()
}

// HandleEvent applies a backend event. Events for handles that are no longer
// current are dropped.
func (c *Controller) HandleEvent(ev Event) {
	if c.closed || ev.Handle == nil {
		return
	}
	if ev.Handle == c.ambient.h {
		c.handleAmbientEvent(ev)
		return
	}
	for i := range c.alerts {
		if ev.Handle == c.alerts[i].h {
			c.handleAlertEvent(timer.Alert(i), ev)
			return
		}
	}
	util.Logger.Debug("dropping stale media event", "kind", ev.Kind)
}

func (c *Controller) handleAmbientEvent(ev Event) {
	switch ev.Kind {
	case EventReady:
		c.ambient.ready = true
		if c.ambient.wantPlay {
			c.startAmbient()
		}
	case EventError:
		name := c.selection.Label()
		c.ambient.release()
		c.playing = false
		c.blocked = false
		c.report(fmt.Sprintf("Could not play %s: %v", name, ev.Err))
	}
}

func (c *Controller) handleAlertEvent(which timer.Alert, ev Event) {
	s := &c.alerts[which]
	switch ev.Kind {
	case EventReady:
		s.ready = true
		if s.wantPlay {
			c.startAlert(which, s)
		}
	case EventError:
		s.release()
		c.report(fmt.Sprintf("Could not load %s chime: %v", which, ev.Err))
	}
}

func (c *Controller) startAmbient() {
	err := c.ambient.h.Play()
	switch {
	case err == nil:
		c.ambient.wantPlay = false
	case errors.Is(err, ErrAutoplayBlocked):
		c.blocked = true
		util.Logger.Info("ambient playback deferred until first interaction")
	default:
		c.ambient.wantPlay = false
		c.report(fmt.Sprintf("Could not play %s: %v", c.selection.Label(), err))
	}
}

func (c *Controller) startAlert(which timer.Alert, s *slot) {
	s.wantPlay = false
	_ = s.h.Rewind()
	if err := s.h.Play(); err != nil {
		if errors.Is(err, ErrAutoplayBlocked) {
			util.Logger.Info("alert blocked by autoplay policy", "alert", which)
			return
		}
		c.report(fmt.Sprintf("Could not play %s chime: %v", which, err))
	}
}

func (c *Controller) alertSlot(which timer.Alert) *slot {
	if c.closed || which < 0 || int(which) >= len(c.alerts) {
		return nil
	}
	return &c.alerts[which]
}

// Teardown releases every handle. Later calls are no-ops.
func (c *Controller) Teardown() {
	if c.closed {
		return
	}
	c.ambient.release()
	for i := range c.alerts {
		c.alerts[i].release()
	}
	c.playing = false
	c.blocked = false
	c.closed = true
}

func (c *Controller) report(message string) {
	util.Logger.Warn("playback error", "message", message)
	if c.listener != nil {
		c.listener.PlaybackError(message)
	}
}

var _ timer.Alerts = (*Controller)(nil)
