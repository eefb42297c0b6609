// Package session ties the todo list, timer, audio controller and
// preferences into one state object driven from a single goroutine.
package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akyairhashvil/cozyfocus/internal/audio"
	"github.com/akyairhashvil/cozyfocus/internal/config"
	"github.com/akyairhashvil/cozyfocus/internal/database"
	"github.com/akyairhashvil/cozyfocus/internal/models"
	"github.com/akyairhashvil/cozyfocus/internal/prefs"
	"github.com/akyairhashvil/cozyfocus/internal/timer"
	"github.com/akyairhashvil/cozyfocus/internal/todo"
	"github.com/akyairhashvil/cozyfocus/internal/util"
)

const eventBuffer = 64

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrNotSoundFile   = errors.New("sound files must be .mp3 or .wav")
	ErrNotImageFile   = errors.New("background must be an image file")
	ErrSessionClosed  = errors.New("session closed")
	errInvalidMinutes = errors.New("minutes must be a whole number from 1")
)

// Options configures a Controller. Store and Media are required.
type Options struct {
	Store    database.SettingsStore
	Media    audio.Media
	Library  audio.Library
	Settings config.Settings
	Notifier Notifier
}

// Snapshot is everything the presentation layer renders.
type Snapshot struct {
	Todos []models.TodoItem
	Timer models.TimerState
	Audio models.AudioState
	Prefs models.Preferences
}

// Controller is not safe for concurrent use. Media results are queued on
// Events and must be fed back through HandleMediaEvent by the owner.
type Controller struct {
	ctx      context.Context
	store    database.SettingsStore
	media    audio.Media
	notifier Notifier

	prefs *prefs.Store
	timer *timer.Engine
	audio *audio.Controller
	todos *todo.List

	events chan audio.Event
	done   chan struct{}
	closed bool
}

// New loads preferences, opens the alert sounds and selects the configured
// default ambient sound.
func New(ctx context.Context, opts Options) (*Controller, error) {
	if opts.Store == nil || opts.Media == nil {
		return nil, errors.New("session: store and media are required")
	}
	c := &Controller{
		ctx:      ctx,
		store:    opts.Store,
		media:    opts.Media,
		notifier: opts.Notifier,
		prefs:    prefs.New(opts.Store),
		todos:    todo.New(),
		events:   make(chan audio.Event, eventBuffer),
		done:     make(chan struct{}),
	}
	c.prefs.Load(ctx)

	c.audio = audio.NewController(opts.Media, opts.Library, c.post, c, opts.Settings.Volume)
	c.timer = timer.New(opts.Settings.TimerMinutes, c.audio, c)

	if sel := initialSound(opts.Settings.DefaultSound); sel.Kind != models.SoundNone {
		if err := c.audio.SetSource(sel); err != nil {
			util.LogError("select default sound", err)
		}
	}
	util.Logger.Info("session started",
		"minutes", c.timer.State().ConfiguredMinutes,
		"sound", c.audio.Snapshot().Selection.Label(),
		"theme", c.prefs.Get().ThemeColorName)
	return c, nil
}

func initialSound(name string) models.SoundSelection {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" || name == "none" || name == "off" {
		return models.NoSound()
	}
	return models.BuiltInSound(name)
}

// post is the Notify handed to the media backend. It may run on any
// goroutine.
func (c *Controller) post(ev audio.Event) {
	select {
	case c.events <- ev:
	case <-c.done:
	}
}

// Events delivers media results in the order they were produced.
func (c *Controller) Events() <-chan audio.Event {
	return c.events
}

func (c *Controller) HandleMediaEvent(ev audio.Event) {
	c.audio.HandleEvent(ev)
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Todos: c.todos.Items(),
		Timer: c.timer.State(),
		Audio: c.audio.Snapshot(),
		Prefs: c.prefs.Get(),
	}
}

func (c *Controller) emit(n Notification) {
	if c.notifier != nil {
		c.notifier.Notify(n)
	}
}

func (c *Controller) TimerTicked(state models.TimerState) {
	c.emit(Notification{Kind: NotifyTick, Timer: state})
}

func (c *Controller) TimerExpired(state models.TimerState) {
	util.Logger.Info("timer expired", "minutes", state.ConfiguredMinutes)
	c.emit(Notification{Kind: NotifyExpired, Timer: state})
}

func (c *Controller) PlaybackError(message string) {
	c.emit(Notification{Kind: NotifyPlaybackError, Message: message})
}

// Interact records a user interaction. The first one unlocks a media backend
// that gates autoplay and retries a blocked ambient start.
func (c *Controller) Interact() {
	if c.closed {
		return
	}
	if u, ok := c.media.(interface{ Unlock() }); ok {
		u.Unlock()
	}
	c.audio.NotifyInteraction()
}

// Todos

func (c *Controller) AddTodo(text string) bool { return c.todos.Add(text) }

func (c *Controller) ToggleTodo(i int) bool { return c.todos.Toggle(i) }

func (c *Controller) DeleteTodo(i int) bool { return c.todos.Delete(i) }

// Timer

func (c *Controller) SetTimerMinutes(minutes int) bool {
	if minutes < 1 || minutes > config.MaxMinutes {
		return false
	}
	c.timer.Configure(minutes)
	return true
}

// SetTimerMinutesText parses user input the way a number field would and
// configures the timer. Invalid input leaves the timer untouched.
func (c *Controller) SetTimerMinutesText(text string) error {
	n, err := ParseMinutes(text)
	if err != nil {
		return err
	}
	if !c.SetTimerMinutes(n) {
		return errInvalidMinutes
	}
	return nil
}

// ParseMinutes reads the leading digits of text. "25min" is 25; "abc" and
// "0" are rejected.
func ParseMinutes(text string) (int, error) {
	text = strings.TrimSpace(text)
	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, errInvalidMinutes
	}
	n, err := strconv.Atoi(text[:end])
	if err != nil || n < 1 || n > config.MaxMinutes {
		return 0, errInvalidMinutes
	}
	return n, nil
}

func (c *Controller) StartTimer()  { c.timer.Start() }
func (c *Controller) PauseTimer()  { c.timer.Pause() }
func (c *Controller) ToggleTimer() { c.timer.Toggle() }
func (c *Controller) StopTimer()   { c.timer.Stop() }
func (c *Controller) ResetTimer()  { c.timer.Reset() }

// AcknowledgeExpiry answers the expiry prompt. extend adds a minute and
// resumes.
func (c *Controller) AcknowledgeExpiry(extend bool) { c.timer.AcknowledgeExpiry(extend) }

// Tick advances the timer by one second.
func (c *Controller) Tick() {
	if c.closed {
		return
	}
	c.timer.Tick()
}

// Audio

// SelectSound switches the ambient source. Unknown built-in tracks return
// audio.ErrUnknownTrack and change nothing.
func (c *Controller) SelectSound(sel models.SoundSelection) error {
	if c.closed {
		return ErrSessionClosed
	}
	return c.audio.SetSource(sel)
}

// UploadSound validates a user-supplied file and selects it as the ambient
// source.
func (c *Controller) UploadSound(path string) error {
	path = util.ExpandHome(strings.TrimSpace(path))
	if path == "" {
		return audio.ErrEmptyReference
	}
	if !config.HasExt(path, config.SoundFileExts) {
		return fmt.Errorf("%w: %s", ErrNotSoundFile, filepath.Base(path))
	}
	if !util.FileExists(path) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return c.SelectSound(models.CustomSound(path))
}

func (c *Controller) TogglePlayback() { c.audio.TogglePlayback() }

func (c *Controller) SetVolume(v float64) { c.audio.SetVolume(v) }

// NudgeVolume moves the volume by delta, rounded to the step size so
// repeated nudges land on even values.
func (c *Controller) NudgeVolume(delta float64) {
	v := c.audio.Snapshot().Volume + delta
	steps := v / config.VolumeStep
	if steps < 0 {
		steps -= 0.5
	} else {
		steps += 0.5
	}
	c.audio.SetVolume(float64(int(steps)) * config.VolumeStep)
}

// Preferences

func (c *Controller) SetThemeColor(value string) bool { return c.prefs.SetThemeColor(c.ctx, value) }

func (c *Controller) CycleTheme() { c.prefs.CycleTheme(c.ctx) }

func (c *Controller) SetDarkMode(on bool) { c.prefs.SetDarkMode(c.ctx, on) }

func (c *Controller) ToggleDarkMode() { c.prefs.ToggleDarkMode(c.ctx) }

// SetBackground stores the path of an existing image file. A blank path
// clears the background.
func (c *Controller) SetBackground(path string) error {
	path = util.ExpandHome(strings.TrimSpace(path))
	if path == "" {
		c.prefs.ClearBackground(c.ctx)
		return nil
	}
	if !config.HasExt(path, config.ImageFileExts) {
		return fmt.Errorf("%w: %s", ErrNotImageFile, filepath.Base(path))
	}
	if !util.FileExists(path) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	c.prefs.SetBackground(c.ctx, path)
	return nil
}

func (c *Controller) ClearBackground() { c.prefs.ClearBackground(c.ctx) }

func (c *Controller) SetTitle(title string) bool { return c.prefs.SetTitle(c.ctx, title) }

// Close releases every audio handle and closes the store. Later calls are
// no-ops.
func (c *Controller) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.timer.Pause()
	c.audio.Teardown()
	close(c.done)
	if err := c.store.Close(); err != nil {
		return &database.OpError{Op: "close", Resource: "store", Err: err}
	}
	return nil
}

var (
	_ timer.Listener = (*Controller)(nil)
	_ audio.Listener = (*Controller)(nil)
)
