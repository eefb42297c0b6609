// Package timer implements the pomodoro countdown. The engine trusts that one
// Tick call equals one elapsed second; the caller owns the scheduler.
package timer

import (
	"math"

	"github.com/akyairhashvil/cozyfocus/internal/config"
	"github.com/akyairhashvil/cozyfocus/internal/models"
)

// Alert identifies one of the short alert sounds.
type Alert int

const (
	AlertTimerEnd Alert = iota
	AlertTaskDone
)

func (a Alert) String() string {
	if a == AlertTaskDone {
		return "taskDone"
	}
	return "timerEnd"
}

// Alerts plays and silences alert sounds.
type Alerts interface {
	PlayAlert(which Alert)
	SilenceAlert(which Alert)
}

// Listener receives engine notifications.
type Listener interface {
	TimerTicked(state models.TimerState)
	TimerExpired(state models.TimerState)
}

// Engine owns the countdown state.
type Engine struct {
	state    models.TimerState
	alerts   Alerts
	listener Listener
}

// maxMinutes keeps minutes*60 inside int.
const maxMinutes = math.MaxInt / 60

func validMinutes(minutes int) bool {
	return minutes >= 1 && minutes <= maxMinutes
}

// New returns an idle engine configured for minutes (falling back to the
// default when minutes is out of range). alerts and listener may be nil.
func New(minutes int, alerts Alerts, listener Listener) *Engine {
	if !validMinutes(minutes) {
		minutes = config.DefaultTimerMinutes
	}
	e := &Engine{alerts: alerts, listener: listener}
	e.Configure(minutes)
	return e
}

// State returns a snapshot.
func (e *Engine) State() models.TimerState {
	return e.state
}

// Configure sets the duration and resets the countdown. Values below 1 or
// too large to count in seconds are ignored.
func (e *Engine) Configure(minutes int) {
	if !validMinutes(minutes) {
		return
	}
	e.state = models.TimerState{
		RemainingSeconds:  minutes * 60,
		ConfiguredMinutes: minutes,
	}
}

// Start resumes the countdown when time remains and no expiry is pending.
func (e *Engine) Start() {
	if e.state.RemainingSeconds <= 0 || e.state.ExpiredPendingAck {
		return
	}
	e.state.Running = true
}

func (e *Engine) Pause() {
	e.state.Running = false
}

// Toggle starts an idle timer or pauses a running one.
func (e *Engine) Toggle() {
	if e.state.Running {
		e.Pause()
		return
	}
	e.Start()
}

// Stop halts the run and clears a pending expiry without touching the
// remaining time.
func (e *Engine) Stop() {
	e.state.Running = false
	e.state.ExpiredPendingAck = false
	e.silence()
}

// Reset restores the configured duration.
func (e *Engine) Reset() {
	e.Configure(e.state.ConfiguredMinutes)
	e.silence()
}

// AcknowledgeExpiry answers the expiry prompt. extend adds one minute and
// resumes; otherwise the timer is left stopped at its configured duration.
func (e *Engine) AcknowledgeExpiry(extend bool) {
	if !e.state.ExpiredPendingAck {
		return
	}
	e.state.ExpiredPendingAck = false
	e.silence()
	if extend {
		e.state.RemainingSeconds += int(config.ExtendDuration.Seconds())
		e.state.Running = true
		return
	}
	e.Configure(e.state.ConfiguredMinutes)
}

// Tick consumes one second. It is a no-op unless the timer is running.
func (e *Engine) Tick() {
	if !e.state.Running {
		return
	}
	if e.state.RemainingSeconds > 0 {
		e.state.RemainingSeconds--
	}
	if e.state.RemainingSeconds > 0 {
		if e.listener != nil {
			e.listener.TimerTicked(e.state)
		}
		return
	}

	e.state.Running = false
	e.state.ExpiredPendingAck = true
	if e.listener != nil {
		e.listener.TimerTicked(e.state)
	}
	if e.alerts != nil {
		e.alerts.PlayAlert(AlertTimerEnd)
	}
	if e.listener != nil {
		e.listener.TimerExpired(e.state)
	}
}

func (e *Engine) silence() {
	if e.alerts != nil {
		e.alerts.SilenceAlert(AlertTimerEnd)
	}
}
