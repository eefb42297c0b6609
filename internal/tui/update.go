package tui

import (
	"github.com/akyairhashvil/cozyfocus/internal/audio"
	"github.com/akyairhashvil/cozyfocus/internal/config"
	"github.com/akyairhashvil/cozyfocus/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		target := config.ProgressWidth
		if m.width > 0 && m.width-8 < target {
			target = m.width - 8
		}
		if target < 10 {
			target = 10
		}
		m.progress.Width = target
	case TickMsg:
		m.session.Tick()
		cmd = tickCmd()
	case MediaEventMsg:
		m.session.HandleMediaEvent(audio.Event(msg))
		cmd = waitForMedia(m.session.Events())
	case tea.KeyMsg:
		m.session.Interact()
		m, cmd = m.handleKey(msg)
	default:
		if m.mode != inputNone {
			m.input, cmd = m.input.Update(msg)
		}
	}

	m.applyNotifications()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	if m.mode != inputNone {
		return m.handleInputKey(msg)
	}
	// Clear transient messages on keypress
	m.message, m.isError = "", false

	if m.session.Snapshot().Timer.ExpiredPendingAck {
		return m.handleExpiryKey(msg)
	}
	next, cmd, _ := m.keys.Handle(m, msg)
	return next, cmd
}

// handleExpiryKey answers the time's-up prompt. Everything but the answers
// and quit is swallowed while it is showing.
func (m Model) handleExpiryKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.session.AcknowledgeExpiry(true)
	case "n", "esc":
		m.session.AcknowledgeExpiry(false)
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeInput()
		return m, nil
	case tea.KeyEnter:
		mode, value := m.mode, m.input.Value()
		m.closeInput()
		m.submitInput(mode, value)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submitInput(mode inputMode, value string) {
	s := m.session
	switch mode {
	case inputTodo:
		if s.AddTodo(value) {
			m.cursor = len(s.Snapshot().Todos) - 1
			m.clampCursor(len(s.Snapshot().Todos))
		}
	case inputMinutes:
		if err := s.SetTimerMinutesText(value); err != nil {
			m.setStatus("Minutes must be between 1 and 999")
		}
	case inputSound:
		if err := s.UploadSound(value); err != nil {
			m.setStatusError(err.Error())
		}
	case inputBackground:
		if err := s.SetBackground(value); err != nil {
			m.setStatusError(err.Error())
		}
	case inputTitle:
		s.SetTitle(value)
	}
}

func (m *Model) applyNotifications() {
	if m.inbox == nil {
		return
	}
	for _, n := range m.inbox.Drain() {
		switch n.Kind {
		case session.NotifyPlaybackError:
			m.setStatusError(n.Message)
		case session.NotifyExpired:
			m.setStatus("Time's up!")
		}
	}
}

var _ tea.Model = Model{}
