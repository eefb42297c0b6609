package tui

import (
	"time"

	"github.com/akyairhashvil/cozyfocus/internal/audio"
	"github.com/akyairhashvil/cozyfocus/internal/config"
	"github.com/akyairhashvil/cozyfocus/internal/session"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type TickMsg time.Time

// MediaEventMsg carries a media backend result into the update loop.
type MediaEventMsg audio.Event

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func waitForMedia(events <-chan audio.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return MediaEventMsg(ev)
	}
}

// inputMode is the prompt currently owning the text input.
type inputMode int

const (
	inputNone inputMode = iota
	inputTodo
	inputMinutes
	inputSound
	inputBackground
	inputTitle
)

var inputPrompts = map[inputMode]struct{ prompt, placeholder string }{
	inputTodo:       {"New task: ", "What needs doing?"},
	inputMinutes:    {"Minutes: ", "25"},
	inputSound:      {"Sound file: ", "~/Music/brook.mp3"},
	inputBackground: {"Background image: ", "~/Pictures/cabin.png"},
	inputTitle:      {"Title: ", "Cozy Todo"},
}

// Model is the root bubbletea model. All session calls happen inside Update.
type Model struct {
	session  *session.Controller
	inbox    *session.Inbox
	keys     *HandlerRegistry
	help     help.Model
	input    textinput.Model
	progress progress.Model
	mode     inputMode
	cursor   int
	offset   int
	message  string
	isError  bool
	width    int
	height   int
	quitting bool
}

// NewModel wraps a session. inbox must be the Notifier the session was
// built with.
func NewModel(s *session.Controller, inbox *session.Inbox) Model {
	ti := textinput.New()
	ti.CharLimit = config.MaxPathLength
	ti.Width = config.PanelWidth - 4

	p := progress.New(progress.WithSolidFill(s.Snapshot().Prefs.ThemeColorHex), progress.WithoutPercentage())
	p.Width = config.ProgressWidth

	return Model{
		session:  s,
		inbox:    inbox,
		keys:     defaultKeys(),
		help:     help.New(),
		input:    ti,
		progress: p,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), waitForMedia(m.session.Events()))
}

func (m *Model) openInput(mode inputMode, value string) tea.Cmd {
	m.mode = mode
	p := inputPrompts[mode]
	m.input.Prompt = p.prompt
	m.input.Placeholder = p.placeholder
	switch mode {
	case inputTodo:
		m.input.CharLimit = config.MaxTodoLength
	case inputTitle:
		m.input.CharLimit = config.MaxTitleLength
	case inputMinutes:
		m.input.CharLimit = 3
	default:
		m.input.CharLimit = config.MaxPathLength
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) closeInput() {
	m.mode = inputNone
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) setStatus(msg string) {
	m.message, m.isError = msg, false
}

func (m *Model) setStatusError(msg string) {
	m.message, m.isError = msg, true
}

// clampCursor keeps the selection inside the list and scrolled into view.
func (m *Model) clampCursor(n int) {
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+config.MaxVisibleTodos {
		m.offset = m.cursor - config.MaxVisibleTodos + 1
	}
}
