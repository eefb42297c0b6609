package tui

import (
	"fmt"

	"github.com/akyairhashvil/cozyfocus/internal/config"
	"github.com/akyairhashvil/cozyfocus/internal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func bind(keys []string, helpKey, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc))
}

// simple wraps a handler that always consumes the key.
func simple(fn func(m Model) (Model, tea.Cmd)) KeyHandler {
	return func(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
		next, cmd := fn(m)
		return next, cmd, true
	}
}

func defaultKeys() *HandlerRegistry {
	r := NewHandlerRegistry()
	reg := func(b key.Binding, short bool, fn func(m Model) (Model, tea.Cmd)) {
		r.Register(KeyBinding{Binding: b, Handler: simple(fn), Short: short})
	}

	reg(bind([]string{"a"}, "a", "add task"), true, func(m Model) (Model, tea.Cmd) {
		cmd := m.openInput(inputTodo, "")
		return m, cmd
	})
	reg(bind([]string{"up", "k"}, "↑/k", "up"), false, func(m Model) (Model, tea.Cmd) {
		m.cursor--
		m.clampCursor(len(m.session.Snapshot().Todos))
		return m, nil
	})
	reg(bind([]string{"down", "j"}, "↓/j", "down"), false, func(m Model) (Model, tea.Cmd) {
		m.cursor++
		m.clampCursor(len(m.session.Snapshot().Todos))
		return m, nil
	})
	reg(bind([]string{" ", "x"}, "space", "toggle task"), true, func(m Model) (Model, tea.Cmd) {
		m.session.ToggleTodo(m.cursor)
		return m, nil
	})
	reg(bind([]string{"d"}, "d", "delete task"), false, func(m Model) (Model, tea.Cmd) {
		if m.session.DeleteTodo(m.cursor) {
			m.clampCursor(len(m.session.Snapshot().Todos))
		}
		return m, nil
	})
	reg(bind([]string{"s"}, "s", "start/pause"), true, func(m Model) (Model, tea.Cmd) {
		m.session.ToggleTimer()
		return m, nil
	})
	reg(bind([]string{"S"}, "S", "stop timer"), false, func(m Model) (Model, tea.Cmd) {
		m.session.StopTimer()
		return m, nil
	})
	reg(bind([]string{"r"}, "r", "reset timer"), false, func(m Model) (Model, tea.Cmd) {
		m.session.ResetTimer()
		return m, nil
	})
	reg(bind([]string{"m"}, "m", "set minutes"), false, func(m Model) (Model, tea.Cmd) {
		cmd := m.openInput(inputMinutes, fmt.Sprint(m.session.Snapshot().Timer.ConfiguredMinutes))
		return m, cmd
	})

	trackKeys := make([]string, len(config.BuiltInTracks))
	for i := range config.BuiltInTracks {
		trackKeys[i] = fmt.Sprint(i + 1)
	}
	r.Register(KeyBinding{
		Binding: bind(trackKeys, fmt.Sprintf("1-%d", len(trackKeys)), "ambient sound"),
		Short:   true,
		Handler: func(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
			i := int(msg.String()[0] - '1')
			if i < 0 || i >= len(config.BuiltInTracks) {
				return m, nil, false
			}
			if err := m.session.SelectSound(models.BuiltInSound(config.BuiltInTracks[i])); err != nil {
				m.setStatusError(err.Error())
			}
			return m, nil, true
		},
	})
	reg(bind([]string{"0"}, "0", "sound off"), false, func(m Model) (Model, tea.Cmd) {
		_ = m.session.SelectSound(models.NoSound())
		return m, nil
	})
	reg(bind([]string{"u"}, "u", "play a sound file"), false, func(m Model) (Model, tea.Cmd) {
		cmd := m.openInput(inputSound, "")
		return m, cmd
	})
	reg(bind([]string{"p"}, "p", "pause/resume sound"), true, func(m Model) (Model, tea.Cmd) {
		m.session.TogglePlayback()
		return m, nil
	})
	reg(bind([]string{"+", "="}, "+", "volume up"), false, func(m Model) (Model, tea.Cmd) {
		m.session.NudgeVolume(config.VolumeStep)
		return m, nil
	})
	reg(bind([]string{"-", "_"}, "-", "volume down"), false, func(m Model) (Model, tea.Cmd) {
		m.session.NudgeVolume(-config.VolumeStep)
		return m, nil
	})
	reg(bind([]string{"c"}, "c", "cycle color"), false, func(m Model) (Model, tea.Cmd) {
		m.session.CycleTheme()
		return m, nil
	})
	reg(bind([]string{"D"}, "D", "dark mode"), false, func(m Model) (Model, tea.Cmd) {
		m.session.ToggleDarkMode()
		return m, nil
	})
	reg(bind([]string{"b"}, "b", "background image"), false, func(m Model) (Model, tea.Cmd) {
		cmd := m.openInput(inputBackground, m.session.Snapshot().Prefs.BackgroundImageRef)
		return m, cmd
	})
	reg(bind([]string{"B"}, "B", "clear background"), false, func(m Model) (Model, tea.Cmd) {
		m.session.ClearBackground()
		return m, nil
	})
	reg(bind([]string{"t"}, "t", "edit title"), false, func(m Model) (Model, tea.Cmd) {
		cmd := m.openInput(inputTitle, m.session.Snapshot().Prefs.AppTitle)
		return m, cmd
	})
	reg(bind([]string{"?"}, "?", "help"), true, func(m Model) (Model, tea.Cmd) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	})
	reg(bind([]string{"q", "ctrl+c"}, "q", "quit"), true, func(m Model) (Model, tea.Cmd) {
		m.quitting = true
		return m, tea.Quit
	})
	return r
}
