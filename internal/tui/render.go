package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/cozyfocus/internal/config"
	"github.com/akyairhashvil/cozyfocus/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.session.Snapshot()
	theme := ThemeFor(snap.Prefs)
	width := config.PanelWidth

	sections := []string{
		theme.Header.Width(width).Render(ansi.Truncate(snap.Prefs.AppTitle, width, config.TruncationSuffix)),
		theme.Panel.Width(width).Render(renderTimer(theme, m.progress, snap.Timer)),
		theme.Panel.Width(width).Render(m.renderSound(theme, snap.Audio)),
		theme.Panel.Width(width).Render(m.renderTodos(theme, snap.Todos, width-2)),
	}
	if footer := m.renderFooter(theme, snap.Prefs); footer != "" {
		sections = append(sections, footer)
	}
	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 && m.height > 0 {
		return theme.Base.Render(lipgloss.Place(m.width-4, m.height-2, lipgloss.Center, lipgloss.Top, body))
	}
	return theme.Base.Render(body)
}

func (m Model) renderSound(theme Theme, st models.AudioState) string {
	state := "off"
	switch {
	case st.Selection.Kind == models.SoundNone:
	case st.Playing:
		state = "playing"
	default:
		state = "paused"
	}
	label := ansi.Truncate(st.Selection.Label(), 20, config.TruncationSuffix)
	line := fmt.Sprintf("♪ %s  %s", theme.Focused.Render(label), theme.Dim.Render(state))
	vol := fmt.Sprintf("vol %s %3d%%", volumeBar(st.Volume, 10), int(st.Volume*100+0.5))
	return lipgloss.JoinVertical(lipgloss.Left, line, theme.Dim.Render(vol))
}

func (m Model) renderTodos(theme Theme, todos []models.TodoItem, width int) string {
	if len(todos) == 0 {
		return theme.Dim.Render("No tasks yet. Press a to add one.")
	}
	remaining := 0
	for _, t := range todos {
		if !t.Completed {
			remaining++
		}
	}
	lines := []string{theme.Dim.Render(fmt.Sprintf("%d of %d left", remaining, len(todos)))}
	end := m.offset + config.MaxVisibleTodos
	if end > len(todos) {
		end = len(todos)
	}
	for i := m.offset; i < end; i++ {
		t := todos[i]
		box, style := "[ ]", theme.Todo
		if t.Completed {
			box, style = "[x]", theme.CompletedTodo
		}
		pointer := "  "
		if i == m.cursor {
			pointer = theme.Focused.Render("> ")
		}
		text := ansi.Truncate(t.Text, width-6, config.TruncationSuffix)
		lines = append(lines, pointer+box+" "+style.Render(text))
	}
	if end < len(todos) {
		lines = append(lines, theme.Dim.Render(fmt.Sprintf("  +%d more", len(todos)-end)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter(theme Theme, prefs models.Preferences) string {
	var lines []string
	if m.mode != inputNone {
		lines = append(lines, theme.Input.Width(config.PanelWidth).Render(m.input.View()))
	}
	if m.message != "" {
		style := theme.Dim
		if m.isError {
			style = theme.Error
		}
		lines = append(lines, style.Render(ansi.Truncate(m.message, config.PanelWidth, config.TruncationSuffix)))
	}
	if prefs.BackgroundImageRef != "" {
		lines = append(lines, theme.Dim.Render("bg: "+filepath.Base(prefs.BackgroundImageRef)))
	}
	helpView := m.help.View(m.keys)
	if m.help.ShowAll {
		helpView = theme.Dim.Render(fmt.Sprintf("cozyfocus %s · theme %s", versionLabel(), theme.Name)) + "\n" + helpView
	}
	lines = append(lines, helpView)
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
