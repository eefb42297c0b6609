package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/cozyfocus/internal/models"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// timerStatus is the one-word label under the clock.
func timerStatus(st models.TimerState) string {
	switch st.Phase() {
	case models.PhaseRunning:
		return "focusing"
	case models.PhaseExpired:
		return "time's up"
	}
	if st.RemainingSeconds < st.ConfiguredMinutes*60 {
		return "paused"
	}
	return "ready"
}

func renderTimer(theme Theme, bar progress.Model, st models.TimerState) string {
	bar.FullColor = string(theme.Accent)
	clock := theme.Clock.Render(st.Clock())
	status := theme.Dim.Render(fmt.Sprintf("%s · %d min", timerStatus(st), st.ConfiguredMinutes))
	lines := []string{clock, status, bar.ViewAs(st.Progress())}
	if st.ExpiredPendingAck {
		lines = append(lines, theme.Alert.Render("Time's up!  [y] one more minute  [n] stop"))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func volumeBar(v float64, width int) string {
	filled := int(v*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
