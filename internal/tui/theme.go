package tui

import (
	"github.com/akyairhashvil/cozyfocus/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name          string
	Accent        lipgloss.Color
	Border        lipgloss.Color
	Base          lipgloss.Style
	Header        lipgloss.Style
	Panel         lipgloss.Style
	Todo          lipgloss.Style
	CompletedTodo lipgloss.Style
	Clock         lipgloss.Style
	Alert         lipgloss.Style
	Input         lipgloss.Style
	Focused       lipgloss.Style
	Dim           lipgloss.Style
	Error         lipgloss.Style
}

type palette struct {
	text, dim, done, border, background lipgloss.Color
}

var (
	lightPalette = palette{text: "236", dim: "245", done: "248", border: "250", background: ""}
	darkPalette  = palette{text: "252", dim: "243", done: "240", border: "238", background: "235"}
)

// ThemeFor builds the styles for the given accent color and mode.
func ThemeFor(p models.Preferences) Theme {
	pal := lightPalette
	if p.DarkMode {
		pal = darkPalette
	}
	accent := lipgloss.Color(p.ThemeColorHex)
	base := lipgloss.NewStyle().Padding(1, 2)
	if pal.background != "" {
		base = base.Background(pal.background)
	}
	return Theme{
		Name:          p.ThemeColorName,
		Accent:        accent,
		Border:        pal.border,
		Base:          base,
		Header:        lipgloss.NewStyle().Foreground(accent).Bold(true).Align(lipgloss.Center),
		Panel:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		Todo:          lipgloss.NewStyle().Foreground(pal.text),
		CompletedTodo: lipgloss.NewStyle().Foreground(pal.done).Strikethrough(true),
		Clock:         lipgloss.NewStyle().Foreground(accent).Bold(true),
		Alert:         lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		Focused:       lipgloss.NewStyle().Foreground(accent).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(pal.dim),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
