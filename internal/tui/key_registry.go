package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler runs when its binding matches. handled=false lets a lower
// priority binding for the same key try.
type KeyHandler func(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Priority int
	// Short puts the binding in the one-line help.
	Short bool
}

// HandlerRegistry dispatches key presses and doubles as the help.KeyMap.
type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if !b.Binding.Enabled() || !key.Matches(msg, b.Binding) {
			continue
		}
		next, cmd, handled := b.Handler(m, msg)
		if handled {
			return next, cmd, true
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range r.bindings {
		if b.Short {
			out = append(out, b.Binding)
		}
	}
	return out
}

// FullHelp groups bindings into columns of at most five.
func (r *HandlerRegistry) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	var col []key.Binding
	for _, b := range r.bindings {
		if b.Binding.Help().Desc == "" {
			continue
		}
		col = append(col, b.Binding)
		if len(col) == 5 {
			cols = append(cols, col)
			col = nil
		}
	}
	if len(col) > 0 {
		cols = append(cols, col)
	}
	return cols
}
