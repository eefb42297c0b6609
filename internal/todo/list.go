// Package todo holds the in-memory todo list. Nothing here is persisted.
package todo

import (
	"github.com/akyairhashvil/cozyfocus/internal/models"
	"github.com/akyairhashvil/cozyfocus/internal/util"
)

// List keeps items in insertion order.
type List struct {
	items []models.TodoItem
}

func New() *List {
	return &List{}
}

// Add appends text as an incomplete item. Blank text is rejected; otherwise
// the text is stored exactly as entered.
func (l *List) Add(text string) bool {
	if util.IsBlank(text) {
		return false
	}
	l.items = append(l.items, models.TodoItem{Text: text})
	return true
}

// Toggle flips the completion flag of item i.
func (l *List) Toggle(i int) bool {
	if !l.valid(i) {
		return false
	}
	l.items[i].Completed = !l.items[i].Completed
	return true
}

func (l *List) Delete(i int) bool {
	if !l.valid(i) {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

// Items returns a copy safe to hold across later edits.
func (l *List) Items() []models.TodoItem {
	out := make([]models.TodoItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List) Len() int { return len(l.items) }

// Remaining counts items not yet completed.
func (l *List) Remaining() int {
	n := 0
	for _, it := range l.items {
		if !it.Completed {
			n++
		}
	}
	return n
}

func (l *List) valid(i int) bool {
	return i >= 0 && i < len(l.items)
}
