package config

// Layout constants.
const (
	// PanelWidth is the width of the main widget column.
	PanelWidth = 48

	// ProgressWidth is the width of the timer progress bar.
	ProgressWidth = 40

	// MaxVisibleTodos limits todos shown before scrolling.
	MaxVisibleTodos = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxTodoLength is the maximum todo text length.
	MaxTodoLength = 120

	// MaxTitleLength is the maximum app title length.
	MaxTitleLength = 40

	// MaxMinutes bounds the timer input.
	MaxMinutes = 999

	// MaxPathLength bounds file path inputs.
	MaxPathLength = 1024
)
