package util

import "strings"

// BoolToString encodes a boolean the way the durable store expects.
func BoolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// StringToBool decodes a stored boolean; anything but "true" is false.
func StringToBool(s string) bool {
	return strings.TrimSpace(s) == "true"
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Clamp constrains a value to a range.
func Clamp[T ~int | ~float64](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
