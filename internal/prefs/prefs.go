// Package prefs keeps the durable user preferences: accent color, dark mode,
// background image and the app title.
package prefs

import (
	"context"
	"regexp"
	"strings"

	"github.com/akyairhashvil/cozyfocus/internal/config"
	"github.com/akyairhashvil/cozyfocus/internal/database"
	"github.com/akyairhashvil/cozyfocus/internal/models"
	"github.com/akyairhashvil/cozyfocus/internal/util"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Store mirrors the preferences in memory and writes every change through to
// the durable store. Write failures are logged and dropped; the in-memory
// value stays authoritative for the rest of the session.
type Store struct {
	backend database.SettingsStore
	prefs   models.Preferences
	loaded  bool
}

func New(backend database.SettingsStore) *Store {
	return &Store{backend: backend, prefs: Defaults()}
}

// Defaults returns the built-in preferences.
func Defaults() models.Preferences {
	preset, _ := config.LookupPreset(config.DefaultThemeName)
	return models.Preferences{
		ThemeColorName:     preset.Name,
		ThemeColorHex:      preset.Hex,
		DarkMode:           false,
		BackgroundImageRef: config.DefaultBackground,
		AppTitle:           config.DefaultTitle,
	}
}

// Load reads every key once. Missing, unreadable or malformed values keep
// their defaults. Subsequent calls are no-ops.
func (s *Store) Load(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	if v, ok := s.get(ctx, config.KeyTheme); ok {
		if name, hex, valid := resolveTheme(v); valid {
			s.prefs.ThemeColorName = name
			s.prefs.ThemeColorHex = hex
		}
	}
	if v, ok := s.get(ctx, config.KeyDarkMode); ok {
		s.prefs.DarkMode = util.StringToBool(v)
	}
	if v, ok := s.get(ctx, config.KeyBackground); ok {
		s.prefs.BackgroundImageRef = v
	}
	if v, ok := s.get(ctx, config.KeyAppTitle); ok && !util.IsBlank(v) {
		s.prefs.AppTitle = v
	}
}

// Get returns a copy of the current preferences.
func (s *Store) Get() models.Preferences {
	return s.prefs
}

// SetThemeColor accepts a preset name or a #rrggbb color. It reports whether
// the value was accepted.
func (s *Store) SetThemeColor(ctx context.Context, value string) bool {
	name, hex, ok := resolveTheme(value)
	if !ok {
		return false
	}
	s.prefs.ThemeColorName = name
	s.prefs.ThemeColorHex = hex
	stored := name
	if name == config.CustomThemeName {
		stored = hex
	}
	s.set(ctx, config.KeyTheme, stored)
	return true
}

// CycleTheme advances to the next preset; a custom color moves to the first.
func (s *Store) CycleTheme(ctx context.Context) {
	next := config.ThemePresets[0]
	for i, p := range config.ThemePresets {
		if p.Name == s.prefs.ThemeColorName {
			next = config.ThemePresets[(i+1)%len(config.ThemePresets)]
			break
		}
	}
	s.SetThemeColor(ctx, next.Name)
}

func (s *Store) SetDarkMode(ctx context.Context, on bool) {
	s.prefs.DarkMode = on
	s.set(ctx, config.KeyDarkMode, util.BoolToString(on))
}

func (s *Store) ToggleDarkMode(ctx context.Context) {
	s.SetDarkMode(ctx, !s.prefs.DarkMode)
}

// SetBackground stores an image reference. An empty ref clears it.
func (s *Store) SetBackground(ctx context.Context, ref string) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		s.ClearBackground(ctx)
		return
	}
	s.prefs.BackgroundImageRef = ref
	s.set(ctx, config.KeyBackground, ref)
}

func (s *Store) ClearBackground(ctx context.Context) {
	s.prefs.BackgroundImageRef = config.DefaultBackground
	if err := s.backend.DeleteSetting(ctx, config.KeyBackground); err != nil {
		util.LogError("clear background preference", err)
	}
}

// SetTitle stores a new app title. Whitespace-only titles are rejected and
// the previous title is kept.
func (s *Store) SetTitle(ctx context.Context, title string) bool {
	if util.IsBlank(title) {
		return false
	}
	s.prefs.AppTitle = title
	s.set(ctx, config.KeyAppTitle, title)
	return true
}

func (s *Store) get(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.backend.GetSetting(ctx, key)
	if err != nil {
		util.LogError("load preference "+key, err)
		return "", false
	}
	return v, ok
}

func (s *Store) set(ctx context.Context, key, value string) {
	if err := s.backend.SetSetting(ctx, key, value); err != nil {
		util.LogError("save preference "+key, err)
	}
}

func resolveTheme(value string) (name, hex string, ok bool) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "#") {
		if !hexColor.MatchString(value) {
			return "", "", false
		}
		return config.CustomThemeName, strings.ToLower(value), true
	}
	preset, found := config.LookupPreset(strings.ToLower(value))
	if !found {
		return "", "", false
	}
	return preset.Name, preset.Hex, true
}
