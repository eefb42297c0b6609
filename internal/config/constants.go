package config

import (
	"path/filepath"
	"strings"
	"time"
)

// Timer defaults.
const (
	DefaultTimerMinutes = 25
	ExtendDuration      = time.Minute
	TickInterval        = time.Second
)

// Audio defaults.
const (
	DefaultVolume = 0.5
	VolumeStep    = 0.1
	DefaultSound  = "nature"
	TimerEndSound = "timerEnd"
	ChimeFileExt  = ".wav"
)

// SoundFileExts are the playable file types, in lookup order.
var SoundFileExts = []string{".mp3", ".wav"}

// ImageFileExts are the accepted background image types.
var ImageFileExts = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".svg"}

// HasExt reports whether path ends in one of exts, ignoring case.
func HasExt(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// BuiltInTracks lists the ambient tracks shipped with the app, in menu order.
var BuiltInTracks = []string{"nature", "rain", "cafe", "ocean"}

// Durable storage keys.
const (
	KeyTheme      = "theme"
	KeyDarkMode   = "darkMode"
	KeyBackground = "background"
	KeyAppTitle   = "appTitle"
)

// Preference defaults.
const (
	DefaultTitle      = "Cozy Todo"
	DefaultThemeName  = "purple"
	CustomThemeName   = "custom"
	DefaultBackground = ""
)

// ThemePreset is a named accent color.
type ThemePreset struct {
	Name string
	Hex  string
}

// ThemePresets are the selectable accent colors, in cycling order.
var ThemePresets = []ThemePreset{
	{Name: "purple", Hex: "#7c4dff"},
	{Name: "blue", Hex: "#2196f3"},
	{Name: "green", Hex: "#4caf50"},
	{Name: "pink", Hex: "#e91e63"},
	{Name: "orange", Hex: "#ff9800"},
	{Name: "teal", Hex: "#009688"},
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (ThemePreset, bool) {
	for _, p := range ThemePresets {
		if p.Name == name {
			return p, true
		}
	}
	return ThemePreset{}, false
}

// Application settings.
const (
	AppName        = "cozyfocus"
	DBFileName     = "cozyfocus.db"
	ConfigFileName = "cozyfocus.toml"
	LogFileName    = "cozyfocus.log"
	EnvPrefix      = "COZYFOCUS_"
)
