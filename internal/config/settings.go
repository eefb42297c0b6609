package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/akyairhashvil/cozyfocus/internal/util"
)

// Settings are the startup options read from the config file, environment
// and flags. They are not the user preferences, which live in the database.
type Settings struct {
	DataDir      string  `toml:"data_dir"`
	SoundsDir    string  `toml:"sounds_dir"`
	TimerMinutes int     `toml:"timer_minutes"`
	Volume       float64 `toml:"volume"`
	DefaultSound string  `toml:"default_sound"`
	Autoplay     bool    `toml:"autoplay"`
	LogLevel     string  `toml:"log_level"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	dataDir := util.DataDir(AppName)
	return Settings{
		DataDir:      dataDir,
		SoundsDir:    filepath.Join(dataDir, "sounds"),
		TimerMinutes: DefaultTimerMinutes,
		Volume:       DefaultVolume,
		DefaultSound: DefaultSound,
		Autoplay:     true,
		LogLevel:     "info",
	}
}

// DBPath is the location of the preferences database.
func (s Settings) DBPath() string {
	return filepath.Join(s.DataDir, DBFileName)
}

// LogPath is the location of the log file.
func (s Settings) LogPath() string {
	return filepath.Join(s.DataDir, LogFileName)
}

// ConfigFilePath returns the user config file location.
func ConfigFilePath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Load resolves settings in priority order:
// 1. Defaults
// 2. Config file (explicit -config flag or the user config dir)
// 3. Environment variables (COZYFOCUS_*)
// 4. CLI flags
func Load(fs *flag.FlagSet, args []string) (Settings, error) {
	s := DefaultSettings()

	path := configPathFromArgs(args)
	explicit := path != ""
	if !explicit {
		path = ConfigFilePath()
	}
	if err := loadFile(&s, path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return s, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := loadFromEnv(&s); err != nil {
		return s, fmt.Errorf("reading environment: %w", err)
	}

	if err := parseFlags(&s, fs, args); err != nil {
		return s, fmt.Errorf("parsing flags: %w", err)
	}

	if err := s.finalize(); err != nil {
		return s, err
	}
	return s, nil
}

func loadFile(s *Settings, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	_, err := toml.DecodeFile(path, s)
	return err
}

func loadFromEnv(s *Settings) error {
	if v := os.Getenv(EnvPrefix + "DATA_DIR"); v != "" {
		s.DataDir = v
	}
	if v := os.Getenv(EnvPrefix + "SOUNDS_DIR"); v != "" {
		s.SoundsDir = v
	}
	if v := os.Getenv(EnvPrefix + "TIMER_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sTIMER_MINUTES: %w", EnvPrefix, err)
		}
		s.TimerMinutes = n
	}
	if v := os.Getenv(EnvPrefix + "VOLUME"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sVOLUME: %w", EnvPrefix, err)
		}
		s.Volume = f
	}
	if v := os.Getenv(EnvPrefix + "DEFAULT_SOUND"); v != "" {
		s.DefaultSound = v
	}
	if v := os.Getenv(EnvPrefix + "AUTOPLAY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sAUTOPLAY: %w", EnvPrefix, err)
		}
		s.Autoplay = b
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		s.LogLevel = v
	}
	return nil
}

func parseFlags(s *Settings, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet(AppName, flag.ContinueOnError)
	}
	var ignored string
	fs.StringVar(&ignored, "config", "", "Path to config file")
	fs.StringVar(&s.DataDir, "data-dir", s.DataDir, "Directory for the database and log")
	fs.StringVar(&s.SoundsDir, "sounds-dir", s.SoundsDir, "Directory holding the built-in sounds")
	fs.IntVar(&s.TimerMinutes, "minutes", s.TimerMinutes, "Initial timer length in minutes")
	fs.Float64Var(&s.Volume, "volume", s.Volume, "Initial volume between 0 and 1")
	fs.StringVar(&s.DefaultSound, "sound", s.DefaultSound, "Ambient sound at startup (nature, rain, cafe, ocean, none)")
	fs.BoolVar(&s.Autoplay, "autoplay", s.Autoplay, "Start ambient sound before the first key press")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "Log level (debug, info, warn, error)")
	return fs.Parse(args)
}

// configPathFromArgs finds -config before the flag set is built so the file
// layer can be applied underneath env and flags.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func (s *Settings) finalize() error {
	s.DataDir = util.ExpandHome(s.DataDir)
	s.SoundsDir = util.ExpandHome(s.SoundsDir)
	if s.TimerMinutes < 1 {
		return fmt.Errorf("timer minutes must be at least 1, got %d", s.TimerMinutes)
	}
	if s.Volume < 0 || s.Volume > 1 {
		return fmt.Errorf("volume must be between 0 and 1, got %v", s.Volume)
	}
	s.DefaultSound = strings.ToLower(strings.TrimSpace(s.DefaultSound))
	if s.DefaultSound != "" && s.DefaultSound != "none" && !IsBuiltInTrack(s.DefaultSound) {
		return fmt.Errorf("unknown default sound %q", s.DefaultSound)
	}
	return nil
}

// IsBuiltInTrack reports whether name is one of BuiltInTracks.
func IsBuiltInTrack(name string) bool {
	for _, t := range BuiltInTracks {
		if t == name {
			return true
		}
	}
	return false
}
