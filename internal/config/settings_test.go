package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, key := range []string{"DATA_DIR", "SOUNDS_DIR", "TIMER_MINUTES", "VOLUME", "DEFAULT_SOUND", "AUTOPLAY", "LOG_LEVEL"} {
		t.Setenv(EnvPrefix+key, "")
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)
	s, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.TimerMinutes != DefaultTimerMinutes {
		t.Fatalf("TimerMinutes = %d", s.TimerMinutes)
	}
	if s.Volume != DefaultVolume {
		t.Fatalf("Volume = %v", s.Volume)
	}
	if want := filepath.Join(dir, "data", AppName); s.DataDir != want {
		t.Fatalf("DataDir = %q, want %q", s.DataDir, want)
	}
	if !s.Autoplay {
		t.Fatalf("expected autoplay on by default")
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "config", AppName)
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	data := "timer_minutes = 50\nvolume = 0.2\ndefault_sound = \"rain\"\n"
	if err := os.WriteFile(filepath.Join(cfgDir, ConfigFileName), []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvPrefix+"VOLUME", "0.7")

	s, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-sound", "ocean"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.TimerMinutes != 50 {
		t.Fatalf("file value not applied: %d", s.TimerMinutes)
	}
	if s.Volume != 0.7 {
		t.Fatalf("env did not override file: %v", s.Volume)
	}
	if s.DefaultSound != "ocean" {
		t.Fatalf("flag did not override file: %q", s.DefaultSound)
	}
}

func TestLoadExplicitConfigMissing(t *testing.T) {
	dir := isolate(t)
	missing := filepath.Join(dir, "nope.toml")
	if _, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-config", missing}); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	cases := [][]string{
		{"-minutes", "0"},
		{"-volume", "1.5"},
		{"-sound", "thunder"},
	}
	for _, args := range cases {
		if _, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), args); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestConfigPathFromArgs(t *testing.T) {
	cases := map[string][]string{
		"a.toml": {"-config", "a.toml"},
		"b.toml": {"--config=b.toml"},
		"":       {"-minutes", "5"},
	}
	for want, args := range cases {
		if got := configPathFromArgs(args); got != want {
			t.Fatalf("configPathFromArgs(%v) = %q, want %q", args, got, want)
		}
	}
}
