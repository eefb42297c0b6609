package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/cozyfocus/internal/models"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestResolvePicksInstalledExtension(t *testing.T) {
	dir := t.TempDir()
	lib := NewLibrary(dir)

	src, err := lib.Resolve(models.BuiltInSound("rain"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if want := filepath.Join(dir, "rain.mp3"); src.Path != want {
		t.Fatalf("missing track path = %q, want %q", src.Path, want)
	}

	touch(t, filepath.Join(dir, "rain.wav"))
	src, _ = lib.Resolve(models.BuiltInSound("rain"))
	if want := filepath.Join(dir, "rain.wav"); src.Path != want {
		t.Fatalf("wav-only track path = %q, want %q", src.Path, want)
	}

	touch(t, filepath.Join(dir, "rain.mp3"))
	src, _ = lib.Resolve(models.BuiltInSound("rain"))
	if want := filepath.Join(dir, "rain.mp3"); src.Path != want {
		t.Fatalf("mp3 should win when both exist, got %q", src.Path)
	}

	if _, err := lib.Resolve(models.BuiltInSound("thunder")); !errors.Is(err, ErrUnknownTrack) {
		t.Fatalf("expected ErrUnknownTrack, got %v", err)
	}
}

func TestAlertSourceFallsBackToChime(t *testing.T) {
	dir := t.TempDir()
	lib := NewLibrary(dir)
	if want := filepath.Join(dir, "timerEnd.wav"); lib.AlertSource().Path != want {
		t.Fatalf("AlertSource = %q, want %q", lib.AlertSource().Path, want)
	}
	touch(t, filepath.Join(dir, "timerEnd.mp3"))
	if want := filepath.Join(dir, "timerEnd.mp3"); lib.AlertSource().Path != want {
		t.Fatalf("installed recording should be used, got %q", lib.AlertSource().Path)
	}
}
