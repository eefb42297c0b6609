package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/akyairhashvil/cozyfocus/internal/audio"
	"github.com/akyairhashvil/cozyfocus/internal/config"
	"github.com/akyairhashvil/cozyfocus/internal/database"
	"github.com/akyairhashvil/cozyfocus/internal/models"
	"github.com/akyairhashvil/cozyfocus/internal/playback"
	"github.com/akyairhashvil/cozyfocus/internal/session"
	"github.com/akyairhashvil/cozyfocus/internal/tui"
	"github.com/akyairhashvil/cozyfocus/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// 1. Settings and logging
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	settings, err := config.Load(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	logCloser, err := util.SetupLogging(settings.LogPath(), settings.LogLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("cozyfocus needs an interactive terminal")
	}

	// 2. Preferences store
	ctx := context.Background()
	store := openStore(ctx, settings.DBPath(), os.Stderr)

	// 3. Audio
	library := audio.NewLibrary(settings.SoundsDir)
	seedSounds(library)
	player, err := playback.NewPlayer(settings.Autoplay)
	if err != nil {
		_ = store.Close()
		return err
	}
	defer player.Close()

	// 4. Session and UI
	inbox := &session.Inbox{}
	s, err := session.New(ctx, session.Options{
		Store:    store,
		Media:    player,
		Library:  library,
		Settings: settings,
		Notifier: logged(inbox),
	})
	if err != nil {
		_ = store.Close()
		return err
	}
	defer func() { util.LogError("close session", s.Close()) }()

	p := tea.NewProgram(tui.NewModel(s, inbox), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// logged records expiries and playback errors in the log file before
// handing each notification to next.
func logged(next session.Notifier) session.Notifier {
	return session.NotifierFunc(func(n session.Notification) {
		switch n.Kind {
		case session.NotifyExpired:
			util.Logger.Info("timer finished", "minutes", n.Timer.ConfiguredMinutes)
		case session.NotifyPlaybackError:
			util.Logger.Warn("playback failed", "message", n.Message)
		}
		next.Notify(n)
	})
}

// openStore falls back to an in-memory store so the app stays usable when
// the data dir is read-only; preferences then last for this run only.
func openStore(ctx context.Context, path string, warn io.Writer) database.SettingsStore {
	db, err := database.Open(ctx, path)
	if err == nil {
		return db
	}
	util.LogError("open preferences database", err)
	fmt.Fprintf(warn, "Preferences will not be saved: %v\n", err)
	return database.NewMemStore()
}

// seedSounds installs a generated chime when the timer-end sound is missing.
// Ambient tracks are never generated.
func seedSounds(library audio.Library) {
	src := library.AlertSource()
	wrote, err := playback.EnsureFile(src.Path, playback.Chime())
	if err != nil {
		util.LogError("install timer chime", err)
		return
	}
	if wrote {
		util.Logger.Info("installed default timer chime", "path", src.Path)
	}
	for _, track := range library.Tracks {
		src, err := library.Resolve(models.BuiltInSound(track))
		if err != nil || !util.FileExists(src.Path) {
			util.Logger.Warn("ambient track missing", "track", track, "dir", library.Dir)
		}
	}
}
