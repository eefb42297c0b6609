package audio

import (
	"errors"
	"testing"

	"github.com/akyairhashvil/cozyfocus/internal/models"
	"github.com/akyairhashvil/cozyfocus/internal/timer"
	"github.com/golang/mock/gomock"
)

type errorLog struct {
	messages []string
}

func (l *errorLog) PlaybackError(message string) {
	l.messages = append(l.messages, message)
}

type fixture struct {
	ctrl   *gomock.Controller
	media  *MockMedia
	lib    Library
	alerts [2]*MockHandle
	errs   *errorLog
	c      *Controller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:  ctrl,
		media: NewMockMedia(ctrl),
		lib:   NewLibrary("/sounds"),
		errs:  &errorLog{},
	}
	for i := range f.alerts {
		h := NewMockHandle(ctrl)
		f.alerts[i] = h
		f.media.EXPECT().Open(f.lib.AlertSource(), gomock.Any()).Return(h, nil)
		h.EXPECT().SetLoop(false)
		h.EXPECT().SetVolume(0.5)
	}
	f.c = NewController(f.media, f.lib, func(Event) {}, f.errs, 0.5)
	return f
}

func (f *fixture) expectAmbient(track string) *MockHandle {
	h := NewMockHandle(f.ctrl)
	src := Source{Name: track, Path: "/sounds/" + track + ".mp3"}
	gomock.InOrder(
		f.media.EXPECT().Open(src, gomock.Any()).Return(h, nil),
		h.EXPECT().SetLoop(true),
		h.EXPECT().SetVolume(0.5),
	)
	return h
}

func TestSetSourceSupersedesLoadingHandle(t *testing.T) {
	f := newFixture(t)
	rain := f.expectAmbient("rain")
	gomock.InOrder(
		rain.EXPECT().Pause().Return(nil),
		rain.EXPECT().Close().Return(nil),
	)
	ocean := f.expectAmbient("ocean")
	ocean.EXPECT().Play().Return(nil)

	if err := f.c.SetSource(models.BuiltInSound("rain")); err != nil {
		t.Fatalf("SetSource(rain) failed: %v", err)
	}
	if err := f.c.SetSource(models.BuiltInSound("ocean")); err != nil {
		t.Fatalf("SetSource(ocean) failed: %v", err)
	}

	// rain's late callbacks must not start or report anything
	f.c.HandleEvent(Event{Handle: rain, Kind: EventReady})
	f.c.HandleEvent(Event{Handle: rain, Kind: EventError, Err: errors.New("decode failed")})
	f.c.HandleEvent(Event{Handle: ocean, Kind: EventReady})

	snap := f.c.Snapshot()
	if snap.Selection != models.BuiltInSound("ocean") || !snap.Playing {
		t.Fatalf("snapshot = %+v", snap)
	}
	if len(f.errs.messages) != 0 {
		t.Fatalf("stale events reported errors: %v", f.errs.messages)
	}
}

func TestSetSourceNoneReleasesHandle(t *testing.T) {
	f := newFixture(t)
	nature := f.expectAmbient("nature")
	nature.EXPECT().Pause().Return(nil)
	nature.EXPECT().Close().Return(nil)

	_ = f.c.SetSource(models.BuiltInSound("nature"))
	if !f.c.Snapshot().Playing {
		t.Fatalf("expected playing after SetSource")
	}
	_ = f.c.SetSource(models.NoSound())
	snap := f.c.Snapshot()
	if snap.Playing || snap.Selection.Kind != models.SoundNone {
		t.Fatalf("snapshot after none = %+v", snap)
	}
	// toggling with no handle is a no-op
	f.c.TogglePlayback()
	if f.c.Snapshot().Playing {
		t.Fatalf("toggle without a handle must not start playback")
	}
}

func TestSetSourceUnknownTrack(t *testing.T) {
	f := newFixture(t)
	err := f.c.SetSource(models.BuiltInSound("thunder"))
	if !errors.Is(err, ErrUnknownTrack) {
		t.Fatalf("expected ErrUnknownTrack, got %v", err)
	}
	if err := f.c.SetSource(models.CustomSound("  ")); !errors.Is(err, ErrEmptyReference) {
		t.Fatalf("expected ErrEmptyReference, got %v", err)
	}
	if f.c.Snapshot().Selection.Kind != models.SoundNone {
		t.Fatalf("rejected selection changed state")
	}
}

func TestSetSourceOpenFailure(t *testing.T) {
	f := newFixture(t)
	src := Source{Name: "song.wav", Path: "/music/song.wav"}
	f.media.EXPECT().Open(src, gomock.Any()).Return(nil, errors.New("no such file"))

	if err := f.c.SetSource(models.CustomSound("/music/song.wav")); err != nil {
		t.Fatalf("open failures are reported, not returned: %v", err)
	}
	if f.c.Snapshot().Playing {
		t.Fatalf("failed open must not be reported as playing")
	}
	if len(f.errs.messages) != 1 {
		t.Fatalf("expected one playback error, got %v", f.errs.messages)
	}
}

func TestAmbientLoadErrorReleasesHandle(t *testing.T) {
	f := newFixture(t)
	cafe := f.expectAmbient("cafe")
	cafe.EXPECT().Pause().Return(nil)
	cafe.EXPECT().Close().Return(nil)

	_ = f.c.SetSource(models.BuiltInSound("cafe"))
	f.c.HandleEvent(Event{Handle: cafe, Kind: EventError, Err: errors.New("unsupported format")})
	if f.c.Snapshot().Playing {
		t.Fatalf("expected not playing after load error")
	}
	if len(f.errs.messages) != 1 {
		t.Fatalf("expected one playback error, got %v", f.errs.messages)
	}
}

func TestAutoplayBlockedRetriesOnFirstInteraction(t *testing.T) {
	f := newFixture(t)
	nature := f.expectAmbient("nature")
	gomock.InOrder(
		nature.EXPECT().Play().Return(ErrAutoplayBlocked),
		nature.EXPECT().Play().Return(nil),
	)

	_ = f.c.SetSource(models.BuiltInSound("nature"))
	f.c.HandleEvent(Event{Handle: nature, Kind: EventReady})
	if !f.c.Snapshot().Playing {
		t.Fatalf("blocked playback still reports playing")
	}
	if len(f.errs.messages) != 0 {
		t.Fatalf("blocked autoplay is not a playback error: %v", f.errs.messages)
	}
	f.c.NotifyInteraction()
	f.c.NotifyInteraction()
}

func TestInteractionRetryDisarmsEvenWhenUnused(t *testing.T) {
	f := newFixture(t)
	f.c.NotifyInteraction()

	rain := f.expectAmbient("rain")
	rain.EXPECT().Play().Return(ErrAutoplayBlocked)
	_ = f.c.SetSource(models.BuiltInSound("rain"))
	f.c.HandleEvent(Event{Handle: rain, Kind: EventReady})
	// retry was spent on the first interaction, nothing more is attempted
	f.c.NotifyInteraction()
}

func TestTogglePlayback(t *testing.T) {
	f := newFixture(t)
	ocean := f.expectAmbient("ocean")
	gomock.InOrder(
		ocean.EXPECT().Play().Return(nil),
		ocean.EXPECT().Pause().Return(nil),
		ocean.EXPECT().Play().Return(nil),
	)

	_ = f.c.SetSource(models.BuiltInSound("ocean"))
	f.c.HandleEvent(Event{Handle: ocean, Kind: EventReady})
	f.c.TogglePlayback()
	if f.c.Snapshot().Playing {
		t.Fatalf("expected paused")
	}
	f.c.TogglePlayback()
	if !f.c.Snapshot().Playing {
		t.Fatalf("expected playing")
	}
}

func TestToggleBeforeReadyDefersPlay(t *testing.T) {
	f := newFixture(t)
	ocean := f.expectAmbient("ocean")
	ocean.EXPECT().Pause().Return(nil)

	_ = f.c.SetSource(models.BuiltInSound("ocean"))
	f.c.TogglePlayback()
	// paused while loading: ready must not start it
	f.c.HandleEvent(Event{Handle: ocean, Kind: EventReady})

	ocean.EXPECT().Play().Return(nil)
	f.c.TogglePlayback()
}

func TestSetVolumeClamps(t *testing.T) {
	f := newFixture(t)
	rain := f.expectAmbient("rain")
	for _, want := range []float64{1.0, 0.0, 0.25} {
		rain.EXPECT().SetVolume(want)
		f.alerts[0].EXPECT().SetVolume(want)
		f.alerts[1].EXPECT().SetVolume(want)
	}
	_ = f.c.SetSource(models.BuiltInSound("rain"))

	f.c.SetVolume(1.5)
	if got := f.c.Snapshot().Volume; got != 1.0 {
		t.Fatalf("volume = %v, want 1.0", got)
	}
	f.c.SetVolume(-0.2)
	if got := f.c.Snapshot().Volume; got != 0.0 {
		t.Fatalf("volume = %v, want 0.0", got)
	}
	f.c.SetVolume(0.25)
	if got := f.c.Snapshot().Volume; got != 0.25 {
		t.Fatalf("volume = %v, want 0.25", got)
	}
}

func TestPlayAlertWaitsForReady(t *testing.T) {
	f := newFixture(t)
	end := f.alerts[timer.AlertTimerEnd]
	gomock.InOrder(
		end.EXPECT().Rewind().Return(nil),
		end.EXPECT().Play().Return(nil),
		end.EXPECT().Pause().Return(nil),
		end.EXPECT().Rewind().Return(nil),
	)

	f.c.PlayAlert(timer.AlertTimerEnd)
	f.c.HandleEvent(Event{Handle: end, Kind: EventReady})
	f.c.SilenceAlert(timer.AlertTimerEnd)
}

func TestPlayAlertDoesNotTouchAmbient(t *testing.T) {
	f := newFixture(t)
	nature := f.expectAmbient("nature")
	nature.EXPECT().Play().Return(nil)
	end := f.alerts[timer.AlertTimerEnd]
	end.EXPECT().Rewind().Return(nil)
	end.EXPECT().Play().Return(nil)

	_ = f.c.SetSource(models.BuiltInSound("nature"))
	f.c.HandleEvent(Event{Handle: nature, Kind: EventReady})
	f.c.HandleEvent(Event{Handle: end, Kind: EventReady})
	f.c.PlayAlert(timer.AlertTimerEnd)
	if !f.c.Snapshot().Playing {
		t.Fatalf("ambient must keep playing during an alert")
	}
}

func TestTeardownReleasesEverything(t *testing.T) {
	f := newFixture(t)
	cafe := f.expectAmbient("cafe")
	for _, h := range []*MockHandle{cafe, f.alerts[0], f.alerts[1]} {
		h.EXPECT().Pause().Return(nil)
		h.EXPECT().Close().Return(nil)
	}
	_ = f.c.SetSource(models.BuiltInSound("cafe"))

	f.c.Teardown()
	f.c.Teardown()
	f.c.PlayAlert(timer.AlertTimerEnd)
	f.c.HandleEvent(Event{Handle: cafe, Kind: EventReady})
	if err := f.c.SetSource(models.BuiltInSound("rain")); err != nil {
		t.Fatalf("SetSource after teardown should be a silent no-op: %v", err)
	}
	if f.c.Snapshot().Playing {
		t.Fatalf("nothing plays after teardown")
	}
}

func TestPauseErrorDuringReleaseIsIgnored(t *testing.T) {
	f := newFixture(t)
	rain := f.expectAmbient("rain")
	rain.EXPECT().Pause().Return(ErrHandleClosed)
	rain.EXPECT().Close().Return(nil)
	_ = f.c.SetSource(models.BuiltInSound("rain"))
	_ = f.c.SetSource(models.NoSound())
	if len(f.errs.messages) != 0 {
		t.Fatalf("cosmetic pause errors must not surface: %v", f.errs.messages)
	}
}
