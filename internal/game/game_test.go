package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/perspective-grid/internal/config"
)

func TestLayout(t *testing.T) {
	cfg := config.Default()

	g := NewGame(cfg)
	if w, h := g.Layout(1280, 720); w != 1280 || h != 720 {
		t.Fatalf("resizable layout=(%d, %d), want (1280, 720)", w, h)
	}

	cfg.Window.Resizable = false
	g = NewGame(cfg)
	if w, h := g.Layout(1280, 720); w != config.WindowWidth || h != config.WindowHeight {
		t.Fatalf("fixed layout=(%d, %d), want (%d, %d)", w, h, config.WindowWidth, config.WindowHeight)
	}
}

func TestUpdateSurfacesDrawError(t *testing.T) {
	g := NewGame(config.Default())
	errBoom := errors.New("boom")
	g.drawErr = errBoom

	before := g.driver.State()
	if err := g.Update(); !errors.Is(err, errBoom) {
		t.Fatalf("Update err=%v, want %v", err, errBoom)
	}
	if g.driver.State() != before {
		t.Fatalf("Update advanced after a failed frame")
	}
}

func TestApplyConfig(t *testing.T) {
	g := NewGame(config.Default())
	updates := make(chan config.Config, 1)
	errs := make(chan error, 1)
	g.WatchConfig(updates, errs)

	errBroken := errors.New("grid.yaml: config: invalid")
	errs <- errBroken
	g.applyConfig()
	if !errors.Is(g.lastErr, errBroken) || g.cfg.Grid.Levels != config.GridLevels {
		t.Fatalf("reload error: lastErr=%v levels=%d", g.lastErr, g.cfg.Grid.Levels)
	}

	g.applyConfig()
	if g.cfg.HUD {
		t.Fatalf("config changed without an update")
	}

	cfg := config.Default()
	cfg.HUD = true
	cfg.Audio.Pulse = 2
	updates <- cfg
	g.applyConfig()
	if !g.cfg.HUD || g.audio.cfg.Pulse != 2 {
		t.Fatalf("update not applied: hud=%v pulse=%v", g.cfg.HUD, g.audio.cfg.Pulse)
	}
	if g.lastErr != nil {
		t.Fatalf("successful reload should clear lastErr, got %v", g.lastErr)
	}

	close(updates)
	close(errs)
	g.applyConfig()
	if g.updates != nil || g.reloadErrs != nil {
		t.Fatalf("closed channels should be dropped")
	}
}

func TestSoundtrackWithoutTrack(t *testing.T) {
	s := newSoundtrack(config.Default().Audio)
	if p := s.Pulse(); p != 0 {
		t.Fatalf("pulse=%v, want 0", p)
	}
	if got := s.Status(); got != "no soundtrack" {
		t.Fatalf("status=%q", got)
	}
	s.SetPaused(true)
	s.Close()

	if err := s.Load(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "track.ogg")
	if err := os.WriteFile(path, []byte("OggS"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Load(path); !errors.Is(err, ErrUnsupportedAudio) {
		t.Fatalf("err=%v, want ErrUnsupportedAudio", err)
	}
}
