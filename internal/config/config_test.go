package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Grid.Levels != 10 || cfg.Grid.ZeroDepth != 0.01 {
		t.Fatalf("grid defaults=%+v", cfg.Grid)
	}
	if cfg.Motion.Position.Max != 800 || cfg.Motion.Horizon.Max != 600 || cfg.Motion.Depth.Max != 100 {
		t.Fatalf("motion defaults=%+v", cfg.Motion)
	}
}

func TestParseKeepsUnsetDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
grid:
  levels: 4
  color: "#ff000080"
motion:
  horizon:
    step: 0.5
hud: true
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Grid.Levels != 4 || !cfg.HUD {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Grid.Color.Color != (color.NRGBA{R: 0xff, A: 0x80}) {
		t.Fatalf("grid color=%v", cfg.Grid.Color.Color)
	}
	if cfg.Motion.Horizon.Step != 0.5 || cfg.Motion.Horizon.Max != HorizonMax || cfg.Motion.Horizon.Start != HorizonStart {
		t.Fatalf("horizon=%+v", cfg.Motion.Horizon)
	}
	if cfg.Grid.LineWidth != GridLineWidth || cfg.Circle.Radius != CircleRadius || cfg.Window.Width != WindowWidth {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"zero_levels", "grid: {levels: 0}"},
		{"zero_scale", "grid: {scale: 0}"},
		{"negative_zero_depth", "grid: {zero_depth: -1}"},
		{"negative_radius", "circle: {radius: -5}"},
		{"zero_period", "motion: {depth: {max: 0}}"},
		{"negative_step", "motion: {position: {step: -1}}"},
		{"window", "window: {width: 0}"},
		{"smoothing", "audio: {smoothing: 1}"},
		{"nan_line_width", "grid: {line_width: .nan}"},
		{"nan_scale", "grid: {scale: .nan}"},
		{"nan_zero_depth", "grid: {zero_depth: .nan}"},
		{"nan_radius", "circle: {radius: .nan}"},
		{"nan_depth_period", "motion: {depth: {max: .nan}}"},
		{"inf_position_step", "motion: {position: {step: .inf}}"},
		{"nan_horizon_start", "motion: {horizon: {start: .nan}}"},
		{"nan_pulse", "audio: {pulse: .nan}"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse([]byte(c.yaml)); !errors.Is(err, ErrInvalid) {
				t.Fatalf("err=%v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#1a334c", color.NRGBA{R: 0x1a, G: 0x33, B: 0x4c, A: 0xff}, false},
		{"ffffff80", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}, false},
		{"#fff", color.NRGBA{}, true},
		{"#zz0000", color.NRGBA{}, true},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if (err != nil) != c.wantErr {
			t.Fatalf("ParseColor(%q) err=%v, wantErr %v", c.in, err, c.wantErr)
		}
		if got != c.want {
			t.Fatalf("ParseColor(%q)=%v, want %v", c.in, got, c.want)
		}
	}

	if _, err := Parse([]byte("background: [1, 2]")); err == nil {
		t.Fatalf("expected error for non-scalar color")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	path := filepath.Join(dir, "grid.yaml")
	if err := os.WriteFile(path, []byte("circle: {radius: 120}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Circle.Radius != 120 {
		t.Fatalf("radius=%v, want 120", cfg.Circle.Radius)
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.yaml")
	if err := os.WriteFile(path, []byte("grid: {levels: 10}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("grid: {levels: 2}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("grid: {levels: 4}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates:
		if cfg.Grid.Levels != 4 {
			t.Fatalf("levels=%d, want 4", cfg.Grid.Levels)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no reload within timeout")
	}
}

func TestWatcherSkipsBrokenEdit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.yaml")
	if err := os.WriteFile(path, []byte("grid: {levels: 10}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("grid: {levels: 0}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-w.Errors:
		if !errors.Is(err, ErrInvalid) {
			t.Fatalf("err=%v, want ErrInvalid", err)
		}
	case cfg := <-w.Updates:
		t.Fatalf("broken edit delivered: levels=%d", cfg.Grid.Levels)
	case <-time.After(5 * time.Second):
		t.Fatalf("no reload error within timeout")
	}
	select {
	case cfg := <-w.Updates:
		t.Fatalf("broken edit delivered: levels=%d", cfg.Grid.Levels)
	default:
	}

	if err := os.WriteFile(path, []byte("grid: {levels: 6}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case cfg := <-w.Updates:
		if cfg.Grid.Levels != 6 {
			t.Fatalf("levels=%d, want 6", cfg.Grid.Levels)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no reload within timeout")
	}
}
