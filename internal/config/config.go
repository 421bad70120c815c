package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Perspective Grid - Space: pause, O: open soundtrack, Esc/Q: quit"

	// Grid parameters
	GridLevels    = 10
	GridLineWidth = 1.0
	GridScale     = 1.0
	ZeroDepth     = 0.01

	CircleRadius = 300.0

	// Motion parameters
	PositionMax   = 800.0
	PositionStep  = 1.0
	PositionStart = 0.0
	HorizonMax    = 600.0
	HorizonStep   = 0.3
	HorizonStart  = 600.0
	DepthPeriod   = 100.0
	DepthStep     = 0.1
	DepthStart    = 1.0

	// Soundtrack parameters
	VisualRingSize  = 8192
	SampleWindow    = 2048
	SmoothingFactor = 0.6
	PulseGain       = 0.5
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window     Window `yaml:"window"`
	Background Color  `yaml:"background"`
	Grid       Grid   `yaml:"grid"`
	Circle     Circle `yaml:"circle"`
	Motion     Motion `yaml:"motion"`
	Audio      Audio  `yaml:"audio"`
	HUD        bool   `yaml:"hud"`
}

type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type Grid struct {
	Levels    int     `yaml:"levels"`
	LineWidth float64 `yaml:"line_width"`
	Scale     float64 `yaml:"scale"`
	ZeroDepth float64 `yaml:"zero_depth"`
	Color     Color   `yaml:"color"`
}

type Circle struct {
	Radius float64 `yaml:"radius"`
	Color  Color   `yaml:"color"`
}

// Oscillator describes a value moving by Step per tick within [0, Max].
type Oscillator struct {
	Max   float64 `yaml:"max"`
	Step  float64 `yaml:"step"`
	Start float64 `yaml:"start"`
}

type Motion struct {
	Position Oscillator `yaml:"position"`
	Horizon  Oscillator `yaml:"horizon"`
	// Depth wraps modulo Max instead of bouncing.
	Depth Oscillator `yaml:"depth"`
}

type Audio struct {
	File      string  `yaml:"file"`
	Pulse     float64 `yaml:"pulse"`
	RingSize  int     `yaml:"ring_size"`
	Window    int     `yaml:"window"`
	Smoothing float64 `yaml:"smoothing"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:     WindowWidth,
			Height:    WindowHeight,
			Title:     WindowTitle,
			Resizable: true,
		},
		Background: Color{color.NRGBA{R: 0x1a, G: 0x33, B: 0x4c, A: 0xff}},
		Grid: Grid{
			Levels:    GridLevels,
			LineWidth: GridLineWidth,
			Scale:     GridScale,
			ZeroDepth: ZeroDepth,
			Color:     Color{colornames.White},
		},
		Circle: Circle{
			Radius: CircleRadius,
			Color:  Color{colornames.White},
		},
		Motion: Motion{
			Position: Oscillator{Max: PositionMax, Step: PositionStep, Start: PositionStart},
			Horizon:  Oscillator{Max: HorizonMax, Step: HorizonStep, Start: HorizonStart},
			Depth:    Oscillator{Max: DepthPeriod, Step: DepthStep, Start: DepthStart},
		},
		Audio: Audio{
			Pulse:     PulseGain,
			RingSize:  VisualRingSize,
			Window:    SampleWindow,
			Smoothing: SmoothingFactor,
		},
	}
}

// Parse decodes YAML on top of the defaults, so omitted keys keep their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	for name, v := range c.floats() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalid, name)
		}
	}
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Grid.Levels <= 0:
		return fmt.Errorf("%w: grid.levels %d", ErrInvalid, c.Grid.Levels)
	case c.Grid.LineWidth <= 0:
		return fmt.Errorf("%w: grid.line_width %v", ErrInvalid, c.Grid.LineWidth)
	case c.Grid.Scale == 0:
		return fmt.Errorf("%w: grid.scale must be non-zero", ErrInvalid)
	case c.Grid.ZeroDepth <= 0:
		return fmt.Errorf("%w: grid.zero_depth %v", ErrInvalid, c.Grid.ZeroDepth)
	case c.Circle.Radius < 0:
		return fmt.Errorf("%w: circle.radius %v", ErrInvalid, c.Circle.Radius)
	case c.Motion.Position.Max <= 0 || c.Motion.Horizon.Max <= 0 || c.Motion.Depth.Max <= 0:
		return fmt.Errorf("%w: motion bounds must be positive", ErrInvalid)
	case c.Motion.Position.Step < 0 || c.Motion.Horizon.Step < 0 || c.Motion.Depth.Step < 0:
		return fmt.Errorf("%w: motion steps must not be negative", ErrInvalid)
	case c.Audio.RingSize <= 0 || c.Audio.Window <= 0:
		return fmt.Errorf("%w: audio.ring_size and audio.window must be positive", ErrInvalid)
	case c.Background.Color == nil || c.Grid.Color.Color == nil || c.Circle.Color.Color == nil:
		return fmt.Errorf("%w: colors must be set", ErrInvalid)
	case c.Audio.Smoothing < 0 || c.Audio.Smoothing >= 1:
		return fmt.Errorf("%w: audio.smoothing %v outside [0, 1)", ErrInvalid, c.Audio.Smoothing)
	}
	return nil
}

func (c Config) floats() map[string]float64 {
	return map[string]float64{
		"grid.line_width":       c.Grid.LineWidth,
		"grid.scale":            c.Grid.Scale,
		"grid.zero_depth":       c.Grid.ZeroDepth,
		"circle.radius":         c.Circle.Radius,
		"motion.position.max":   c.Motion.Position.Max,
		"motion.position.step":  c.Motion.Position.Step,
		"motion.position.start": c.Motion.Position.Start,
		"motion.horizon.max":    c.Motion.Horizon.Max,
		"motion.horizon.step":   c.Motion.Horizon.Step,
		"motion.horizon.start":  c.Motion.Horizon.Start,
		"motion.depth.max":      c.Motion.Depth.Max,
		"motion.depth.step":     c.Motion.Depth.Step,
		"motion.depth.start":    c.Motion.Depth.Start,
		"audio.pulse":           c.Audio.Pulse,
		"audio.smoothing":       c.Audio.Smoothing,
	}
}
