package game

import (
	"fmt"

	"github.com/iburimskiy/perspective-grid/internal/config"
	"github.com/iburimskiy/perspective-grid/internal/perspective"
	"github.com/iburimskiy/perspective-grid/internal/render"
)

// State is a snapshot of the animated values.
type State struct {
	Position float64
	Horizon  float64
	Depth    float64
}

// Frame is everything needed to draw one frame.
type Frame struct {
	Projector  *perspective.Projector
	Projection perspective.Projection
	Circle     render.Circle
}

// Driver owns the animation state: the vanishing point bounces across the
// viewport while the depth cursor moves toward the viewer and wraps.
type Driver struct {
	cfg      config.Config
	position Bouncer
	horizon  Bouncer
	depth    Wrapper
	pulse    float64
}

func NewDriver(cfg config.Config) *Driver {
	m := cfg.Motion
	return &Driver{
		cfg:      cfg,
		position: NewBouncer(m.Position.Start, m.Position.Step, 0, m.Position.Max),
		horizon:  NewBouncer(m.Horizon.Start, m.Horizon.Step, 0, m.Horizon.Max),
		depth:    NewWrapper(m.Depth.Start, m.Depth.Step, m.Depth.Max),
	}
}

// Configure swaps in new settings while keeping the current animated values.
func (d *Driver) Configure(cfg config.Config) {
	m := cfg.Motion
	d.cfg = cfg
	d.position.Step, d.position.Max = m.Position.Step, m.Position.Max
	d.horizon.Step, d.horizon.Max = m.Horizon.Step, m.Horizon.Max
	d.depth.Step, d.depth.Period = m.Depth.Step, m.Depth.Max
	if d.depth.Value >= d.depth.Period {
		d.depth.Value = 0
	}
}

// SetPulse sets the extra fraction of radius added to the circle.
func (d *Driver) SetPulse(p float64) {
	d.pulse = p
}

func (d *Driver) State() State {
	return State{
		Position: d.position.Value,
		Horizon:  d.horizon.Value,
		Depth:    d.depth.Value,
	}
}

// Update advances the animation by one tick.
func (d *Driver) Update() {
	d.position.Update()
	d.horizon.Update()
	d.depth.Update()
}

// Frame projects the current state into a width x height viewport.
func (d *Driver) Frame(width, height float64) Frame {
	p := perspective.NewProjector(width, height).
		SetVanishingPoint(d.position.Value, d.horizon.Value).
		SetScale(d.cfg.Grid.Scale).
		SetZeroDepth(d.cfg.Grid.ZeroDepth)

	dims := p.DimensionsAtDepth(d.depth.Value)
	return Frame{
		Projector:  p,
		Projection: dims,
		Circle: render.Circle{
			Center: dims.Rect().Center(),
			Radius: d.cfg.Circle.Radius * dims.Scale * (1 + d.pulse),
		},
	}
}

// Draw clears s and draws the circle with the grid on top. It stops at the
// first failure; driver state is never touched.
func (d *Driver) Draw(s render.Surface) error {
	w, h := s.Size()
	f := d.Frame(w, h)

	if err := s.Clear(d.cfg.Background); err != nil {
		return fmt.Errorf("game: clear: %w", err)
	}

	grid := perspective.NewGrid(f.Projector)
	grid.Levels = d.cfg.Grid.Levels
	grid.LineWidth = d.cfg.Grid.LineWidth
	grid.Color = d.cfg.Grid.Color

	disc := render.Disc{Circle: f.Circle, Color: d.cfg.Circle.Color}
	if err := render.DrawAll(s, render.Point{}, disc, grid); err != nil {
		return fmt.Errorf("game: draw: %w", err)
	}
	return nil
}
