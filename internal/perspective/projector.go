// Package perspective projects a rectangular viewport onto nested
// rectangles that recede toward a single vanishing point.
package perspective

import "github.com/iburimskiy/perspective-grid/internal/render"

// DefaultZeroDepth replaces a depth of exactly zero, where the projection has
// no finite value.
const DefaultZeroDepth = 0.01

// Projection is the on-screen footprint of the viewport at one depth.
type Projection struct {
	Top, Bottom, Left, Right float64
	// Scale is the attenuation applied to one unit of distance at this depth.
	Scale float64
}

// Rect returns the projected rectangle with Min at the top-left corner.
func (p Projection) Rect() render.Rect {
	return render.Rect{
		Min: render.Point{X: p.Left, Y: p.Top},
		Max: render.Point{X: p.Right, Y: p.Bottom},
	}
}

// Center returns the midpoint of the projected rectangle.
func (p Projection) Center() render.Point {
	return p.Rect().Center()
}

// Projector maps depth levels to projected rectangles. The viewport size is
// fixed at construction; everything else may change between queries.
type Projector struct {
	x, y          float64
	centerX       float64
	centerY       float64
	width, height float64
	scale         float64
	zeroDepth     float64
}

// NewProjector returns a projector for a width x height viewport with the
// vanishing point at the bottom centre.
func NewProjector(width, height float64) *Projector {
	return &Projector{
		width:     width,
		height:    height,
		centerX:   width / 2,
		centerY:   height,
		scale:     1,
		zeroDepth: DefaultZeroDepth,
	}
}

// SetPosition sets the screen offset added to every projected edge.
func (p *Projector) SetPosition(x, y float64) *Projector {
	p.x, p.y = x, y
	return p
}

// SetVanishingPoint moves the point every projected edge converges on.
func (p *Projector) SetVanishingPoint(x, y float64) *Projector {
	p.centerX, p.centerY = x, y
	return p
}

// SetScale sets the zoom factor. Larger values pull every edge toward the
// vanishing point.
func (p *Projector) SetScale(scale float64) *Projector {
	p.scale = scale
	return p
}

// SetZeroDepth sets the depth used in place of a level of exactly 0.
func (p *Projector) SetZeroDepth(depth float64) *Projector {
	p.zeroDepth = depth
	return p
}

// VanishingPoint returns the current convergence point.
func (p *Projector) VanishingPoint() (float64, float64) {
	return p.centerX, p.centerY
}

// Size returns the viewport size given at construction.
func (p *Projector) Size() (float64, float64) {
	return p.width, p.height
}

// DimensionsAtDepth projects the viewport at the given depth level. Level 0 is
// the horizon plane; larger levels are closer to the viewer.
func (p *Projector) DimensionsAtDepth(level float64) Projection {
	depth := level
	if depth == 0 {
		depth = p.zeroDepth
	}
	project := func(distance float64) float64 {
		return distance / (depth * p.scale)
	}

	cx, cy := p.centerX, p.centerY
	toTop := cy
	toBottom := p.height - cy
	toLeft := cx
	toRight := p.width - cx

	top := cy - project(toTop)
	bottom := cy + project(toBottom)
	left := cx - project(toLeft)
	right := cx + project(toRight)

	return Projection{
		Top:    top + p.y,
		Bottom: bottom + p.y,
		Left:   left + p.x,
		Right:  right + p.x,
		Scale:  project(1),
	}
}
