package perspective

import (
	"fmt"
	"image/color"

	"github.com/iburimskiy/perspective-grid/internal/render"
	"golang.org/x/image/colornames"
)

const (
	DefaultLevels    = 10
	DefaultLineWidth = 1.0
)

// Grid draws the outlines of a projector's rectangles at integer depths
// 0..Levels-1.
type Grid struct {
	Projector *Projector
	Levels    int
	LineWidth float64
	Color     color.Color
}

// NewGrid returns a grid of DefaultLevels white one-pixel rectangles.
func NewGrid(p *Projector) *Grid {
	return &Grid{
		Projector: p,
		Levels:    DefaultLevels,
		LineWidth: DefaultLineWidth,
		Color:     colornames.White,
	}
}

// Mesh builds one batched mesh holding four edges per depth in the order
// top, right, bottom, left.
func (g *Grid) Mesh() (*render.Mesh, error) {
	b := render.NewMeshBuilder()
	for depth := 0; depth < g.Levels; depth++ {
		d := g.Projector.DimensionsAtDepth(float64(depth))

		topLeft := render.Point{X: d.Left, Y: d.Top}
		topRight := render.Point{X: d.Right, Y: d.Top}
		bottomLeft := render.Point{X: d.Left, Y: d.Bottom}
		bottomRight := render.Point{X: d.Right, Y: d.Bottom}

		edges := [4][2]render.Point{
			{topLeft, topRight},
			{topRight, bottomRight},
			{bottomLeft, bottomRight},
			{topLeft, bottomLeft},
		}
		for _, e := range edges {
			if err := b.Line(e, g.LineWidth, g.Color); err != nil {
				return nil, fmt.Errorf("perspective: grid depth %d: %w", depth, err)
			}
		}
	}
	return b.Build()
}

// Draw strokes the grid mesh onto s translated by dest.
func (g *Grid) Draw(s render.Surface, dest render.Point) error {
	m, err := g.Mesh()
	if err != nil {
		return err
	}
	return s.StrokeMesh(m, dest)
}
