package render

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	ErrEmptyMesh      = errors.New("render: mesh has no lines")
	ErrDegenerateLine = errors.New("render: degenerate line")
	ErrInvalidCircle  = errors.New("render: invalid circle")
)

// Line is one stroked segment of a Mesh.
type Line struct {
	Segment
	Width float64
	Color color.Color
}

// Mesh is an immutable batch of lines drawn with a single call.
type Mesh struct {
	lines []Line
}

// Lines returns the lines in the order they were added.
func (m *Mesh) Lines() []Line {
	return m.lines
}

// MeshBuilder accumulates lines for a Mesh.
type MeshBuilder struct {
	lines []Line
}

func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{}
}

// Line appends the segment pts[0]-pts[1]. Points must be finite and the width
// positive.
func (b *MeshBuilder) Line(pts [2]Point, width float64, clr color.Color) error {
	if !pts[0].finite() || !pts[1].finite() {
		return fmt.Errorf("%w: non-finite point %v-%v", ErrDegenerateLine, pts[0], pts[1])
	}
	if !(width > 0) {
		return fmt.Errorf("%w: width %v", ErrDegenerateLine, width)
	}
	if clr == nil {
		clr = color.White
	}
	b.lines = append(b.lines, Line{
		Segment: Segment{From: pts[0], To: pts[1]},
		Width:   width,
		Color:   clr,
	})
	return nil
}

// Build returns the accumulated mesh. The builder can keep being used
// afterwards without affecting the returned mesh.
func (b *MeshBuilder) Build() (*Mesh, error) {
	if len(b.lines) == 0 {
		return nil, ErrEmptyMesh
	}
	lines := make([]Line, len(b.lines))
	copy(lines, b.lines)
	return &Mesh{lines: lines}, nil
}
