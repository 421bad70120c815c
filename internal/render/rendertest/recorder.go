// Package rendertest provides a render.Surface that records draw calls
// instead of rasterizing them.
package rendertest

import (
	"image/color"

	"github.com/iburimskiy/perspective-grid/internal/render"
)

const (
	OpClear  = "clear"
	OpCircle = "circle"
	OpMesh   = "mesh"
)

type Call struct {
	Op     string
	Color  color.Color
	Circle render.Circle
	Mesh   *render.Mesh
	Dest   render.Point
}

// Recorder records successful calls. When FailOn names an operation, that
// operation returns Err and is not recorded.
type Recorder struct {
	Width, Height float64
	FailOn        string
	Err           error
	Calls         []Call
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) {
	return r.Width, r.Height
}

func (r *Recorder) Clear(clr color.Color) error {
	if r.FailOn == OpClear {
		return r.Err
	}
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: clr})
	return nil
}

func (r *Recorder) FillCircle(c render.Circle, clr color.Color, dest render.Point) error {
	if r.FailOn == OpCircle {
		return r.Err
	}
	r.Calls = append(r.Calls, Call{Op: OpCircle, Circle: c, Color: clr, Dest: dest})
	return nil
}

func (r *Recorder) StrokeMesh(m *render.Mesh, dest render.Point) error {
	if r.FailOn == OpMesh {
		return r.Err
	}
	r.Calls = append(r.Calls, Call{Op: OpMesh, Mesh: m, Dest: dest})
	return nil
}

// Ops lists the recorded operation names in order.
func (r *Recorder) Ops() []string {
	ops := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		ops = append(ops, c.Op)
	}
	return ops
}
