package render

import "image/color"

// Surface is the host-side target that primitives are rasterized onto.
// Every call may fail; callers abort the frame on the first error.
type Surface interface {
	Size() (width, height float64)
	Clear(clr color.Color) error
	FillCircle(c Circle, clr color.Color, dest Point) error
	StrokeMesh(m *Mesh, dest Point) error
}

// Drawable is anything that can put itself on a Surface at a translation.
type Drawable interface {
	Draw(s Surface, dest Point) error
}

// Disc is a filled circle drawable.
type Disc struct {
	Circle
	Color color.Color
}

func (d Disc) Draw(s Surface, dest Point) error {
	return s.FillCircle(d.Circle, d.Color, dest)
}

// DrawAll draws ds in order and stops at the first failure.
func DrawAll(s Surface, dest Point, ds ...Drawable) error {
	for _, d := range ds {
		if err := d.Draw(s, dest); err != nil {
			return err
		}
	}
	return nil
}
