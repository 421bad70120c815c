package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteSubImage *ebiten.Image

func whiteSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Screen is the ebiten implementation of Surface. Vertex buffers are reused
// across frames.
type Screen struct {
	img   *ebiten.Image
	batch strokeBatch
}

func NewScreen(img *ebiten.Image) *Screen {
	return &Screen{img: img}
}

// Reset points the screen at this frame's target image.
func (s *Screen) Reset(img *ebiten.Image) {
	s.img = img
}

func (s *Screen) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Screen) Clear(clr color.Color) error {
	s.img.Fill(clr)
	return nil
}

func (s *Screen) FillCircle(c Circle, clr color.Color, dest Point) error {
	if !c.valid() {
		return fmt.Errorf("%w: center %v radius %v", ErrInvalidCircle, c.Center, c.Radius)
	}
	center := c.Center.Add(dest)
	vector.DrawFilledCircle(s.img, float32(center.X), float32(center.Y), float32(c.Radius), clr, true)
	return nil
}

// StrokeMesh tessellates every line of m and submits them in as few
// DrawTriangles calls as the 16-bit index range allows.
func (s *Screen) StrokeMesh(m *Mesh, dest Point) error {
	if m == nil || len(m.lines) == 0 {
		return ErrEmptyMesh
	}
	src := whiteSource()
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.batch.stroke(m.lines, dest, func(vs []ebiten.Vertex, is []uint16) {
		s.img.DrawTriangles(vs, is, src, op)
	})
	return nil
}

// maxBatchVertices is the most vertices a uint16 index can address.
const maxBatchVertices = math.MaxUint16 + 1

// strokeBatch turns lines into triangle batches. Buffers are reused across
// frames.
type strokeBatch struct {
	vertices    []ebiten.Vertex
	indices     []uint16
	segVertices []ebiten.Vertex
	segIndices  []uint16
}

// stroke calls flush once per batch; no batch holds more than
// maxBatchVertices vertices.
func (b *strokeBatch) stroke(lines []Line, dest Point, flush func([]ebiten.Vertex, []uint16)) {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	for _, l := range lines {
		from, to := l.From.Add(dest), l.To.Add(dest)

		var path vector.Path
		path.MoveTo(float32(from.X), float32(from.Y))
		path.LineTo(float32(to.X), float32(to.Y))
		b.segVertices, b.segIndices = path.AppendVerticesAndIndicesForStroke(b.segVertices[:0], b.segIndices[:0], &vector.StrokeOptions{
			Width: float32(l.Width),
		})

		if len(b.vertices)+len(b.segVertices) > maxBatchVertices {
			flush(b.vertices, b.indices)
			b.vertices = b.vertices[:0]
			b.indices = b.indices[:0]
		}

		// DrawTriangles expects straight alpha.
		c := color.NRGBAModel.Convert(l.Color).(color.NRGBA)
		base := uint16(len(b.vertices))
		for _, v := range b.segVertices {
			v.SrcX, v.SrcY = 1, 1
			v.ColorR = float32(c.R) / 0xff
			v.ColorG = float32(c.G) / 0xff
			v.ColorB = float32(c.B) / 0xff
			v.ColorA = float32(c.A) / 0xff
			b.vertices = append(b.vertices, v)
		}
		for _, i := range b.segIndices {
			b.indices = append(b.indices, base+i)
		}
	}
	if len(b.indices) > 0 {
		flush(b.vertices, b.indices)
	}
}
