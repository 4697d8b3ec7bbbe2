package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/SeamusWaldron/cubeview/internal/render"
)

const (
	outlineWidth = 2
	axisWidth    = 3
)

// painter is what a scene is drawn onto.
type painter interface {
	FillPolygon(xp, yp []float32, clr color.RGBA)
	StrokePolygon(xp, yp []float32, width float32, clr color.RGBA)
	StrokeLine(x0, y0, x1, y1, width float32, clr color.RGBA)
}

// paint draws a scene back to front: stickers first, axes on top.
func paint(p painter, s render.Scene) {
	for _, poly := range s.Polygons {
		xs, ys := poly.XY()
		if s.Wireframe {
			p.StrokePolygon(xs, ys, outlineWidth, poly.Color)
			continue
		}
		p.FillPolygon(xs, ys, poly.Color)
	}
	for _, seg := range s.Axes {
		p.StrokeLine(float32(seg.From[0]), float32(seg.From[1]), float32(seg.To[0]), float32(seg.To[1]), axisWidth, seg.Color)
	}
}

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// screenPainter draws onto an ebiten image.
type screenPainter struct {
	screen *ebiten.Image
}

func colorScale(clr color.RGBA) (r, g, b, a float32) {
	return float32(clr.R) / 255, float32(clr.G) / 255, float32(clr.B) / 255, float32(clr.A) / 255
}

func (p screenPainter) FillPolygon(xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}

	indices := make([]uint16, 0, (len(xp)-2)*3)
	for i := 2; i < len(xp); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	cr, cg, cb, ca := colorScale(clr)
	vertices := make([]ebiten.Vertex, len(xp))
	for i := range xp {
		vertices[i] = ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	p.screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (p screenPainter) StrokePolygon(xp, yp []float32, width float32, clr color.RGBA) {
	if len(xp) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: width})
	cr, cg, cb, ca := colorScale(clr)
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	p.screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (p screenPainter) StrokeLine(x0, y0, x1, y1, width float32, clr color.RGBA) {
	vector.StrokeLine(p.screen, x0, y0, x1, y1, width, clr, true)
}
