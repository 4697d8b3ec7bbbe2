package term

import (
	"image"
	"image/color"

	"fortio.org/terminal/ansipixels"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/vector"

	"github.com/SeamusWaldron/cubeview/internal/render"
)

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// rasterize paints a scene into img, back to front.
func rasterize(img *image.NRGBA, s render.Scene) {
	var z vector.Rasterizer
	for _, poly := range s.Polygons {
		if s.Wireframe {
			outline(img, poly.Points[:], nrgba(poly.Color))
			continue
		}
		fillPolygon(&z, img, poly.Points[:], nrgba(poly.Color))
	}
	for _, seg := range s.Axes {
		ansipixels.DrawLine(img, seg.From[0], seg.From[1], seg.To[0], seg.To[1], nrgba(seg.Color))
	}
}

func outline(img *image.NRGBA, pts []mgl64.Vec2, col color.NRGBA) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		ansipixels.DrawLine(img, a[0], a[1], b[0], b[1], col)
	}
}

// fillPolygon fills a polygon into img with an anti-aliased vector pass.
// z is reset to the image size and may be reused across calls.
func fillPolygon(z *vector.Rasterizer, img *image.NRGBA, pts []mgl64.Vec2, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	b := img.Rect
	z.Reset(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0][0])-float32(b.Min.X), float32(pts[0][1])-float32(b.Min.Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0])-float32(b.Min.X), float32(p[1])-float32(b.Min.Y))
	}
	z.ClosePath()
	z.Draw(img, b, image.NewUniform(col), b.Min)
}
