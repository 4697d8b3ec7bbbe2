package render

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/cubeview/internal/app"
	"github.com/SeamusWaldron/cubeview/internal/camera"
	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// Polygon is a projected sticker in pixel coordinates, y down.
type Polygon struct {
	Face   cube.Face
	Square int
	Points [4]mgl64.Vec2
	Depth  float64 // mean NDC depth, larger is farther
	Color  color.RGBA
}

// XY returns the polygon's coordinates split by axis, as float32.
func (p Polygon) XY() (xs, ys []float32) {
	xs = make([]float32, len(p.Points))
	ys = make([]float32, len(p.Points))
	for i, pt := range p.Points {
		xs[i], ys[i] = float32(pt[0]), float32(pt[1])
	}
	return xs, ys
}

// Segment is a projected line in pixel coordinates.
type Segment struct {
	From, To mgl64.Vec2
	Color    color.RGBA
}

// Projector maps world points to a viewport through an orbit camera.
type Projector struct {
	mvp           mgl64.Mat4
	width, height float64
}

// NewProjector prepares the camera matrices for a viewport in pixels.
func NewProjector(cam *camera.Orbit, width, height int) *Projector {
	w, h := float64(width), float64(height)
	if h <= 0 {
		h = 1
	}
	return &Projector{
		mvp:    cam.Projection(w / h).Mul4(cam.View()),
		width:  w,
		height: h,
	}
}

// ndc returns normalized device coordinates; ok is false for points behind
// the eye.
func (p *Projector) ndc(v mgl64.Vec3) (mgl64.Vec3, bool) {
	clip := p.mvp.Mul4x1(v.Vec4(1))
	if clip[3] <= 0 {
		return mgl64.Vec3{}, false
	}
	return clip.Vec3().Mul(1 / clip[3]), true
}

func (p *Projector) toScreen(n mgl64.Vec3) mgl64.Vec2 {
	return mgl64.Vec2{
		(n[0] + 1) / 2 * p.width,
		(1 - n[1]) / 2 * p.height,
	}
}

// Point projects a world point to pixels.
func (p *Projector) Point(v mgl64.Vec3) (mgl64.Vec2, bool) {
	n, ok := p.ndc(v)
	if !ok {
		return mgl64.Vec2{}, false
	}
	return p.toScreen(n), true
}

// Quads projects stickers, drops back faces when cull is set and sorts the
// result far to near for painting.
func (p *Projector) Quads(quads []Quad, pal Palette, override, cull bool) []Polygon {
	polys := make([]Polygon, 0, len(quads))
	for _, q := range quads {
		var ndc [4]mgl64.Vec3
		visible := true
		for i, c := range q.Corners {
			n, ok := p.ndc(c)
			if !ok {
				visible = false
				break
			}
			ndc[i] = n
		}
		if !visible {
			continue
		}
		if cull && signedArea(ndc) <= 0 {
			continue
		}

		poly := Polygon{Face: q.Face, Square: q.Square, Color: pal.Color(q.Color)}
		if override {
			poly.Color = pal.Override
		}
		for i, n := range ndc {
			poly.Points[i] = p.toScreen(n)
			poly.Depth += n[2] / 4
		}
		polys = append(polys, poly)
	}

	sort.SliceStable(polys, func(i, j int) bool {
		return polys[i].Depth > polys[j].Depth
	})
	return polys
}

// signedArea is positive for counter-clockwise winding in NDC, which is a
// front face.
func signedArea(pts [4]mgl64.Vec3) float64 {
	area := 0.0
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		area += a[0]*b[1] - b[0]*a[1]
	}
	return area / 2
}

// Axes projects the x (red), y (green) and z (blue) axes.
func (p *Projector) Axes() []Segment {
	axes := []struct {
		dir mgl64.Vec3
		clr color.RGBA
	}{
		{mgl64.Vec3{AxisLength, 0, 0}, color.RGBA{255, 0, 0, 255}},
		{mgl64.Vec3{0, AxisLength, 0}, color.RGBA{0, 255, 0, 255}},
		{mgl64.Vec3{0, 0, AxisLength}, color.RGBA{0, 0, 255, 255}},
	}

	origin, ok := p.Point(mgl64.Vec3{})
	if !ok {
		return nil
	}
	segs := make([]Segment, 0, len(axes))
	for _, ax := range axes {
		end, ok := p.Point(ax.dir)
		if !ok {
			continue
		}
		segs = append(segs, Segment{From: origin, To: end, Color: ax.clr})
	}
	return segs
}

// Scene is everything a front-end needs for one frame.
type Scene struct {
	Polygons  []Polygon
	Axes      []Segment
	Wireframe bool
}

// Build renders the app state for a viewport.
func Build(a *app.App, pal Palette, width, height int) Scene {
	lift := 0.0
	if a.View.ColorOverride {
		lift = OverrideLift
	}
	p := NewProjector(a.Camera, width, height)

	s := Scene{
		Polygons:  p.Quads(Stickers(a.Cube, a.Anim, lift), pal, a.View.ColorOverride, a.View.BackfaceCulling),
		Wireframe: a.View.Wireframe,
	}
	if a.View.Axes {
		s.Axes = p.Axes()
	}
	return s
}
