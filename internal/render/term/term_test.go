package term

import (
	"image"
	"image/color"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"golang.org/x/image/vector"

	"github.com/SeamusWaldron/cubeview/internal/app"
	"github.com/SeamusWaldron/cubeview/internal/render"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a", []string{"a"}},
		{"q1", []string{"q", "1"}},
		{"\x1b[A\x1b[B", []string{app.KeyUp, app.KeyDown}},
		{"\x1b[C\x1b[D", []string{app.KeyRight, app.KeyLeft}},
		{"\x1b[5~s\x1b[6~", []string{app.KeyPageUp, "s", app.KeyPageDown}},
		{"\x1bOA", []string{app.KeyUp}},
		{"\x1b[1;5Cx", []string{"x"}},
		{"\x1b[", nil},
		{"\r\t", nil},
	}
	for _, tt := range tests {
		if got := parseKeys([]byte(tt.in)); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseKeys(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFillPolygon(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	red := color.NRGBA{255, 0, 0, 255}
	square := []mgl64.Vec2{{5, 5}, {15, 5}, {15, 15}, {5, 15}}
	fillPolygon(&vector.Rasterizer{}, img, square, red)

	filled := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			inside := x >= 5 && x < 15 && y >= 5 && y < 15
			on := img.NRGBAAt(x, y) == red
			if on {
				filled++
			}
			if inside != on {
				t.Errorf("pixel (%d,%d): filled=%v, want %v", x, y, on, inside)
			}
		}
	}
	if filled != 100 {
		t.Errorf("expected 100 pixels, got %d", filled)
	}
}

func TestFillPolygonClipsToImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	blue := color.NRGBA{0, 0, 255, 255}
	fillPolygon(&vector.Rasterizer{}, img, []mgl64.Vec2{{-50, -50}, {50, -50}, {50, 50}, {-50, 50}}, blue)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if img.NRGBAAt(x, y) != blue {
				t.Fatalf("pixel (%d,%d) not filled", x, y)
			}
		}
	}
}

func TestFillPolygonReusesRasterizer(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	red := color.NRGBA{255, 0, 0, 255}
	green := color.NRGBA{0, 255, 0, 255}

	var z vector.Rasterizer
	fillPolygon(&z, img, []mgl64.Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, red)
	fillPolygon(&z, img, []mgl64.Vec2{{10, 0}, {20, 0}, {20, 10}, {10, 10}}, green)

	if got := img.NRGBAAt(4, 4); got != red {
		t.Errorf("left half = %v, want red", got)
	}
	if got := img.NRGBAAt(15, 4); got != green {
		t.Errorf("right half = %v, want green", got)
	}
}

func TestRasterizeScene(t *testing.T) {
	a := app.New()
	pal := render.DefaultPalette()
	img := image.NewNRGBA(image.Rect(0, 0, 80, 60))
	rasterize(img, render.Build(a, pal, 80, 60))

	// From the initial camera the middle of the image is the Front center.
	if got := img.NRGBAAt(40, 30); got != nrgba(pal.Faces[1]) {
		t.Errorf("center pixel = %v, want front color", got)
	}
	if got := img.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner pixel should be untouched, got %v", got)
	}

	a.View.Wireframe = true
	wire := image.NewNRGBA(image.Rect(0, 0, 80, 60))
	rasterize(wire, render.Build(a, pal, 80, 60))
	if got := wire.NRGBAAt(40, 30); got.A != 0 {
		t.Errorf("wireframe should leave the sticker interior empty, got %v", got)
	}
}

func TestFrameDrawsNewMoveAtFirstFrame(t *testing.T) {
	a := app.New(app.WithLogger(zap.NewNop()), app.WithFrames(3))
	v := &Viewer{app: a, keys: app.DefaultKeymap()}

	v.frame([]byte("s"))
	if !a.Animating() || a.Anim.Frame() != 1 {
		t.Fatalf("expected F at frame 1, got animating=%v frame=%d", a.Animating(), a.Anim.Frame())
	}
	v.frame(nil)
	if a.Anim.Frame() != 2 {
		t.Errorf("expected frame 2, got %d", a.Anim.Frame())
	}
}
