// Package render turns the viewer state into screen-space polygons and line
// segments. Front-ends only fill and stroke what it returns.
package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/cubeview/internal/anim"
	"github.com/SeamusWaldron/cubeview/internal/camera"
	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// Sticker layout in world units.
const (
	StickerHalf    = 30.0
	StickerSpacing = 2*StickerHalf + 5.0
	OverrideLift   = 0.05 * camera.CubeHalf
	AxisLength     = 2 * camera.CubeHalf
)

// faceRotations carry the Front face (normal +z) to each face.
var faceRotations = [cube.NumFaces]mgl64.Mat4{
	cube.Up:    mgl64.HomogRotate3DX(mgl64.DegToRad(-90)),
	cube.Front: mgl64.Ident4(),
	cube.Right: mgl64.HomogRotate3DY(mgl64.DegToRad(90)),
	cube.Back:  mgl64.HomogRotate3DY(mgl64.DegToRad(180)),
	cube.Left:  mgl64.HomogRotate3DY(mgl64.DegToRad(-90)),
	cube.Down:  mgl64.HomogRotate3DX(mgl64.DegToRad(90)),
}

// targetAxes are the outward axes moves turn about.
var targetAxes = [cube.NumTargets]mgl64.Vec3{
	cube.TargetU: {0, 1, 0},
	cube.TargetF: {0, 0, 1},
	cube.TargetR: {1, 0, 0},
	cube.TargetB: {0, 0, -1},
	cube.TargetL: {-1, 0, 0},
	cube.TargetD: {0, -1, 0},
	cube.TargetX: {1, 0, 0},
	cube.TargetY: {0, 1, 0},
}

// TargetAxis returns the world axis a move target turns about. A positive
// angle is counter-clockwise seen from the end the axis points to.
func TargetAxis(t cube.Target) mgl64.Vec3 {
	return targetAxes[t]
}

// squareOffset returns the position of a square on the Front face plane.
func squareOffset(square int) (x, y float64) {
	col, row := square%3, square/3
	return float64(col-1) * StickerSpacing, float64(1-row) * StickerSpacing
}

// StickerTransform places a unit sticker (in the z=0 plane, facing +z) on
// its face. lift raises it above the cube surface.
func StickerTransform(face cube.Face, square int, lift float64) mgl64.Mat4 {
	x, y := squareOffset(square)
	return faceRotations[face].Mul4(mgl64.Translate3D(x, y, camera.CubeHalf+lift))
}

// StickerCenter returns the resting world position of a sticker's center.
func StickerCenter(face cube.Face, square int) mgl64.Vec3 {
	return mgl64.TransformCoordinate(mgl64.Vec3{}, StickerTransform(face, square, 0))
}

// Turn returns the rotation for a move target at angle degrees.
func Turn(t cube.Target, angle float64) mgl64.Mat4 {
	return mgl64.HomogRotate3D(mgl64.DegToRad(angle), TargetAxis(t))
}

var stickerCorners = [4]mgl64.Vec3{
	{-StickerHalf, -StickerHalf, 0},
	{StickerHalf, -StickerHalf, 0},
	{StickerHalf, StickerHalf, 0},
	{-StickerHalf, StickerHalf, 0},
}

// Quad is one sticker in world space. Corners wind counter-clockwise seen
// from outside the cube.
type Quad struct {
	Face    cube.Face
	Square  int
	Corners [4]mgl64.Vec3
	Color   cube.Color
}

// Center returns the mean of the corners.
func (q Quad) Center() mgl64.Vec3 {
	var c mgl64.Vec3
	for _, p := range q.Corners {
		c = c.Add(p)
	}
	return c.Mul(0.25)
}

// Stickers returns the 54 sticker quads. Stickers in the slice of the
// animating move are turned by the animation's current angle; everything
// else is at rest. lift is added to every sticker's height.
func Stickers(c *cube.Cube, a *anim.Animation, lift float64) []Quad {
	var turn mgl64.Mat4
	turning := a != nil && a.Active()
	if turning {
		turn = Turn(a.Move().Target, a.Angle())
	}

	quads := make([]Quad, 0, cube.NumStickers)
	for _, face := range cube.Faces {
		for square := 0; square < cube.NumSquares; square++ {
			m := StickerTransform(face, square, lift)
			if turning && a.Affected(face, square) {
				m = turn.Mul4(m)
			}
			q := Quad{Face: face, Square: square, Color: c.Stickers[face][square]}
			for i, p := range stickerCorners {
				q.Corners[i] = mgl64.TransformCoordinate(p, m)
			}
			quads = append(quads, q)
		}
	}
	return quads
}
