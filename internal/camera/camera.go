// Package camera implements the orbit camera that circles the cube.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CubeHalf is half the edge length of the cube in world units.
const CubeHalf = 95.0

// Orbit limits and steps.
const (
	InitDistance   = 8.0 * CubeHalf
	MinDistance    = 6.0 * CubeHalf
	MaxDistance    = 20.0 * CubeHalf
	DistanceStep   = 10.0
	LatitudeStep   = 2.0
	MinLatitude    = -85.0
	MaxLatitude    = 85.0
	LongitudeStep  = 2.0
	ClipPlaneDist  = 2.5 * CubeHalf
	VerticalFOVDeg = 45.0
)

// Orbit is a camera on a sphere around the origin, always looking at it
// with +Y up. Angles are in degrees.
type Orbit struct {
	Latitude  float64
	Longitude float64
	Distance  float64
}

// New returns a camera in the initial position, straight in front of the
// cube.
func New() *Orbit {
	o := &Orbit{}
	o.Reset()
	return o
}

// Reset returns the camera to its initial position.
func (o *Orbit) Reset() {
	o.Latitude = 0
	o.Longitude = 0
	o.Distance = InitDistance
}

// MoveLongitude orbits left (negative steps) or right (positive steps).
func (o *Orbit) MoveLongitude(steps float64) {
	o.Longitude += steps * LongitudeStep
	if o.Longitude < -360 {
		o.Longitude += 360
	}
	if o.Longitude > 360 {
		o.Longitude -= 360
	}
}

// MoveLatitude orbits down (negative steps) or up (positive steps).
func (o *Orbit) MoveLatitude(steps float64) {
	o.Latitude = mgl64.Clamp(o.Latitude+steps*LatitudeStep, MinLatitude, MaxLatitude)
}

// Zoom moves closer (negative steps) or further (positive steps).
func (o *Orbit) Zoom(steps float64) {
	o.Distance = mgl64.Clamp(o.Distance+steps*DistanceStep, MinDistance, MaxDistance)
}

// Eye returns the camera position in world coordinates.
func (o *Orbit) Eye() mgl64.Vec3 {
	lat := mgl64.DegToRad(o.Latitude)
	lon := mgl64.DegToRad(o.Longitude)
	return mgl64.Vec3{
		o.Distance * math.Cos(lat) * math.Sin(lon),
		o.Distance * math.Sin(lat),
		o.Distance * math.Cos(lat) * math.Cos(lon),
	}
}

// View returns the world-to-camera matrix.
func (o *Orbit) View() mgl64.Mat4 {
	return mgl64.LookAtV(o.Eye(), mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for a viewport aspect ratio.
// The clip planes hug the cube so depth precision stays on it.
func (o *Orbit) Projection(aspect float64) mgl64.Mat4 {
	near := o.Distance - ClipPlaneDist
	far := o.Distance + ClipPlaneDist
	return mgl64.Perspective(mgl64.DegToRad(VerticalFOVDeg), aspect, near, far)
}

