package camera

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/wavefront/internal/dynamo"
)

const (
	DefaultScale       = 50.0
	DefaultOrbitRadius = 10.0
	DefaultOrbitRate   = 0.004
	DefaultOrbitHeight = 0.5
)

// Projection selects how 3D points are flattened.
type Projection int

const (
	Orthographic Projection = iota
	Perspective
)

func (p Projection) String() string {
	if p == Perspective {
		return "perspective"
	}
	return "orthographic"
}

// ParseProjection accepts "orthographic"/"ortho" and "perspective"/"persp".
func ParseProjection(s string) (Projection, error) {
	switch strings.ToLower(s) {
	case "orthographic", "ortho", "":
		return Orthographic, nil
	case "perspective", "persp":
		return Perspective, nil
	}
	return Orthographic, fmt.Errorf("%w: unknown projection %q", dynamo.ErrInvalidConfig, s)
}

// Orbit is the circular path of the perspective camera around the origin.
type Orbit struct {
	Radius float64 `yaml:"radius"`
	Rate   float64 `yaml:"rate"`
	Height float64 `yaml:"height"`
}

func DefaultOrbit() Orbit {
	return Orbit{Radius: DefaultOrbitRadius, Rate: DefaultOrbitRate, Height: DefaultOrbitHeight}
}

// Viewport is the drawable area in target units (pixels, braille dots).
type Viewport struct {
	Width, Height float64
}

func (v Viewport) Center() (float64, float64) { return v.Width / 2, v.Height / 2 }

var up = mgl64.Vec3{0, 1, 0}

// Camera maps simulation space to 2D plot coordinates.
type Camera struct {
	Position   dynamo.Vec3
	Direction  dynamo.Vec3
	Scale      float64
	Projection Projection
	Orbit      Orbit
}

func New(scale float64, proj Projection, orbit Orbit) *Camera {
	return &Camera{
		Position:   dynamo.Vec3{Z: -10},
		Direction:  dynamo.Vec3{Z: 1},
		Scale:      scale,
		Projection: proj,
		Orbit:      orbit,
	}
}

// Update moves a perspective camera along its orbit for the given elapsed
// simulation time. Orthographic cameras stay put.
func (c *Camera) Update(elapsed float64) {
	if c.Projection != Perspective {
		return
	}
	theta := c.Orbit.Rate * elapsed
	c.Position = dynamo.Vec3{
		X: c.Orbit.Radius * math.Cos(theta),
		Y: c.Orbit.Height,
		Z: c.Orbit.Radius * math.Sin(theta),
	}
	c.Direction = dynamo.Origin.Sub(c.Position).Normalize()
}

// Toggle switches between the two projection modes.
func (c *Camera) Toggle() {
	if c.Projection == Orthographic {
		c.Projection = Perspective
	} else {
		c.Projection = Orthographic
	}
}

// View returns the look-at matrix from Position toward the origin.
func (c *Camera) View() mgl64.Mat4 {
	eye := mgl64.Vec3{c.Position.X, c.Position.Y, c.Position.Z}
	return mgl64.LookAtV(eye, mgl64.Vec3{}, up)
}

// Project returns the 2D plot coordinates of p before scaling.
func (c *Camera) Project(p dynamo.Vec3) (float64, float64) {
	if c.Projection == Orthographic {
		return p.X, p.Y
	}
	v := c.View().Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return v.X(), v.Y()
}

// ToScreen projects p and maps it into the viewport.
func (c *Camera) ToScreen(p dynamo.Vec3, vp Viewport) (float64, float64) {
	x, y := c.Project(p)
	cx, cy := vp.Center()
	return cx + x*c.Scale, cy + y*c.Scale
}

// Hint describes what the projection toggle will switch to.
func (c *Camera) Hint() string {
	if c.Projection == Orthographic {
		return "Tab: Perspective View"
	}
	return "Tab: Orthographic View"
}
