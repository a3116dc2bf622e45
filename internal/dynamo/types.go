package dynamo

import "math"

// Vec3 is a point or displacement in simulation space.
type Vec3 struct {
	X, Y, Z float64
}

// Origin is the world origin.
var Origin = Vec3{}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Length() float64      { return math.Sqrt(v.Dot(v)) }

func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Axis returns the component at index 0, 1 or 2 of the [X, Y, Z] shuffle.
func (v Vec3) Axis(i int) float64 {
	return [3]float64{v.X, v.Y, v.Z}[i]
}

// Clone returns an independent copy of pts.
func Clone(pts []Vec3) []Vec3 {
	c := make([]Vec3, len(pts))
	copy(c, pts)
	return c
}
