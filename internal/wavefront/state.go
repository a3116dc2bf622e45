package wavefront

import (
	"math"

	"github.com/san-kum/wavefront/internal/dynamo"
	"github.com/san-kum/wavefront/internal/field"
	"github.com/san-kum/wavefront/internal/integrators"
)

// Layout describes the initial ring of a wavefront.
type Layout struct {
	Offset float64 `yaml:"offset"`
	Radius float64 `yaml:"radius"`
	Count  int     `yaml:"count"`
}

// Seed lays out 2*count-1 points on a helix of the given radius. Point i
// (1-based) sits at angle offset + i/count*pi, with z ramping linearly
// from -radius to just under +radius.
func Seed(offset, radius float64, count int) []dynamo.Vec3 {
	if count <= 0 {
		return []dynamo.Vec3{}
	}
	n := float64(count)
	points := make([]dynamo.Vec3, 0, 2*count-1)
	for i := 1; i < 2*count; i++ {
		fi := float64(i)
		theta := offset + (fi/n)*math.Pi
		points = append(points, dynamo.Vec3{
			X: radius * math.Cos(theta),
			Y: radius * math.Sin(theta),
			Z: 2*fi/n*radius - radius,
		})
	}
	return points
}

// State owns the current and previous positions of a wavefront. Index i of
// Current and Previous refer to the same point.
type State struct {
	Current  []dynamo.Vec3
	Previous []dynamo.Vec3

	layout     Layout
	integrator integrators.Integrator
}

// New returns a freshly seeded State.
func New(layout Layout, integ integrators.Integrator) *State {
	if integ == nil {
		integ = integrators.NewEuler()
	}
	s := &State{layout: layout, integrator: integ}
	s.Reset()
	return s
}

func (s *State) Len() int { return len(s.Current) }

// Reset reseeds the wavefront; the first frame after a reset draws
// zero-length velocity segments.
func (s *State) Reset() {
	s.Current = Seed(s.layout.Offset, s.layout.Radius, s.layout.Count)
	s.Previous = dynamo.Clone(s.Current)
}

// Advance moves Current one integration step through the field.
func (s *State) Advance(dt float64, params field.Params) {
	s.Current = s.integrator.Step(field.Evaluate, s.Current, dt, params)
}

// Commit makes the current positions the trailing buffer for the next frame.
func (s *State) Commit() {
	s.Previous = dynamo.Clone(s.Current)
}
