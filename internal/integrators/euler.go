package integrators

import (
	"github.com/san-kum/wavefront/internal/dynamo"
	"github.com/san-kum/wavefront/internal/field"
)

// Euler is the explicit first-order step next = p + dt*f(p).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(f Field, points []dynamo.Vec3, dt float64, params field.Params) []dynamo.Vec3 {
	result := make([]dynamo.Vec3, len(points))
	for i, p := range points {
		result[i] = p.Add(f(p, params).Scale(dt))
	}
	return result
}
