package integrators

import (
	"github.com/san-kum/wavefront/internal/dynamo"
	"github.com/san-kum/wavefront/internal/field"
)

// RK4 is the classic fourth-order Runge-Kutta step, applied to each point
// independently. The field has no explicit time dependence.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(f Field, points []dynamo.Vec3, dt float64, params field.Params) []dynamo.Vec3 {
	result := make([]dynamo.Vec3, len(points))
	half := dt * 0.5
	dt6 := dt / 6.0
	for i, p := range points {
		k1 := f(p, params)
		k2 := f(p.Add(k1.Scale(half)), params)
		k3 := f(p.Add(k2.Scale(half)), params)
		k4 := f(p.Add(k3.Scale(dt)), params)
		sum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
		result[i] = p.Add(sum.Scale(dt6))
	}
	return result
}
