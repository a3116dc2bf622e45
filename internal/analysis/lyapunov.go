package analysis

import (
	"math"

	"github.com/san-kum/wavefront/internal/dynamo"
	"github.com/san-kum/wavefront/internal/field"
	"github.com/san-kum/wavefront/internal/integrators"
)

// LyapunovExponent estimates the largest Lyapunov exponent of the field
// flow from p0 by trajectory separation, renormalizing the companion
// trajectory to distance d0 after every step. It returns NaN when either
// trajectory leaves the finite domain.
//
// Algorithm:
// 1. Run two nearby trajectories
// 2. Measure their divergence each step
// 3. λ ≈ Σ ln(|δ|/δ0) / (steps·dt)
func LyapunovExponent(
	integ integrators.Integrator,
	params field.Params,
	p0 dynamo.Vec3,
	dt float64,
	steps int,
	d0 float64,
) float64 {
	return separation(integ, field.Evaluate, params, p0, p0.Add(dynamo.Vec3{X: d0}), dt, steps, d0)
}

// LyapunovSpectrum perturbs each axis of p0 in turn.
func LyapunovSpectrum(
	integ integrators.Integrator,
	params field.Params,
	p0 dynamo.Vec3,
	dt float64,
	steps int,
	d0 float64,
) [field.NumAxes]float64 {
	var spectrum [field.NumAxes]float64
	offsets := [field.NumAxes]dynamo.Vec3{{X: d0}, {Y: d0}, {Z: d0}}
	for i, off := range offsets {
		spectrum[i] = separation(integ, field.Evaluate, params, p0, p0.Add(off), dt, steps, d0)
	}
	return spectrum
}

func separation(integ integrators.Integrator, f integrators.Field, params field.Params, p, q dynamo.Vec3, dt float64, steps int, d0 float64) float64 {
	if steps <= 0 || dt == 0 || d0 <= 0 {
		return 0
	}
	if integ == nil {
		integ = integrators.NewEuler()
	}

	pair := []dynamo.Vec3{p, q}
	sumLog := 0.0
	count := 0
	for i := 0; i < steps; i++ {
		pair = integ.Step(f, pair, dt, params)
		if !pair[0].IsFinite() || !pair[1].IsFinite() {
			return math.NaN()
		}

		delta := pair[1].Sub(pair[0])
		sep := delta.Length()
		if sep == 0 {
			// merged; restart the companion
			pair[1] = pair[0].Add(dynamo.Vec3{X: d0})
			continue
		}
		sumLog += math.Log(sep / d0)
		count++
		pair[1] = pair[0].Add(delta.Scale(d0 / sep))
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * math.Abs(dt))
}
