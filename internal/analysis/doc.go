// Package analysis characterizes wavefront runs after the fact.
//
//   - [LyapunovExponent]: largest exponent of the field flow from a point
//   - [LyapunovSpectrum]: one estimate per axis perturbation
//   - [PowerSpectrum], [DominantPeriod]: periodicity of a metric series
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates nearby points separate
// exponentially under the field:
//
//	lambda := analysis.LyapunovExponent(integ, params, p0, dt, steps, 1e-8)
//	if lambda > 0 {
//	    // the field is chaotic around p0
//	}
package analysis
