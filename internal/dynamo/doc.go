// Package dynamo provides the core value types shared by the wavefront
// simulation packages.
//
// The package defines:
//
//   - [Vec3]: the single 3-component value used for both positions and
//     displacements
//   - sentinel errors returned by configuration and construction paths
//
// # Example
//
//	p := dynamo.Vec3{X: 1, Y: 0, Z: 0}
//	next := p.Add(v.Scale(dt))
//
// # Thread Safety
//
// Vec3 is a plain value; nothing in this package holds shared state.
package dynamo
