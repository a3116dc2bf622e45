package field

import (
	"math"

	"github.com/san-kum/wavefront/internal/dynamo"
)

// Evaluate returns the displacement of the field at pos. It never fails:
// near-zero denominators yield non-finite components, which are returned
// as they are.
func Evaluate(pos dynamo.Vec3, params Params) dynamo.Vec3 {
	s1 := pos.Axis(params.A1)
	s2 := pos.Axis(params.A2)
	s3 := pos.Axis(params.A3)
	x, z := pos.X, pos.Z

	i := params.Q * math.Cos(s3/(s2+params.P*(s1+params.Q)*math.Pi+z)*math.Pi)
	j := params.R * math.Sin(s2*math.Cos(math.Pi*x)/(s2+params.R*-(x+params.S))*math.Pi+x)
	k := params.W * math.Sin(s1/(s2+params.V/(s3-s2+params.W))*math.Pi+s1)

	return dynamo.Vec3{X: i, Y: j, Z: k}
}
