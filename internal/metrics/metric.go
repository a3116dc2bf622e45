package metrics

import "github.com/san-kum/wavefront/internal/dynamo"

// Names of the standard metrics, used as keys of status and result maps.
const (
	SpreadName   = "spread"
	RunawayName  = "runaway"
	VelocityName = "velocity"
)

// Metric summarises a wavefront over successive observations.
type Metric interface {
	Name() string
	Observe(points []dynamo.Vec3, t float64)
	Value() float64
	Reset()
}

// Defaults returns a fresh set of the standard wavefront metrics.
func Defaults() []Metric {
	return []Metric{NewSpread(), NewRunaway(), NewVelocity()}
}
