package metrics

import "github.com/san-kum/wavefront/internal/dynamo"

// Runaway counts points whose coordinates have gone non-finite.
type Runaway struct {
	name  string
	count int
}

func NewRunaway() *Runaway {
	return &Runaway{name: RunawayName}
}

func (r *Runaway) Name() string { return r.name }

func (r *Runaway) Observe(points []dynamo.Vec3, t float64) {
	r.count = 0
	for _, p := range points {
		if !p.IsFinite() {
			r.count++
		}
	}
}

func (r *Runaway) Value() float64 { return float64(r.count) }
func (r *Runaway) Reset()         { r.count = 0 }
