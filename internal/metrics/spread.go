package metrics

import "github.com/san-kum/wavefront/internal/dynamo"

// Spread is the mean distance of finite points from the origin at the last
// observation.
type Spread struct {
	name  string
	value float64
}

func NewSpread() *Spread {
	return &Spread{name: SpreadName}
}

func (s *Spread) Name() string { return s.name }

func (s *Spread) Observe(points []dynamo.Vec3, t float64) {
	total, n := 0.0, 0
	for _, p := range points {
		if !p.IsFinite() {
			continue
		}
		total += p.Length()
		n++
	}
	if n == 0 {
		s.value = 0
		return
	}
	s.value = total / float64(n)
}

func (s *Spread) Value() float64 { return s.value }
func (s *Spread) Reset()         { s.value = 0 }
