package metrics

import "github.com/san-kum/wavefront/internal/dynamo"

// Velocity is the mean per-point displacement per unit time between the
// last two observations. Non-finite points are skipped.
type Velocity struct {
	name  string
	prev  []dynamo.Vec3
	prevT float64
	value float64
}

func NewVelocity() *Velocity {
	return &Velocity{name: VelocityName}
}

func (v *Velocity) Name() string { return v.name }

func (v *Velocity) Observe(points []dynamo.Vec3, t float64) {
	defer func() {
		v.prev = dynamo.Clone(points)
		v.prevT = t
	}()

	dt := t - v.prevT
	if v.prev == nil || len(v.prev) != len(points) || dt <= 0 {
		v.value = 0
		return
	}

	total, n := 0.0, 0
	for i, p := range points {
		if !p.IsFinite() || !v.prev[i].IsFinite() {
			continue
		}
		total += p.Sub(v.prev[i]).Length()
		n++
	}
	if n == 0 {
		v.value = 0
		return
	}
	v.value = total / float64(n) / dt
}

func (v *Velocity) Value() float64 { return v.value }

func (v *Velocity) Reset() {
	v.prev = nil
	v.prevT = 0
	v.value = 0
}
