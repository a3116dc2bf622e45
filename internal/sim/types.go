package sim

import (
	"sort"

	"github.com/san-kum/wavefront/internal/dynamo"
)

// Observer is notified after every tick with the advanced points.
type Observer interface {
	OnStep(points []dynamo.Vec3, elapsed float64)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(points []dynamo.Vec3, elapsed float64)

func (f ObserverFunc) OnStep(points []dynamo.Vec3, elapsed float64) { f(points, elapsed) }

// Result holds the recorded output of a headless run. Series holds one
// value per recorded tick for each metric, aligned with Times.
type Result struct {
	Times   []float64
	Series  map[string][]float64
	Metrics map[string]float64
	Steps   int
	Final   []dynamo.Vec3
}

// Names returns the metric names of the result in a stable order.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.Series))
	for name := range r.Series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
