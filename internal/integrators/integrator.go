package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/wavefront/internal/dynamo"
	"github.com/san-kum/wavefront/internal/field"
)

// Field maps a position to a displacement under params.
type Field func(pos dynamo.Vec3, params field.Params) dynamo.Vec3

// Integrator advances every point of a wavefront by one step. Implementations
// return a new slice with the same length and order as points.
type Integrator interface {
	Step(f Field, points []dynamo.Vec3, dt float64, params field.Params) []dynamo.Vec3
}

var registry = map[string]func() Integrator{
	"euler": func() Integrator { return NewEuler() },
	"rk4":   func() Integrator { return NewRK4() },
}

// Get returns a fresh integrator by name.
func Get(name string) (Integrator, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown integrator %q (available: %v)", dynamo.ErrInvalidConfig, name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
