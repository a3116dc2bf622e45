package field

import (
	"fmt"

	"github.com/san-kum/wavefront/internal/dynamo"
)

// NumAxes is the length of the [x, y, z] coordinate shuffle.
const NumAxes = 3

// Coefficients are the scalar terms of a field instance.
type Coefficients struct {
	P, Q, R, S, V, W, U float64
}

// Params describes one vector-field instance. A1..A3 select entries of the
// [x, y, z] shuffle. U is drawn with the others but does not enter the field.
type Params struct {
	A1, A2, A3 int
	Coefficients
}

// NewParams validates the axis selectors and builds a Params value.
func NewParams(axes [3]int, c Coefficients) (Params, error) {
	for i, a := range axes {
		if a < 0 || a >= NumAxes {
			return Params{}, &dynamo.AxisError{Name: fmt.Sprintf("a%d", i+1), Value: a}
		}
	}
	return Params{A1: axes[0], A2: axes[1], A3: axes[2], Coefficients: c}, nil
}

// MustParams is like NewParams but panics on an invalid selector.
func MustParams(axes [3]int, c Coefficients) Params {
	p, err := NewParams(axes, c)
	if err != nil {
		panic(err)
	}
	return p
}

// Axes returns the selectors in order.
func (p Params) Axes() [3]int { return [3]int{p.A1, p.A2, p.A3} }

func (p Params) String() string {
	return fmt.Sprintf("a1: %d, a2: %d, a3: %d, p: %.3f, q: %.3f, r: %.3f, s: %.3f, v: %.3f, w: %.3f, u: %.3f",
		p.A1, p.A2, p.A3, p.P, p.Q, p.R, p.S, p.V, p.W, p.U)
}
