package field

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/wavefront/internal/dynamo"
)

const (
	DefaultAxes     = 3
	DefaultCoeffMin = -1.0
	DefaultCoeffMax = 1.0
)

// Bounds are the sampling ranges of a Generator. Axes is the size of the
// selector domain: 3 draws from {0,1,2}, 2 from {0,1}.
type Bounds struct {
	Axes int     `yaml:"axes"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

func DefaultBounds() Bounds {
	return Bounds{Axes: DefaultAxes, Min: DefaultCoeffMin, Max: DefaultCoeffMax}
}

func (b Bounds) Validate() error {
	if b.Axes < 1 || b.Axes > NumAxes {
		return fmt.Errorf("%w: axes must be in [1, %d], got %d", dynamo.ErrInvalidConfig, NumAxes, b.Axes)
	}
	if b.Min >= b.Max {
		return fmt.Errorf("%w: coefficient range [%g, %g) is empty", dynamo.ErrInvalidConfig, b.Min, b.Max)
	}
	return nil
}

// Generator draws random Params. It is not safe for concurrent use.
type Generator struct {
	rng    *rand.Rand
	bounds Bounds
}

// NewGenerator returns a Generator reading from src. Pass
// rand.NewSource(seed) for a reproducible sequence.
func NewGenerator(src rand.Source, bounds Bounds) (*Generator, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	return &Generator{rng: rand.New(src), bounds: bounds}, nil
}

func (g *Generator) Bounds() Bounds { return g.bounds }

func (g *Generator) Generate() Params {
	axis := func() int { return g.rng.Intn(g.bounds.Axes) }
	coeff := func() float64 { return g.bounds.Min + g.rng.Float64()*(g.bounds.Max-g.bounds.Min) }

	a1, a2, a3 := axis(), axis(), axis()
	return Params{
		A1: a1, A2: a2, A3: a3,
		Coefficients: Coefficients{
			P: coeff(), Q: coeff(), R: coeff(), S: coeff(),
			V: coeff(), W: coeff(), U: coeff(),
		},
	}
}
