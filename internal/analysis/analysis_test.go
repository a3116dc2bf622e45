package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/wavefront/internal/dynamo"
	"github.com/san-kum/wavefront/internal/field"
	"github.com/san-kum/wavefront/internal/integrators"
)

func TestFFTImpulse(t *testing.T) {
	out := FFT([]float64{1, 0, 0, 0})
	for i, c := range out {
		if math.Abs(real(c)-1) > 1e-12 || math.Abs(imag(c)) > 1e-12 {
			t.Errorf("bin %d = %v, want 1", i, c)
		}
	}
}

func TestFFTPanicsOnOddLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for length 6")
		}
	}()
	FFT(make([]float64, 6))
}

func TestDominantPeriod(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		period float64
	}{
		{"period 8", 256, 8},
		{"period 32", 512, 32},
		{"padded", 200, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]float64, tt.n)
			for i := range data {
				data[i] = 3 + math.Sin(2*math.Pi*float64(i)/tt.period)
			}
			got := DominantPeriod(data)
			if math.Abs(got-tt.period)/tt.period > 0.1 {
				t.Errorf("period = %v, want %v", got, tt.period)
			}
		})
	}
}

func TestDominantPeriodFlat(t *testing.T) {
	if p := DominantPeriod([]float64{2, 2, 2, 2, 2, 2, 2, 2}); p != 0 {
		t.Errorf("flat series period = %v, want 0", p)
	}
	if p := DominantPeriod(nil); p != 0 {
		t.Errorf("empty series period = %v, want 0", p)
	}
}

func TestSeparationExponentialField(t *testing.T) {
	grow := func(p dynamo.Vec3, _ field.Params) dynamo.Vec3 { return p }
	dt := 0.01
	got := separation(integrators.NewEuler(), grow, field.Params{}, dynamo.Vec3{X: 1}, dynamo.Vec3{X: 1 + 1e-6}, dt, 200, 1e-6)
	want := math.Log(1+dt) / dt
	if math.Abs(got-want) > 1e-4 {
		t.Errorf("exponent = %v, want %v", got, want)
	}
}

func TestSeparationContractingField(t *testing.T) {
	shrink := func(p dynamo.Vec3, _ field.Params) dynamo.Vec3 { return p.Scale(-1) }
	got := separation(integrators.NewEuler(), shrink, field.Params{}, dynamo.Vec3{X: 1}, dynamo.Vec3{X: 1.001}, 0.1, 100, 1e-3)
	if got >= 0 {
		t.Errorf("contracting field should give a negative exponent, got %v", got)
	}
}

func TestSeparationNonFinite(t *testing.T) {
	blowup := func(p dynamo.Vec3, _ field.Params) dynamo.Vec3 { return dynamo.Vec3{X: math.Inf(1)} }
	got := separation(nil, blowup, field.Params{}, dynamo.Vec3{}, dynamo.Vec3{X: 1e-6}, 0.1, 10, 1e-6)
	if !math.IsNaN(got) {
		t.Errorf("expected NaN, got %v", got)
	}
}

func TestLyapunovDegenerateInput(t *testing.T) {
	params := field.MustParams([3]int{0, 1, 2}, field.Coefficients{P: 0.5, Q: 0.5, R: 0.5, S: 0.5, V: 0.5, W: 0.5})
	if got := LyapunovExponent(nil, params, dynamo.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, 0.1, 0, 1e-8); got != 0 {
		t.Errorf("zero steps should give 0, got %v", got)
	}
	spec := LyapunovSpectrum(nil, params, dynamo.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, 0.01, 50, 1e-8)
	for i, v := range spec {
		if math.IsInf(v, 0) {
			t.Errorf("axis %d exponent is infinite", i)
		}
	}
}
