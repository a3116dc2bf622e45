package field

import (
	"math"
	"testing"

	"github.com/san-kum/wavefront/internal/dynamo"
)

var reference = MustParams([3]int{0, 1, 2}, Coefficients{P: 0, Q: 0.1, R: 0.1, S: 0.5, V: 0.1, W: 0.2})

func TestEvaluate_AtOrigin(t *testing.T) {
	got := Evaluate(dynamo.Vec3{}, reference)

	// 0/0 in the first component propagates as NaN.
	if !math.IsNaN(got.X) {
		t.Errorf("expected NaN x component at origin, got %v", got.X)
	}
	if got.Y != 0 {
		t.Errorf("expected zero y component, got %v", got.Y)
	}
	if got.Z != 0 {
		t.Errorf("expected zero z component, got %v", got.Z)
	}
}

func TestEvaluate_ClosedForm(t *testing.T) {
	tests := []struct {
		name   string
		pos    dynamo.Vec3
		params Params
		want   dynamo.Vec3
	}{
		{
			name:   "reference params",
			pos:    dynamo.Vec3{X: 0.5, Y: 1.0, Z: -0.25},
			params: reference,
			want:   dynamo.Vec3{X: 0.05000000000000002, Y: 0.04794255386042032, Z: 0.15734052589860192},
		},
		{
			name: "shuffled axes",
			pos:  dynamo.Vec3{X: 0.3, Y: -0.7, Z: 0.9},
			params: MustParams([3]int{2, 0, 1}, Coefficients{
				P: 0.4, Q: -0.6, R: 0.8, S: -0.2, V: 0.5, W: -0.9,
			}),
			want: dynamo.Vec3{X: -0.1052304327492343, Y: 0.2543296771064077, Z: -0.7022983896728592},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.pos, tt.params)
			if got.Sub(tt.want).Length() > 1e-12 {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Pure(t *testing.T) {
	pos := dynamo.Vec3{X: 0.2, Y: 0.4, Z: 0.6}
	a := Evaluate(pos, reference)
	b := Evaluate(pos, reference)
	if a != b {
		t.Errorf("repeated evaluation differs: %v vs %v", a, b)
	}
}

func TestEvaluate_UIgnored(t *testing.T) {
	pos := dynamo.Vec3{X: 0.2, Y: 0.4, Z: 0.6}
	withU := reference
	withU.U = 0.75
	if Evaluate(pos, reference) != Evaluate(pos, withU) {
		t.Error("u coefficient should not affect the field")
	}
}
