package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestVec3_IsFinite(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want bool
	}{
		{"zero", Vec3{}, true},
		{"normal", Vec3{1, -2, 3}, true},
		{"NaN", Vec3{math.NaN(), 0, 0}, false},
		{"+Inf", Vec3{0, math.Inf(1), 0}, false},
		{"-Inf", Vec3{0, 0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add failed: got %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub failed: got %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale failed: got %v", got)
	}
	if got := (Vec3{3, 4, 0}).Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := (Vec3{0, 0, 7}).Normalize(); got != (Vec3{0, 0, 1}) {
		t.Errorf("Normalize failed: got %v", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize of zero should be zero, got %v", got)
	}
}

func TestVec3_Axis(t *testing.T) {
	v := Vec3{7, 8, 9}
	for i, want := range []float64{7, 8, 9} {
		if got := v.Axis(i); got != want {
			t.Errorf("Axis(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestClone(t *testing.T) {
	src := []Vec3{{1, 1, 1}, {2, 2, 2}}
	c := Clone(src)
	c[0].X = 99
	if src[0].X != 1 {
		t.Error("Clone must not alias the source slice")
	}
}

func TestAxisError(t *testing.T) {
	var err error = &AxisError{Name: "a2", Value: 5}
	if !errors.Is(err, ErrAxisOutOfRange) {
		t.Error("AxisError should unwrap to ErrAxisOutOfRange")
	}
	if err.Error() != "a2=5: dynamo: axis selector out of range" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
