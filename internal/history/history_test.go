package history

import (
	"math/rand"
	"testing"

	"github.com/san-kum/wavefront/internal/field"
)

// sequence hands out pre-built parameter sets in order.
type sequence struct {
	sets  []field.Params
	calls int
}

func (s *sequence) Generate() field.Params {
	p := s.sets[s.calls%len(s.sets)]
	s.calls++
	return p
}

func params(q float64) field.Params {
	return field.MustParams([3]int{0, 1, 2}, field.Coefficients{Q: q})
}

func TestBack_EmptyIsNoop(t *testing.T) {
	gen := &sequence{sets: []field.Params{params(9)}}
	h := New(gen, params(1))

	if h.Back() {
		t.Error("Back on empty stack should report false")
	}
	if h.Active() != params(1) {
		t.Errorf("active changed: %v", h.Active())
	}
	if b, f := h.Depth(); b != 0 || f != 0 {
		t.Errorf("stacks changed: back=%d forward=%d", b, f)
	}
	if gen.calls != 0 {
		t.Error("Back must never generate")
	}
}

func TestForward_GeneratesWhenExhausted(t *testing.T) {
	gen := &sequence{sets: []field.Params{params(2), params(3)}}
	h := New(gen, params(1))

	if !h.Forward() {
		t.Error("expected generated set")
	}
	if h.Active() != params(2) {
		t.Errorf("active = %v, want q=2", h.Active())
	}
	if b, f := h.Depth(); b != 1 || f != 0 {
		t.Errorf("depth = (%d, %d), want (1, 0)", b, f)
	}
}

func TestRoundTrip(t *testing.T) {
	gen := &sequence{sets: []field.Params{params(2), params(3)}}
	h := New(gen, params(1))

	h.Forward() // 1 -> 2 (generated)
	h.Forward() // 2 -> 3 (generated)
	if !h.Back() || h.Active() != params(2) {
		t.Fatalf("back to q=2 failed, active %v", h.Active())
	}
	if !h.Back() || h.Active() != params(1) {
		t.Fatalf("back to q=1 failed, active %v", h.Active())
	}

	// Forward stack is now non-empty: forward then back restores A and the stacks.
	b0, f0 := h.Depth()
	if h.Forward() {
		t.Fatal("forward with history should not generate")
	}
	if h.Active() != params(2) {
		t.Fatalf("forward replayed %v, want q=2", h.Active())
	}
	h.Back()
	if h.Active() != params(1) {
		t.Errorf("round trip active = %v, want q=1", h.Active())
	}
	if b, f := h.Depth(); b != b0 || f != f0 {
		t.Errorf("round trip depth = (%d, %d), want (%d, %d)", b, f, b0, f0)
	}
	if gen.calls != 2 {
		t.Errorf("expected 2 generations, got %d", gen.calls)
	}
}

func TestActiveNeverInStacks(t *testing.T) {
	gen, err := field.NewGenerator(rand.NewSource(3), field.DefaultBounds())
	if err != nil {
		t.Fatal(err)
	}
	h := New(gen, gen.Generate())
	r := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {
		if r.Intn(3) == 0 {
			h.Back()
		} else {
			h.Forward()
		}
		for _, p := range append(append([]field.Params{}, h.back...), h.forward...) {
			if p == h.active {
				t.Fatalf("step %d: active set duplicated in a stack", i)
			}
		}
	}
}
