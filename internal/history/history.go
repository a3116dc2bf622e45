// Package history implements back/forward navigation over explored field
// parameterizations.
//
// The active set is held outside both stacks. Back pops the back stack into
// the active slot and pushes the old active set onto the forward stack;
// Forward does the reverse, drawing a new random set once the forward stack
// is exhausted.
package history

import "github.com/san-kum/wavefront/internal/field"

// Generator supplies new parameter sets when forward history runs out.
type Generator interface {
	Generate() field.Params
}

type History struct {
	gen     Generator
	active  field.Params
	back    []field.Params
	forward []field.Params
}

func New(gen Generator, initial field.Params) *History {
	return &History{gen: gen, active: initial}
}

func (h *History) Active() field.Params { return h.active }

// Depth returns the sizes of the back and forward stacks.
func (h *History) Depth() (back, forward int) { return len(h.back), len(h.forward) }

// Back restores the previous set. It reports false, changing nothing, when
// there is no earlier set.
func (h *History) Back() bool {
	n := len(h.back)
	if n == 0 {
		return false
	}
	h.forward = append(h.forward, h.active)
	h.active = h.back[n-1]
	h.back = h.back[:n-1]
	return true
}

// Forward moves to the next set, generating one when the forward stack is
// empty. It reports whether the set was newly generated.
func (h *History) Forward() (generated bool) {
	h.back = append(h.back, h.active)
	n := len(h.forward)
	if n == 0 {
		h.active = h.gen.Generate()
		return true
	}
	h.active = h.forward[n-1]
	h.forward = h.forward[:n-1]
	return false
}
