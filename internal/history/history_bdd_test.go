package history_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavefront/internal/field"
	"github.com/san-kum/wavefront/internal/history"
)

var _ = Describe("History", func() {
	var (
		gen     *field.Generator
		initial field.Params
		h       *history.History
	)

	BeforeEach(func() {
		var err error
		gen, err = field.NewGenerator(rand.NewSource(5), field.DefaultBounds())
		Expect(err).NotTo(HaveOccurred())
		initial = gen.Generate()
		h = history.New(gen, initial)
	})

	Context("with no history", func() {
		It("ignores Back", func() {
			Expect(h.Back()).To(BeFalse())
			Expect(h.Active()).To(Equal(initial))
		})

		It("generates on Forward and remembers the previous set", func() {
			Expect(h.Forward()).To(BeTrue())
			Expect(h.Active()).NotTo(Equal(initial))
			back, forward := h.Depth()
			Expect(back).To(Equal(1))
			Expect(forward).To(BeZero())

			Expect(h.Back()).To(BeTrue())
			Expect(h.Active()).To(Equal(initial))
		})
	})

	Context("after stepping back", func() {
		var second field.Params

		BeforeEach(func() {
			h.Forward()
			second = h.Active()
			h.Back()
		})

		It("replays the undone set instead of generating", func() {
			Expect(h.Forward()).To(BeFalse())
			Expect(h.Active()).To(Equal(second))
		})

		It("drops the redo branch once a new set is generated", func() {
			h.Forward()
			Expect(h.Forward()).To(BeTrue())
			_, forward := h.Depth()
			Expect(forward).To(BeZero())
		})
	})
})
