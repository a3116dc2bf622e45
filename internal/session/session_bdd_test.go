package session_test

import (
	"io"
	"log/slog"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavefront/internal/camera"
	"github.com/san-kum/wavefront/internal/config"
	"github.com/san-kum/wavefront/internal/field"
	"github.com/san-kum/wavefront/internal/plot"
	"github.com/san-kum/wavefront/internal/session"
)

var _ = Describe("Session", func() {
	var (
		s  *session.Session
		vp = camera.Viewport{Width: 160, Height: 96}
	)

	BeforeEach(func() {
		cfg := config.DefaultConfig()
		cfg.Wavefront.Count = 10
		gen, err := field.NewGenerator(rand.NewSource(17), cfg.Params)
		Expect(err).NotTo(HaveOccurred())
		s, err = session.New(cfg, gen, slog.New(slog.NewTextHandler(io.Discard, nil)))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("rendering", func() {
		It("emits one segment per point in point style", func() {
			s.Update(1.0 / 60)
			Expect(s.Render(vp, 60).Segments).To(HaveLen(19))
		})

		It("skips the first point in line style", func() {
			s.Apply(session.SetStyle(plot.Line))
			Expect(s.Render(vp, 60).Segments).To(HaveLen(18))
		})

		It("anchors radial segments at the viewport centre", func() {
			s.Apply(session.SetStyle(plot.Radial))
			for _, seg := range s.Render(vp, 60).Segments {
				Expect(seg.X2).To(BeNumerically("~", 80, 1e-9))
				Expect(seg.Y2).To(BeNumerically("~", 48, 1e-9))
			}
		})
	})

	Describe("history navigation", func() {
		It("round-trips forward then back when the forward stack is populated", func() {
			start := s.Params()
			s.Apply(session.Do(session.HistoryForward))
			s.Apply(session.Do(session.HistoryBack))
			Expect(s.Params()).To(Equal(start))

			b0, f0 := s.History().Depth()
			s.Apply(session.Do(session.HistoryForward))
			s.Apply(session.Do(session.HistoryBack))
			b, f := s.History().Depth()
			Expect(s.Params()).To(Equal(start))
			Expect([]int{b, f}).To(Equal([]int{b0, f0}))
		})

		It("restarts the clock on every transition", func() {
			s.Update(0.1)
			s.Update(0.1)
			s.Apply(session.Do(session.HistoryForward))
			Expect(s.Clock().Elapsed).To(BeZero())
		})
	})

	Describe("pausing", func() {
		It("freezes motion but keeps the clock ticking", func() {
			s.Apply(session.Do(session.TogglePause))
			before := append(s.State().Current[:0:0], s.State().Current...)
			s.Update(0.1)
			Expect(s.State().Current).To(Equal(before))
			Expect(s.Clock().Elapsed).To(Equal(1.0))
		})
	})
})
