package session

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/san-kum/wavefront/internal/camera"
	"github.com/san-kum/wavefront/internal/clock"
	"github.com/san-kum/wavefront/internal/config"
	"github.com/san-kum/wavefront/internal/field"
	"github.com/san-kum/wavefront/internal/history"
	"github.com/san-kum/wavefront/internal/integrators"
	"github.com/san-kum/wavefront/internal/metrics"
	"github.com/san-kum/wavefront/internal/plot"
	"github.com/san-kum/wavefront/internal/wavefront"
)

// Controls is the help line shown with every frame.
const Controls = "Ctrl+R: Reset,  Space: Pause Time,  Right: Next Params,  Left: Prev Params,  " +
	"Down: Reduce Simulation Speed,  Up: Increase Simulation Speed,  P/L/R: Plot Style"

// Session is one running simulation: the single owner of the wavefront,
// clock, camera and parameter history. It is not safe for concurrent use;
// callers alternate Update and Render from one goroutine.
type Session struct {
	clock   *clock.Clock
	camera  *camera.Camera
	history *history.History
	state   *wavefront.State
	style   plot.Style
	width   float64
	metrics []metrics.Metric
	log     *slog.Logger
}

// New builds a session from cfg, drawing the first parameter set from gen.
func New(cfg *config.Config, gen history.Generator, log *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	proj, _ := cfg.ProjectionMode()
	style, _ := cfg.PlotStyle()
	integ, _ := integrators.Get(cfg.Integrator)

	s := &Session{
		clock:   clock.New(cfg.Clock),
		camera:  camera.New(cfg.Camera.Scale, proj, cfg.Camera.Orbit),
		history: history.New(gen, gen.Generate()),
		state:   wavefront.New(cfg.Wavefront, integ),
		style:   style,
		width:   cfg.Plot.Width,
		metrics: metrics.Defaults(),
		log:     log,
	}
	s.log.Info("session started",
		"points", s.state.Len(),
		"integrator", cfg.Integrator,
		"projection", proj,
		"params", s.history.Active().String())
	return s, nil
}

// FromConfig builds a session with a generator seeded from cfg.Seed, or
// from the wall clock when the seed is zero.
func FromConfig(cfg *config.Config, log *slog.Logger) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen, err := field.NewGenerator(rand.NewSource(seed), cfg.Params)
	if err != nil {
		return nil, err
	}
	return New(cfg, gen, log)
}

func (s *Session) Clock() *clock.Clock       { return s.clock }
func (s *Session) Camera() *camera.Camera    { return s.camera }
func (s *Session) History() *history.History { return s.history }
func (s *Session) State() *wavefront.State   { return s.state }
func (s *Session) Style() plot.Style         { return s.style }
func (s *Session) Params() field.Params      { return s.history.Active() }
func (s *Session) Metrics() []metrics.Metric { return s.metrics }

// Update advances the simulation by one tick of nominal length frameDt.
func (s *Session) Update(frameDt float64) {
	step := s.clock.Tick(frameDt)
	s.camera.Update(s.clock.Elapsed)
	s.state.Advance(step, s.history.Active())
	for _, m := range s.metrics {
		m.Observe(s.state.Current, s.clock.Elapsed)
	}
}

// Render produces the segments and status for the current state, then
// makes the current positions the trailing buffer for the next frame.
func (s *Session) Render(vp camera.Viewport, fps float64) Frame {
	f := Frame{
		Segments: plot.Build(s.camera, vp, s.style, s.width, s.state.Current, s.state.Previous),
		Status:   s.Status(fps),
	}
	s.state.Commit()
	return f
}

// Apply executes one operator command.
func (s *Session) Apply(cmd Command) {
	switch cmd.Op {
	case ChangeStyle:
		s.style = cmd.Style
	case AdjustSpeed:
		s.clock.Adjust(cmd.Sign)
	case Reset:
		s.reset()
	case TogglePause:
		s.clock.TogglePause()
	case ToggleProjection:
		s.camera.Toggle()
	case HistoryBack:
		if !s.history.Back() {
			s.log.Debug("history back ignored", "reason", "empty")
			return
		}
		s.reset()
	case HistoryForward:
		if s.history.Forward() {
			s.log.Info("generated parameters", "params", s.history.Active().String())
		}
		s.reset()
	default:
		s.log.Warn("unknown command", "op", cmd.Op)
		return
	}
	s.log.Debug("command applied", "op", cmd.Op, "speed", s.clock.Speed, "style", s.style, "projection", s.camera.Projection)
}

func (s *Session) reset() {
	s.clock.Reset()
	s.state.Reset()
	for _, m := range s.metrics {
		m.Reset()
	}
}

// Status reports the current presentation strings without advancing or
// rendering.
func (s *Session) Status(fps float64) Status {
	back, forward := s.history.Depth()
	vals := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		vals[m.Name()] = m.Value()
	}
	return Status{
		FPS:      fmt.Sprintf("fps : %.2f", fps),
		Params:   s.history.Active().String(),
		Speed:    s.clock.String(),
		Camera:   s.camera.Hint(),
		Style:    fmt.Sprintf("Plot: %s", s.style),
		History:  fmt.Sprintf("History: %d back, %d forward", back, forward),
		Controls: Controls,
		Paused:   s.clock.Paused(),
		Metrics:  vals,
	}
}
