package clock

import (
	"fmt"
	"math"

	"github.com/san-kum/wavefront/internal/dynamo"
)

const (
	DefaultSpeed     = 15.0
	DefaultSpeedStep = 0.1
	DefaultMaxPhase  = 100.0

	// pauseEpsilon is the magnitude below which a speed counts as stopped.
	pauseEpsilon = 0.001
)

// Config holds the clock constants.
type Config struct {
	Speed     float64 `yaml:"speed"`
	SpeedStep float64 `yaml:"speed_step"`
	MaxPhase  float64 `yaml:"max_phase"`
}

func DefaultConfig() Config {
	return Config{Speed: DefaultSpeed, SpeedStep: DefaultSpeedStep, MaxPhase: DefaultMaxPhase}
}

func (c Config) Validate() error {
	if c.MaxPhase <= 0 {
		return fmt.Errorf("%w: max_phase must be positive, got %g", dynamo.ErrInvalidConfig, c.MaxPhase)
	}
	if c.SpeedStep <= 0 {
		return fmt.Errorf("%w: speed_step must be positive, got %g", dynamo.ErrInvalidConfig, c.SpeedStep)
	}
	return nil
}

// Clock tracks elapsed ticks and the speed that scales motion. Elapsed
// advances by one per tick whatever the speed.
type Clock struct {
	Elapsed  float64
	MaxPhase float64
	Speed    float64

	defaultSpeed float64
	step         float64
	buffered     float64
}

func New(cfg Config) *Clock {
	return &Clock{
		MaxPhase:     cfg.MaxPhase,
		Speed:        cfg.Speed,
		defaultSpeed: cfg.Speed,
		step:         cfg.SpeedStep,
		buffered:     cfg.Speed,
	}
}

// Tick advances the clock and returns the motion step for a frame of
// length frameDt. The step oscillates with sin(Elapsed/MaxPhase).
func (c *Clock) Tick(frameDt float64) float64 {
	c.Elapsed++
	return c.Speed * frameDt * math.Sin(c.Elapsed/c.MaxPhase)
}

func (c *Clock) Reset() { c.Elapsed = 0 }

// Adjust changes speed by sign steps.
func (c *Clock) Adjust(sign int) {
	c.Speed += float64(sign) * c.step
}

// TogglePause stops a running clock, remembering its speed, or resumes a
// stopped one.
func (c *Clock) TogglePause() {
	if !c.Paused() {
		c.buffered = c.Speed
		c.Speed = 0
		return
	}
	if math.Abs(c.buffered) > pauseEpsilon {
		c.Speed = c.buffered
	} else {
		c.Speed = c.defaultSpeed
	}
}

func (c *Clock) Paused() bool { return math.Abs(c.Speed) <= pauseEpsilon }

func (c *Clock) String() string { return fmt.Sprintf("Sim Speed: %.3f", c.Speed) }
