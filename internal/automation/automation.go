package automation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/wavefront/internal/analysis"
	"github.com/san-kum/wavefront/internal/config"
	"github.com/san-kum/wavefront/internal/export"
	"github.com/san-kum/wavefront/internal/field"
	"github.com/san-kum/wavefront/internal/integrators"
	"github.com/san-kum/wavefront/internal/metrics"
	"github.com/san-kum/wavefront/internal/session"
	"github.com/san-kum/wavefront/internal/sim"
)

// Scenario defines a scripted sequence of headless runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one run. Zero fields keep the preset's value.
type ScenarioStep struct {
	Preset     string  `yaml:"preset"`
	Seed       int64   `yaml:"seed"`
	Integrator string  `yaml:"integrator"`
	Count      int     `yaml:"count"`
	Speed      float64 `yaml:"speed"`
	Ticks      int     `yaml:"ticks"`
	Dt         float64 `yaml:"dt"`
	SaveAs     string  `yaml:"save_as"`
}

// StepResult is the outcome of one scenario step.
type StepResult struct {
	Params field.Params
	Result *sim.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

func (s ScenarioStep) config() (*config.Config, error) {
	name := s.Preset
	if name == "" {
		name = "default"
	}
	cfg, err := config.GetPreset(name)
	if err != nil {
		return nil, err
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	if s.Integrator != "" {
		cfg.Integrator = s.Integrator
	}
	if s.Count != 0 {
		cfg.Wavefront.Count = s.Count
	}
	if s.Speed != 0 {
		cfg.Clock.Speed = s.Speed
	}
	return cfg, cfg.Validate()
}

// RunScenario executes all steps in a scenario. A failing step stops the
// scenario and the results so far are returned with the error.
func RunScenario(ctx context.Context, scenario *Scenario, log *slog.Logger) ([]StepResult, error) {
	if log == nil {
		log = slog.Default()
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		log.Info("scenario step", "scenario", scenario.Name, "step", i+1, "of", len(scenario.Steps), "preset", step.Preset)

		cfg, err := step.config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		sess, err := session.FromConfig(cfg, log)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		dt := step.Dt
		if dt == 0 {
			dt = cfg.FrameDt()
		}
		result, err := sim.New(sess, log).Run(ctx, step.Ticks, dt)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		if step.SaveAs != "" {
			if err := saveCSV(step.SaveAs, result); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}

		results = append(results, StepResult{Params: sess.Params(), Result: result})
	}

	return results, nil
}

func saveCSV(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.SeriesToCSV(f, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SurveyConfig defines a Monte Carlo survey over random parameter sets.
type SurveyConfig struct {
	Base   *config.Config
	Trials int
	Ticks  int
	Dt     float64
	Seed   int64
}

// Trial holds the outcome of one surveyed parameter set.
type Trial struct {
	ID       int
	Seed     int64
	Params   field.Params
	Spread   float64
	Runaway  int
	Lyapunov float64
	Stable   bool // no point left the finite domain
}

// RunSurvey runs Trials sessions, each seeded from one generator, and
// classifies every parameter set as stable or not.
func RunSurvey(ctx context.Context, cfg *SurveyConfig, log *slog.Logger) ([]Trial, error) {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", cfg.Trials)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	integ, err := integrators.Get(cfg.Base.Integrator)
	if err != nil {
		return nil, err
	}
	dt := cfg.Dt
	if dt == 0 {
		dt = cfg.Base.FrameDt()
	}

	results := make([]Trial, 0, cfg.Trials)
	for trial := 0; trial < cfg.Trials; trial++ {
		c := *cfg.Base
		c.Seed = rng.Int63()

		sess, err := session.FromConfig(&c, log)
		if err != nil {
			return results, err
		}
		p0 := sess.State().Current[0]

		result, err := sim.New(sess, log).Run(ctx, cfg.Ticks, dt)
		if err != nil {
			return results, err
		}

		runaway := int(result.Metrics[metrics.RunawayName])
		lambda := analysis.LyapunovExponent(integ, sess.Params(), p0, c.Clock.Speed*dt, cfg.Ticks, 1e-8)
		results = append(results, Trial{
			ID:       trial,
			Seed:     c.Seed,
			Params:   sess.Params(),
			Spread:   result.Metrics[metrics.SpreadName],
			Runaway:  runaway,
			Lyapunov: lambda,
			Stable:   runaway == 0 && !math.IsNaN(lambda),
		})

		if (trial+1)%10 == 0 {
			log.Info("survey progress", "done", trial+1, "of", cfg.Trials)
		}
	}

	return results, nil
}

// SurveyStats counts stable and unstable trials.
func SurveyStats(results []Trial) (stableCount int, unstableCount int) {
	for _, r := range results {
		if r.Stable {
			stableCount++
		} else {
			unstableCount++
		}
	}
	return
}
