package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/wavefront/internal/dynamo"
	"github.com/san-kum/wavefront/internal/session"
)

// Runner drives a session without a display.
type Runner struct {
	sess      *session.Session
	observers []Observer
	log       *slog.Logger
}

func New(sess *session.Session, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{sess: sess, log: log}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run ticks the session steps times with a nominal frame length of
// frameDt. Cancellation is checked between ticks; a cancelled run returns
// what it recorded so far together with ctx.Err().
func (r *Runner) Run(ctx context.Context, steps int, frameDt float64) (*Result, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("%w: steps must be positive, got %d", dynamo.ErrInvalidConfig, steps)
	}
	if frameDt <= 0 {
		return nil, fmt.Errorf("%w: frame dt must be positive, got %f", dynamo.ErrInvalidConfig, frameDt)
	}

	ms := r.sess.Metrics()
	result := &Result{
		Times:   make([]float64, 0, steps),
		Series:  make(map[string][]float64, len(ms)),
		Metrics: make(map[string]float64, len(ms)),
	}
	for _, m := range ms {
		result.Series[m.Name()] = make([]float64, 0, steps)
	}

	r.log.Debug("run started", "steps", steps, "frame_dt", frameDt, "points", r.sess.State().Len())

	var err error
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			err = ctx.Err()
		default:
		}
		if err != nil {
			r.log.Warn("run cancelled", "step", i, "err", err)
			break
		}

		r.sess.Update(frameDt)
		r.sess.State().Commit()

		elapsed := r.sess.Clock().Elapsed
		for _, obs := range r.observers {
			obs.OnStep(r.sess.State().Current, elapsed)
		}

		result.Times = append(result.Times, elapsed)
		for _, m := range ms {
			result.Series[m.Name()] = append(result.Series[m.Name()], m.Value())
		}
		result.Steps++
	}

	for _, m := range ms {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Final = dynamo.Clone(r.sess.State().Current)

	r.log.Debug("run finished", "steps", result.Steps)
	return result, err
}
