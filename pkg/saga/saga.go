// Package saga runs a sequence of steps and undoes the completed ones
// in reverse order when a later step fails.
package saga

import (
	"context"
	"errors"
	"fmt"

	"stillform-backend/pkg/logger"
)

// Step is one unit of work. Compensate may be nil for read-only steps.
type Step struct {
	Name       string
	Do         func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// StepError carries the name of the step that failed
type StepError struct {
	Step string
	Err  error
	// CompensationErrs holds failures of compensations that ran after Err.
	CompensationErrs []error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Saga is an ordered list of steps
type Saga struct {
	name  string
	steps []Step
}

func New(name string, steps ...Step) *Saga {
	return &Saga{name: name, steps: steps}
}

// Add appends a step
func (s *Saga) Add(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

// Run executes steps in order. On the first failure it compensates every
// completed step in reverse and returns a *StepError wrapping the original error.
func (s *Saga) Run(ctx context.Context) error {
	completed := make([]Step, 0, len(s.steps))

	for _, step := range s.steps {
		if err := step.Do(ctx); err != nil {
			logger.Warn("saga step failed", map[string]interface{}{
				"saga":  s.name,
				"step":  step.Name,
				"error": err.Error(),
			})

			stepErr := &StepError{Step: step.Name, Err: err}
			stepErr.CompensationErrs = s.compensate(ctx, completed)
			return stepErr
		}
		completed = append(completed, step)
	}

	return nil
}

func (s *Saga) compensate(ctx context.Context, completed []Step) []error {
	// compensations must run even if the request context is already cancelled
	ctx = context.WithoutCancel(ctx)

	var errs []error
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			logger.Error(fmt.Sprintf("saga %s: compensation of %s failed", s.name, step.Name), err)
			errs = append(errs, fmt.Errorf("%s: %w", step.Name, err))
		}
	}
	return errs
}

// FailedStep returns the name of the failed step, if err came from Run
func FailedStep(err error) (string, bool) {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Step, true
	}
	return "", false
}
