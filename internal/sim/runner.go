package sim

import (
	"context"
	"fmt"

	"github.com/KSPSnark/SteeringTweaker/internal/actuator"
	"github.com/KSPSnark/SteeringTweaker/internal/vehicle"
)

// Runner drives a scripted vehicle scenario and updates every actuator
// binding once per physics tick, recording the applied limiter values.
type Runner struct {
	rover    *vehicle.Rover
	scenario *vehicle.Scenario
	bindings []*actuator.Binding
}

func New(rover *vehicle.Rover, scenario *vehicle.Scenario) *Runner {
	return &Runner{rover: rover, scenario: scenario}
}

func (r *Runner) AddBinding(b *actuator.Binding) { r.bindings = append(r.bindings, b) }

func (r *Runner) Rover() *vehicle.Rover { return r.rover }

func (r *Runner) Bindings() []*actuator.Binding { return r.bindings }

// Tick advances the scenario and vehicle by dt and applies the limiter
// to every binding. Update errors are returned per binding; a failed
// binding is skipped for this tick, the rest still update.
func (r *Runner) Tick(t, dt float64) []error {
	if r.scenario != nil {
		r.scenario.Apply(r.rover, t)
	}
	r.rover.Drive(dt)

	var errs []error
	for _, b := range r.bindings {
		if _, err := b.Update(r.rover.Situation, r.rover.Speed); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:      make([]float64, 0, steps),
		Speeds:     make([]float64, 0, steps),
		Situations: make([]string, 0, steps),
		Actuators:  make([]*Series, len(r.bindings)),
	}
	for i, b := range r.bindings {
		result.Actuators[i] = &Series{
			Name:    b.Actuator().Name,
			Percent: make([]float64, 0, steps),
			Range:   make([]float64, 0, steps),
		}
	}

	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if r.scenario != nil {
			r.scenario.Apply(r.rover, t)
		}
		r.rover.Drive(cfg.Dt)

		if !r.rover.IsValid() {
			err := SimError{Time: t, Step: i, Message: "invalid vehicle state (NaN/Inf)"}
			result.Errors = append(result.Errors, err)
			break
		}

		for j, b := range r.bindings {
			series := result.Actuators[j]
			percent, err := b.Update(r.rover.Situation, r.rover.Speed)
			if err != nil {
				series.Skipped++
				result.Errors = append(result.Errors, SimError{
					Time: t, Step: i, Message: err.Error(),
				})
				// Hold the previous value so series stay aligned with Times.
				percent = lastOr(series.Percent, 0)
			}
			series.Percent = append(series.Percent, percent)
			series.Range = append(series.Range, b.Actuator().SteerRange)
		}

		t += cfg.Dt
		result.StepsTaken++
		result.Times = append(result.Times, t)
		result.Speeds = append(result.Speeds, r.rover.Speed)
		result.Situations = append(result.Situations, r.rover.Situation.String())
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}

func lastOr(s []float64, fallback float64) float64 {
	if len(s) == 0 {
		return fallback
	}
	return s[len(s)-1]
}
