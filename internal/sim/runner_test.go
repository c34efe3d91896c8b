package sim

import (
	"context"
	"testing"

	"github.com/KSPSnark/SteeringTweaker/internal/actuator"
	"github.com/KSPSnark/SteeringTweaker/internal/curve"
	"github.com/KSPSnark/SteeringTweaker/internal/limiter"
	"github.com/KSPSnark/SteeringTweaker/internal/vehicle"
)

func testBinding(cache *limiter.Cache, setting limiter.Setting) *actuator.Binding {
	act := &actuator.Actuator{
		Name:         "front wheel",
		TypeID:       "roverWheel1",
		BaseCurve:    curve.Curve{{Time: 0, Value: 0}, {Time: 1, Value: 30}},
		BaseResponse: 2.0,
	}
	return actuator.NewBinding(act, cache, setting)
}

func fullThrottle() *vehicle.Scenario {
	return vehicle.NewScenario(vehicle.Phase{At: 0, Throttle: 1.0})
}

func TestRunner_ValidatesConfig(t *testing.T) {
	r := New(vehicle.NewRover(), nil)

	if _, err := r.Run(context.Background(), Config{Dt: 0, Duration: 10}); err == nil {
		t.Error("expected error for zero dt")
	}
	if _, err := r.Run(context.Background(), Config{Dt: 0.02, Duration: -1}); err == nil {
		t.Error("expected error for negative duration")
	}
}

func TestRunner_RecordsAlignedSeries(t *testing.T) {
	r := New(vehicle.NewRover(), fullThrottle())
	r.AddBinding(testBinding(limiter.NewCache(), limiter.Constant(50)))

	result, err := r.Run(context.Background(), Config{Dt: 0.02, Duration: 5})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if result.StepsTaken != 250 {
		t.Errorf("StepsTaken = %d, want 250", result.StepsTaken)
	}
	if len(result.Times) != result.StepsTaken || len(result.Speeds) != result.StepsTaken {
		t.Error("times/speeds not aligned with steps")
	}
	for _, a := range result.Actuators {
		if len(a.Percent) != result.StepsTaken || len(a.Range) != result.StepsTaken {
			t.Errorf("actuator %s series not aligned with steps", a.Name)
		}
	}
}

func TestRunner_AdaptivePercentTracksSpeed(t *testing.T) {
	bounds := limiter.Bounds{SlowLimiter: 100, FastLimiter: 20, SpeedLow: 0, SpeedHigh: 50}
	r := New(vehicle.NewRover(), fullThrottle())
	r.AddBinding(testBinding(limiter.NewCache(), limiter.Adaptive(bounds)))

	result, err := r.Run(context.Background(), Config{Dt: 0.02, Duration: 30})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	percents := result.Actuators[0].Percent
	prev := percents[0]
	for i, p := range percents {
		if p < bounds.FastLimiter || p > bounds.SlowLimiter {
			t.Fatalf("step %d: percent %v outside bounds", i, p)
		}
		if p > prev {
			t.Fatalf("step %d: percent rose from %v to %v while accelerating", i, prev, p)
		}
		prev = p
	}
	if percents[len(percents)-1] >= percents[0] {
		t.Error("percent did not drop as the vehicle sped up")
	}
}

func TestRunner_SkipsBrokenActuator(t *testing.T) {
	cache := limiter.NewCache()
	r := New(vehicle.NewRover(), fullThrottle())
	r.AddBinding(testBinding(cache, limiter.Constant(50)))

	broken := &actuator.Actuator{Name: "broken wheel", TypeID: "badWheel"}
	r.AddBinding(actuator.NewBinding(broken, cache, limiter.Constant(50)))

	result, err := r.Run(context.Background(), Config{Dt: 0.02, Duration: 1})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if result.Actuators[0].Skipped != 0 {
		t.Errorf("healthy actuator skipped %d updates", result.Actuators[0].Skipped)
	}
	if result.Actuators[1].Skipped != result.StepsTaken {
		t.Errorf("broken actuator skipped %d of %d updates",
			result.Actuators[1].Skipped, result.StepsTaken)
	}
	if len(result.Errors) == 0 {
		t.Error("expected recorded errors for the broken actuator")
	}
	// Broken series still align with the timeline.
	if len(result.Actuators[1].Percent) != result.StepsTaken {
		t.Error("broken actuator series not aligned with steps")
	}
}

func TestRunner_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(vehicle.NewRover(), fullThrottle())
	result, err := r.Run(ctx, Config{Dt: 0.02, Duration: 10})
	if err != context.Canceled {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	if result == nil || result.StepsTaken != 0 {
		t.Error("canceled run should return an empty partial result")
	}
}
