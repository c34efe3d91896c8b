package vehicle

import (
	"testing"

	"github.com/KSPSnark/SteeringTweaker/internal/limiter"
)

func TestRover_PrelaunchHold(t *testing.T) {
	r := NewRover()
	for i := 0; i < 100; i++ {
		r.Drive(0.02)
	}
	if r.Speed != 0 || r.Situation != limiter.Prelaunch {
		t.Errorf("idle prelaunch rover moved: speed=%v situation=%v", r.Speed, r.Situation)
	}
}

func TestRover_ThrottleAccelerates(t *testing.T) {
	r := NewRover()
	r.Throttle = 1.0

	r.Drive(0.02)
	if r.Situation != limiter.Landed {
		t.Errorf("throttled prelaunch rover should land, got %v", r.Situation)
	}

	prev := r.Speed
	for i := 0; i < 500; i++ {
		r.Drive(0.02)
		if r.Speed < prev {
			t.Fatalf("speed decreased under full throttle at step %d", i)
		}
		prev = r.Speed
	}
	if r.Speed <= 0 {
		t.Error("rover did not accelerate")
	}
	if r.Odometer <= 0 {
		t.Error("odometer did not advance")
	}
}

func TestRover_TerminalSpeed(t *testing.T) {
	r := NewRover()
	r.Throttle = 1.0
	for i := 0; i < 20000; i++ {
		r.Drive(0.02)
	}
	// Drag-limited: thrust = drag + rolling at terminal speed.
	terminal := r.Speed
	r.Drive(0.02)
	if diff := r.Speed - terminal; diff > 1e-3 {
		t.Errorf("speed still climbing past terminal: +%v", diff)
	}
	if !r.IsValid() {
		t.Error("vehicle state not finite")
	}
}

func TestRover_OffGroundFreezesSpeed(t *testing.T) {
	r := NewRover()
	r.Throttle = 1.0
	for i := 0; i < 200; i++ {
		r.Drive(0.02)
	}
	speed := r.Speed

	r.Situation = limiter.Orbiting
	for i := 0; i < 200; i++ {
		r.Drive(0.02)
	}
	if r.Speed != speed {
		t.Errorf("orbiting rover integrated surface speed: %v -> %v", speed, r.Speed)
	}
}

func TestScenario_Apply(t *testing.T) {
	s := NewScenario(
		Phase{At: 10, Throttle: 0.5},
		Phase{At: 0, Throttle: 1.0},
		Phase{At: 20, Throttle: 0, Situation: limiter.Orbiting, SetSituation: true},
	)

	tests := []struct {
		t             float64
		throttle      float64
		situation     limiter.Situation
		wantSituation bool
	}{
		{0, 1.0, 0, false},
		{9.9, 1.0, 0, false},
		{10, 0.5, 0, false},
		{25, 0, limiter.Orbiting, true},
	}

	for _, tt := range tests {
		r := NewRover()
		s.Apply(r, tt.t)
		if r.Throttle != tt.throttle {
			t.Errorf("t=%v: throttle = %v, want %v", tt.t, r.Throttle, tt.throttle)
		}
		if tt.wantSituation && r.Situation != tt.situation {
			t.Errorf("t=%v: situation = %v, want %v", tt.t, r.Situation, tt.situation)
		}
	}
}
