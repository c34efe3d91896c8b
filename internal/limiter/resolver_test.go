package limiter

import (
	"math"
	"testing"
)

var testBounds = Bounds{SlowLimiter: 100, FastLimiter: 20, SpeedLow: 0, SpeedHigh: 50}

func TestResolve_Constant(t *testing.T) {
	s := Constant(42)
	for _, speed := range []float64{0, 10, 500} {
		if got := s.Resolve(Landed, speed); got != 42 {
			t.Errorf("Resolve(landed, %v) = %v, want 42", speed, got)
		}
	}
	if got := s.Resolve(Orbiting, 0); got != 42 {
		t.Errorf("constant mode must ignore situation, got %v", got)
	}
}

func TestResolve_AdaptiveInterpolation(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		want  float64
	}{
		{"at slow bound", 0, 100},
		{"below slow bound", -3, 100},
		{"midpoint", 25, 60},
		{"at fast bound", 50, 20},
		{"beyond fast bound", 120, 20},
		{"quarter", 12.5, 80},
	}

	s := Adaptive(testBounds)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Resolve(Landed, tt.speed); math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("Resolve(landed, %v) = %v, want %v", tt.speed, got, tt.want)
			}
		})
	}
}

func TestResolve_SituationBypass(t *testing.T) {
	s := Adaptive(testBounds)

	for _, situation := range []Situation{Prelaunch, Orbiting, Escaping} {
		if got := s.Resolve(situation, 999); got != 100 {
			t.Errorf("Resolve(%v, 999) = %v, want slow bound 100", situation, got)
		}
	}

	// Surface-bound situations interpolate normally.
	for _, situation := range []Situation{Landed, Splashed, Flying, SubOrbital} {
		if got := s.Resolve(situation, 999); got != 20 {
			t.Errorf("Resolve(%v, 999) = %v, want fast bound 20", situation, got)
		}
	}
}

func TestResolve_DegenerateBounds(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
	}{
		{"equal speeds", Bounds{SlowLimiter: 80, FastLimiter: 20, SpeedLow: 10, SpeedHigh: 10}},
		{"inverted speeds", Bounds{SlowLimiter: 80, FastLimiter: 20, SpeedLow: 30, SpeedHigh: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Adaptive(tt.bounds)
			if got := s.Resolve(Landed, 20); got != 80 {
				t.Errorf("Resolve = %v, want fail-soft slow bound 80", got)
			}
		})
	}
}

func TestResolve_MonotoneSweep(t *testing.T) {
	s := Adaptive(testBounds)

	prev := s.Resolve(Landed, testBounds.SpeedLow)
	if prev != testBounds.SlowLimiter {
		t.Fatalf("sweep start = %v, want %v", prev, testBounds.SlowLimiter)
	}
	for speed := testBounds.SpeedLow; speed <= testBounds.SpeedHigh; speed += 0.25 {
		got := s.Resolve(Landed, speed)
		if got > prev {
			t.Fatalf("percent increased from %v to %v at speed %v", prev, got, speed)
		}
		prev = got
	}
	if prev != testBounds.FastLimiter {
		t.Fatalf("sweep end = %v, want %v", prev, testBounds.FastLimiter)
	}
}

func TestSituation_String(t *testing.T) {
	if Orbiting.String() != "orbiting" {
		t.Errorf("Orbiting.String() = %q", Orbiting.String())
	}
	if Situation(99).String() != "unknown" {
		t.Errorf("unknown situation String() = %q", Situation(99).String())
	}
}
