package vehicle

import (
	"math"

	"github.com/KSPSnark/SteeringTweaker/internal/limiter"
)

const (
	DefaultMass      = 2500.0
	DefaultMaxThrust = 8000.0
	DefaultDragCoeff = 1.2
	DefaultRolling   = 120.0
)

// Rover is a simple longitudinal vehicle model: throttle thrust against
// quadratic aerodynamic drag and constant rolling resistance. It exists
// to produce realistic speed sweeps for the steering limiter; lateral
// dynamics are out of scope.
type Rover struct {
	Mass      float64
	MaxThrust float64
	DragCoeff float64
	Rolling   float64

	Speed     float64
	Odometer  float64
	Throttle  float64
	Situation limiter.Situation
}

func NewRover() *Rover {
	return &Rover{
		Mass:      DefaultMass,
		MaxThrust: DefaultMaxThrust,
		DragCoeff: DefaultDragCoeff,
		Rolling:   DefaultRolling,
		Situation: limiter.Prelaunch,
	}
}

// Drive advances the vehicle by dt seconds. Off the ground the surface
// speed integration is suspended; a prelaunch vehicle with throttle
// transitions to landed on its first driven step.
func (r *Rover) Drive(dt float64) {
	switch r.Situation {
	case limiter.Orbiting, limiter.Escaping, limiter.SubOrbital:
		return
	case limiter.Prelaunch:
		if r.Throttle <= 0 {
			return
		}
		r.Situation = limiter.Landed
	}

	thrust := clamp(r.Throttle, -1, 1) * r.MaxThrust
	drag := r.DragCoeff * r.Speed * math.Abs(r.Speed)
	rolling := r.Rolling * sign(r.Speed)

	accel := (thrust - drag - rolling) / r.Mass
	r.Speed += accel * dt
	if math.Abs(r.Speed) < 1e-3 && math.Abs(r.Throttle) < 1e-3 {
		r.Speed = 0
	}
	r.Odometer += math.Abs(r.Speed) * dt
}

// IsValid reports whether the vehicle state is finite.
func (r *Rover) IsValid() bool {
	return !math.IsNaN(r.Speed) && !math.IsInf(r.Speed, 0) &&
		!math.IsNaN(r.Odometer) && !math.IsInf(r.Odometer, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
