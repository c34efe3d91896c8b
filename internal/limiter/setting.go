package limiter

// Situation describes the vehicle's flight state as reported by the
// host. Surface speed is only a meaningful steering input in the
// surface-bound situations.
type Situation int

const (
	Prelaunch Situation = iota
	Landed
	Splashed
	Flying
	SubOrbital
	Orbiting
	Escaping
)

var situationNames = map[Situation]string{
	Prelaunch:  "prelaunch",
	Landed:     "landed",
	Splashed:   "splashed",
	Flying:     "flying",
	SubOrbital: "suborbital",
	Orbiting:   "orbiting",
	Escaping:   "escaping",
}

func (s Situation) String() string {
	if name, ok := situationNames[s]; ok {
		return name
	}
	return "unknown"
}

// Bounds configures adaptive mode: the limiter percentage to use at or
// below SpeedLow, the percentage at or above SpeedHigh, and linear
// interpolation in between. SpeedHigh must exceed SpeedLow.
type Bounds struct {
	SlowLimiter float64
	FastLimiter float64
	SpeedLow    float64
	SpeedHigh   float64
}

// Setting is the limiter mode for one actuator instance: either a
// constant percentage or speed-adaptive bounds.
type Setting struct {
	adaptive bool
	percent  float64
	bounds   Bounds
}

// Constant returns a setting that always resolves to percent.
func Constant(percent float64) Setting {
	return Setting{percent: percent}
}

// Adaptive returns a setting that resolves from vehicle speed via b.
func Adaptive(b Bounds) Setting {
	return Setting{adaptive: true, bounds: b}
}

// IsAdaptive reports whether the setting interpolates from speed.
func (s Setting) IsAdaptive() bool { return s.adaptive }

// Resolve maps the current vehicle situation and surface speed to the
// effective limiter percentage for this setting.
//
// In adaptive mode the prelaunch, orbiting and escaping situations
// bypass interpolation and return the slow bound directly: surface
// speed readings are unreliable or meaningless off the ground.
// Degenerate bounds (SpeedHigh <= SpeedLow) fail soft to the slow
// bound; steering must always resolve to some usable value.
func (s Setting) Resolve(situation Situation, speed float64) float64 {
	if !s.adaptive {
		return s.percent
	}
	b := s.bounds
	switch situation {
	case Prelaunch, Orbiting, Escaping:
		return b.SlowLimiter
	}
	if b.SpeedHigh <= b.SpeedLow {
		return b.SlowLimiter
	}
	if speed <= b.SpeedLow {
		return b.SlowLimiter
	}
	if speed >= b.SpeedHigh {
		return b.FastLimiter
	}
	fraction := (speed - b.SpeedLow) / (b.SpeedHigh - b.SpeedLow)
	return b.SlowLimiter + fraction*(b.FastLimiter-b.SlowLimiter)
}
