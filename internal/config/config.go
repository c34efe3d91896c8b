package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KSPSnark/SteeringTweaker/internal/curve"
	"github.com/KSPSnark/SteeringTweaker/internal/limiter"
	"github.com/KSPSnark/SteeringTweaker/internal/vehicle"
)

const (
	DefaultDt          = 0.02
	DefaultDuration    = 60.0
	DefaultLimiter     = 100.0
	DefaultSlowLimiter = 100.0
	DefaultFastLimiter = 20.0
	DefaultSpeedLow    = 4.0
	DefaultSpeedHigh   = 30.0
)

type Config struct {
	Dt        float64          `yaml:"dt"`
	Duration  float64          `yaml:"duration"`
	Actuators []ActuatorConfig `yaml:"actuators"`
	Scenario  []PhaseConfig    `yaml:"scenario"`
}

type ActuatorConfig struct {
	Name     string           `yaml:"name"`
	Type     string           `yaml:"type"`
	Response float64          `yaml:"response"`
	Curve    []KeyframeConfig `yaml:"curve"`
	Limiter  LimiterConfig    `yaml:"limiter"`
}

type KeyframeConfig struct {
	Time       float64 `yaml:"time"`
	Value      float64 `yaml:"value"`
	InTangent  float64 `yaml:"in_tangent"`
	OutTangent float64 `yaml:"out_tangent"`
}

type LimiterConfig struct {
	Mode        string  `yaml:"mode"` // "constant" or "adaptive"
	Percent     float64 `yaml:"percent"`
	SlowLimiter float64 `yaml:"slow_limiter"`
	FastLimiter float64 `yaml:"fast_limiter"`
	SpeedLow    float64 `yaml:"speed_low"`
	SpeedHigh   float64 `yaml:"speed_high"`
}

type PhaseConfig struct {
	At        float64 `yaml:"at"`
	Throttle  float64 `yaml:"throttle"`
	Situation string  `yaml:"situation"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Actuators: []ActuatorConfig{
			{
				Name:     "wheel",
				Type:     "roverWheel1",
				Response: 2.0,
				Curve: []KeyframeConfig{
					{Time: 0, Value: 0},
					{Time: 1, Value: 30},
				},
				Limiter: LimiterConfig{
					Mode:        "adaptive",
					Percent:     DefaultLimiter,
					SlowLimiter: DefaultSlowLimiter,
					FastLimiter: DefaultFastLimiter,
					SpeedLow:    DefaultSpeedLow,
					SpeedHigh:   DefaultSpeedHigh,
				},
			},
		},
		Scenario: []PhaseConfig{
			{At: 0, Throttle: 1.0},
			{At: 40, Throttle: 0.0},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Actuators = nil
	cfg.Scenario = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Actuators) == 0 {
		cfg.Actuators = DefaultConfig().Actuators
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	for _, a := range c.Actuators {
		if len(a.Curve) == 0 {
			return fmt.Errorf("actuator %s: %w", a.Name, curve.ErrEmptyCurve)
		}
		if err := a.Limiter.validate(a.Name); err != nil {
			return err
		}
	}
	return nil
}

func (l LimiterConfig) validate(name string) error {
	switch l.Mode {
	case "", "constant":
		if l.Percent < 1 || l.Percent > 100 {
			return fmt.Errorf("actuator %s: percent %f: %w", name, l.Percent, curve.ErrPercentBounds)
		}
	case "adaptive":
		if l.SlowLimiter < 1 || l.SlowLimiter > 100 {
			return fmt.Errorf("actuator %s: slow_limiter %f: %w", name, l.SlowLimiter, curve.ErrPercentBounds)
		}
		if l.FastLimiter < 1 || l.FastLimiter > 100 {
			return fmt.Errorf("actuator %s: fast_limiter %f: %w", name, l.FastLimiter, curve.ErrPercentBounds)
		}
		if l.SpeedHigh <= l.SpeedLow {
			return fmt.Errorf("actuator %s: speed_high %f must exceed speed_low %f", name, l.SpeedHigh, l.SpeedLow)
		}
	default:
		return fmt.Errorf("actuator %s: unknown limiter mode %q", name, l.Mode)
	}
	return nil
}

// BaseCurve converts the configured keyframes.
func (a ActuatorConfig) BaseCurve() curve.Curve {
	c := make(curve.Curve, len(a.Curve))
	for i, k := range a.Curve {
		c[i] = curve.Keyframe{
			Time:       k.Time,
			Value:      k.Value,
			InTangent:  k.InTangent,
			OutTangent: k.OutTangent,
		}
	}
	return c
}

// Setting converts the configured limiter mode.
func (l LimiterConfig) Setting() limiter.Setting {
	if l.Mode == "adaptive" {
		return limiter.Adaptive(limiter.Bounds{
			SlowLimiter: l.SlowLimiter,
			FastLimiter: l.FastLimiter,
			SpeedLow:    l.SpeedLow,
			SpeedHigh:   l.SpeedHigh,
		})
	}
	percent := l.Percent
	if percent == 0 {
		percent = DefaultLimiter
	}
	return limiter.Constant(percent)
}

var situations = map[string]limiter.Situation{
	"prelaunch":  limiter.Prelaunch,
	"landed":     limiter.Landed,
	"splashed":   limiter.Splashed,
	"flying":     limiter.Flying,
	"suborbital": limiter.SubOrbital,
	"orbiting":   limiter.Orbiting,
	"escaping":   limiter.Escaping,
}

// Phases converts the scenario schedule.
func (c *Config) Phases() []vehicle.Phase {
	phases := make([]vehicle.Phase, 0, len(c.Scenario))
	for _, p := range c.Scenario {
		phase := vehicle.Phase{At: p.At, Throttle: p.Throttle}
		if s, ok := situations[p.Situation]; ok {
			phase.Situation = s
			phase.SetSituation = true
		}
		phases = append(phases, phase)
	}
	return phases
}
