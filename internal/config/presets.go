package config

var Presets = map[string]*Config{
	"cruise": {
		Dt: 0.02, Duration: 60.0,
		Actuators: []ActuatorConfig{
			{
				Name: "front wheel", Type: "roverWheel1", Response: 2.0,
				Curve: []KeyframeConfig{{Time: 0, Value: 0}, {Time: 1, Value: 30}},
				Limiter: LimiterConfig{
					Mode: "adaptive", SlowLimiter: 100, FastLimiter: 20,
					SpeedLow: 4, SpeedHigh: 30,
				},
			},
		},
		Scenario: []PhaseConfig{
			{At: 0, Throttle: 1.0},
			{At: 45, Throttle: 0.0},
		},
	},
	"crawl": {
		Dt: 0.02, Duration: 40.0,
		Actuators: []ActuatorConfig{
			{
				Name: "front wheel", Type: "roverWheel1", Response: 2.0,
				Curve: []KeyframeConfig{{Time: 0, Value: 0}, {Time: 1, Value: 30}},
				Limiter: LimiterConfig{Mode: "constant", Percent: 40},
			},
		},
		Scenario: []PhaseConfig{
			{At: 0, Throttle: 0.3},
		},
	},
	"dual": {
		Dt: 0.02, Duration: 60.0,
		Actuators: []ActuatorConfig{
			{
				Name: "front wheel", Type: "roverWheel1", Response: 2.0,
				Curve: []KeyframeConfig{{Time: 0, Value: 0}, {Time: 1, Value: 30}},
				Limiter: LimiterConfig{
					Mode: "adaptive", SlowLimiter: 100, FastLimiter: 15,
					SpeedLow: 4, SpeedHigh: 25,
				},
			},
			{
				Name: "rear wheel", Type: "roverWheel2", Response: 1.5,
				Curve: []KeyframeConfig{{Time: 0, Value: 0}, {Time: 0.5, Value: 10}, {Time: 1, Value: 18}},
				Limiter: LimiterConfig{Mode: "constant", Percent: 60},
			},
		},
		Scenario: []PhaseConfig{
			{At: 0, Throttle: 1.0},
			{At: 30, Throttle: 0.5},
			{At: 50, Throttle: 0.0},
		},
	},
	"orbit": {
		Dt: 0.02, Duration: 30.0,
		Actuators: []ActuatorConfig{
			{
				Name: "front wheel", Type: "roverWheel1", Response: 2.0,
				Curve: []KeyframeConfig{{Time: 0, Value: 0}, {Time: 1, Value: 30}},
				Limiter: LimiterConfig{
					Mode: "adaptive", SlowLimiter: 100, FastLimiter: 20,
					SpeedLow: 4, SpeedHigh: 30,
				},
			},
		},
		Scenario: []PhaseConfig{
			{At: 0, Throttle: 1.0},
			{At: 15, Throttle: 0, Situation: "orbiting"},
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
