package sim

import "fmt"

type Config struct {
	Dt       float64
	Duration float64
}

func DefaultConfig() Config {
	return Config{Dt: 0.02, Duration: 60.0}
}

// Series is the recorded per-tick output for one actuator binding.
type Series struct {
	Name    string
	Percent []float64
	Range   []float64
	Skipped int
}

type Result struct {
	Times      []float64
	Speeds     []float64
	Situations []string
	Actuators  []*Series
	StepsTaken int
	Errors     []error
}

type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
