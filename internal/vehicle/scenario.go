package vehicle

import (
	"sort"

	"github.com/KSPSnark/SteeringTweaker/internal/limiter"
)

// Phase is one segment of a scripted drive: from At seconds onward the
// throttle is held at Throttle and, if SetSituation is true, the
// situation is forced to Situation.
type Phase struct {
	At           float64
	Throttle     float64
	Situation    limiter.Situation
	SetSituation bool
}

// Scenario schedules throttle and situation changes over a drive. The
// zero scenario leaves the vehicle untouched.
type Scenario struct {
	phases []Phase
}

func NewScenario(phases ...Phase) *Scenario {
	s := &Scenario{phases: append([]Phase(nil), phases...)}
	sort.SliceStable(s.phases, func(i, j int) bool {
		return s.phases[i].At < s.phases[j].At
	})
	return s
}

// Apply writes the last phase at or before t onto the rover.
func (s *Scenario) Apply(r *Rover, t float64) {
	for _, p := range s.phases {
		if p.At > t {
			break
		}
		r.Throttle = p.Throttle
		if p.SetSituation {
			r.Situation = p.Situation
		}
	}
}
