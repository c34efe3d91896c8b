package limiter

import (
	"fmt"
	"math"
	"sync"

	"github.com/KSPSnark/SteeringTweaker/internal/curve"
)

// steps is the number of precomputed states per actuator type, one per
// integer percentage from 1 to 100 inclusive.
const steps = 100

// ScaledState is the triple handed to an actuator for one limiter
// percentage: the scaled response curve, its derived range, and the
// scaled response scalar.
type ScaledState struct {
	Curve    curve.Curve
	Range    float64
	Response float64
}

// Cache memoizes scaled states per actuator type. All 100 integer
// percentages for a type are computed on first request and shared by
// every instance of that type for the rest of the process lifetime;
// entries are never evicted or mutated after insertion. The set of
// distinct types is bounded by the content catalog, so monotonic
// growth is an accepted tradeoff, not a leak.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*[steps]ScaledState
}

// NewCache returns an empty cache. One cache is shared by every
// actuator binding in the process.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*[steps]ScaledState)}
}

// Get returns the precomputed state for typeID at the given limiter
// percentage. On first sight of typeID all 100 entries are populated
// from base and response; later calls ignore those arguments and index
// the stored array directly, allocating nothing. All instances of one
// type share an identical base curve and response, so first writer
// wins.
func (c *Cache) Get(typeID string, base curve.Curve, response, percent float64) (ScaledState, error) {
	states, err := c.statesFor(typeID, base, response)
	if err != nil {
		return ScaledState{}, err
	}
	return states[index(percent)], nil
}

// Len returns the number of actuator types populated so far.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) statesFor(typeID string, base curve.Curve, response float64) (*[steps]ScaledState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if states, ok := c.entries[typeID]; ok {
		return states, nil
	}
	states, err := populate(base, response)
	if err != nil {
		return nil, fmt.Errorf("limiter: populating %q: %w", typeID, err)
	}
	c.entries[typeID] = states
	return states, nil
}

func populate(base curve.Curve, response float64) (*[steps]ScaledState, error) {
	var states [steps]ScaledState
	for i := range states {
		percent := float64(i + 1)
		scaled, err := curve.Scale(base, percent)
		if err != nil {
			return nil, err
		}
		states[i] = ScaledState{
			Curve:    scaled,
			Range:    scaled.Range(),
			Response: response * percent / 100,
		}
	}
	return &states, nil
}

// index quantizes a percentage to an array index. The limiter is only
// ever exposed in whole-percent steps, so sub-percent precision is
// never required: values at or below 1 map to index 0, at or above 100
// to index 99, otherwise round to nearest.
func index(percent float64) int {
	if percent <= 1 {
		return 0
	}
	if percent >= steps {
		return steps - 1
	}
	return int(math.Round(percent)) - 1
}
