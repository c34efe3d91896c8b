package actuator

import (
	"fmt"

	"github.com/KSPSnark/SteeringTweaker/internal/curve"
	"github.com/KSPSnark/SteeringTweaker/internal/limiter"
)

// Actuator is one live steering unit. BaseCurve and BaseResponse are
// read once at binding startup and never mutated by this package; the
// three Steer fields are what each update writes.
type Actuator struct {
	Name   string
	TypeID string

	BaseCurve    curve.Curve
	BaseResponse float64

	SteerCurve    curve.Curve
	SteerRange    float64
	SteerResponse float64
}

// Binding ties one actuator instance to the shared limiter cache and
// the instance's limiter setting. Bindings for siblings of a symmetry
// group are independent; callers iterate siblings themselves.
type Binding struct {
	act     *Actuator
	cache   *limiter.Cache
	setting limiter.Setting
}

// NewBinding wires act to the shared cache with the given setting.
func NewBinding(act *Actuator, cache *limiter.Cache, setting limiter.Setting) *Binding {
	return &Binding{act: act, cache: cache, setting: setting}
}

// Actuator returns the bound actuator.
func (b *Binding) Actuator() *Actuator { return b.act }

// Setting returns the instance's limiter setting.
func (b *Binding) Setting() limiter.Setting { return b.setting }

// SetSetting replaces the instance's limiter setting. Takes effect on
// the next update; no precomputation is needed since every percentage
// is already cached for the type.
func (b *Binding) SetSetting(s limiter.Setting) { b.setting = s }

// Update resolves the effective limiter percentage for the current
// vehicle situation and speed, fetches the cached scaled state, and
// writes it onto the actuator. It returns the applied percentage.
//
// A malformed base curve fails just this actuator's update; the caller
// logs and skips it rather than aborting the whole tick.
func (b *Binding) Update(situation limiter.Situation, speed float64) (float64, error) {
	percent := b.setting.Resolve(situation, speed)
	state, err := b.cache.Get(b.act.TypeID, b.act.BaseCurve, b.act.BaseResponse, percent)
	if err != nil {
		return 0, fmt.Errorf("actuator %s: %w", b.act.Name, err)
	}
	b.act.SteerCurve = state.Curve
	b.act.SteerRange = state.Range
	b.act.SteerResponse = state.Response
	return percent, nil
}
