package curve

import "math"

// MinRange is the floor applied to a curve's derived range so that a
// flat or near-zero response curve never produces a zero-range actuator.
const MinRange = 0.01

// Keyframe is one point on a response curve. Immutable once created.
type Keyframe struct {
	Time       float64
	Value      float64
	InTangent  float64
	OutTangent float64
}

// Curve is an ordered sequence of keyframes, ascending by time with
// unique time values. Scaling always produces a new Curve; instances
// may be shared freely between actuators and cache entries.
type Curve []Keyframe

// Clone returns an independent copy of the curve.
func (c Curve) Clone() Curve {
	out := make(Curve, len(c))
	copy(out, c)
	return out
}

// Range returns the maximum absolute keyframe value, floored at MinRange.
func (c Curve) Range() float64 {
	r := 0.0
	for _, k := range c {
		if v := math.Abs(k.Value); v > r {
			r = v
		}
	}
	if r < MinRange {
		r = MinRange
	}
	return r
}

// IsValid reports whether the curve has at least one keyframe and no
// NaN/Inf values.
func (c Curve) IsValid() bool {
	if len(c) == 0 {
		return false
	}
	for _, k := range c {
		if math.IsNaN(k.Time) || math.IsInf(k.Time, 0) ||
			math.IsNaN(k.Value) || math.IsInf(k.Value, 0) {
			return false
		}
	}
	return true
}

// Scale returns the curve with every keyframe value multiplied by
// percent/100. Time coordinates and tangents are left as authored;
// scaling shrinks the magnitude of a response, not its shape in time.
// At percent 100 the receiver is returned unchanged.
func Scale(base Curve, percent float64) (Curve, error) {
	if !base.IsValid() {
		return nil, ErrEmptyCurve
	}
	if percent == 100 {
		return base, nil
	}
	factor := percent / 100
	out := make(Curve, len(base))
	for i, k := range base {
		k.Value *= factor
		out[i] = k
	}
	return out, nil
}
