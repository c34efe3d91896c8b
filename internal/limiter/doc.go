// Package limiter scales steering response curves by a percentage and
// caches the results so per-tick lookups never allocate.
//
// The two entry points are:
//
//   - [Cache.Get]: returns the precomputed [ScaledState] for an
//     actuator type at an integer limiter percentage. The first request
//     for a type computes all 100 states; every later request, from any
//     instance of that type, is an O(1) array read.
//   - [Setting.Resolve]: maps the current vehicle situation and speed
//     to the effective percentage, either a constant or a linear
//     interpolation between two speed-indexed bounds.
//
// # Thread Safety
//
// A Cache may be shared across goroutines: population is guarded by a
// mutex and populated arrays are read-only afterwards. Settings are
// immutable values.
package limiter
