// Package elevation enriches generated loops with elevation profiles.
//
// # Overview
//
// Terrain data lives outside the routing graph: digital elevation models,
// SRTM tiles, commercial APIs. This package defines the Provider seam and
// turns one batch of samples into a Profile with cumulative distances and
// smoothed ascent and descent totals.
//
// # Smoothing
//
// Raw elevation samples jitter by tens of centimeters. Summing every delta
// would report hundreds of phantom meters of climb on a flat route, so
// Enrich accumulates a pending delta and commits it to Gain or Loss only
// once it exceeds the hysteresis threshold (1 m by default, tunable with
// WithHysteresis).
//
// # Error handling
//
//	elevation.ErrNilProvider    - provider is nil
//	elevation.ErrNilGraph       - graph is nil
//	elevation.ErrNilLoop        - loop is nil
//	elevation.ErrMalformedLoop  - node and edge counts do not line up
//	elevation.ErrUnknownEdge    - loop references an edge the graph lacks
//	elevation.ErrSampleCount    - provider returned the wrong number of samples
//	elevation.ErrOptionViolation - invalid option value
//
// Provider failures are returned wrapped, so errors.Is sees the cause.
//
// # API reference
//
//	Provider            - batch elevation source
//	Func                - adapter from a plain function to Provider
//	Enrich(ctx, p, g, l, opts...) - build the Profile for one loop
//
// # Thread safety
//
// Enrich is safe for concurrent use as long as the Provider is.
package elevation
