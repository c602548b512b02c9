// Package gpxout renders generated loops as GPX 1.1 documents.
//
// # Overview
//
// GPX is the lingua franca of GPS devices and training platforms. Track
// builds an in-memory document (one track, one segment, one point per loop
// node) and XML serializes it. An elevation.Profile may be attached so
// points carry elevations.
//
// # Error handling
//
//	gpxout.ErrNilGraph        - graph is nil
//	gpxout.ErrNilLoop         - loop is nil
//	gpxout.ErrUnknownNode     - loop references a node the graph lacks
//	gpxout.ErrProfileMismatch - profile sample count differs from the loop
//
// # API reference
//
//	Track(g, l, opts...) - build the GPX document
//	XML(doc)             - serialize with standard indentation
//	WithName, WithDescription, WithCreator, WithProfile
//
// # Thread safety
//
// Track and XML only read their inputs; concurrent use is safe.
package gpxout
