// Package geo provides the small set of WGS84 great-circle primitives the
// route engine is built on: haversine distance, initial bearing, bearing
// arithmetic and destination-point projection.
//
// Overview:
//
//   - All functions are pure, allocation-free and O(1); latitudes and
//     longitudes are decimal degrees, distances are meters, bearings are
//     degrees clockwise from true north in [0, 360).
//   - Haversine is the distance metric used for edge lengths, nearest-node
//     lookup and the A* heuristic, so every consumer agrees on the same
//     Earth model (mean radius 6371000.8 m).
//   - Destination projects a virtual target point ("walk 2.5 km at bearing
//     135°"), which the loop generator uses to aim its outbound searches.
//
// Accuracy:
//
//   - The spherical model is accurate to roughly 0.5% against the WGS84
//     ellipsoid — far below the noise floor of trail data, and consistent,
//     which is what shortest-path admissibility actually needs.
//
// Thread safety:
//
//   - Stateless; safe for unlimited concurrent use.
package geo
