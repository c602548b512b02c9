// Package ingest converts external map data into a core.Dataset.
//
// # Overview
//
// Two source formats are supported:
//
//   - OSM XML extracts (OSMXML): ways are filtered to foot-suitable highway
//     classes, and each class maps to a routing cost factor and a surface
//     quality score, refined by the surface tag. Node references that fall
//     outside the extract are dropped, as clipped extracts routinely
//     truncate ways at the bounding box.
//   - GeoJSON feature collections (GeoJSON): LineString and MultiLineString
//     features become ways. Endpoints shared between features are unified
//     by rounding coordinates to 1e-7 degrees, roughly centimeter
//     precision, so touching lines connect.
//
// The output is raw material: feed it to core.BuildGraph to obtain a
// routable graph.
//
// # Cost and quality
//
// Cost factors are ≥ 1 (1 = no penalty) and quality scores live in (0,1].
// For OSM both derive from the highway class, then shift with the surface
// tag; a paved residential street routes worse for trail running than a
// forest path of equal length. GeoJSON features may carry explicit
// "cost_factor" and "quality" properties; absent properties fall back to
// the core defaults.
//
// # Error handling
//
//	ingest.ErrDecode       - the input is not parseable as its format
//	ingest.ErrEmptyDataset - nothing routable survived filtering
//
// Both are wrapped with detail; test with errors.Is.
//
// # API reference
//
//	OSMXML(r)  - decode an OSM XML extract
//	GeoJSON(r) - decode a GeoJSON feature collection
package ingest
