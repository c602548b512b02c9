// Package trailgen generates closed running and hiking loops on real trail
// networks — start and finish at the same trailhead, near a requested
// distance, without retracing your steps.
//
// 🚀 What is trailgen?
//
//	A routing engine for loop courses rather than A→B directions:
//		• Ingestion: OSM XML extracts & GeoJSON trail collections
//		• Graph model: immutable, lock-free snapshot with atomic swaps
//		• Shortest paths: Dijkstra and A* with distance caps & edge bans
//		• Loop generation: bearing fan-out, apex search, scored variants
//		• Validation: re-walk every returned route against the graph
//		• Enrichment: elevation profiles, GPX 1.1 export
//
// ✨ Why trailgen?
//
//   - Deterministic – identical inputs yield identical loops, workers or not
//   - Degrades, never breaks – sparse terrain and deadlines produce partial
//     results with warnings, not errors
//   - Metric geometry – all distances are haversine meters on WGS84
//
// Everything is organized under focused subpackages:
//
//	geo/       — haversine, bearings, destination points
//	core/      — Dataset → immutable Graph, stats, concurrency Handle
//	ingest/    — OSM XML & GeoJSON → Dataset
//	pathfind/  — Dijkstra & A* with caps and forbidden edges
//	loopgen/   — the loop generation pipeline
//	validate/  — route re-validation reports
//	elevation/ — elevation providers & smoothed profiles
//	gpxout/    — GPX 1.1 export
//	synth/     — synthetic trail networks for tests & benchmarks
//
// Quick ASCII example:
//
//	    A───B        a 2 km request from A returns the ring
//	    │   │        A→D→C→B→A, never the out-and-back A→B→A
//	    D───C
//
// Dive into examples/ for the full pipeline: synthetic terrain, OSM
// ingestion, elevation profiles and GPX export.
//
//	go get github.com/quentintr/trailgen
package trailgen
