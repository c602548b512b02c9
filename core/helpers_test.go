// Package core_test shared fixtures: small, hand-checkable datasets with
// known geometry.
package core_test

import "github.com/quentintr/trailgen/core"

// sideDeg is one square side expressed in degrees on the equator, ≈ 500.4 m.
const sideDeg = 0.0045

// sideMeters is the haversine length of sideDeg on the equator.
const sideMeters = 500.377

// squareDataset returns four nodes in a ~500 m square on the equator wired
// into a single closed way A→B→C→D→A.
//
//	D───C
//	│   │
//	A───B
func squareDataset() core.Dataset {
	return core.Dataset{
		Nodes: []core.RawNode{
			{ID: "A", SourceID: "n1", Lat: 0, Lon: 0},
			{ID: "B", SourceID: "n2", Lat: 0, Lon: sideDeg},
			{ID: "C", SourceID: "n3", Lat: sideDeg, Lon: sideDeg},
			{ID: "D", SourceID: "n4", Lat: sideDeg, Lon: 0},
		},
		Ways: []core.RawWay{
			{ID: "w1", NodeIDs: []string{"A", "B", "C", "D", "A"}, Quality: 0.8},
		},
	}
}

// mustBuild builds ds or panics; for fixtures already covered by build tests.
func mustBuild(ds core.Dataset) *core.Graph {
	g, err := core.BuildGraph(ds)
	if err != nil {
		panic(err)
	}
	return g
}
