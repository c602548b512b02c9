// Package pathfind_test contains unit tests for the shortest-path search.
// These tests validate input checking, path correctness on hand-checkable
// geometries, the distance cap, edge exclusion, terrain weighting, and the
// equivalence and determinism guarantees of the two algorithms.
package pathfind_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/quentintr/trailgen/core"
	"github.com/quentintr/trailgen/pathfind"
)

// sideDeg ≈ 500.4 m on the equator; sideMeters is its haversine length.
const (
	sideDeg    = 0.0045
	sideMeters = 500.377
)

func buildGraph(t *testing.T, ds core.Dataset) *core.Graph {
	t.Helper()
	g, err := core.BuildGraph(ds)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	return g
}

// lineDataset: A──B──C along the equator, 500 m per segment.
func lineDataset() core.Dataset {
	return core.Dataset{
		Nodes: []core.RawNode{
			{ID: "A", Lat: 0, Lon: 0},
			{ID: "B", Lat: 0, Lon: sideDeg},
			{ID: "C", Lat: 0, Lon: 2 * sideDeg},
		},
		Ways: []core.RawWay{{ID: "w1", NodeIDs: []string{"A", "B", "C"}}},
	}
}

// squareDataset: a 500 m square A,B,C,D; withDiagonal adds A↔C (~708 m).
func squareDataset(withDiagonal bool) core.Dataset {
	ds := core.Dataset{
		Nodes: []core.RawNode{
			{ID: "A", Lat: 0, Lon: 0},
			{ID: "B", Lat: 0, Lon: sideDeg},
			{ID: "C", Lat: sideDeg, Lon: sideDeg},
			{ID: "D", Lat: sideDeg, Lon: 0},
		},
		Ways: []core.RawWay{{ID: "w1", NodeIDs: []string{"A", "B", "C", "D", "A"}}},
	}
	if withDiagonal {
		ds.Ways = append(ds.Ways, core.RawWay{ID: "diag", NodeIDs: []string{"A", "C"}})
	}
	return ds
}

// islandsDataset: two components, A↔B and X↔Y.
func islandsDataset() core.Dataset {
	return core.Dataset{
		Nodes: []core.RawNode{
			{ID: "A", Lat: 0, Lon: 0},
			{ID: "B", Lat: 0, Lon: sideDeg},
			{ID: "X", Lat: 1, Lon: 1},
			{ID: "Y", Lat: 1, Lon: 1 + sideDeg},
		},
		Ways: []core.RawWay{
			{ID: "w1", NodeIDs: []string{"A", "B"}},
			{ID: "w2", NodeIDs: []string{"X", "Y"}},
		},
	}
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := pathfind.ShortestPath(nil, "A", "B")
	if !errors.Is(err, pathfind.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPath_EmptyIDs(t *testing.T) {
	g := buildGraph(t, lineDataset())
	if _, err := pathfind.ShortestPath(g, "", "C"); !errors.Is(err, pathfind.ErrEmptyNodeID) {
		t.Fatalf("empty start: expected ErrEmptyNodeID, got %v", err)
	}
	if _, err := pathfind.ShortestPath(g, "A", ""); !errors.Is(err, pathfind.ErrEmptyNodeID) {
		t.Fatalf("empty goal: expected ErrEmptyNodeID, got %v", err)
	}
}

func TestShortestPath_NodeNotFound(t *testing.T) {
	g := buildGraph(t, lineDataset())
	if _, err := pathfind.ShortestPath(g, "ghost", "C"); !errors.Is(err, pathfind.ErrNodeNotFound) {
		t.Fatalf("unknown start: expected ErrNodeNotFound, got %v", err)
	}
	if _, err := pathfind.ShortestPath(g, "A", "ghost"); !errors.Is(err, pathfind.ErrNodeNotFound) {
		t.Fatalf("unknown goal: expected ErrNodeNotFound, got %v", err)
	}
}

func TestShortestPath_OptionViolations(t *testing.T) {
	g := buildGraph(t, lineDataset())
	bad := []pathfind.Option{
		pathfind.WithMaxDistance(0),
		pathfind.WithMaxDistance(-10),
		pathfind.WithMaxDistance(math.NaN()),
		pathfind.WithWeightFactor(-1),
		pathfind.WithAlgorithm(pathfind.Algorithm(42)),
	}
	for i, opt := range bad {
		if _, err := pathfind.ShortestPath(g, "A", "C", opt); !errors.Is(err, pathfind.ErrOptionViolation) {
			t.Errorf("option %d: expected ErrOptionViolation, got %v", i, err)
		}
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: Path correctness on hand-checkable geometry.
// ------------------------------------------------------------------------

func TestShortestPath_Line(t *testing.T) {
	g := buildGraph(t, lineDataset())

	res, err := pathfind.ShortestPath(g, "A", "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil {
		t.Fatal("expected a path, got nil")
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v, want %v", res.Path, want)
	}
	if math.Abs(res.Distance-2*sideMeters) > 0.5 {
		t.Errorf("Distance = %v, want ≈ %v", res.Distance, 2*sideMeters)
	}
}

func TestShortestPath_PrefersDiagonal(t *testing.T) {
	g := buildGraph(t, squareDataset(true))

	res, err := pathfind.ShortestPath(g, "A", "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "C"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v, want %v (the ~708 m diagonal beats two 500 m sides)", res.Path, want)
	}
}

func TestShortestPath_TrivialSameNode(t *testing.T) {
	g := buildGraph(t, lineDataset())

	res, err := pathfind.ShortestPath(g, "B", "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res.Path, []string{"B"}) || res.Distance != 0 {
		t.Errorf("trivial result = %+v, want Path [B], Distance 0", res)
	}
	if res.Edges() != nil {
		t.Errorf("trivial Edges() = %v, want nil", res.Edges())
	}
}

// ------------------------------------------------------------------------
// 3. Unreachable Goals: nil result, nil error.
// ------------------------------------------------------------------------

func TestShortestPath_Unreachable(t *testing.T) {
	g := buildGraph(t, islandsDataset())

	res, err := pathfind.ShortestPath(g, "A", "Y")
	if err != nil {
		t.Fatalf("unreachable goal must not error, got %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result for unreachable goal, got %+v", res)
	}
}

// ------------------------------------------------------------------------
// 4. MaxDistance: the cap prunes exploration in meters.
// ------------------------------------------------------------------------

func TestShortestPath_MaxDistance(t *testing.T) {
	g := buildGraph(t, lineDataset())

	// A→C needs ≈ 1000.75 m; an 800 m cap makes it unreachable.
	res, err := pathfind.ShortestPath(g, "A", "C", pathfind.WithMaxDistance(800))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("cap 800 m: expected nil, got %+v", res)
	}

	// A slightly generous cap admits the path again.
	res, err = pathfind.ShortestPath(g, "A", "C", pathfind.WithMaxDistance(1100))
	if err != nil || res == nil {
		t.Fatalf("cap 1100 m: expected a path, got res=%v err=%v", res, err)
	}
}

// fourStopDataset: A──B──C──D along the equator, ~1 km per segment.
func fourStopDataset() core.Dataset {
	step := 2 * sideDeg
	return core.Dataset{
		Nodes: []core.RawNode{
			{ID: "A", Lat: 0, Lon: 0},
			{ID: "B", Lat: 0, Lon: step},
			{ID: "C", Lat: 0, Lon: 2 * step},
			{ID: "D", Lat: 0, Lon: 3 * step},
		},
		Ways: []core.RawWay{{ID: "w1", NodeIDs: []string{"A", "B", "C", "D"}}},
	}
}

// TestShortestPath_FourStopLine walks the canonical km-scale shapes: a
// generous cap traverses the full line, a 2 km cap severs it, and banning
// the first hop severs it regardless of cap.
func TestShortestPath_FourStopLine(t *testing.T) {
	g := buildGraph(t, fourStopDataset())
	edge := 2 * sideMeters

	res, err := pathfind.ShortestPath(g, "A", "D", pathfind.WithMaxDistance(10000))
	if err != nil || res == nil {
		t.Fatalf("expected a path, got res=%v err=%v", res, err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v, want %v", res.Path, want)
	}
	if math.Abs(res.Distance-3*edge) > 1 {
		t.Errorf("Distance = %v, want ≈ %v", res.Distance, 3*edge)
	}

	res, err = pathfind.ShortestPath(g, "A", "D", pathfind.WithMaxDistance(2000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("cap 2000 m: expected nil, got %+v", res)
	}

	res, err = pathfind.ShortestPath(g, "A", "D",
		pathfind.WithForbiddenEdges(core.EdgeID("A", "B")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("first hop banned: expected nil, got %+v", res)
	}
}

// ------------------------------------------------------------------------
// 5. Forbidden Edges: directed exclusion, reroute or fail.
// ------------------------------------------------------------------------

func TestShortestPath_ForbiddenReroutes(t *testing.T) {
	g := buildGraph(t, squareDataset(true))

	res, err := pathfind.ShortestPath(g, "A", "C",
		pathfind.WithForbiddenEdges(core.EdgeID("A", "C")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v, want %v after banning the diagonal", res.Path, want)
	}
}

func TestShortestPath_ForbiddenIsDirected(t *testing.T) {
	g := buildGraph(t, lineDataset())

	// Banning the reverse traversal must not affect the forward search.
	res, err := pathfind.ShortestPath(g, "A", "C",
		pathfind.WithForbiddenEdges(core.EdgeID("B", "A"), core.EdgeID("C", "B")))
	if err != nil || res == nil {
		t.Fatalf("expected a path, got res=%v err=%v", res, err)
	}

	// Banning the only forward edge severs the route.
	res, err = pathfind.ShortestPath(g, "A", "C",
		pathfind.WithForbiddenEdges(core.EdgeID("A", "B")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil after banning the only outbound edge, got %+v", res)
	}
}

func TestForbidUndirected(t *testing.T) {
	got := pathfind.ForbidUndirected("A", "B", "C")
	want := []string{
		core.EdgeID("A", "B"), core.EdgeID("B", "A"),
		core.EdgeID("B", "C"), core.EdgeID("C", "B"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ForbidUndirected = %v, want %v", got, want)
	}
	if ids := pathfind.ForbidUndirected("A"); ids != nil {
		t.Errorf("single node: got %v, want nil", ids)
	}

	// The expansion severs the hop regardless of travel direction.
	g := buildGraph(t, lineDataset())
	res, err := pathfind.ShortestPath(g, "C", "A",
		pathfind.WithForbiddenEdges(pathfind.ForbidUndirected("A", "B")...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil after the undirected ban, got %+v", res)
	}
}

// ------------------------------------------------------------------------
// 6. WeightFactor: terrain blending changes the chosen route.
// ------------------------------------------------------------------------

// weightedDataset: direct S→M is short but heavy (factor 3.5); the detour
// S→P→Q→M is three light segments.
func weightedDataset() core.Dataset {
	return core.Dataset{
		Nodes: []core.RawNode{
			{ID: "S", Lat: 0, Lon: 0},
			{ID: "M", Lat: 0, Lon: sideDeg},
			{ID: "P", Lat: sideDeg, Lon: 0},
			{ID: "Q", Lat: sideDeg, Lon: sideDeg},
		},
		Ways: []core.RawWay{
			{ID: "scree", NodeIDs: []string{"S", "M"}, CostFactor: 3.5},
			{ID: "track", NodeIDs: []string{"S", "P", "Q", "M"}},
		},
	}
}

func TestShortestPath_WeightFactor(t *testing.T) {
	g := buildGraph(t, weightedDataset())

	// Factor 0: pure distance, the 500 m scree crossing wins.
	res, err := pathfind.ShortestPath(g, "S", "M", pathfind.WithWeightFactor(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"S", "M"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("factor 0: Path = %v, want %v", res.Path, want)
	}

	// Factor 1 (default): the scree weight (1751 m) loses to the 1501 m track.
	res, err = pathfind.ShortestPath(g, "S", "M")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"S", "P", "Q", "M"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("factor 1: Path = %v, want %v", res.Path, want)
	}
	if math.Abs(res.Distance-3*sideMeters) > 1 {
		t.Errorf("Distance reports meters walked = %v, want ≈ %v", res.Distance, 3*sideMeters)
	}
}

// ------------------------------------------------------------------------
// 7. Algorithm Equivalence & Determinism.
// ------------------------------------------------------------------------

// gridDataset wires size×size nodes into a street grid, ~100 m spacing.
func gridDataset(size int) core.Dataset {
	const step = 0.0009
	var ds core.Dataset
	id := func(x, y int) string { return fmt.Sprintf("n%d_%d", x, y) }
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			ds.Nodes = append(ds.Nodes, core.RawNode{
				ID: id(x, y), Lat: float64(y) * step, Lon: float64(x) * step,
			})
			if x > 0 {
				ds.Ways = append(ds.Ways, core.RawWay{
					ID: fmt.Sprintf("h%d_%d", x, y), NodeIDs: []string{id(x - 1, y), id(x, y)},
				})
			}
			if y > 0 {
				ds.Ways = append(ds.Ways, core.RawWay{
					ID: fmt.Sprintf("v%d_%d", x, y), NodeIDs: []string{id(x, y - 1), id(x, y)},
				})
			}
		}
	}
	return ds
}

func TestShortestPath_DijkstraEqualsAStar(t *testing.T) {
	g := buildGraph(t, gridDataset(6))

	pairs := [][2]string{
		{"n0_0", "n5_5"},
		{"n0_5", "n5_0"},
		{"n2_1", "n3_4"},
		{"n0_0", "n0_0"},
	}
	for _, p := range pairs {
		d, err := pathfind.ShortestPath(g, p[0], p[1])
		if err != nil {
			t.Fatalf("dijkstra %v: %v", p, err)
		}
		a, err := pathfind.ShortestPath(g, p[0], p[1], pathfind.WithAlgorithm(pathfind.AStar))
		if err != nil {
			t.Fatalf("astar %v: %v", p, err)
		}
		if !reflect.DeepEqual(d.Path, a.Path) {
			t.Errorf("%v: dijkstra %v != astar %v", p, d.Path, a.Path)
		}
		if math.Abs(d.Distance-a.Distance) > 1e-9 {
			t.Errorf("%v: distance %v != %v", p, d.Distance, a.Distance)
		}
	}
}

func TestShortestPath_Deterministic(t *testing.T) {
	// Two equal-cost routes around the square; the node-ID tie-break must
	// always pick the same one.
	g := buildGraph(t, squareDataset(false))

	first, err := pathfind.ShortestPath(g, "A", "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(first.Path, want) {
		t.Fatalf("tie-break picked %v, want %v", first.Path, want)
	}
	for i := 0; i < 10; i++ {
		res, err := pathfind.ShortestPath(g, "A", "C")
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if !reflect.DeepEqual(res.Path, first.Path) {
			t.Fatalf("run %d: Path = %v, want %v", i, res.Path, first.Path)
		}
	}
}

// ------------------------------------------------------------------------
// 8. Cancellation: context errors propagate unwrapped.
// ------------------------------------------------------------------------

func TestShortestPath_ContextCanceled(t *testing.T) {
	g := buildGraph(t, gridDataset(4))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pathfind.ShortestPath(g, "n0_0", "n3_3", pathfind.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 9. PathResult helpers.
// ------------------------------------------------------------------------

func TestPathResult_Edges(t *testing.T) {
	g := buildGraph(t, lineDataset())

	res, err := pathfind.ShortestPath(g, "A", "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"A->B", "B->C"}
	if !reflect.DeepEqual(res.Edges(), want) {
		t.Errorf("Edges() = %v, want %v", res.Edges(), want)
	}
}
