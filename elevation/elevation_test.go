package elevation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quentintr/trailgen/core"
	"github.com/quentintr/trailgen/elevation"
	"github.com/quentintr/trailgen/loopgen"
)

// sideMeters is the length of one square side (0.0045° on the equator).
const sideMeters = 500.377

// squareGraph builds a 500 m square ring A,B,C,D.
func squareGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.BuildGraph(core.Dataset{
		Nodes: []core.RawNode{
			{ID: "A", Lat: 0, Lon: 0},
			{ID: "B", Lat: 0, Lon: 0.0045},
			{ID: "C", Lat: 0.0045, Lon: 0.0045},
			{ID: "D", Lat: 0.0045, Lon: 0},
		},
		Ways: []core.RawWay{
			{ID: "ring", NodeIDs: []string{"A", "B", "C", "D", "A"}},
		},
	})
	require.NoError(t, err)
	return g
}

// nodeProvider serves elevations keyed by node coordinates, so it works for
// any traversal direction.
func nodeProvider(t *testing.T, g *core.Graph, byNode map[string]float64) elevation.Provider {
	t.Helper()
	type key struct{ lat, lon float64 }
	byCoord := make(map[key]float64, len(byNode))
	for id, elev := range byNode {
		n, ok := g.Node(id)
		require.True(t, ok, "node %q", id)
		byCoord[key{n.Lat, n.Lon}] = elev
	}
	return elevation.Func(func(_ context.Context, lats, lons []float64) ([]float64, error) {
		out := make([]float64, len(lats))
		for i := range lats {
			elev, ok := byCoord[key{lats[i], lons[i]}]
			require.True(t, ok, "unexpected coordinate %v,%v", lats[i], lons[i])
			out[i] = elev
		}
		return out, nil
	})
}

// mkLoop hand-builds a GeneratedLoop along the given nodes.
func mkLoop(nodes ...string) *loopgen.GeneratedLoop {
	l := &loopgen.GeneratedLoop{Loop: nodes}
	for i := 0; i+1 < len(nodes); i++ {
		l.PathEdges = append(l.PathEdges, core.EdgeID(nodes[i], nodes[i+1]))
	}
	return l
}

func TestEnrich_Profile(t *testing.T) {
	g := squareGraph(t)
	res, err := loopgen.Generate(g,
		loopgen.WithStartNode("A"),
		loopgen.WithTargetDistance(2000))
	require.NoError(t, err)
	require.NotEmpty(t, res.Loops)
	l := res.Loops[0]

	p := nodeProvider(t, g, map[string]float64{
		"A": 600, "B": 612, "C": 605, "D": 630,
	})
	prof, err := elevation.Enrich(context.Background(), p, g, &l)
	require.NoError(t, err)

	require.Len(t, prof.Samples, 5)
	assert.Equal(t, "A", prof.Samples[0].NodeID)
	assert.Equal(t, "A", prof.Samples[4].NodeID)
	assert.Equal(t, 600.0, prof.Samples[0].Elevation)
	assert.Equal(t, 600.0, prof.Samples[4].Elevation)
	for i, s := range prof.Samples {
		assert.InDelta(t, float64(i)*sideMeters, s.Distance, 1.0, "sample %d", i)
	}

	// Around the full ring every delta clears the 1 m threshold, so gain
	// and loss both total the committed climb regardless of direction.
	assert.InDelta(t, 37.0, prof.Gain, 1e-9)
	assert.InDelta(t, 37.0, prof.Loss, 1e-9)
}

func TestEnrich_HysteresisFiltersJitter(t *testing.T) {
	g := squareGraph(t)
	l := mkLoop("A", "D", "C", "B", "A")
	p := nodeProvider(t, g, map[string]float64{
		"A": 600, "D": 600.4, "C": 600.2, "B": 600.3,
	})

	prof, err := elevation.Enrich(context.Background(), p, g, l)
	require.NoError(t, err)
	assert.Zero(t, prof.Gain)
	assert.Zero(t, prof.Loss)

	// With smoothing disabled, every delta counts.
	raw, err := elevation.Enrich(context.Background(), p, g, l,
		elevation.WithHysteresis(0))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, raw.Gain, 1e-9)
	assert.InDelta(t, 0.5, raw.Loss, 1e-9)
}

func TestEnrich_PendingDeltasAccumulate(t *testing.T) {
	g := squareGraph(t)
	l := mkLoop("A", "D", "C", "B", "A")
	// Three 0.6 m steps up, then one 1.8 m drop: the first two steps clear
	// the threshold together, the third stays pending until the drop.
	p := nodeProvider(t, g, map[string]float64{
		"A": 600, "D": 600.6, "C": 601.2, "B": 601.8,
	})

	prof, err := elevation.Enrich(context.Background(), p, g, l)
	require.NoError(t, err)
	assert.InDelta(t, 1.2, prof.Gain, 1e-9)
	assert.InDelta(t, 1.2, prof.Loss, 1e-9)
}

func TestEnrich_Errors(t *testing.T) {
	g := squareGraph(t)
	l := mkLoop("A", "B", "A")
	flat := elevation.Func(func(_ context.Context, lats, _ []float64) ([]float64, error) {
		return make([]float64, len(lats)), nil
	})

	_, err := elevation.Enrich(context.Background(), nil, g, l)
	assert.True(t, errors.Is(err, elevation.ErrNilProvider))

	_, err = elevation.Enrich(context.Background(), flat, nil, l)
	assert.True(t, errors.Is(err, elevation.ErrNilGraph))

	_, err = elevation.Enrich(context.Background(), flat, g, nil)
	assert.True(t, errors.Is(err, elevation.ErrNilLoop))

	_, err = elevation.Enrich(context.Background(), flat, g,
		&loopgen.GeneratedLoop{Loop: []string{"A", "B", "A"}})
	assert.True(t, errors.Is(err, elevation.ErrMalformedLoop))

	_, err = elevation.Enrich(context.Background(), flat, g, mkLoop("A", "ghost", "A"))
	assert.True(t, errors.Is(err, elevation.ErrUnknownEdge))

	_, err = elevation.Enrich(context.Background(), flat, g, l,
		elevation.WithHysteresis(-1))
	assert.True(t, errors.Is(err, elevation.ErrOptionViolation))

	boom := errors.New("tile server down")
	failing := elevation.Func(func(_ context.Context, _, _ []float64) ([]float64, error) {
		return nil, boom
	})
	_, err = elevation.Enrich(context.Background(), failing, g, l)
	assert.True(t, errors.Is(err, boom))

	short := elevation.Func(func(_ context.Context, _, _ []float64) ([]float64, error) {
		return []float64{1}, nil
	})
	_, err = elevation.Enrich(context.Background(), short, g, l)
	assert.True(t, errors.Is(err, elevation.ErrSampleCount))
}
