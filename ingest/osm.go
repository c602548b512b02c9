package ingest

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/osm"

	"github.com/quentintr/trailgen/core"
)

// wayProfile is the routing profile derived from a way's highway class.
type wayProfile struct {
	factor  float64 // cost multiplier, ≥ 1
	quality float64 // surface quality, (0,1]
}

// highwayProfiles whitelists the foot-suitable highway classes. Anything
// absent (motorway, trunk, primary, ...) is not routable on foot here.
var highwayProfiles = map[string]wayProfile{
	"path":          {1.0, 0.9},
	"footway":       {1.0, 0.8},
	"track":         {1.05, 0.75},
	"bridleway":     {1.1, 0.7},
	"steps":         {1.6, 0.5},
	"cycleway":      {1.1, 0.6},
	"pedestrian":    {1.1, 0.6},
	"living_street": {1.2, 0.5},
	"residential":   {1.3, 0.4},
	"unclassified":  {1.3, 0.4},
	"service":       {1.35, 0.35},
	"tertiary":      {1.5, 0.3},
}

// surfaceShift refines a profile by the surface tag: a multiplier on the
// cost factor and an additive shift on quality. Natural surfaces score
// higher for trail running, sealed ones lower.
var surfaceShift = map[string]struct {
	factor  float64
	quality float64
}{
	"ground":      {1.0, 0.10},
	"dirt":        {1.05, 0.10},
	"earth":       {1.05, 0.10},
	"grass":       {1.1, 0.05},
	"gravel":      {1.05, 0.05},
	"fine_gravel": {1.0, 0.05},
	"compacted":   {1.0, 0.05},
	"rock":        {1.25, 0.0},
	"sand":        {1.3, -0.05},
	"mud":         {1.4, -0.10},
	"paved":       {1.0, -0.10},
	"asphalt":     {1.0, -0.15},
	"concrete":    {1.0, -0.15},
}

// OSMXML decodes an OSM XML extract into a Dataset of foot-routable ways
// and the nodes they reference.
//
// Way references pointing outside the extract are dropped; a way keeps its
// remaining refs as long as two or more survive. Nodes referenced by no
// kept way are omitted from the result.
func OSMXML(r io.Reader) (core.Dataset, error) {
	var doc osm.OSM
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return core.Dataset{}, fmt.Errorf("%w: osm xml: %v", ErrDecode, err)
	}

	// 1) Index the extract's nodes.
	byID := make(map[osm.NodeID]*osm.Node, len(doc.Nodes))
	for _, n := range doc.Nodes {
		byID[n.ID] = n
	}

	// 2) Filter ways and derive their routing profiles.
	var ds core.Dataset
	used := make(map[osm.NodeID]bool)
	var order []osm.NodeID
	for _, w := range doc.Ways {
		profile, ok := profileFor(w.Tags)
		if !ok {
			continue
		}
		refs := make([]string, 0, len(w.Nodes))
		var kept []osm.NodeID
		for _, wn := range w.Nodes {
			if _, ok := byID[wn.ID]; !ok {
				continue // clipped at the extract boundary
			}
			refs = append(refs, strconv.FormatInt(int64(wn.ID), 10))
			kept = append(kept, wn.ID)
		}
		if len(refs) < 2 {
			continue
		}
		for _, id := range kept {
			if !used[id] {
				used[id] = true
				order = append(order, id)
			}
		}
		ds.Ways = append(ds.Ways, core.RawWay{
			ID:         fmt.Sprintf("way/%d", w.ID),
			NodeIDs:    refs,
			CostFactor: profile.factor,
			Quality:    profile.quality,
		})
	}

	// 3) Emit only the nodes some kept way references, in first-use order.
	for _, id := range order {
		n := byID[id]
		ds.Nodes = append(ds.Nodes, core.RawNode{
			ID:       strconv.FormatInt(int64(id), 10),
			SourceID: fmt.Sprintf("node/%d", id),
			Lat:      n.Lat,
			Lon:      n.Lon,
		})
	}

	if len(ds.Ways) == 0 || len(ds.Nodes) == 0 {
		return core.Dataset{}, fmt.Errorf("%w: %d nodes, %d routable ways",
			ErrEmptyDataset, len(ds.Nodes), len(ds.Ways))
	}
	return ds, nil
}

// profileFor resolves a way's tags to a routing profile, or reports the way
// unroutable.
func profileFor(tags osm.Tags) (wayProfile, bool) {
	p, ok := highwayProfiles[tags.Find("highway")]
	if !ok {
		return wayProfile{}, false
	}
	switch tags.Find("access") {
	case "private", "no":
		return wayProfile{}, false
	}
	if tags.Find("foot") == "no" {
		return wayProfile{}, false
	}
	// Closed polygons (parking lots, plazas mapped as areas) are not paths.
	if tags.Find("area") == "yes" {
		return wayProfile{}, false
	}
	if shift, ok := surfaceShift[tags.Find("surface")]; ok {
		p.factor *= shift.factor
		p.quality = clamp(p.quality+shift.quality, 0.05, 1)
	}
	return p, true
}
