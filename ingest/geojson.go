package ingest

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/quentintr/trailgen/core"
)

// coordPrecision unifies shared endpoints: 1e-7 degrees ≈ 1 cm.
const coordPrecision = 1e7

// coordID derives a stable node ID from a rounded coordinate, so features
// that touch at an endpoint reference the same node.
func coordID(p orb.Point) string {
	lat := int64(math.Round(p.Lat() * coordPrecision))
	lon := int64(math.Round(p.Lon() * coordPrecision))
	return strconv.FormatInt(lat, 10) + "," + strconv.FormatInt(lon, 10)
}

// GeoJSON decodes a feature collection into a Dataset. LineString and
// MultiLineString features become ways; every other geometry is skipped.
//
// Features may carry "cost_factor" (≥ 1), "quality" (0..1] and "name"
// properties. A zero cost factor or quality defers to the core defaults.
func GeoJSON(r io.Reader) (core.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return core.Dataset{}, fmt.Errorf("%w: geojson: %v", ErrDecode, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return core.Dataset{}, fmt.Errorf("%w: geojson: %v", ErrDecode, err)
	}

	var ds core.Dataset
	seen := make(map[string]bool)

	addLine := func(id string, ls orb.LineString, factor, quality float64) {
		if len(ls) < 2 {
			return
		}
		refs := make([]string, 0, len(ls))
		for _, p := range ls {
			nid := coordID(p)
			if !seen[nid] {
				seen[nid] = true
				ds.Nodes = append(ds.Nodes, core.RawNode{
					ID: nid, Lat: p.Lat(), Lon: p.Lon(),
				})
			}
			refs = append(refs, nid)
		}
		ds.Ways = append(ds.Ways, core.RawWay{
			ID: id, NodeIDs: refs, CostFactor: factor, Quality: quality,
		})
	}

	for i, f := range fc.Features {
		factor := f.Properties.MustFloat64("cost_factor", 0)
		if factor != 0 && factor < 1 {
			factor = 1 // sanitize: sub-unit factors would undercut distance
		}
		quality := clamp(f.Properties.MustFloat64("quality", 0), 0, 1)
		name := f.Properties.MustString("name", "")
		if name == "" {
			name = "feature/" + strconv.Itoa(i)
		}

		switch geom := f.Geometry.(type) {
		case orb.LineString:
			addLine(name, geom, factor, quality)
		case orb.MultiLineString:
			for part, ls := range geom {
				addLine(fmt.Sprintf("%s/%d", name, part), ls, factor, quality)
			}
		}
	}

	if len(ds.Ways) == 0 || len(ds.Nodes) == 0 {
		return core.Dataset{}, fmt.Errorf("%w: %d features, no usable lines",
			ErrEmptyDataset, len(fc.Features))
	}
	return ds, nil
}
