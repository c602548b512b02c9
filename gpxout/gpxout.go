package gpxout

import (
	"errors"
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/quentintr/trailgen/core"
	"github.com/quentintr/trailgen/elevation"
	"github.com/quentintr/trailgen/loopgen"
)

var (
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("gpxout: graph must not be nil")
	// ErrNilLoop is returned when the loop argument is nil.
	ErrNilLoop = errors.New("gpxout: loop must not be nil")
	// ErrUnknownNode is returned when the loop references a node the graph
	// does not contain.
	ErrUnknownNode = errors.New("gpxout: loop references unknown node")
	// ErrProfileMismatch is returned when the elevation profile does not
	// have one sample per loop node.
	ErrProfileMismatch = errors.New("gpxout: profile sample count mismatch")
)

// DefaultCreator is stamped on documents unless WithCreator overrides it.
const DefaultCreator = "trailgen"

// Options configures Track.
type Options struct {
	Name        string
	Description string
	Creator     string
	Profile     *elevation.Profile
}

// Option mutates Options.
type Option func(*Options)

// WithName sets the document and track name. The default is derived from
// the loop distance.
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

// WithDescription sets the document description.
func WithDescription(desc string) Option {
	return func(o *Options) { o.Description = desc }
}

// WithCreator overrides the creator attribute.
func WithCreator(creator string) Option {
	return func(o *Options) { o.Creator = creator }
}

// WithProfile attaches an elevation profile; its samples must align with
// the loop nodes, which Enrich guarantees for the same loop.
func WithProfile(p *elevation.Profile) Option {
	return func(o *Options) { o.Profile = p }
}

// Track builds a GPX 1.1 document for l: one track with one segment and one
// point per loop node, in traversal order.
func Track(g *core.Graph, l *loopgen.GeneratedLoop, opts ...Option) (*gpx.GPX, error) {
	cfg := Options{Creator: DefaultCreator}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if l == nil {
		return nil, ErrNilLoop
	}
	if cfg.Profile != nil && len(cfg.Profile.Samples) != len(l.Loop) {
		return nil, fmt.Errorf("%w: %d samples for %d nodes",
			ErrProfileMismatch, len(cfg.Profile.Samples), len(l.Loop))
	}
	if cfg.Name == "" {
		cfg.Name = fmt.Sprintf("Loop %.1f km", l.Distance/1000)
	}

	seg := gpx.GPXTrackSegment{Points: make([]gpx.GPXPoint, 0, len(l.Loop))}
	for i, id := range l.Loop {
		n, ok := g.Node(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
		p := gpx.GPXPoint{Point: gpx.Point{Latitude: n.Lat, Longitude: n.Lon}}
		if cfg.Profile != nil {
			p.Elevation = *gpx.NewNullableFloat64(cfg.Profile.Samples[i].Elevation)
		}
		seg.Points = append(seg.Points, p)
	}

	doc := &gpx.GPX{
		Version:     "1.1",
		Creator:     cfg.Creator,
		Name:        cfg.Name,
		Description: cfg.Description,
		Tracks: []gpx.GPXTrack{{
			Name:     cfg.Name,
			Segments: []gpx.GPXTrackSegment{seg},
		}},
	}
	return doc, nil
}

// XML serializes doc as indented GPX 1.1.
func XML(doc *gpx.GPX) ([]byte, error) {
	return doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
}
