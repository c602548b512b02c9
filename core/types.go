// Package core defines the central Node, Edge, and Graph types, the raw
// Dataset they are built from, and the sentinel errors BuildGraph can return.
//
// A Graph is immutable after construction: all read paths are lock-free, and
// "updating" a graph means building a new one and swapping it into a Handle.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph construction.
var (
	// ErrNoNodes indicates the dataset defines no nodes at all.
	ErrNoNodes = errors.New("core: dataset has no nodes")

	// ErrEmptyNodeID indicates a raw node with a zero-length ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates two raw nodes share the same ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrBadCoordinate indicates a latitude/longitude that is NaN, infinite,
	// or outside [-90,90] / [-180,180].
	ErrBadCoordinate = errors.New("core: coordinate out of range")

	// ErrEmptyWayID indicates a raw way with a zero-length ID.
	ErrEmptyWayID = errors.New("core: way ID is empty")

	// ErrShortWay indicates a way referencing fewer than two nodes.
	ErrShortWay = errors.New("core: way has fewer than two node refs")

	// ErrUnknownWayNode indicates a way referencing a node the dataset does
	// not define (dangling reference).
	ErrUnknownWayNode = errors.New("core: way references unknown node")

	// ErrBadCostFactor indicates a way cost factor below 1 (zero is allowed
	// and means DefaultCostFactor).
	ErrBadCostFactor = errors.New("core: cost factor below 1")

	// ErrBadQuality indicates a way quality outside [0,1] (zero is allowed
	// and means DefaultQuality).
	ErrBadQuality = errors.New("core: quality outside [0,1]")
)

const (
	// DefaultCostFactor is applied to ways whose CostFactor is unset (zero).
	DefaultCostFactor = 1.0

	// DefaultQuality is applied to ways whose Quality is unset (zero).
	DefaultQuality = 0.5

	// edgeIDSep joins the endpoint IDs of a directed edge into its ID.
	edgeIDSep = "->"
)

// RawNode is one point of the source dataset, prior to graph construction.
type RawNode struct {
	// ID uniquely identifies the node within its Dataset.
	ID string

	// SourceID is the upstream identifier (e.g. the OSM node id), kept for
	// traceability. May be empty.
	SourceID string

	// Lat and Lon are WGS84 decimal degrees.
	Lat, Lon float64
}

// RawWay is an ordered run of node references describing one trail or road,
// prior to graph construction. Every consecutive node pair becomes a
// bidirectional segment.
type RawWay struct {
	// ID is the upstream way identifier, stamped on every derived edge as
	// SourceWayID.
	ID string

	// NodeIDs is the ordered list of node references; at least two.
	NodeIDs []string

	// CostFactor scales segment distance into routing weight (terrain
	// penalty). Must be ≥ 1; zero means DefaultCostFactor.
	CostFactor float64

	// Quality is the surface quality score in (0,1]; zero means
	// DefaultQuality.
	Quality float64
}

// Dataset is the raw material BuildGraph turns into a routable Graph.
type Dataset struct {
	Nodes []RawNode
	Ways  []RawWay
}

// Node is one routable point of a built Graph.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// SourceID is the upstream identifier carried over from the RawNode.
	SourceID string

	// Lat and Lon are WGS84 decimal degrees.
	Lat, Lon float64

	// Connections holds the IDs of all directly reachable neighbor nodes,
	// unique and sorted.
	Connections []string
}

// Degree returns the number of distinct neighbors. Derived, never stored.
func (n *Node) Degree() int { return len(n.Connections) }

// IsIntersection reports whether the node joins more than two segments.
func (n *Node) IsIntersection() bool { return n.Degree() > 2 }

// Edge is one directed traversal of a physical segment. Every segment is
// stored twice, once per direction.
type Edge struct {
	// ID is the derived edge identifier, EdgeID(From, To).
	ID string

	// SourceWayID is the upstream way this edge was derived from.
	SourceWayID string

	// From and To are the endpoint node IDs, in traversal order.
	From, To string

	// Distance is the haversine length of the segment in meters.
	Distance float64

	// Weight is the routing cost: Distance scaled by the way's cost factor.
	// Invariant: Weight ≥ Distance ≥ 0.
	Weight float64

	// Quality is the surface quality score in (0,1].
	Quality float64
}

// EdgeID derives the canonical directed edge identifier for an ordered node
// pair. EdgeID("A", "B") == "A->B"; the reverse traversal is EdgeID("B", "A").
func EdgeID(from, to string) string { return from + edgeIDSep + to }

// ReverseEdgeID returns the identifier of the opposite traversal of e.
func ReverseEdgeID(e *Edge) string { return EdgeID(e.To, e.From) }

// validCoordinate reports whether (lat, lon) is a finite WGS84 position.
func validCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// wrapNode decorates a construction sentinel with the offending node ID.
func wrapNode(sentinel error, id string) error {
	return fmt.Errorf("%w: node %q", sentinel, id)
}

// wrapWay decorates a construction sentinel with the offending way ID.
func wrapWay(sentinel error, id string) error {
	return fmt.Errorf("%w: way %q", sentinel, id)
}
