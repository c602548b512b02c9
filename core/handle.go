package core

import "sync/atomic"

// Handle is an atomic reference to the current Graph, for services that
// reload map data while requests are in flight.
//
// Readers call Graph() once per request and keep that instance for the whole
// operation; Swap publishes a freshly built Graph without blocking them. The
// old graph stays valid until its last reader drops it.
type Handle struct {
	p atomic.Pointer[Graph]
}

// NewHandle returns a Handle publishing g (which may be nil until the first
// Swap).
func NewHandle(g *Graph) *Handle {
	h := &Handle{}
	h.p.Store(g)
	return h
}

// Graph returns the currently published graph. Complexity: O(1).
func (h *Handle) Graph() *Graph { return h.p.Load() }

// Swap publishes g and returns the previously published graph.
// Complexity: O(1).
func (h *Handle) Swap(g *Graph) *Graph { return h.p.Swap(g) }
