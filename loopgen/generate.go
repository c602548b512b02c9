// Package loopgen closed-loop generation pipeline: bearing fan-out, candidate
// assembly, scoring, filtering, dedupe and ranking.
package loopgen

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/quentintr/trailgen/core"
)

// Generate produces up to NumVariants closed loops through g, starting and
// ending at the configured start node, near the configured target distance.
//
// Errors are reserved for misuse (nil graph, missing or invalid options).
// Every data-shaped outcome (unknown start, sparse terrain, deadline expiry
// mid-generation) returns a valid Result whose Debug.Warnings explain what
// happened; with an expired context the candidates assembled so far are
// still filtered, ranked and returned.
func Generate(g *core.Graph, opts ...Option) (*Result, error) {
	started := time.Now()

	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Start == "" {
		return nil, ErrEmptyStart
	}
	if cfg.TargetDistance <= 0 {
		return nil, ErrBadTargetDistance
	}
	if cfg.MaxSearch == 0 {
		cfg.MaxSearch = windowMax * cfg.TargetDistance
	}

	res := &Result{}

	// 2) Resolve the start node; absence is a warned empty result, not an
	//    error; the graph simply cannot serve this request.
	if !g.HasNode(cfg.Start) {
		res.Debug.Warnings = append(res.Debug.Warnings,
			fmt.Sprintf("start node %q not found in graph", cfg.Start))
		res.Debug.Elapsed = time.Since(started)
		return res, nil
	}
	if len(g.OutEdges(cfg.Start)) == 0 {
		res.Debug.Warnings = append(res.Debug.Warnings,
			fmt.Sprintf("start node %q has no outgoing segments", cfg.Start))
		res.Debug.Elapsed = time.Since(started)
		return res, nil
	}

	// 3) Sample the bearing fan.
	bearings := sampleBearings(cfg)
	res.Debug.BearingsTried = len(bearings)

	// 4) Explore bearings on a bounded worker pool. Workers never return
	//    errors: context expiry must degrade to partial results, not abort
	//    the group. Each worker owns exactly one slot, so no locking.
	type slot struct {
		cand    *candidate
		warn    string
		aborted bool
	}
	slots := make([]slot, len(bearings))

	eg, ctx := errgroup.WithContext(cfg.Ctx)
	eg.SetLimit(cfg.Workers)
	for i, b := range bearings {
		i, b := i, b // per-iteration copies; this module is built as go 1.21
		eg.Go(func() error {
			cand, warn, err := buildCandidate(ctx, g, cfg, b)
			switch {
			case err != nil:
				slots[i] = slot{aborted: true}
			case cand != nil:
				slots[i] = slot{cand: cand}
			default:
				slots[i] = slot{warn: warn}
			}
			if cfg.Verbose {
				switch {
				case cand != nil:
					fmt.Printf("loopgen: bearing %.0f° -> %d nodes, %.0f m\n", b, len(cand.loop), cand.dist)
				case warn != "":
					fmt.Printf("loopgen: %s\n", warn)
				}
			}
			return nil
		})
	}
	_ = eg.Wait() // workers never error; expiry is read from the slots

	// 5) Collect candidates and per-bearing warnings.
	var cands []*candidate
	interrupted := false
	for _, s := range slots {
		switch {
		case s.cand != nil:
			cands = append(cands, s.cand)
		case s.aborted:
			interrupted = true
			res.Debug.BearingsFailed++
		case s.warn != "":
			res.Debug.Warnings = append(res.Debug.Warnings, s.warn)
			res.Debug.BearingsFailed++
		}
	}
	if interrupted || cfg.Ctx.Err() != nil {
		res.Debug.Warnings = append(res.Debug.Warnings,
			"search interrupted before all bearings were explored; results may be partial")
	}

	// 6) Score every assembled candidate.
	for _, c := range cands {
		c.quality = score(g, cfg, c)
	}
	res.Debug.CandidatesScored = len(cands)

	// 7) Window filter: accept distances within [0.5, 1.5] × target.
	lo, hi := windowMin*cfg.TargetDistance, windowMax*cfg.TargetDistance
	kept := cands[:0]
	for _, c := range cands {
		if c.dist < lo || c.dist > hi {
			res.Debug.CandidatesFiltered++
			continue
		}
		kept = append(kept, c)
	}

	// 8) Rank: quality descending, then shorter distance, then bearing.
	//    The bearing key is unique per candidate, so the order is total.
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].quality != kept[j].quality {
			return kept[i].quality > kept[j].quality
		}
		if kept[i].dist != kept[j].dist {
			return kept[i].dist < kept[j].dist
		}
		return kept[i].bearing < kept[j].bearing
	})

	// 9) Dedupe best-first: a candidate too similar to an already-kept,
	//    better one is the same loop in disguise.
	var unique []*candidate
	for _, c := range kept {
		dup := false
		for _, u := range unique {
			if similarity(c, u) > cfg.DedupeOverlap {
				dup = true
				break
			}
		}
		if dup {
			res.Debug.CandidatesDeduped++
			continue
		}
		unique = append(unique, c)
	}

	// 10) Truncate to the requested variant count and export.
	if len(unique) > cfg.NumVariants {
		unique = unique[:cfg.NumVariants]
	}
	for _, c := range unique {
		res.Loops = append(res.Loops, GeneratedLoop{
			Loop:      c.loop,
			PathEdges: c.edges,
			Distance:  c.dist,
			Quality:   c.quality,
		})
	}

	// 11) An empty outcome always says why.
	if len(res.Loops) == 0 && len(res.Debug.Warnings) == 0 {
		res.Debug.Warnings = append(res.Debug.Warnings,
			fmt.Sprintf("no loops found within %.0f–%.0f m around %q", lo, hi, cfg.Start))
	}

	res.Debug.Elapsed = time.Since(started)
	return res, nil
}
