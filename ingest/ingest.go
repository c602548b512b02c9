package ingest

import "errors"

var (
	// ErrDecode indicates the input could not be parsed as its format.
	ErrDecode = errors.New("ingest: malformed input")

	// ErrEmptyDataset indicates nothing routable survived filtering.
	ErrEmptyDataset = errors.New("ingest: no routable data found")
)

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
