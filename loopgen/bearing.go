package loopgen

import (
	"math/rand"

	"github.com/quentintr/trailgen/geo"
)

// sampleBearings returns the outbound bearing fan for cfg: oversampled
// relative to NumVariants (4 per variant, clamped to [8, 32]) and evenly
// spaced around the compass. With Jitter set, each bearing is nudged within
// ±spacing/4 by a seeded generator, so runs stay reproducible per seed.
func sampleBearings(cfg Options) []float64 {
	count := bearingsPerVariant * cfg.NumVariants
	if count < minBearings {
		count = minBearings
	}
	if count > maxBearings {
		count = maxBearings
	}

	spacing := 360.0 / float64(count)
	var rng *rand.Rand
	if cfg.Jitter {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	out := make([]float64, count)
	for i := range out {
		b := float64(i) * spacing
		if rng != nil {
			b += (rng.Float64() - 0.5) * spacing / 2
		}
		out[i] = geo.NormalizeBearing(b)
	}
	return out
}
