package pagerank

import (
	"math/rand"
	"time"

	"github.com/mlodato/surfrank/graph"
)

// Sample estimates the stationary distribution of the random-surfer chain
// with a single walk of n transitions from a uniformly random starting
// page. Each page's rank is the fraction of the n+1 visited positions it
// occupies, so the result is stochastic; it converges to the iterated
// fixed point as n grows.
//
// The walk is driven entirely by rng, so a seeded source reproduces the
// exact same estimate. A nil rng falls back to a time-seeded one.
func Sample(g graph.Graph, damping float64, n int, rng *rand.Rand) (Distribution, error) {
	if err := validate(g, damping); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, ErrBadSamples
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pages := g.Pages()
	page := pages[rng.Intn(len(pages))]
	counts := make(map[string]int, len(g))
	counts[page]++
	for i := 0; i < n; i++ {
		dist, err := Transition(g, page, damping)
		if err != nil {
			return nil, err
		}
		page = draw(pages, dist, rng)
		counts[page]++
	}

	visits := float64(n + 1)
	ranks := make(Distribution, len(g))
	for _, p := range pages {
		ranks[p] = float64(counts[p]) / visits
	}
	return ranks, nil
}

// draw picks a page from dist, scanning pages in sorted order so a seeded
// source yields a reproducible walk.
func draw(pages []string, dist Distribution, rng *rand.Rand) string {
	r := rng.Float64()
	acc := 0.0
	for _, p := range pages {
		acc += dist[p]
		if r < acc {
			return p
		}
	}
	// The accumulated sum can land a hair under 1
	return pages[len(pages)-1]
}
