package pagerank

import (
	"math"

	"github.com/mlodato/surfrank/graph"
)

// Safety cap against a threshold too small for floating precision
const maxRounds = 1000

// Iterate computes PageRank as the fixed point of the rank recurrence
//
//	rank(p) = (1-d)/k + d * sum over q linking to p of rank(q)/|links(q)|
//
// starting from a uniform distribution. Ranks are updated synchronously,
// each round reading only the previous round's values, until every page's
// round-over-round change is strictly below epsilon.
func Iterate(g graph.Graph, damping, epsilon float64) (Distribution, error) {
	return IterateFrom(g, damping, epsilon, nil)
}

// IterateFrom is Iterate with a caller-supplied starting distribution;
// a nil init starts uniform. Running it again from a converged result
// stays within epsilon of that result.
func IterateFrom(g graph.Graph, damping, epsilon float64, init Distribution) (Distribution, error) {
	if err := validate(g, damping); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	k := float64(len(g))
	ranks := make(Distribution, len(g))
	for p := range g {
		ranks[p] = 1 / k
	}
	for p, v := range init {
		if _, ok := g[p]; ok {
			ranks[p] = v
		}
	}

	for round := 0; round < maxRounds; round++ {
		next := make(Distribution, len(g))
		for p := range g {
			sum := 0.0
			for q := range g {
				links := g.Links(q)
				if links[p] {
					sum += ranks[q] / float64(len(links))
				}
			}
			next[p] = (1-damping)/k + damping*sum
		}

		// Per-page convergence check; a change exactly at epsilon keeps
		// iterating
		converged := true
		for p := range g {
			if math.Abs(next[p]-ranks[p]) >= epsilon {
				converged = false
				break
			}
		}
		ranks = next
		if converged {
			break
		}
	}
	return ranks, nil
}
