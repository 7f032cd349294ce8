// Package pagerank estimates the relative importance of pages in a link
// graph with two independent methods: a Monte-Carlo random-surfer walk and
// a deterministic fixed-point iteration. Both approximate the stationary
// distribution of the same Markov chain and should agree within sampling
// tolerance on any graph.
package pagerank

import (
	"errors"

	"github.com/mlodato/surfrank/graph"
)

// Distribution assigns a probability to every page in a graph. Values are
// non-negative and sum to 1 within floating-point tolerance.
type Distribution map[string]float64

var (
	ErrEmptyGraph = errors.New("graph has no pages")
	ErrBadDamping = errors.New("damping factor must be in (0, 1)")
	ErrBadSamples = errors.New("sample count must be positive")
)

// Sum returns the total probability mass of the distribution.
func (d Distribution) Sum() float64 {
	total := 0.0
	for _, v := range d {
		total += v
	}
	return total
}

func validate(g graph.Graph, damping float64) error {
	if len(g) == 0 {
		return ErrEmptyGraph
	}
	if damping <= 0 || damping >= 1 {
		return ErrBadDamping
	}
	return nil
}
