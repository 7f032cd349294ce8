package pagerank

import (
	"fmt"

	"github.com/mlodato/surfrank/graph"
)

// Transition computes the one-step probability of moving from page to every
// page in the graph: with probability damping the surfer follows one of
// page's links uniformly at random, otherwise it jumps to any page in the
// graph uniformly. A page with no outbound links behaves as if it linked to
// every page (see graph.Graph.Links), which works out to a uniform 1/k jump.
func Transition(g graph.Graph, page string, damping float64) (Distribution, error) {
	if err := validate(g, damping); err != nil {
		return nil, err
	}
	if _, ok := g[page]; !ok {
		return nil, fmt.Errorf("page %q is not in the graph", page)
	}
	links := g.Links(page)
	k := float64(len(g))
	m := float64(len(links))
	dist := make(Distribution, len(g))
	for p := range g {
		dist[p] = (1 - damping) / k
		if links[p] {
			dist[p] += damping / m
		}
	}
	return dist, nil
}
