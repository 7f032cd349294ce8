package graph

import (
	"fmt"
	"sort"
)

// Graph maps each page in the corpus to the set of pages it links to.
// It is built once by a loader and read-only afterwards, so both
// estimators can share the same Graph.
type Graph map[string]map[string]bool

// IntegrityError reports a link that breaks the loader contract: a target
// outside the corpus, or a page linking to itself.
type IntegrityError struct {
	Page   string
	Target string
}

func (e *IntegrityError) Error() string {
	if e.Page == e.Target {
		return fmt.Sprintf("page %q links to itself", e.Page)
	}
	return fmt.Sprintf("page %q links to %q, which is not in the corpus", e.Page, e.Target)
}

// AddPage ensures page exists in the graph, with an empty out-set if new.
func (g Graph) AddPage(page string) {
	if g[page] == nil {
		g[page] = make(map[string]bool)
	}
}

// AddLink records a link between two pages, creating them if needed.
// Self links are dropped.
func (g Graph) AddLink(from, to string) {
	g.AddPage(from)
	g.AddPage(to)
	if from == to {
		return
	}
	g[from][to] = true
}

// Pages returns every page in the graph, sorted by name.
func (g Graph) Pages() []string {
	pages := make([]string, 0, len(g))
	for page := range g {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	return pages
}

// Links returns the out-set of page. A page with no outbound links is
// treated as linking to every page in the graph, itself included, so a
// stuck surfer teleports uniformly. Both estimators go through this one
// rule to stay in agreement on dangling pages.
func (g Graph) Links(page string) map[string]bool {
	if links := g[page]; len(links) > 0 {
		return links
	}
	all := make(map[string]bool, len(g))
	for p := range g {
		all[p] = true
	}
	return all
}

// Validate checks the loader contract: every link target exists as a page
// in the graph and no page links to itself.
func (g Graph) Validate() error {
	for page, links := range g {
		for target := range links {
			if target == page {
				return &IntegrityError{Page: page, Target: target}
			}
			if _, ok := g[target]; !ok {
				return &IntegrityError{Page: page, Target: target}
			}
		}
	}
	return nil
}
