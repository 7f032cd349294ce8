package graph

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// Render draws the graph to path, one node per page. Pages present in
// ranks are labeled with their rank value. The output format is taken from
// the file extension (.dot, .svg, .png, .jpg).
func (g Graph) Render(ranks map[string]float64, path string) error {
	format, err := formatFromExt(path)
	if err != nil {
		return err
	}
	gv := graphviz.New()
	viz, err := gv.Graph()
	if err != nil {
		return fmt.Errorf("could not create graphviz graph: %w", err)
	}
	defer func() {
		viz.Close()
		gv.Close()
	}()
	nodes := make(map[string]*cgraph.Node, len(g))
	for _, page := range g.Pages() {
		node, err := viz.CreateNode(page)
		if err != nil {
			return fmt.Errorf("could not create node for %s: %w", page, err)
		}
		if rank, ok := ranks[page]; ok {
			node.SetLabel(fmt.Sprintf("%s\n%.4f", page, rank))
		}
		nodes[page] = node
	}
	for _, page := range g.Pages() {
		for target := range g[page] {
			if _, err := viz.CreateEdge("", nodes[page], nodes[target]); err != nil {
				return fmt.Errorf("could not create edge %s -> %s: %w", page, target, err)
			}
		}
	}
	if err := gv.RenderFilename(viz, format, path); err != nil {
		return fmt.Errorf("could not render graph to %s: %w", path, err)
	}
	return nil
}

func formatFromExt(path string) (graphviz.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot":
		return graphviz.XDOT, nil
	case ".svg":
		return graphviz.SVG, nil
	case ".png":
		return graphviz.PNG, nil
	case ".jpg", ".jpeg":
		return graphviz.JPG, nil
	}
	return "", fmt.Errorf("unsupported render format %q", filepath.Ext(path))
}
