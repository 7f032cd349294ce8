package graph

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var hrefPattern = regexp.MustCompile(`<a\s+[^>]*?href="([^"]*)"`)

// Load resolves resource into a graph. A directory is crawled for HTML
// pages; anything else is read as an edge-list file, either from the local
// filesystem or over HTTP.
func Load(resource string) (Graph, error) {
	// Check if it's a network resource or a local one
	if strings.HasPrefix(resource, "http") {
		resp, err := http.Get(resource)
		if err != nil {
			return nil, fmt.Errorf("could not load network resource %s: %w", resource, err)
		}
		defer resp.Body.Close()
		bytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("could not read body from %s: %w", resource, err)
		}
		return ParseEdgeList(bytes)
	}
	info, err := os.Stat(resource)
	if err != nil {
		return nil, fmt.Errorf("could not open corpus %s: %w", resource, err)
	}
	if info.IsDir() {
		return Crawl(resource)
	}
	bytes, err := os.ReadFile(resource)
	if err != nil {
		return nil, fmt.Errorf("could not read graph at %s: %w", resource, err)
	}
	return ParseEdgeList(bytes)
}

// Crawl parses a directory of HTML pages and extracts the links between
// them. Links pointing outside the corpus and self links are filtered out,
// so the returned graph satisfies the loader contract.
func Crawl(dir string) (Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read corpus directory %s: %w", dir, err)
	}
	g := make(Graph)
	found := make(map[string][]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".html") {
			continue
		}
		contents, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("could not read page %s: %w", name, err)
		}
		g.AddPage(name)
		for _, match := range hrefPattern.FindAllStringSubmatch(string(contents), -1) {
			found[name] = append(found[name], match[1])
		}
	}
	// Only keep links to other pages in the corpus
	for page, targets := range found {
		for _, target := range targets {
			if target == page {
				continue
			}
			if _, ok := g[target]; !ok {
				continue
			}
			g[page][target] = true
		}
	}
	return g, nil
}

// ParseEdgeList builds a graph from "from to" (or "from,to") lines.
// Empty lines and lines starting with # or // are skipped.
func ParseEdgeList(contents []byte) (Graph, error) {
	g := make(Graph)
	// Split file contents in lines (based on newline delimiter)
	lines := strings.Split(strings.ReplaceAll(string(contents), "\r\n", "\n"), "\n")
	for _, line := range lines {
		from, to, skip, err := convertLine(line)
		if err != nil {
			return nil, err
		}
		// Comment line -> no new link to add
		if skip {
			continue
		}
		g.AddLink(from, to)
	}
	return g, nil
}

func convertLine(line string) (string, string, bool, error) {
	line = strings.TrimSpace(line)
	// Skip comment lines
	if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") || line == "" {
		return "", "", true, nil
	}
	// Convert line to csv format
	line = strings.Replace(line, " ", ",", 1)
	// Split line in FromPage and ToPage
	tokens := strings.Split(line, ",")
	if len(tokens) != 2 {
		return "", "", false, fmt.Errorf("could not split line %q into a link", line)
	}
	from := strings.TrimSpace(tokens[0])
	to := strings.TrimSpace(tokens[1])
	if from == "" || to == "" {
		return "", "", false, fmt.Errorf("could not split line %q into a link", line)
	}
	return from, to, false, nil
}
