package graph

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
}

func TestCrawl(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "1.html", `<html><a href="2.html">two</a><a class="x" href="3.html">three</a></html>`)
	writePage(t, dir, "2.html", `<a href="1.html">one</a><a href="2.html">self</a><a href="missing.html">gone</a>`)
	writePage(t, dir, "3.html", `no links here`)
	writePage(t, dir, "notes.txt", `<a href="1.html">not a page</a>`)

	g, err := Crawl(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"1.html", "2.html", "3.html"}, g.Pages())
	assert.Equal(t, map[string]bool{"2.html": true, "3.html": true}, g["1.html"])
	// Self link and link outside the corpus are filtered
	assert.Equal(t, map[string]bool{"1.html": true}, g["2.html"])
	assert.Empty(t, g["3.html"])
	require.NoError(t, g.Validate())
}

func TestParseEdgeList(t *testing.T) {
	contents := []byte("# comment\n1 2\n2,3\n// another comment\n3 1\n\n")
	g, err := ParseEdgeList(contents)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3"}, g.Pages())
	assert.True(t, g["1"]["2"])
	assert.True(t, g["2"]["3"])
	assert.True(t, g["3"]["1"])
	require.NoError(t, g.Validate())
}

func TestParseEdgeListBadLine(t *testing.T) {
	_, err := ParseEdgeList([]byte("1 2\nnonsense\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte("a b\nb a\n"), 0644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, g.Pages())
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "1.html", `<a href="2.html">two</a>`)
	writePage(t, dir, "2.html", ``)

	g, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, g["1.html"]["2.html"])
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("a b\nb c\nc a\n"))
	}))
	defer srv.Close()

	g, err := Load(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, g.Pages())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
