package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlodato/surfrank/utils"
)

func testDefaults() utils.EnvVars {
	return utils.EnvVars{Damping: 0.85, Samples: 2000, Epsilon: 0.001}
}

func doPageRank(t *testing.T, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/pagerank", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s := &Server{Defaults: testDefaults()}
	return rec, s.PageRank(e.NewContext(req, rec))
}

func TestPageRank(t *testing.T) {
	rec, err := doPageRank(t, `{"graph": {"a": ["b"], "b": ["a"], "c": []}}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Sampling, 3)
	require.Len(t, resp.Iteration, 3)
	assert.InDelta(t, 1.0, resp.Sampling.Sum(), 1e-9)
	assert.InDelta(t, 1.0, resp.Iteration.Sum(), 1e-6)
	// a and b link to each other; c only receives teleports
	assert.Greater(t, resp.Iteration["a"], resp.Iteration["c"])
}

func TestPageRankBadDamping(t *testing.T) {
	_, err := doPageRank(t, `{"graph": {"a": ["b"], "b": ["a"]}, "damping": 1.5}`)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestPageRankEmptyGraph(t *testing.T) {
	_, err := doPageRank(t, `{"graph": {}}`)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestPageRankDanglingLink(t *testing.T) {
	// "ghost" is not a key, so the graph breaks referential integrity
	_, err := doPageRank(t, `{"graph": {"a": ["ghost"], "b": ["a"]}}`)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
}

func TestHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s := &Server{Defaults: testDefaults()}
	require.NoError(t, s.Health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
