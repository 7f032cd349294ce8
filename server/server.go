// Package server exposes both PageRank estimators over HTTP: clients
// upload a link graph and receive the two rank distributions back.
package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mlodato/surfrank/graph"
	"github.com/mlodato/surfrank/pagerank"
	"github.com/mlodato/surfrank/utils"
)

type RankRequest struct {
	Graph   map[string][]string `json:"graph"`
	Damping float64             `json:"damping,omitempty"`
	Samples int                 `json:"samples,omitempty"`
	Epsilon float64             `json:"epsilon,omitempty"`
}

type RankResponse struct {
	Sampling  pagerank.Distribution `json:"sampling"`
	Iteration pagerank.Distribution `json:"iteration"`
}

type Server struct {
	Defaults utils.EnvVars
}

// New builds the echo instance with all routes registered.
func New(defaults utils.EnvVars) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	s := &Server{Defaults: defaults}
	e.GET("/health", s.Health)
	e.POST("/pagerank", s.PageRank)
	return e
}

func (s *Server) Health(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// PageRank runs both estimators on the uploaded graph. Request parameters
// left at zero fall back to the server defaults. The request's key set
// defines the corpus: a link to a page that is not a key is an integrity
// violation, not an implicit page.
func (s *Server) PageRank(c echo.Context) error {
	var req RankRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Damping == 0 {
		req.Damping = s.Defaults.Damping
	}
	if req.Samples == 0 {
		req.Samples = s.Defaults.Samples
	}
	if req.Epsilon == 0 {
		req.Epsilon = s.Defaults.Epsilon
	}

	g := make(graph.Graph, len(req.Graph))
	for page := range req.Graph {
		g[page] = make(map[string]bool)
	}
	for page, targets := range req.Graph {
		for _, target := range targets {
			g[page][target] = true
		}
	}
	if err := g.Validate(); err != nil {
		var integrity *graph.IntegrityError
		if errors.As(err, &integrity) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sampling, err := pagerank.Sample(g, req.Damping, req.Samples, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	iteration, err := pagerank.Iterate(g, req.Damping, req.Epsilon)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	utils.ServerLog("Ranked %d pages for %s", len(g), c.RealIP())
	return c.JSON(http.StatusOK, RankResponse{Sampling: sampling, Iteration: iteration})
}
