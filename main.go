package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/mlodato/surfrank/graph"
	"github.com/mlodato/surfrank/pagerank"
	"github.com/mlodato/surfrank/utils"
)

var (
	damping float64
	samples int
	epsilon float64
	viz     string
)

func main() {
	env := utils.ReadEnvVars()
	flag.Float64Var(&damping, "d", env.Damping, "damping factor")
	flag.IntVar(&samples, "n", env.Samples, "number of samples for the sampling method")
	flag.Float64Var(&epsilon, "e", env.Epsilon, "convergence threshold for the iterative method")
	flag.StringVar(&viz, "viz", "", "render the ranked graph to this file (.dot, .svg, .png, .jpg)")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	g, err := graph.Load(flag.Arg(0))
	utils.FailOnError("Failed to load corpus", err)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	ranks, err := pagerank.Sample(g, damping, samples, rng)
	utils.FailOnError("Sampling failed", err)
	fmt.Printf("PageRank Results from Sampling (n = %d)\n", samples)
	printRanks(g, ranks)

	ranks, err = pagerank.Iterate(g, damping, epsilon)
	utils.FailOnError("Iteration failed", err)
	fmt.Println("PageRank Results from Iteration")
	printRanks(g, ranks)

	if viz != "" {
		utils.FailOnError("Failed to render graph", g.Render(ranks, viz))
	}
}

func printRanks(g graph.Graph, ranks pagerank.Distribution) {
	for _, page := range g.Pages() {
		fmt.Printf("  %s: %.4f\n", page, ranks[page])
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] corpus\n", os.Args[0])
	flag.PrintDefaults()
}
