// The stochastictest package compares the two pagerank estimators against
// each other and against an independent implementation (gonum's PageRank),
// within statistical tolerances.
package stochastictest

import (
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/vertex-lab/pagerank/pkg/models"
)

// Setup contains a graph and its expected pagerank, when known in advance.
type Setup struct {
	Graph models.Graph

	// the pagerank fixed point; nil when not known in advance
	ExpectedRanks models.RankMap

	// whether the graph contains dangling pages. Gonum's treatment of
	// dangling nodes differs from the dangling-as-uniform model used here,
	// so the gonum comparison only runs on dangling-free graphs.
	Dangling bool
}

// SetupGraph() returns the Setup of the specified graph type.
func SetupGraph(graphType string) Setup {
	graph := models.NewGraph()

	switch graphType {
	case "triangle":
		// a --> b --> c --> a; uniform by symmetry
		graph.AddPage("a", "b")
		graph.AddPage("b", "c")
		graph.AddPage("c", "a")

		third := 1.0 / 3.0
		return Setup{
			Graph:         graph,
			ExpectedRanks: models.RankMap{"a": third, "b": third, "c": third},
		}

	case "cyclic1":
		graph.AddPage("a", "b", "c")
		graph.AddPage("b", "c")
		graph.AddPage("c", "a")

		return Setup{
			Graph:         graph,
			ExpectedRanks: models.RankMap{"a": 0.38779, "b": 0.21481, "c": 0.39740},
		}

	case "star":
		// a hub linking to 4 spokes, each linking back to the hub
		graph.AddPage("hub", "s1", "s2", "s3", "s4")
		for _, spoke := range []string{"s1", "s2", "s3", "s4"} {
			graph.AddPage(spoke, "hub")
		}

		return Setup{
			Graph: graph,
			ExpectedRanks: models.RankMap{
				"hub": 0.47568, "s1": 0.13108, "s2": 0.13108, "s3": 0.13108, "s4": 0.13108,
			},
		}

	case "chainCycle":
		graph.AddPage("a", "b")
		graph.AddPage("b", "c")
		graph.AddPage("c", "d")
		graph.AddPage("d", "a", "b")

		return Setup{
			Graph:         graph,
			ExpectedRanks: models.RankMap{"a": 0.15510, "b": 0.28687, "c": 0.28141, "d": 0.27662},
		}

	case "smallCorpus":
		graph.AddPage("1.html", "2.html", "3.html")
		graph.AddPage("2.html", "3.html")
		graph.AddPage("3.html", "2.html")
		graph.AddPage("4.html")

		return Setup{
			Graph:    graph,
			Dangling: true,
			ExpectedRanks: models.RankMap{
				"1.html": 0.04762, "2.html": 0.45238, "3.html": 0.45238, "4.html": 0.04762,
			},
		}

	case "dandlings":
		for _, page := range []string{"a", "b", "c", "d", "e"} {
			graph.AddPage(page)
		}

		fifth := 1.0 / 5.0
		return Setup{
			Graph:    graph,
			Dangling: true,
			ExpectedRanks: models.RankMap{
				"a": fifth, "b": fifth, "c": fifth, "d": fifth, "e": fifth,
			},
		}
	}

	return Setup{}
}

// GonumRanks() computes the pagerank of a dangling-free graph with gonum's
// network.PageRank, as an independent implementation to compare against.
func GonumRanks(graph models.Graph, alpha float64) models.RankMap {
	pages := graph.Pages()

	ids := make(map[string]int64, len(pages))
	directed := simple.NewDirectedGraph()
	for i, page := range pages {
		ids[page] = int64(i)
		directed.AddNode(simple.Node(int64(i)))
	}

	for _, page := range pages {
		for _, link := range graph.Links(page).ToSlice() {
			directed.SetEdge(simple.Edge{F: simple.Node(ids[page]), T: simple.Node(ids[link])})
		}
	}

	gonumRanks := network.PageRank(directed, alpha, 1e-8)

	ranks := make(models.RankMap, len(pages))
	for _, page := range pages {
		ranks[page] = gonumRanks[ids[page]]
	}

	return ranks
}
