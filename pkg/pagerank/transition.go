// The pagerank package implements two independent estimators of the pagerank
// of a corpus: one based on sampling the random surfer, one based on
// fixed-point iteration. Both consume a models.Graph and return a normalized
// models.RankMap.
package pagerank

import (
	"github.com/vertex-lab/pagerank/pkg/models"
)

/*
Transition() returns the weights with which the random surfer picks the next
page, starting from the specified page. With probability alpha the surfer
follows one of the page's outbound links; otherwise it jumps to a random
page. A dangling page is treated as linking to every page in the graph, so
its weights are the uniform distribution.

For a page with k links, every page in the graph receives the base weight
(1-alpha)/(k+1), and each linked page an extra alpha/k. The weights therefore
total N*(1-alpha)/(k+1) + alpha, which is above 1 whenever k+1 < N; they are
relative weights, not probabilities, and consumers normalize by the total
(as the weighted draw in Sample does).
*/
func Transition(graph models.Graph, page string, alpha float64) (models.Distribution, error) {
	if err := graph.Validate(); err != nil {
		return nil, err
	}

	if alpha <= 0 || alpha >= 1 {
		return nil, models.ErrInvalidAlpha
	}

	links, exist := graph[page]
	if !exist {
		return nil, models.ErrPageNotFound
	}

	dist := make(models.Distribution, len(graph))

	outDegree := links.Cardinality()
	if outDegree == 0 {
		uniform := 1.0 / float64(len(graph))
		for p := range graph {
			dist[p] = uniform
		}

		return dist, nil
	}

	// the random-jump mass is split k+1 ways, not over the whole graph
	base := (1 - alpha) / float64(outDegree+1)
	for p := range graph {
		dist[p] = base
	}

	for _, link := range links.ToSlice() {
		dist[link] = base + alpha/float64(outDegree)
	}

	return dist, nil
}
