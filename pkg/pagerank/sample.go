package pagerank

import (
	"math/rand"
	"time"

	"github.com/vertex-lab/pagerank/pkg/models"
)

/*
Sample() estimates the pagerank of each page by simulating n steps of the
random surfer, starting from a uniformly random page. At every step the
current page is counted as visited, and the next page is drawn from its
transition distribution. The visit counts, normalized by n, are the estimate.

It accepts a random number generator for reproducibility in tests; if rng is
nil, a time-seeded generator is used.

The estimate is inherently noisy. With the default n = 10000 it approximates
the result of Iterate() to within a few percent on small graphs.
*/
func Sample(graph models.Graph, alpha float64, n int, rng *rand.Rand) (models.RankMap, error) {
	if err := graph.Validate(); err != nil {
		return nil, err
	}

	if alpha <= 0 || alpha >= 1 {
		return nil, models.ErrInvalidAlpha
	}

	if n <= 0 {
		return nil, models.ErrInvalidSampleCount
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pages := graph.Pages()
	visits := make(map[string]int, len(pages))
	current := pages[rng.Intn(len(pages))]

	for i := 0; i < n; i++ {
		dist, err := Transition(graph, current, alpha)
		if err != nil {
			return nil, err
		}

		// the page the surfer is on counts as visited before it moves,
		// so exactly n visits are tallied.
		visits[current]++
		current = draw(pages, dist, rng)
	}

	ranks := make(models.RankMap, len(pages))
	for _, page := range pages {
		ranks[page] = float64(visits[page]) / float64(n)
	}

	return ranks, nil
}

// draw() performs a weighted random choice from the distribution: it draws a
// uniform value in [0, total) and scans the cumulative weights of the pages,
// in their deterministic sorted order, until the value is covered. Scaling
// the draw by the total weight is what makes the weights relative; without
// it, pages late in the order would never be drawn.
func draw(pages []string, dist models.Distribution, rng *rand.Rand) string {
	total := 0.0
	for _, page := range pages {
		total += dist[page]
	}

	val := rng.Float64() * total

	cumulative := 0.0
	for _, page := range pages {
		cumulative += dist[page]
		if val < cumulative {
			return page
		}
	}

	// floating-point drift can leave the cumulative sum short of the total
	return pages[len(pages)-1]
}
