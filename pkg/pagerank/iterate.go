package pagerank

import (
	"math"

	"github.com/vertex-lab/pagerank/pkg/models"
)

// tolerance is the maximum per-page movement between two successive rounds
// for the iteration to be considered converged.
const tolerance = 0.001

/*
Iterate() estimates the pagerank of each page by fixed-point relaxation of the
pagerank equation:

	rank(p) = (1-alpha)/N + alpha * sum_q contrib(q, p)

where contrib(q, p) is rank(q)/outDegree(q) if q links to p, and rank(q)/N if
q is dangling, matching the random-jump behavior of Transition(). Every round
the new ranks are normalized to sum to 1, which compensates for floating-point
drift accumulating across rounds.

On convergence it returns the map of the PREVIOUS round, not the one just
computed: the returned values are the last ones that no update moved by more
than the tolerance. The function is deterministic, so repeated calls with the
same graph and alpha return identical results.
*/
func Iterate(graph models.Graph, alpha float64) (models.RankMap, error) {
	if err := graph.Validate(); err != nil {
		return nil, err
	}

	if alpha <= 0 || alpha >= 1 {
		return nil, models.ErrInvalidAlpha
	}

	// Sums accumulate in the sorted page order, never in map order: float
	// addition is not associative, so summing in a randomized order would
	// make repeated calls differ in the last ULPs.
	pages := graph.Pages()

	size := float64(len(pages))
	ranks := make(models.RankMap, len(pages))
	for _, page := range pages {
		ranks[page] = 1.0 / size
	}

	for {
		newRanks := make(models.RankMap, len(pages))
		for _, page := range pages {
			linksSum := 0.0
			for _, q := range pages {
				links := graph.Links(q)
				switch {
				case links.Contains(page):
					linksSum += ranks[q] / float64(links.Cardinality())

				case links.Cardinality() == 0:
					// a dangling page spreads its rank over the whole graph
					linksSum += ranks[q] / size
				}
			}

			newRanks[page] = (1-alpha)/size + alpha*linksSum
		}

		normalize(pages, newRanks)

		if converged(newRanks, ranks) {
			return ranks, nil
		}

		ranks = newRanks
	}
}

// normalize() scales the ranks so that they sum exactly to 1.
func normalize(pages []string, ranks models.RankMap) {
	total := 0.0
	for _, page := range pages {
		total += ranks[page]
	}

	for _, page := range pages {
		ranks[page] /= total
	}
}

// converged() returns whether every page moved by no more than the tolerance
// between the two maps. Pages are matched by key, never positionally, and the
// difference is taken in absolute value; a one-sided check could miss ranks
// that decreased and loop forever.
func converged(newRanks, oldRanks models.RankMap) bool {
	for page, newRank := range newRanks {
		if math.Abs(newRank-oldRanks[page]) > tolerance {
			return false
		}
	}

	return true
}
