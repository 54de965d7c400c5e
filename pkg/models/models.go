/*
The models package defines the fundamental structures shared by this project.

Graph:
The link structure of a corpus, mapping each page to its outbound set. It is
built once by the crawler (or loaded from the store) and treated as immutable
by the estimators.

RankMap and Distribution:
Probability distributions over pages. A RankMap is the output of an estimator;
a Distribution describes a single step of the random surfer.
*/
package models

import (
	"errors"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	// DefaultAlpha is the probability that the random surfer follows a real
	// link instead of jumping to a random page.
	DefaultAlpha float64 = 0.85

	// DefaultSamples is the number of steps of the sampling estimator.
	DefaultSamples int = 10000
)

// Graph associates each page of the corpus with its outbound set, meaning the
// set of pages it links to. Every link target is itself a key of the Graph;
// the crawler drops links that point outside the corpus. A page whose
// outbound set is empty is a dangling page.
type Graph map[string]mapset.Set[string]

// NewGraph() returns an empty Graph.
func NewGraph() Graph {
	return make(Graph)
}

// AddPage() adds a page with the specified outbound links, overwriting the
// previous outbound set if the page is already present.
func (g Graph) AddPage(page string, links ...string) {
	g[page] = mapset.NewSet(links...)
}

// Pages() returns the pages of the graph sorted by name, so that callers
// iterate in a deterministic order.
func (g Graph) Pages() []string {
	pages := make([]string, 0, len(g))
	for page := range g {
		pages = append(pages, page)
	}

	sort.Strings(pages)
	return pages
}

// Links() returns the outbound set of the specified page, which is nil if the
// page is not part of the graph.
func (g Graph) Links(page string) mapset.Set[string] {
	return g[page]
}

// OutDegree() returns the number of outbound links of the specified page.
func (g Graph) OutDegree(page string) int {
	links, exist := g[page]
	if !exist {
		return 0
	}
	return links.Cardinality()
}

// Contains() returns whether the specified page is a key of the graph.
func (g Graph) Contains(page string) bool {
	_, exist := g[page]
	return exist
}

// Validate() returns ErrEmptyGraph if the graph is nil or has no pages.
func (g Graph) Validate() error {
	if len(g) == 0 {
		return ErrEmptyGraph
	}
	return nil
}

// --------------------------ERROR-CODES--------------------------

var ErrEmptyGraph = errors.New("the graph is nil or empty")
var ErrPageNotFound = errors.New("page not found in the graph")
var ErrInvalidAlpha = errors.New("alpha must be strictly inside (0,1)")
var ErrInvalidSampleCount = errors.New("the number of samples must be positive")

var ErrNilClientPointer = errors.New("nil redis client pointer")
