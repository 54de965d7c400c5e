package stochastictest

import (
	"math/rand"
	"testing"

	"github.com/vertex-lab/pagerank/pkg/models"
	"github.com/vertex-lab/pagerank/pkg/pagerank"
)

func TestIterateStatic(t *testing.T) {
	const maxExpectedDistance = 0.01
	const alpha = 0.85

	tests := []struct {
		name      string
		graphType string
	}{
		{
			name:      "static Iterate, triangle graph",
			graphType: "triangle",
		},
		{
			name:      "static Iterate, cyclic graph 1",
			graphType: "cyclic1",
		},
		{
			name:      "static Iterate, star graph",
			graphType: "star",
		},
		{
			name:      "static Iterate, chain with cycle",
			graphType: "chainCycle",
		},
		{
			name:      "static Iterate, small corpus",
			graphType: "smallCorpus",
		},
		{
			name:      "static Iterate, all dangling pages",
			graphType: "dandlings",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			setup := SetupGraph(test.graphType)

			ranks, err := pagerank.Iterate(setup.Graph, alpha)
			if err != nil {
				t.Fatalf("Iterate(): expected nil, got %v", err)
			}

			distance := models.Distance(setup.ExpectedRanks, ranks)
			if distance > maxExpectedDistance {
				t.Errorf("Iterate(): expected distance %v, got %v", maxExpectedDistance, distance)
				t.Errorf("expected %v \ngot %v", setup.ExpectedRanks, ranks)
			}
		})
	}
}

// Gonum's network.PageRank is an independent implementation of the same fixed
// point, used as a reference on dangling-free graphs.
func TestIterateVsGonum(t *testing.T) {
	const maxExpectedDistance = 0.01
	const alpha = 0.85

	for _, graphType := range []string{"triangle", "cyclic1", "star", "chainCycle"} {
		t.Run(graphType, func(t *testing.T) {
			setup := SetupGraph(graphType)
			if setup.Dangling {
				t.Fatalf("graph %v contains dangling pages", graphType)
			}

			ranks, err := pagerank.Iterate(setup.Graph, alpha)
			if err != nil {
				t.Fatalf("Iterate(): expected nil, got %v", err)
			}

			expected := GonumRanks(setup.Graph, alpha)
			distance := models.Distance(expected, ranks)
			if distance > maxExpectedDistance {
				t.Errorf("Iterate(): expected distance %v, got %v", maxExpectedDistance, distance)
				t.Errorf("expected %v \ngot %v", expected, ranks)
			}
		})
	}
}

// The two estimators agree only approximately, even with no sampling noise:
// the surfer's stationary distribution is not exactly the fixed point of the
// iteration, and the gap is widest on graphs with dangling pages (an L1
// distance around 0.12 on the small corpus). The budget covers the gap plus
// the noise of 10000 samples.
func TestSampleVsIterate(t *testing.T) {
	const maxExpectedDistance = 0.2
	const alpha = 0.85
	const samples = 10000

	graphTypes := []string{"triangle", "cyclic1", "star", "chainCycle", "smallCorpus", "dandlings"}

	for _, graphType := range graphTypes {
		t.Run(graphType, func(t *testing.T) {
			setup := SetupGraph(graphType)
			rng := rand.New(rand.NewSource(69))

			sampled, err := pagerank.Sample(setup.Graph, alpha, samples, rng)
			if err != nil {
				t.Fatalf("Sample(): expected nil, got %v", err)
			}

			iterated, err := pagerank.Iterate(setup.Graph, alpha)
			if err != nil {
				t.Fatalf("Iterate(): expected nil, got %v", err)
			}

			distance := models.Distance(iterated, sampled)
			if distance > maxExpectedDistance {
				t.Errorf("Sample(): expected distance %v, got %v", maxExpectedDistance, distance)
				t.Errorf("expected %v \ngot %v", iterated, sampled)
			}
		})
	}
}
