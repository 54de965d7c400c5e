package main

import (
	"context"
	"fmt"
	"os"

	redis "github.com/redis/go-redis/v9"
	"github.com/vertex-lab/pagerank/pkg/crawler"
	"github.com/vertex-lab/pagerank/pkg/models"
	"github.com/vertex-lab/pagerank/pkg/pagerank"
	"github.com/vertex-lab/pagerank/pkg/store/redistore"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: pagerank <corpus-directory>")
		os.Exit(1)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("error loading the config: %v\n", err)
		os.Exit(1)
	}
	defer config.CloseLogs()

	graph, err := crawler.Crawl(os.Args[1])
	if err != nil {
		config.Log.Error("failed to crawl %v: %v", os.Args[1], err)
		os.Exit(1)
	}

	config.Log.Info("crawled %d pages from %v", len(graph), os.Args[1])

	sampled, err := pagerank.Sample(graph, config.Alpha, config.Samples, nil)
	if err != nil {
		config.Log.Error("sampling estimator failed: %v", err)
		os.Exit(1)
	}
	printRanks(fmt.Sprintf("PageRank Results from Sampling (n = %d)", config.Samples), graph, sampled)

	iterated, err := pagerank.Iterate(graph, config.Alpha)
	if err != nil {
		config.Log.Error("iterative estimator failed: %v", err)
		os.Exit(1)
	}
	printRanks("PageRank Results from Iteration", graph, iterated)

	if config.RedisAddress != "" {
		if err := publish(config, graph, iterated); err != nil {
			config.Log.Error("failed to publish to redis: %v", err)
			os.Exit(1)
		}

		config.Log.Info("published graph and ranks to %v", config.RedisAddress)
	}
}

// printRanks() prints the ranks sorted by page name.
func printRanks(header string, graph models.Graph, ranks models.RankMap) {
	fmt.Println(header)
	for _, page := range graph.Pages() {
		fmt.Printf("  %s: %.4f\n", page, ranks[page])
	}
}

// publish() saves the graph and the iterated ranks to Redis.
func publish(config *Config, graph models.Graph, ranks models.RankMap) error {
	cl := redis.NewClient(&redis.Options{Addr: config.RedisAddress})
	ctx := context.Background()

	if err := redistore.SaveGraph(ctx, cl, graph); err != nil {
		return err
	}

	return redistore.SetRanks(ctx, cl, ranks)
}
