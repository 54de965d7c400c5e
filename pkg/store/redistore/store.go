// The redistore package persists link graphs and rank mappings to Redis, so
// that crawling a corpus and consuming its pagerank can happen in different
// processes.
package redistore

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/vertex-lab/pagerank/pkg/models"
)

// SaveGraph() stores the graph in Redis: the page names in the "pages" set,
// and the outbound set of each page in its "links:<page>" set. A dangling
// page appears in "pages" only, since Redis cannot hold an empty set.
func SaveGraph(ctx context.Context, cl *redis.Client, graph models.Graph) error {
	if cl == nil {
		return models.ErrNilClientPointer
	}

	if err := graph.Validate(); err != nil {
		return err
	}

	pipe := cl.TxPipeline()
	for page, links := range graph {
		pipe.SAdd(ctx, KeyPages, page)
		for _, link := range links.ToSlice() {
			pipe.SAdd(ctx, KeyLinks(page), link)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}

// LoadGraph() loads the graph stored in Redis, returning ErrEmptyGraph if no
// graph was saved.
func LoadGraph(ctx context.Context, cl *redis.Client) (models.Graph, error) {
	if cl == nil {
		return nil, models.ErrNilClientPointer
	}

	pages, err := cl.SMembers(ctx, KeyPages).Result()
	if err != nil {
		return nil, err
	}

	if len(pages) == 0 {
		return nil, models.ErrEmptyGraph
	}

	graph := models.NewGraph()
	for _, page := range pages {
		links, err := cl.SMembers(ctx, KeyLinks(page)).Result()
		if err != nil {
			return nil, err
		}

		graph.AddPage(page, links...)
	}

	return graph, nil
}

// SetRanks() publishes the rank of each page in the "pagerank" hash,
// overwriting the previous value of each field.
func SetRanks(ctx context.Context, cl *redis.Client, ranks models.RankMap) error {
	if cl == nil {
		return models.ErrNilClientPointer
	}

	if len(ranks) == 0 {
		return nil
	}

	fields := make(map[string]interface{}, len(ranks))
	for page, rank := range ranks {
		fields[page] = rank
	}

	return cl.HSet(ctx, KeyPagerank, fields).Err()
}

// Ranks() returns the rank mapping published in the "pagerank" hash, which is
// empty if SetRanks was never called.
func Ranks(ctx context.Context, cl *redis.Client) (models.RankMap, error) {
	if cl == nil {
		return nil, models.ErrNilClientPointer
	}

	fields, err := cl.HGetAll(ctx, KeyPagerank).Result()
	if err != nil {
		return nil, err
	}

	ranks := make(models.RankMap, len(fields))
	for page, val := range fields {
		rank, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, err
		}

		ranks[page] = rank
	}

	return ranks, nil
}
