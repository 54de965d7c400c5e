package redistore

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const (
	// KeyPages is the Redis set that holds the names of all pages.
	KeyPages string = "pages"

	// KeyPagerank is the Redis hash that holds the published rank of each page.
	KeyPagerank string = "pagerank"
)

// KeyLinks() returns the Redis key of the outbound set of the specified page.
func KeyLinks(page string) string {
	return "links:" + page
}

// SetupClient() initializes a new Redis client for testing purposes.
func SetupClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
	})
}

// CleanupRedis() cleans up the Redis database between tests to ensure isolation.
func CleanupRedis(cl *redis.Client) {
	cl.FlushAll(context.Background())
}
