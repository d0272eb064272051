package redis

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewClient creates a client from a redis:// or rediss:// URL.
// No connection is made until the first command.
func NewClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	opts.DialTimeout = 2 * time.Second

	return redis.NewClient(opts), nil
}
