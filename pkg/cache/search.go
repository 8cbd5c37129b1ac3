package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gifboard/pkg/giphy"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SearchCache wraps a giphy.Searcher and keeps responses in Redis for ttl.
// Redis failures fall through to the wrapped searcher.
type SearchCache struct {
	next giphy.Searcher
	rdb  redis.Cmdable
	ttl  time.Duration
	log  *zap.Logger
}

func NewSearchCache(next giphy.Searcher, rdb redis.Cmdable, ttl time.Duration, log *zap.Logger) *SearchCache {
	return &SearchCache{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
		log:  log.With(zap.String("component", "search_cache")),
	}
}

func Key(query string, limit, offset int) string {
	return fmt.Sprintf("search:%d:%d:%s", limit, offset, query)
}

func (c *SearchCache) Search(ctx context.Context, query string, limit, offset int) ([]byte, error) {
	key := Key(query, limit, offset)

	cached, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		c.log.Debug("Search cache hit", zap.String("key", key))
		return cached, nil
	case !errors.Is(err, redis.Nil):
		c.log.Warn("Search cache read failed", zap.Error(err), zap.String("key", key))
	}

	body, err := c.next.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}

	if err := c.rdb.Set(ctx, key, body, c.ttl).Err(); err != nil {
		c.log.Warn("Search cache write failed", zap.Error(err), zap.String("key", key))
	}

	return body, nil
}
