package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache is a process-lifetime in-memory key-value store. Entries never
// expire unless an expiration is passed explicitly; growth is bounded
// only by what callers put in it.
type Cache struct {
	*cache.Cache
}

func NewCache() *Cache {
	return &Cache{cache.New(cache.NoExpiration, 0)}
}

func (c *Cache) Set(key string, value interface{}, expiration ...time.Duration) {
	if len(expiration) > 0 {
		c.Cache.Set(key, value, expiration[0])
		return
	}
	c.Cache.Set(key, value, cache.NoExpiration)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.Cache.Get(key)
}
