package database

import (
	"essence_store/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis sets up the shared client used for the stats cache and the
// order event feed.
func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
	})
}
