package common

import (
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client from host/port/password settings.
func NewRedisClient(host, port, password string) *redis.Client {
	addr := fmt.Sprintf("%s:%s", host, port)
	log.Printf("[Redis] Initializing Redis client: addr=%s", addr)

	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})
}
