package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const maxConnectAttempts = 5

// ConnectRedis connects to addr, retrying with exponential backoff. An empty
// addr returns a nil client: callers treat Redis as optional.
func ConnectRedis(ctx context.Context, addr string, log logrus.FieldLogger) (*redis.Client, error) {
	if addr == "" {
		log.Warn("[cache][redis] REDIS_ADDRESS not set; running without redis")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		DB:       0,
		PoolSize: 100,
	})

	var err error
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		if err = rdb.Ping(ctx).Err(); err == nil {
			log.WithFields(logrus.Fields{"addr": addr, "attempt": attempt}).Info("[cache][redis] connected")
			return rdb, nil
		}
		sleep := time.Duration(1<<min(attempt, 5)) * 100 * time.Millisecond
		log.WithError(err).WithFields(logrus.Fields{"addr": addr, "attempt": attempt, "retry_in": sleep.String()}).Warn("[cache][redis] connect failed")

		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(sleep):
		}
	}
	_ = rdb.Close()
	return nil, fmt.Errorf("redis %s unreachable after %d attempts: %w", addr, maxConnectAttempts, err)
}
