// Command enqueue pushes a reprocessing job for a match onto the worker
// queue. Useful after schema changes or classifier fixes to rebuild stored
// feeds without waiting for the ingest pipeline.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"killfeed/internal/config"
	"killfeed/internal/logging"
	"killfeed/internal/processor"
	"killfeed/internal/queue"
)

func main() {
	flag.Parse()
	logger := logging.Logger()

	matchID, err := uuid.Parse(flag.Arg(0))
	if err != nil {
		logger.Errorf("usage: enqueue <match-uuid>: %v", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf("config load failed: %v", err)
		os.Exit(1)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Errorf("invalid redis url: %v", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	payload, err := json.Marshal(processor.JobPayload{
		MatchID: matchID.String(),
		Kind:    processor.JobKindFinal,
	})
	if err != nil {
		logger.Errorf("marshal payload: %v", err)
		os.Exit(1)
	}

	q := queue.NewRedisQueue(redisClient)
	if err := q.Enqueue(context.Background(), cfg.RedisQueue, payload); err != nil {
		logger.Errorf("enqueue failed: %v", err)
		os.Exit(1)
	}

	logger.Infof("enqueued final job for match %s", matchID)
}
