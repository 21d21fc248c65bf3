package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"killfeed/internal/config"
	"killfeed/internal/db"
	"killfeed/internal/live"
	"killfeed/internal/logging"
	"killfeed/internal/processor"
	"killfeed/internal/queue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf("config load failed: %v", err)
		os.Exit(1)
	}

	pool, err := db.NewPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Errorf("db connection failed: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Errorf("invalid redis url: %v", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	matchReader := db.NewMatchReader(pool)
	feedWriter := db.NewFeedWriter(pool)
	viewRefresher := db.NewViewRefresher(pool)
	liveStore := live.NewStore(redisClient, cfg.LiveFeedTTL)

	proc := processor.NewFeedProcessor(ctx, matchReader, feedWriter, liveStore, viewRefresher)
	q := queue.NewRedisQueue(redisClient)

	go serveMetrics(cfg.MetricsAddr)

	handler := func(payload []byte) error {
		return proc.Handle(payload)
	}

	logger.Infof("starting consumption with %d workers", cfg.WorkerCount)
	if err := q.Consume(ctx, cfg.RedisQueue, cfg.WorkerCount, cfg.JobBufferSize, handler); err != nil && ctx.Err() == nil {
		logger.Errorf("queue consumption ended: %v", err)
		os.Exit(1)
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logging.Logger().Warnf("metrics server stopped: %v", err)
	}
}
