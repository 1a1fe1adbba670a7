package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sitesafe/violations/internal/api"
	"github.com/sitesafe/violations/internal/api/events"
	"github.com/sitesafe/violations/internal/httpclients/hr"
	"github.com/sitesafe/violations/internal/repository"
	"github.com/sitesafe/violations/internal/service"
	"github.com/sitesafe/violations/pkg/broker"
	"github.com/sitesafe/violations/pkg/config"
	"github.com/sitesafe/violations/pkg/logger"
	"github.com/sitesafe/violations/pkg/metrics"
	"github.com/sitesafe/violations/pkg/postgres"
	"github.com/sitesafe/violations/pkg/redis"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New("violations")

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	m := metrics.New(prometheus.DefaultRegisterer)

	var cache service.Cache

	redisClient, err := redis.New(ctx, cfg.RedisURL)
	panicOnErr("connect to redis", err)

	if redisClient != nil {
		cache = redisClient
		defer redisClient.Close()
	}

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.ViolationCreatedTopic)
	defer producer.Close()

	hrClient := hr.NewClient(cfg.HRServiceURL)

	s := service.New(repo, producer, cache, hrClient, m, cfg.ReportCacheTTL)

	// Kafka consumers
	{
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.ViolationDetectedTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.ViolationDetectedTopic, eventHandler.OnViolationDetected)
		consumer.Consume(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	wg.Add(1)

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(cfg.WorkerSyncInterval)
		defer ticker.Stop()

		jl := slog.Default().With("job", "sync_workers")
		for {
			jl.Debug("job started")

			err := s.SyncWorkers(ctx)
			if err != nil {
				jl.ErrorContext(ctx, fmt.Sprintf("job failed: %s", err))
			} else {
				jl.DebugContext(ctx, "job finished")
			}

			select {
			case <-ctx.Done():
				jl.DebugContext(ctx, "job stopped by ctx")
				return
			case <-ticker.C:
			}
		}
	}()

	waitSignal(cancel, server)

	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
