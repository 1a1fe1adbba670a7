package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort           int           `env:"HTTP_PORT"`
	PostgresDSN        string        `env:"POSTGRES_DSN"`
	PostgresMaxConns   int32         `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	RedisURL           string        `env:"REDIS_URL"`
	ReportCacheTTL     time.Duration `env:"REPORT_CACHE_TTL" envDefault:"24h"`
	AuthServiceURL     string        `env:"AUTH_SERVICE_URL"`
	HRServiceURL       string        `env:"HR_SERVICE_URL"`
	WorkerSyncInterval time.Duration `env:"WORKER_SYNC_INTERVAL" envDefault:"1h"`
	Kafka              Kafka
}

type Kafka struct {
	Brokers                []string `env:"KAFKA_BROKERS"`
	ConsumerID             string   `env:"KAFKA_CONSUMER_ID"`
	ViolationDetectedTopic string   `env:"KAFKA_VIOLATION_DETECTED_TOPIC" envDefault:"violation.detected"`
	ViolationCreatedTopic  string   `env:"KAFKA_VIOLATION_CREATED_TOPIC" envDefault:"violation.created"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
