package config

import (
	"errors"
	"os"
	"strings"
	"time"

	pkgstrings "tipline/pkg/platform/strings"
)

// Server captures process level configuration.
type Server struct {
	Addr          string
	PostgresURL   string
	Redis         RedisConfig
	KafkaBrokers  []string
	KafkaTopic    string
	JWTSigningKey string
	AdminToken    string
	SweepInterval time.Duration
}

// RedisConfig holds connection settings for the projection cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Validate rejects configurations the server must not start with. There is no
// fallback signing key: an unset key would make every bearer token forgeable.
func (s Server) Validate() error {
	if s.JWTSigningKey == "" {
		return errors.New("JWT_SIGNING_KEY must be set")
	}
	return nil
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("TIPLINE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	sweepInterval := 1 * time.Minute
	if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			sweepInterval = parsed
		}
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = pkgstrings.DedupeAndTrim(strings.Split(raw, ","))
	}
	topic := os.Getenv("KAFKA_AUDIT_TOPIC")
	if topic == "" {
		topic = "tipline.audit"
	}

	return Server{
		Addr:          addr,
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		Redis:         redisFromEnv(),
		KafkaBrokers:  brokers,
		KafkaTopic:    topic,
		JWTSigningKey: os.Getenv("JWT_SIGNING_KEY"),
		AdminToken:    os.Getenv("ADMIN_TOKEN"),
		SweepInterval: sweepInterval,
	}
}

func redisFromEnv() RedisConfig {
	return RedisConfig{
		URL:          os.Getenv("REDIS_URL"),
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}
