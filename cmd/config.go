package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	RedisAddr         string
	RateLimitRequests int
	RateLimitWindow   time.Duration

	KafkaHost                        string
	KafkaOrderChangedTopic           string
	KafkaDeliveryRequestChangedTopic string
	OutboxBatchSize                  int
	NearbyFreshnessWindow            time.Duration
	LogLevel                         slog.Level
}

// DSN is the lib/pq connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (c Config) Validate() error {
	var missing []string
	for name, value := range map[string]string{
		"HTTP_PORT":  c.HTTPPort,
		"DB_HOST":    c.DBHost,
		"DB_NAME":    c.DBName,
		"JWT_SECRET": c.JWTSecret,
		"KAFKA_HOST": c.KafkaHost,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
