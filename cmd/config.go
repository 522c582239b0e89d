package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	RedisAddr             string
	RedisTTL              time.Duration
	KafkaHost             string
	KafkaOrderEventsTopic string
	JWTSecret             string
	ReconcileSchedule     string
}

// DSN renders the connection string for gorm.io/driver/postgres.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}

// CacheEnabled reports whether restaurant lookups go through redis.
func (c Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

// KafkaEnabled reports whether order events are written to kafka. Otherwise they are only logged.
func (c Config) KafkaEnabled() bool {
	return c.KafkaHost != ""
}
