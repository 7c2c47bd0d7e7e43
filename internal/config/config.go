package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string        // dev, prod
	HTTPPort        string        // default 8080
	SubmitDelay     time.Duration // stub collaborator delay
	SubmitTimeout   time.Duration // deadline on the collaborator call
	SessionTTL      time.Duration // how long an idle draft session survives
	JanitorInterval time.Duration // how often idle sessions are pruned
	ShutdownTimeout time.Duration // graceful shutdown timeout
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		SubmitDelay:     getDuration("SUBMIT_DELAY", 1500*time.Millisecond),
		SubmitTimeout:   getDuration("SUBMIT_TIMEOUT", 10*time.Second),
		SessionTTL:      getDuration("SESSION_TTL", 30*time.Minute),
		JanitorInterval: getDuration("JANITOR_INTERVAL", time.Minute),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		fmt.Fprintf(os.Stderr, "invalid duration for %s=%q, using default %s\n", key, v, def)
	}
	return def
}
