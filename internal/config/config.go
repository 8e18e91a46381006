// Package config provides runtime configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the knobs for the HTTP server, the seed loader, and the
// live channel.
type Config struct {
	Addr              string
	ProductsCSV       string
	StaticDir         string
	HeartbeatInterval time.Duration
	ClientTimeout     time.Duration
	ShutdownTimeout   time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durenvs(key string, defSec int) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return time.Duration(defSec) * time.Second
	}
	sec, err := strconv.Atoi(v)
	if err != nil {
		return time.Duration(defSec) * time.Second
	}
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		Addr:              ":" + getenv("APP_PORT", "8080"),
		ProductsCSV:       getenv("PRODUCTS_CSV", "data/products.csv"),
		StaticDir:         getenv("STATIC_DIR", "static"),
		HeartbeatInterval: durenvs("HEARTBEAT_INTERVAL_S", 5),
		ClientTimeout:     durenvs("CLIENT_TIMEOUT_S", 10),
		ShutdownTimeout:   durenvs("SHUTDOWN_TIMEOUT_S", 10),
	}
}
