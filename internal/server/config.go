package server

import (
	"time"

	"github.com/orbitwatch/orbitwatch/internal/server/middleware"
)

// Config holds the HTTP server configuration.
type Config struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	EnableCORS      bool
	CORS            middleware.CORSConfig
	EnableRateLimit bool
	RateLimit       middleware.RateLimitConfig
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:            "0.0.0.0",
		Port:            8080,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		EnableCORS:      true,
		CORS:            middleware.DefaultCORSConfig(),
		EnableRateLimit: true,
		RateLimit:       middleware.DefaultRateLimitConfig(),
	}
}
