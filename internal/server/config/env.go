package config

import (
	"os"
	"time"
)

// Environment variables recognized by the server. The signing secret and
// database DSN are expected to arrive this way in deployments.
const (
	envEndpointAddr  = "ENDPOINT_ADDR"
	envDatabaseDSN   = "DATABASE_DSN"
	envSecretKey     = "AUTH_SECRET"
	envTokenValidity = "TOKEN_VALIDITY_DURATION"
	envCORSOrigins   = "CORS_ORIGINS"
)

// parseEnv overlays Config fields from environment variables. Unset or
// empty variables keep the current values. An unparseable duration panics,
// matching the JSON loader's behavior for malformed input.
func parseEnv(config *Config) {
	if v := os.Getenv(envEndpointAddr); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv(envDatabaseDSN); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv(envSecretKey); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv(envTokenValidity); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.TokenValidityDuration = d
	}
	if v := os.Getenv(envCORSOrigins); v != "" {
		config.CORSOrigins = v
	}
}
