package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Warnings returns non-fatal findings worth logging on startup.
func Warnings(cfg *Config) []string {
	var warns []string

	if cfg.Store.OpTimeout > 30*time.Second {
		warns = append(warns, fmt.Sprintf("STORE_OP_TIMEOUT=%s is > 30s; stalled store calls will hold requests that long", cfg.Store.OpTimeout))
	}
	if strings.HasPrefix(cfg.Store.URI, "memory://") {
		warns = append(warns, "STORE_URI uses memory://; books are lost on restart")
	}

	if strings.EqualFold(cfg.AppEnv, "production") {
		if !cfg.Server.TLS() {
			warns = append(warns, "TLS_CERT_FILE/TLS_KEY_FILE not set; serving plain HTTP in production")
		}
		if slices.Contains(cfg.Server.AllowedOrigins, "*") {
			warns = append(warns, "CORS_ALLOWED_ORIGINS is *; restrict it in production")
		}
		if strings.HasPrefix(cfg.Cache.RedisURL, "redis://") {
			warns = append(warns, "REDIS_URL uses redis:// (no TLS). Prefer rediss:// for TLS")
		}
	}
	return warns
}
