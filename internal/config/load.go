package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultDatabase = "quality-assurance-cert-projects"

// envBindings maps config keys to environment variables. Where several
// variables are listed the first one set wins.
var envBindings = [][]string{
	{"app_env", "APP_ENV"},
	{"server.port", "PORT"},
	{"server.allowed_origins", "CORS_ALLOWED_ORIGINS"},
	{"server.max_body_size", "MAX_BODY_SIZE"},
	{"server.tls_cert_file", "TLS_CERT_FILE"},
	{"server.tls_key_file", "TLS_KEY_FILE"},
	{"server.shutdown_timeout", "SHUTDOWN_TIMEOUT"},
	{"store.uri", "STORE_URI", "MONGODB_URI"},
	{"store.database", "STORE_DATABASE"},
	{"store.auto_migrate", "STORE_AUTO_MIGRATE"},
	{"store.op_timeout", "STORE_OP_TIMEOUT"},
	{"cache.redis_url", "REDIS_URL"},
	{"cache.ttl", "LIST_CACHE_TTL"},
	{"log.level", "LOG_LEVEL"},
	{"log.format", "LOG_FORMAT"},
}

// Load reads .env files (when present), then the environment. Variables
// already set in the process environment take precedence over .env.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.SetDefault("app_env", "development")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.max_body_size", 1<<20)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("store.database", DefaultDatabase)
	v.SetDefault("store.auto_migrate", true)
	v.SetDefault("store.op_timeout", "5s")
	v.SetDefault("cache.ttl", "30s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	for _, b := range envBindings {
		if err := v.BindEnv(b...); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", b[1], err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	cfg.Server.AllowedOrigins = trimAll(cfg.Server.AllowedOrigins)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
