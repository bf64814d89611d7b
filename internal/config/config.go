// Package config loads the service configuration from the environment.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	AppEnv string       `mapstructure:"app_env" validate:"required"`
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins" validate:"required,min=1"`
	MaxBodySize     int64         `mapstructure:"max_body_size" validate:"gt=0"`
	TLSCertFile     string        `mapstructure:"tls_cert_file" validate:"required_with=TLSKeyFile"`
	TLSKeyFile      string        `mapstructure:"tls_key_file" validate:"required_with=TLSCertFile"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// TLS reports whether both certificate and key are configured.
func (s ServerConfig) TLS() bool {
	return s.TLSCertFile != "" && s.TLSKeyFile != ""
}

type StoreConfig struct {
	URI         string        `mapstructure:"uri" validate:"required"`
	Database    string        `mapstructure:"database" validate:"required"`
	AutoMigrate bool          `mapstructure:"auto_migrate"`
	OpTimeout   time.Duration `mapstructure:"op_timeout" validate:"gt=0"`
}

// CacheConfig enables the list cache when RedisURL is set.
type CacheConfig struct {
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}
