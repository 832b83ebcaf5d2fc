package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Cache    CacheConfig    `yaml:"cache"`
	Auth     AuthConfig     `yaml:"auth"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// RequestTimeout bounds every core operation (authorization, cache, store).
	RequestTimeout time.Duration `yaml:"request_timeout" env:"SERVER_REQUEST_TIMEOUT" env-default:"5s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Cache backends.
const (
	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"
	CacheBackendNone   = "none"
)

// CacheConfig holds settings for the keyed cache service.
type CacheConfig struct {
	Backend        string        `yaml:"backend"         env:"CACHE_BACKEND"         env-default:"redis"`
	RedisAddr      string        `yaml:"redis_addr"      env:"CACHE_REDIS_ADDR"`
	RedisPassword  string        `yaml:"redis_password"  env:"CACHE_REDIS_PASSWORD"`
	RedisDB        int           `yaml:"redis_db"        env:"CACHE_REDIS_DB"        env-default:"0"`
	KeyPrefix      string        `yaml:"key_prefix"      env:"CACHE_KEY_PREFIX"      env-default:"loopback-cache"`
	OpTimeout      time.Duration `yaml:"op_timeout"      env:"CACHE_OP_TIMEOUT"      env-default:"250ms"`
	MemoryCapacity uint64        `yaml:"memory_capacity" env:"CACHE_MEMORY_CAPACITY" env-default:"10000"`
	Disabled       bool          `yaml:"disabled"        env:"DISABLE_CACHE"         env-default:"false"`
}

// Enabled reports whether a cache backend is configured. A redis backend
// without an address counts as unconfigured.
func (c CacheConfig) Enabled() bool {
	if c.Disabled {
		return false
	}
	switch c.Backend {
	case CacheBackendRedis:
		return c.RedisAddr != ""
	case CacheBackendMemory:
		return true
	default:
		return false
	}
}

// AuthConfig holds settings for validating access tokens issued by the
// identity provider.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"loopback"`
	// AccessTTL is the lifetime of tokens minted by the CLI token command.
	AccessTTL time.Duration `yaml:"access_ttl" env:"AUTH_ACCESS_TTL" env-default:"15m"`
}

// IngestConfig holds settings for the public feedback submission endpoint.
type IngestConfig struct {
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"INGEST_RATE_LIMIT_PER_MINUTE" env-default:"60"`
	MaxMessageLength   int `yaml:"max_message_length"    env:"INGEST_MAX_MESSAGE_LENGTH"    env-default:"5000"`
	MaxMetadataBytes   int `yaml:"max_metadata_bytes"    env:"INGEST_MAX_METADATA_BYTES"    env-default:"16384"`
	MaxBodyBytes       int `yaml:"max_body_bytes"        env:"INGEST_MAX_BODY_BYTES"        env-default:"65536"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
