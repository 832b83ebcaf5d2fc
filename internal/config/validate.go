package config

import (
	"errors"
	"fmt"
)

// Validate checks business rules on a loaded configuration and reports
// every violation at once. LoadFrom calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.request_timeout must be > 0 (got %v)", c.Server.RequestTimeout))
	}
	if err := c.Cache.validate(); err != nil {
		errs = append(errs, fmt.Errorf("cache: %w", err))
	}
	if err := c.Ingest.validate(); err != nil {
		errs = append(errs, fmt.Errorf("ingest: %w", err))
	}

	return errors.Join(errs...)
}

func (c *CacheConfig) validate() error {
	switch c.Backend {
	case CacheBackendRedis, CacheBackendMemory, CacheBackendNone:
	default:
		return fmt.Errorf("backend must be one of redis, memory, none (got %q)", c.Backend)
	}
	if c.OpTimeout <= 0 {
		return fmt.Errorf("op_timeout must be > 0 (got %v)", c.OpTimeout)
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("redis_db must be >= 0 (got %d)", c.RedisDB)
	}
	if c.Backend == CacheBackendMemory && c.MemoryCapacity == 0 {
		return fmt.Errorf("memory_capacity must be > 0")
	}
	return nil
}

func (i *IngestConfig) validate() error {
	if i.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate_limit_per_minute must be > 0 (got %d)", i.RateLimitPerMinute)
	}
	if i.MaxMessageLength <= 0 {
		return fmt.Errorf("max_message_length must be > 0 (got %d)", i.MaxMessageLength)
	}
	if i.MaxMetadataBytes <= 0 {
		return fmt.Errorf("max_metadata_bytes must be > 0 (got %d)", i.MaxMetadataBytes)
	}
	if i.MaxBodyBytes < i.MaxMetadataBytes {
		return fmt.Errorf("max_body_bytes must be >= max_metadata_bytes (got %d < %d)", i.MaxBodyBytes, i.MaxMetadataBytes)
	}
	return nil
}
