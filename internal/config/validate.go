package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.SWS.validate(); err != nil {
		return fmt.Errorf("sws: %w", err)
	}

	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.GraphQL.MaxDepth < 1 {
		return fmt.Errorf("graphql.max_depth must be >= 1 (got %d)", c.GraphQL.MaxDepth)
	}

	if c.Loader.MaxBatch < 1 {
		return fmt.Errorf("loader.max_batch must be >= 1 (got %d)", c.Loader.MaxBatch)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if c.Cache.ResponseTTL > 0 && c.Cache.ResponseSize < 1 {
		return fmt.Errorf("cache.response_size must be >= 1 when the response cache is enabled (got %d)", c.Cache.ResponseSize)
	}

	return nil
}

func (s *SWSConfig) validate() error {
	u, err := url.Parse(s.BaseURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute http(s) URL (got %q)", s.BaseURL)
	}
	if (s.CertFile == "") != (s.KeyFile == "") {
		return fmt.Errorf("cert_file and key_file must be set together")
	}
	if s.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be >= 1 (got %d)", s.MaxConcurrency)
	}
	return nil
}
