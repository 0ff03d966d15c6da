package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// chdirTemp moves the test into an empty directory so no stray config.yaml
// or .env is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	return dir
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

sws:
  base_url: "https://sws.example.edu/student/v5/"
  timeout: "3s"
  retry_delay: "100ms"
  max_concurrency: 4

cache:
  response_ttl: "30s"
  response_size: 256
  term_ttl: "12h"
  current_term_ttl: "5m"

loader:
  wait: "5ms"
  max_batch: 50

graphql:
  playground_enabled: true
  introspection_enabled: true
  max_depth: 8

log:
  level: "debug"
  format: "text"

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  allow_act_as_header: true

rate_limit:
  requests_per_minute: 120
`

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		SWS: SWSConfig{
			BaseURL:        "https://ws.admin.washington.edu/student/v5/",
			Timeout:        10 * time.Second,
			RetryDelay:     500 * time.Millisecond,
			MaxConcurrency: 8,
		},
		Cache:   CacheConfig{ResponseTTL: time.Minute, ResponseSize: 1024, TermTTL: 24 * time.Hour, CurrentTermTTL: 10 * time.Minute},
		Loader:  LoaderConfig{Wait: 2 * time.Millisecond, MaxBatch: 100},
		GraphQL: GraphQLConfig{MaxDepth: 12},
		Log:     LogConfig{Level: "info", Format: "json"},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	chdirTemp(t)
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	// SWS
	if cfg.SWS.BaseURL != "https://sws.example.edu/student/v5/" {
		t.Errorf("sws.base_url = %q", cfg.SWS.BaseURL)
	}
	if cfg.SWS.RetryDelay != 100*time.Millisecond {
		t.Errorf("sws.retry_delay = %v, want 100ms", cfg.SWS.RetryDelay)
	}
	if cfg.SWS.MaxConcurrency != 4 {
		t.Errorf("sws.max_concurrency = %d, want 4", cfg.SWS.MaxConcurrency)
	}

	// Cache
	if cfg.Cache.ResponseSize != 256 {
		t.Errorf("cache.response_size = %d, want 256", cfg.Cache.ResponseSize)
	}
	if cfg.Cache.CurrentTermTTL != 5*time.Minute {
		t.Errorf("cache.current_term_ttl = %v, want 5m", cfg.Cache.CurrentTermTTL)
	}
	if cfg.Cache.CleanupInterval != 10*time.Minute {
		t.Errorf("cache.cleanup_interval = %v, want 10m (default)", cfg.Cache.CleanupInterval)
	}

	// Loader
	if cfg.Loader.Wait != 5*time.Millisecond {
		t.Errorf("loader.wait = %v, want 5ms", cfg.Loader.Wait)
	}
	if cfg.Loader.MaxBatch != 50 {
		t.Errorf("loader.max_batch = %d, want 50", cfg.Loader.MaxBatch)
	}

	// GraphQL
	if !cfg.GraphQL.PlaygroundEnabled {
		t.Error("graphql.playground_enabled should be true")
	}
	if cfg.GraphQL.MaxDepth != 8 {
		t.Errorf("graphql.max_depth = %d, want 8", cfg.GraphQL.MaxDepth)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}

	// Auth
	if !cfg.Auth.Enabled() {
		t.Error("auth should be enabled with a jwt_secret")
	}
	if !cfg.Auth.AllowActAsHeader {
		t.Error("auth.allow_act_as_header should be true")
	}
	if cfg.Auth.JWTIssuer != "swsgraph" {
		t.Errorf("auth.jwt_issuer = %q, want swsgraph (default)", cfg.Auth.JWTIssuer)
	}

	// Rate limit
	if cfg.RateLimit.RequestsPerMinute != 120 {
		t.Errorf("rate_limit.requests_per_minute = %d, want 120", cfg.RateLimit.RequestsPerMinute)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	chdirTemp(t)
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.SWS.BaseURL != "https://ws.admin.washington.edu/student/v5/" {
		t.Errorf("sws.base_url = %q, want the SWS v5 default", cfg.SWS.BaseURL)
	}
	if cfg.Loader.Wait != 2*time.Millisecond || cfg.Loader.MaxBatch != 100 {
		t.Errorf("loader = %+v, want 2ms/100 defaults", cfg.Loader)
	}
	if cfg.Auth.Enabled() {
		t.Error("auth should be disabled without a jwt_secret")
	}
}

func TestLoad_DotEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	dir := chdirTemp(t)

	const key = "SWS_TOKEN"
	if _, set := os.LookupEnv(key); set {
		t.Skipf("%s already set in the environment", key)
	}
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(key+"=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SWS.Token != "from-dotenv" {
		t.Errorf("sws.token = %q, want from-dotenv", cfg.SWS.Token)
	}
}

func TestLoad_DotEnvDoesNotOverride(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LOG_LEVEL", "error")
	dir := chdirTemp(t)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("log.level = %q, want error (process env wins)", cfg.Log.Level)
	}
}

func TestLoad_ExplicitDotEnvNotFound(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DOTENV_PATH", "/nonexistent/.env")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit .env path")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	chdirTemp(t)
	path := writeYAML(t, t.TempDir(), `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_JWTSecretTooShort(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for short JWT secret")
	}
}

func TestValidate_JWTSecretEmptyIsAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for empty JWT secret: %v", err)
	}
}

func TestValidate_BaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "https", baseURL: "https://sws.example.edu/student/v5/"},
		{name: "http", baseURL: "http://localhost:9000/"},
		{name: "relative", baseURL: "/student/v5/", wantErr: true},
		{name: "ftp", baseURL: "ftp://sws.example.edu/", wantErr: true},
		{name: "empty", baseURL: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.SWS.BaseURL = tt.baseURL

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for base_url %q", tt.baseURL)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error for base_url %q: %v", tt.baseURL, err)
			}
		})
	}
}

func TestValidate_CertWithoutKey(t *testing.T) {
	cfg := validConfig()
	cfg.SWS.CertFile = "/etc/sws/client.crt"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for cert_file without key_file")
	}

	cfg.SWS.KeyFile = "/etc/sws/client.key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error with cert and key: %v", err)
	}
}

func TestValidate_MaxDepthZero(t *testing.T) {
	cfg := validConfig()
	cfg.GraphQL.MaxDepth = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for MaxDepth = 0")
	}
}

func TestValidate_MaxBatchZero(t *testing.T) {
	cfg := validConfig()
	cfg.Loader.MaxBatch = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for MaxBatch = 0")
	}
}

func TestValidate_MaxConcurrencyZero(t *testing.T) {
	cfg := validConfig()
	cfg.SWS.MaxConcurrency = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for MaxConcurrency = 0")
	}
}

func TestValidate_RateLimitNegative(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.RequestsPerMinute = -1

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative RequestsPerMinute")
	}
}

func TestValidate_ResponseCacheSize(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.ResponseSize = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero response_size with caching enabled")
	}

	cfg.Cache.ResponseTTL = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error with cache disabled: %v", err)
	}
}
