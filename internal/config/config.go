package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	SWS       SWSConfig       `yaml:"sws"`
	Cache     CacheConfig     `yaml:"cache"`
	Loader    LoaderConfig    `yaml:"loader"`
	GraphQL   GraphQLConfig   `yaml:"graphql"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// SWSConfig holds Student Web Service client settings.
type SWSConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"SWS_BASE_URL"        env-default:"https://ws.admin.washington.edu/student/v5/"`
	Timeout        time.Duration `yaml:"timeout"         env:"SWS_TIMEOUT"         env-default:"10s"`
	RetryDelay     time.Duration `yaml:"retry_delay"     env:"SWS_RETRY_DELAY"     env-default:"500ms"`
	CertFile       string        `yaml:"cert_file"       env:"SWS_CERT_FILE"`
	KeyFile        string        `yaml:"key_file"        env:"SWS_KEY_FILE"`
	CAFile         string        `yaml:"ca_file"         env:"SWS_CA_FILE"`
	Token          string        `yaml:"token"           env:"SWS_TOKEN"`
	MaxConcurrency int           `yaml:"max_concurrency" env:"SWS_MAX_CONCURRENCY" env-default:"8"`
}

// CacheConfig holds response and term cache settings. A zero ResponseTTL
// disables the response cache.
type CacheConfig struct {
	ResponseTTL     time.Duration `yaml:"response_ttl"     env:"CACHE_RESPONSE_TTL"     env-default:"1m"`
	ResponseSize    int           `yaml:"response_size"    env:"CACHE_RESPONSE_SIZE"    env-default:"1024"`
	TermTTL         time.Duration `yaml:"term_ttl"         env:"CACHE_TERM_TTL"         env-default:"24h"`
	CurrentTermTTL  time.Duration `yaml:"current_term_ttl" env:"CACHE_CURRENT_TERM_TTL" env-default:"10m"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"CACHE_CLEANUP_INTERVAL" env-default:"10m"`
}

// LoaderConfig holds per-request dataloader batching settings.
type LoaderConfig struct {
	Wait     time.Duration `yaml:"wait"      env:"LOADER_WAIT"      env-default:"2ms"`
	MaxBatch int           `yaml:"max_batch" env:"LOADER_MAX_BATCH" env-default:"100"`
}

// GraphQLConfig holds GraphQL server settings.
type GraphQLConfig struct {
	PlaygroundEnabled    bool `yaml:"playground_enabled"    env:"GRAPHQL_PLAYGROUND_ENABLED"    env-default:"false"`
	IntrospectionEnabled bool `yaml:"introspection_enabled" env:"GRAPHQL_INTROSPECTION_ENABLED" env-default:"false"`
	MaxDepth             int  `yaml:"max_depth"             env:"GRAPHQL_MAX_DEPTH"             env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-UW-Act-as"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// AuthConfig holds bearer token settings. With an empty JWTSecret the API is
// open and AllowActAsHeader decides whether callers may pick the identity.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"          env:"AUTH_JWT_SECRET"`
	JWTIssuer        string        `yaml:"jwt_issuer"          env:"AUTH_JWT_ISSUER"          env-default:"swsgraph"`
	TokenTTL         time.Duration `yaml:"token_ttl"           env:"AUTH_TOKEN_TTL"           env-default:"1h"`
	AllowActAsHeader bool          `yaml:"allow_act_as_header" env:"AUTH_ALLOW_ACT_AS_HEADER" env-default:"false"`
}

// Enabled reports whether bearer tokens are required.
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// RateLimitConfig holds per-client rate limiting settings. Zero
// RequestsPerMinute disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"0"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}
