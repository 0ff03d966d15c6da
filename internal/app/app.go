package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	gql "github.com/graphql-go/graphql"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/swsgraph/internal/adapter/sws"
	"github.com/heartmarshall/swsgraph/internal/auth"
	"github.com/heartmarshall/swsgraph/internal/cache"
	"github.com/heartmarshall/swsgraph/internal/config"
	"github.com/heartmarshall/swsgraph/internal/transport/graphql"
	"github.com/heartmarshall/swsgraph/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/swsgraph/internal/transport/graphql/schema"
	"github.com/heartmarshall/swsgraph/internal/transport/middleware"
	"github.com/heartmarshall/swsgraph/internal/transport/rest"
	"github.com/heartmarshall/swsgraph/pkg/ctxutil"
)

// App holds the wired service components.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	client  *sws.Client
	terms   *cache.TermCache
	schema  gql.Schema
	graphql *graphql.Handler
	tokens  *auth.JWTManager
	limiter *middleware.RateLimiter
}

// New wires the SWS client, caches, schema and GraphQL handler. Call Close
// when done.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	client, err := sws.New(cfg.SWS, cfg.Cache, logger)
	if err != nil {
		return nil, fmt.Errorf("sws client: %w", err)
	}

	s, err := schema.New(client, logger)
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}

	a := &App{
		cfg:    cfg,
		log:    logger,
		client: client,
		terms:  cache.NewTermCache(cfg.Cache),
		schema: s,
		graphql: graphql.NewHandler(s, graphql.Options{
			MaxDepth:             cfg.GraphQL.MaxDepth,
			IntrospectionEnabled: cfg.GraphQL.IntrospectionEnabled,
		}, logger),
	}
	if cfg.Auth.Enabled() {
		a.tokens = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	}
	if cfg.RateLimit.RequestsPerMinute > 0 {
		a.limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	}
	return a, nil
}

// Schema returns the executable GraphQL schema.
func (a *App) Schema() gql.Schema {
	return a.schema
}

// Tokens returns the bearer token manager, or nil when auth is disabled.
func (a *App) Tokens() *auth.JWTManager {
	return a.tokens
}

func (a *App) loaderOptions() dataloader.Options {
	return dataloader.Options{
		Wait:        a.cfg.Loader.Wait,
		MaxBatch:    a.cfg.Loader.MaxBatch,
		Concurrency: a.cfg.SWS.MaxConcurrency,
		Terms:       a.terms,
	}
}

// Execute runs one GraphQL operation outside HTTP, evaluated by SWS as
// actAs when it is not empty.
func (a *App) Execute(ctx context.Context, query string, variables map[string]interface{}, actAs string) graphql.Response {
	if actAs != "" {
		ctx = ctxutil.WithImpersonate(ctx, actAs)
	}
	ctx = dataloader.Attach(ctx, a.client, a.loaderOptions())
	return a.graphql.Execute(ctx, query, "", variables)
}

// Handler returns the root HTTP handler with all routes and middleware.
func (a *App) Handler() http.Handler {
	// A nil *JWTManager must not reach Auth as a non-nil interface.
	var validator interface {
		ValidateToken(string) (auth.Identity, error)
	}
	if a.tokens != nil {
		validator = a.tokens
	}

	gqlChain := middleware.Chain(
		middleware.Auth(validator, a.cfg.Auth.AllowActAsHeader, a.log),
		dataloader.Middleware(a.client, a.loaderOptions()),
	)

	health := rest.NewHealthHandler(a.client, a.terms, BuildVersion())

	mux := http.NewServeMux()
	mux.Handle("/graphql", gqlChain(a.graphql))
	mux.HandleFunc("GET /schema.graphql", graphql.SDLHandler(a.schema))
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	if a.cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /{$}", playground.Handler("SWS GraphQL", "/graphql"))
	}

	var rateLimit middleware.Middleware
	if a.limiter != nil {
		rateLimit = a.limiter.Limit(a.cfg.RateLimit.RequestsPerMinute)
	}
	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(a.log),
		middleware.Logger(a.log),
		middleware.CORS(a.cfg.CORS),
		rateLimit,
	)(mux)
}

// Run serves HTTP until ctx is cancelled, then shuts down within the
// configured timeout.
func (a *App) Run(ctx context.Context) error {
	srv := NewServer(a.cfg.Server, a.Handler(), a.log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down", slog.Duration("timeout", a.cfg.Server.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Close releases background resources.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	a.terms.Flush()
}
