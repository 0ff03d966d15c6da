package dataloader

import (
	"context"
	"net/http"
)

// Attach returns ctx carrying a fresh set of loaders, so batches and caches
// never outlive one GraphQL operation.
func Attach(ctx context.Context, src Source, opts Options) context.Context {
	return WithLoaders(ctx, NewLoaders(src, opts))
}

// Middleware attaches fresh loaders to every request's context.
func Middleware(src Source, opts Options) func(http.Handler) http.Handler {
	opts = opts.withDefaults()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(Attach(r.Context(), src, opts)))
		})
	}
}
