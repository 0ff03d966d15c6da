package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/swsgraph/internal/cache"
	"github.com/heartmarshall/swsgraph/internal/domain"
	"github.com/heartmarshall/swsgraph/pkg/ctxutil"
)

// fanOutBatchFn turns a single-key fetch into a batch function issuing one
// call per distinct key, at most limit at a time. Each key carries its own
// error, so one failure does not fail its siblings.
func fanOutBatchFn[K comparable, V any](fetch func(context.Context, K) (V, error), limit int) dataloader.BatchFunc[K, V] {
	return func(ctx context.Context, keys []K) []*dataloader.Result[V] {
		return fanOut(ctx, keys, limit, fetch)
	}
}

func fanOut[K comparable, V any](ctx context.Context, keys []K, limit int, fetch func(context.Context, K) (V, error)) []*dataloader.Result[V] {
	if err := ctx.Err(); err != nil {
		return errorResults[V](len(keys), err)
	}

	first := make(map[K]int, len(keys))
	results := make([]*dataloader.Result[V], len(keys))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, key := range keys {
		if _, dup := first[key]; dup {
			continue
		}
		first[key] = i
		g.Go(func() error {
			v, err := fetch(ctx, key)
			results[i] = &dataloader.Result[V]{Data: v, Error: err}
			return nil
		})
	}
	_ = g.Wait()

	for i, key := range keys {
		if results[i] == nil {
			results[i] = results[first[key]]
		}
	}
	return results
}

// newTermBatchFn serves terms from the process-wide cache where possible and
// fetches the rest from SWS, storing what it fetched.
func newTermBatchFn(src Source, terms *cache.TermCache, limit int) dataloader.BatchFunc[domain.TermKey, *domain.Term] {
	return func(ctx context.Context, keys []domain.TermKey) []*dataloader.Result[*domain.Term] {
		if terms == nil {
			return fanOut(ctx, keys, limit, src.GetTerm)
		}

		actAs, _ := ctxutil.ImpersonateFromCtx(ctx)
		return fanOut(ctx, keys, limit, func(ctx context.Context, key domain.TermKey) (*domain.Term, error) {
			if t, ok := terms.Get(actAs, key); ok {
				return t, nil
			}
			t, err := src.GetTerm(ctx, key)
			if err != nil {
				return nil, err
			}
			terms.Set(actAs, key, t)
			return t, nil
		})
	}
}

// errorResults fills every key of a batch with err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
