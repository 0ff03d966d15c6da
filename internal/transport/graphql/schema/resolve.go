package schema

import (
	"context"
	"maps"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/graphql-go/graphql"

	"github.com/heartmarshall/swsgraph/internal/domain"
	dl "github.com/heartmarshall/swsgraph/internal/transport/graphql/dataloader"
)

// thunk is the deferred value graphql-go forces after resolving siblings.
type thunk = func() (interface{}, error)

// loadThunk queues key on l and defers waiting for it, so sibling fields
// land in the same batch.
func loadThunk[K comparable, V any](ctx context.Context, l *dataloader.Loader[K, V], key K) thunk {
	wait := l.Load(ctx, key)
	return func() (interface{}, error) {
		v, err := wait()
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// goThunk starts fn now and defers waiting for it. Used for pass-through
// calls nested in lists so the items fetch concurrently.
func goThunk[V any](fn func() (V, error)) thunk {
	type result struct {
		v   V
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn()
		ch <- result{v, err}
	}()
	return func() (interface{}, error) {
		r := <-ch
		if r.err != nil {
			return nil, r.err
		}
		return r.v, nil
	}
}

func loaders(p graphql.ResolveParams) *dl.Loaders {
	return dl.FromContext(p.Context)
}

// sourceAs unwraps the parent value, which graphql-go hands over either as a
// struct or as a pointer to one.
func sourceAs[T any](src any) (T, bool) {
	switch v := src.(type) {
	case T:
		return v, true
	case *T:
		if v != nil {
			return *v, true
		}
	}
	var zero T
	return zero, false
}

// resolveFrom builds a resolver reading a derived value off a parent of
// type T.
func resolveFrom[T any](get func(T) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		v, ok := sourceAs[T](p.Source)
		if !ok {
			return nil, nil
		}
		return get(v), nil
	}
}

// scalars declares plain fields of one type resolved by name.
func scalars(t graphql.Output, names ...string) graphql.Fields {
	f := make(graphql.Fields, len(names))
	for _, n := range names {
		f[n] = &graphql.Field{Type: t}
	}
	return f
}

func merge(fs ...graphql.Fields) graphql.Fields {
	out := graphql.Fields{}
	for _, f := range fs {
		maps.Copy(out, f)
	}
	return out
}

type pager interface {
	PageInfo() domain.Page
}

// pageFields exposes the SWS paging envelope every search result embeds.
func pageFields() graphql.Fields {
	count := func(get func(domain.Page) domain.FlexInt) *graphql.Field {
		return &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				pg, ok := p.Source.(pager)
				if !ok {
					return nil, nil
				}
				return int(get(pg.PageInfo())), nil
			},
		}
	}
	link := func(get func(domain.Page) *domain.Link) *graphql.Field {
		return &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				pg, ok := p.Source.(pager)
				if !ok {
					return nil, nil
				}
				if l := get(pg.PageInfo()); l != nil {
					return l.Href, nil
				}
				return nil, nil
			},
		}
	}
	return graphql.Fields{
		"PageStart":  count(func(pg domain.Page) domain.FlexInt { return pg.PageStart }),
		"PageSize":   count(func(pg domain.Page) domain.FlexInt { return pg.PageSize }),
		"TotalCount": count(func(pg domain.Page) domain.FlexInt { return pg.TotalCount }),
		"Next":       link(func(pg domain.Page) *domain.Link { return pg.Next }),
		"Previous":   link(func(pg domain.Page) *domain.Link { return pg.Previous }),
		"Current":    link(func(pg domain.Page) *domain.Link { return pg.Current }),
	}
}
