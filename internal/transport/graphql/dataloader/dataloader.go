// Package dataloader provides per-request DataLoaders that batch and
// deduplicate SWS entity fetches made while resolving one GraphQL request.
// SWS has no multi-key endpoints, so a batch fans out one GET per key with
// bounded concurrency.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/swsgraph/internal/cache"
	"github.com/heartmarshall/swsgraph/internal/domain"
)

const (
	defaultMaxBatch    = 100
	defaultWait        = 2 * time.Millisecond
	defaultConcurrency = 8
)

// Source fetches single SWS entities. *sws.Client implements it.
type Source interface {
	GetTerm(ctx context.Context, key domain.TermKey) (*domain.Term, error)
	GetCourse(ctx context.Context, key domain.CourseKey) (*domain.Course, error)
	GetSection(ctx context.Context, key domain.SectionKey) (*domain.Section, error)
	GetPerson(ctx context.Context, regID string) (*domain.Person, error)
	SearchEnrollment(ctx context.Context, regID string) (*domain.EnrollmentSearchResult, error)
}

// Options tunes batching. Zero values fall back to the defaults.
type Options struct {
	Wait        time.Duration
	MaxBatch    int
	Concurrency int
	// Terms, when set, is consulted before SWS for term lookups.
	Terms *cache.TermCache
}

func (o Options) withDefaults() Options {
	if o.Wait <= 0 {
		o.Wait = defaultWait
	}
	if o.MaxBatch <= 0 {
		o.MaxBatch = defaultMaxBatch
	}
	if o.Concurrency <= 0 {
		o.Concurrency = defaultConcurrency
	}
	return o
}

// Loaders contains the per-request DataLoaders. Created per-request via
// NewLoaders.
type Loaders struct {
	Term       *dataloader.Loader[domain.TermKey, *domain.Term]
	Course     *dataloader.Loader[domain.CourseKey, *domain.Course]
	Section    *dataloader.Loader[domain.SectionKey, *domain.Section]
	Person     *dataloader.Loader[string, *domain.Person]
	Enrollment *dataloader.Loader[string, *domain.EnrollmentSearchResult]
}

// NewLoaders creates a new set of DataLoaders backed by src.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(src Source, opts Options) *Loaders {
	opts = opts.withDefaults()
	return &Loaders{
		Term:       newLoader(newTermBatchFn(src, opts.Terms, opts.Concurrency), opts),
		Course:     newLoader(fanOutBatchFn(src.GetCourse, opts.Concurrency), opts),
		Section:    newLoader(fanOutBatchFn(src.GetSection, opts.Concurrency), opts),
		Person:     newLoader(fanOutBatchFn(src.GetPerson, opts.Concurrency), opts),
		Enrollment: newLoader(fanOutBatchFn(src.SearchEnrollment, opts.Concurrency), opts),
	}
}

// newLoader creates a dataloader.Loader with the configured batch parameters.
func newLoader[K comparable, V any](batchFn dataloader.BatchFunc[K, V], opts Options) *dataloader.Loader[K, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[K, V](opts.Wait),
		dataloader.WithBatchCapacity[K, V](opts.MaxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
