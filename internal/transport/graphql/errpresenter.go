package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/errcode"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/swsgraph/internal/domain"
	"github.com/heartmarshall/swsgraph/pkg/ctxutil"
)

// Error codes reported in extensions.code.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeValidation          = "VALIDATION"
	CodeUnauthenticated     = "UNAUTHENTICATED"
	CodeForbidden           = "FORBIDDEN"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeInternal            = "INTERNAL"
)

// ErrorPresenter turns a resolver error into the error sent to clients.
type ErrorPresenter func(ctx context.Context, err error) *gqlerror.Error

// NewErrorPresenter returns a presenter that maps domain errors to GraphQL
// error codes.
func NewErrorPresenter(log *slog.Logger) ErrorPresenter {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		switch {
		case errors.Is(err, domain.ErrNotFound):
			gqlErr.Extensions = map[string]interface{}{"code": CodeNotFound}

		case errors.Is(err, domain.ErrValidation):
			gqlErr.Extensions = map[string]interface{}{"code": CodeValidation}
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				gqlErr.Extensions["fields"] = ve.Errors
			}

		case errors.Is(err, domain.ErrUnauthorized):
			gqlErr.Extensions = map[string]interface{}{"code": CodeUnauthenticated}

		case errors.Is(err, domain.ErrForbidden):
			gqlErr.Extensions = map[string]interface{}{"code": CodeForbidden}

		case errors.Is(err, domain.ErrUpstream), errors.Is(err, context.DeadlineExceeded):
			gqlErr.Extensions = map[string]interface{}{"code": CodeUpstreamUnavailable}

		default:
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", err.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			gqlErr.Message = "internal error"
			gqlErr.Extensions = map[string]interface{}{"code": CodeInternal}
		}

		var ue *domain.UpstreamError
		if errors.As(err, &ue) && gqlErr.Extensions != nil && ue.Unwrap() != domain.ErrNotFound {
			gqlErr.Extensions["status"] = ue.Status
		}
		return gqlErr
	}
}

// presentErrors converts executor errors. Errors raised by resolvers go
// through present; errors in the query document keep their message.
func presentErrors(ctx context.Context, present ErrorPresenter, errs []gqlerrors.FormattedError) gqlerror.List {
	if len(errs) == 0 {
		return nil
	}
	out := make(gqlerror.List, 0, len(errs))
	for _, fe := range errs {
		var gqlErr *gqlerror.Error
		if orig := originalError(fe); orig != nil {
			gqlErr = present(ctx, orig)
		} else {
			gqlErr = &gqlerror.Error{
				Message:    fe.Message,
				Extensions: map[string]interface{}{"code": errcode.ValidationFailed},
			}
		}
		gqlErr.Path = toPath(fe.Path)
		for _, loc := range fe.Locations {
			gqlErr.Locations = append(gqlErr.Locations, gqlerror.Location{Line: loc.Line, Column: loc.Column})
		}
		out = append(out, gqlErr)
	}
	return out
}

// originalError digs the resolver's error out of the executor's wrapping.
// Failed thunks arrive as a FormattedError inside the located error. It
// returns nil for errors that did not come from a resolver.
func originalError(fe gqlerrors.FormattedError) error {
	err := fe.OriginalError()
	for err != nil {
		switch e := err.(type) {
		case *gqlerrors.Error:
			err = e.OriginalError
		case gqlerrors.FormattedError:
			err = e.OriginalError()
		case *gqlerrors.FormattedError:
			err = e.OriginalError()
		default:
			return err
		}
	}
	return nil
}

func toPath(p []interface{}) ast.Path {
	if len(p) == 0 {
		return nil
	}
	path := make(ast.Path, 0, len(p))
	for _, el := range p {
		switch v := el.(type) {
		case string:
			path = append(path, ast.PathName(v))
		case int:
			path = append(path, ast.PathIndex(v))
		}
	}
	return path
}
