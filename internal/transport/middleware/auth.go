package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/swsgraph/internal/auth"
	"github.com/heartmarshall/swsgraph/pkg/ctxutil"
)

// ActAsHeader names the NetID to impersonate when header impersonation is
// trusted.
const ActAsHeader = "X-UW-Act-as"

type tokenValidator interface {
	ValidateToken(token string) (auth.Identity, error)
}

// Auth resolves the impersonation identity of a request. With a validator,
// a valid bearer token is required and its identity is used. Without one,
// the ActAsHeader is honoured when allowHeader is set.
func Auth(validator tokenValidator, allowHeader bool, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if validator != nil {
				token := extractBearerToken(r)
				if token == "" {
					unauthorized(w, r, "missing bearer token")
					return
				}
				id, err := validator.ValidateToken(token)
				if err != nil {
					logger.WarnContext(ctx, "rejected bearer token",
						slog.String("error", err.Error()),
						slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
					)
					unauthorized(w, r, "invalid bearer token")
					return
				}
				ctx = ctxutil.WithSubject(ctx, id.Subject)
				ctx = ctxutil.WithImpersonate(ctx, id.ActingAs())
			} else if allowHeader {
				ctx = ctxutil.WithImpersonate(ctx, r.Header.Get(ActAsHeader))
			}

			if actAs, ok := ctxutil.ImpersonateFromCtx(ctx); ok {
				noteActAs(ctx, actAs)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < len("Bearer ") || !strings.EqualFold(h[:len("Bearer ")], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[len("Bearer "):])
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="swsgraph"`)
	writeError(w, r, http.StatusUnauthorized, codeUnauthenticated, msg)
}
