package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/swsgraph/pkg/ctxutil"
)

type requestNoteKey struct{}

// requestNote collects identifiers learned by inner middleware so the
// access log, written on the way out, can report them.
type requestNote struct {
	actAs string
}

func withRequestNote(ctx context.Context) (context.Context, *requestNote) {
	n := &requestNote{}
	return context.WithValue(ctx, requestNoteKey{}, n), n
}

// noteActAs records the impersonation identity for the access log.
func noteActAs(ctx context.Context, actAs string) {
	if n, ok := ctx.Value(requestNoteKey{}).(*requestNote); ok {
		n.actAs = actAs
	}
}

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, request id and impersonation identity.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			ctx, note := withRequestNote(r.Context())

			next.ServeHTTP(sw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.Int("bytes", sw.bytes),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if note.actAs != "" {
				attrs = append(attrs, slog.String("act_as", note.actAs))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(ctx, level, "http.request", attrs...)
		})
	}
}

// statusWriter records the status code and body size of a response.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
