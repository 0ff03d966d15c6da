package middleware

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/heartmarshall/swsgraph/pkg/ctxutil"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Codes for requests rejected before reaching the GraphQL handler. They
// share extensions.code with resolver errors so clients parse one shape.
const (
	codeUnauthenticated = "UNAUTHENTICATED"
	codeRateLimited     = "RATE_LIMITED"
	codeInternal        = "INTERNAL"
)

type errorEnvelope struct {
	Errors []envelopeError `json:"errors"`
}

type envelopeError struct {
	Message    string            `json:"message"`
	Extensions map[string]string `json:"extensions"`
}

// writeError responds with a GraphQL-style error body.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	ext := map[string]string{"code": code}
	if id := ctxutil.RequestIDFromCtx(r.Context()); id != "" {
		ext["requestId"] = id
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{
		Errors: []envelopeError{{Message: msg, Extensions: ext}},
	})
}
