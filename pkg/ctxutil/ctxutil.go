package ctxutil

import (
	"context"
	"strings"
)

type ctxKey string

const (
	impersonateKey ctxKey = "impersonate"
	subjectKey     ctxKey = "subject"
	requestIDKey   ctxKey = "request_id"
)

// WithImpersonate stores the identity SWS should evaluate requests as.
// Blank identities are ignored.
func WithImpersonate(ctx context.Context, netID string) context.Context {
	netID = strings.TrimSpace(netID)
	if netID == "" {
		return ctx
	}
	return context.WithValue(ctx, impersonateKey, netID)
}

// ImpersonateFromCtx extracts the impersonation identity from the context.
// Returns "" and false if the value is missing or has the wrong type.
func ImpersonateFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(impersonateKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// WithSubject stores the authenticated token subject in the context.
func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, subjectKey, sub)
}

// SubjectFromCtx extracts the token subject. Returns an empty string if absent.
func SubjectFromCtx(ctx context.Context) string {
	sub, _ := ctx.Value(subjectKey).(string)
	return sub
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
