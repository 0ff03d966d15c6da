package ctxutil

import (
	"context"
	"testing"
)

func TestWithImpersonate_And_ImpersonateFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithImpersonate(context.Background(), " javerage ")

	got, ok := ImpersonateFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if got != "javerage" {
		t.Fatalf("expected javerage, got %q", got)
	}
}

func TestImpersonateFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := ImpersonateFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestWithImpersonate_BlankIgnored(t *testing.T) {
	t.Parallel()

	parent := context.Background()
	ctx := WithImpersonate(parent, "   ")

	if ctx != parent {
		t.Fatal("expected blank identity to leave the context untouched")
	}
}

func TestImpersonateFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("impersonate"), 42)

	if _, ok := ImpersonateFromCtx(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestWithSubject_And_SubjectFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithSubject(context.Background(), "svc-registrar")

	if got := SubjectFromCtx(ctx); got != "svc-registrar" {
		t.Fatalf("expected svc-registrar, got %q", got)
	}
	if got := SubjectFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	got := RequestIDFromCtx(ctx)
	if got != "req-123" {
		t.Fatalf("expected req-123, got %s", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got := RequestIDFromCtx(context.Background())
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}
