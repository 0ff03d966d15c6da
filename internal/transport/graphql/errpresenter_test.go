package graphql

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/heartmarshall/swsgraph/internal/domain"
	"github.com/heartmarshall/swsgraph/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func codeOf(t *testing.T, extensions map[string]interface{}) interface{} {
	t.Helper()
	if extensions == nil {
		t.Fatal("expected extensions, got nil")
	}
	code, ok := extensions["code"]
	if !ok {
		t.Fatal("expected code in extensions")
	}
	return code
}

func TestErrorPresenter_Codes(t *testing.T) {
	presenter := NewErrorPresenter(testLogger())

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", domain.ErrNotFound, CodeNotFound},
		{"wrapped not found", fmt.Errorf("sws: GET /term/2019,autumn.json: %w", domain.ErrNotFound), CodeNotFound},
		{"unauthorized", domain.ErrUnauthorized, CodeUnauthenticated},
		{"forbidden", fmt.Errorf("sws: %w", domain.ErrForbidden), CodeForbidden},
		{"upstream", fmt.Errorf("sws: status 503: %w", domain.ErrUpstream), CodeUpstreamUnavailable},
		{"deadline", fmt.Errorf("sws: %w", context.DeadlineExceeded), CodeUpstreamUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gqlErr := presenter(context.Background(), tt.err)
			if code := codeOf(t, gqlErr.Extensions); code != tt.want {
				t.Errorf("expected code %s, got %v", tt.want, code)
			}
			if gqlErr.Message != tt.err.Error() {
				t.Errorf("expected message %q, got %q", tt.err.Error(), gqlErr.Message)
			}
		})
	}
}

func TestErrorPresenter_Validation(t *testing.T) {
	presenter := NewErrorPresenter(testLogger())

	err := domain.NewValidationErrors([]domain.FieldError{
		{Field: "Year", Message: "must be positive"},
		{Field: "Quarter", Message: `unknown quarter "fall"`},
	})

	gqlErr := presenter(context.Background(), err)

	if code := codeOf(t, gqlErr.Extensions); code != CodeValidation {
		t.Errorf("expected code VALIDATION, got %v", code)
	}
	fields, ok := gqlErr.Extensions["fields"]
	if !ok {
		t.Fatal("expected fields in extensions")
	}
	fieldErrors, ok := fields.([]domain.FieldError)
	if !ok {
		t.Fatalf("expected fields to be []FieldError, got %T", fields)
	}
	if len(fieldErrors) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(fieldErrors))
	}
}

func TestErrorPresenter_ValidationFromUpstream400(t *testing.T) {
	presenter := NewErrorPresenter(testLogger())

	err := fmt.Errorf("sws: GET /course.json: %w", domain.NewValidationError("request", "Invalid curriculum"))

	gqlErr := presenter(context.Background(), err)

	if code := codeOf(t, gqlErr.Extensions); code != CodeValidation {
		t.Errorf("expected code VALIDATION, got %v", code)
	}
	fieldErrors, _ := gqlErr.Extensions["fields"].([]domain.FieldError)
	if len(fieldErrors) != 1 || fieldErrors[0].Field != "request" {
		t.Errorf("expected the request field error, got %v", fieldErrors)
	}
}

func TestErrorPresenter_UpstreamStatus(t *testing.T) {
	presenter := NewErrorPresenter(testLogger())

	tests := []struct {
		name       string
		status     int
		wantCode   string
		wantStatus interface{}
	}{
		{"bad gateway", 502, CodeUpstreamUnavailable, 502},
		{"forbidden", 403, CodeForbidden, 403},
		{"not found", 404, CodeNotFound, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("get person: %w", &domain.UpstreamError{Resource: "person/ABC.json", Status: tt.status})

			gqlErr := presenter(context.Background(), err)

			if code := codeOf(t, gqlErr.Extensions); code != tt.wantCode {
				t.Errorf("expected code %s, got %v", tt.wantCode, code)
			}
			if got := gqlErr.Extensions["status"]; got != tt.wantStatus {
				t.Errorf("expected status %v, got %v", tt.wantStatus, got)
			}
		})
	}
}

func TestErrorPresenter_UnexpectedError(t *testing.T) {
	presenter := NewErrorPresenter(testLogger())

	err := errors.New("decode term: unexpected end of JSON input")
	ctx := ctxutil.WithRequestID(context.Background(), "test-request-123")

	gqlErr := presenter(ctx, err)

	if code := codeOf(t, gqlErr.Extensions); code != CodeInternal {
		t.Errorf("expected code INTERNAL, got %v", code)
	}
	if gqlErr.Message != "internal error" {
		t.Errorf("expected message 'internal error', got %s", gqlErr.Message)
	}
}

func TestErrorPresenter_UnexpectedError_NoLeakDetails(t *testing.T) {
	presenter := NewErrorPresenter(testLogger())

	// Error with sensitive details
	err := errors.New("tls: failed to load key /etc/sws/client.key")

	gqlErr := presenter(context.Background(), err)

	if gqlErr.Message != "internal error" {
		t.Errorf("expected generic 'internal error', but got: %s (details leaked!)", gqlErr.Message)
	}
	if details, ok := gqlErr.Extensions["details"]; ok {
		t.Errorf("unexpected details in extensions: %v (should not leak error details)", details)
	}
}

func TestToPath(t *testing.T) {
	got := toPath([]interface{}{"SectionSearch", "Sections", 2, "Section"})
	want := ast.Path{ast.PathName("SectionSearch"), ast.PathName("Sections"), ast.PathIndex(2), ast.PathName("Section")}
	if got.String() != want.String() {
		t.Errorf("expected path %s, got %s", want, got)
	}
	if toPath(nil) != nil {
		t.Error("expected nil path for empty input")
	}
}
