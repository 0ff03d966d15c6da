package graphql

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	gql "github.com/graphql-go/graphql"
	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

// Options configures a Handler.
type Options struct {
	// MaxDepth caps selection nesting. Zero disables the check.
	MaxDepth             int
	IntrospectionEnabled bool
}

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Response is the GraphQL response envelope.
type Response struct {
	Data   interface{}   `json:"data"`
	Errors gqlerror.List `json:"errors,omitempty"`
}

// Handler serves GraphQL over HTTP GET and POST.
type Handler struct {
	schema  gql.Schema
	guard   guard
	present ErrorPresenter
	log     *slog.Logger
}

// NewHandler creates a Handler executing against schema.
func NewHandler(schema gql.Schema, opts Options, logger *slog.Logger) *Handler {
	log := logger.With("component", "graphql")
	return &Handler{
		schema:  schema,
		guard:   guard{maxDepth: opts.MaxDepth, introspection: opts.IntrospectionEnabled},
		present: NewErrorPresenter(log),
		log:     log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if v := q.Get("variables"); v != "" {
			if err := json.UnmarshalFromString(v, &req.Variables); err != nil {
				writeError(w, http.StatusBadRequest, "variables must be a JSON object")
				return
			}
		}
	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "request body must be a JSON object")
			return
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	if rejected := h.guard.check(req.Query); rejected != nil {
		writeJSON(w, http.StatusUnprocessableEntity, Response{Errors: gqlerror.List{rejected}})
		return
	}

	writeJSON(w, http.StatusOK, h.Execute(r.Context(), req.Query, req.OperationName, req.Variables))
}

// Execute runs one operation and presents its errors. ctx must carry the
// request's DataLoaders.
func (h *Handler) Execute(ctx context.Context, query, operationName string, variables map[string]interface{}) Response {
	start := time.Now()
	res := gql.Do(gql.Params{
		Schema:         h.schema,
		RequestString:  query,
		OperationName:  operationName,
		VariableValues: variables,
		Context:        ctx,
	})
	h.log.DebugContext(ctx, "graphql operation",
		slog.String("operation", operationName),
		slog.Int("errors", len(res.Errors)),
		slog.Duration("duration", time.Since(start)),
	)
	return Response{Data: res.Data, Errors: presentErrors(ctx, h.present, res.Errors)}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Response{Errors: gqlerror.List{{Message: msg}}})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
