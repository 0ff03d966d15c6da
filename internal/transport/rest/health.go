package rest

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const pingTimeout = 3 * time.Second

const (
	statusOK   = "ok"
	statusDown = "down"
)

// swsPinger is the part of the SWS client health checks need.
type swsPinger interface {
	Ping(ctx context.Context) error
	CacheLen() int
}

// sizer reports a cache's entry count.
type sizer interface {
	Len() int
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	sws     swsPinger
	terms   sizer
	version string
}

// NewHealthHandler creates a HealthHandler. terms may be nil.
func NewHealthHandler(sws swsPinger, terms sizer, version string) *HealthHandler {
	return &HealthHandler{sws: sws, terms: terms, version: version}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
	Entries *int   `json:"entries,omitempty"`
}

// Live always returns 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready returns 200 when SWS answers the current-term probe, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	sws := h.probeSWS(r.Context())
	writeJSON(w, httpStatus(sws.Status), HealthResponse{
		Status:     sws.Status,
		Components: map[string]CompStatus{"sws": sws},
		Timestamp:  time.Now(),
	})
}

// Health reports SWS reachability with latency, cache sizes and the build
// version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	sws := h.probeSWS(r.Context())
	components := map[string]CompStatus{
		"sws":            sws,
		"response_cache": entries(h.sws.CacheLen()),
	}
	if h.terms != nil {
		components["term_cache"] = entries(h.terms.Len())
	}

	writeJSON(w, httpStatus(sws.Status), HealthResponse{
		Status:     sws.Status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) probeSWS(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.sws.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown, Error: err.Error()}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}

func entries(n int) CompStatus {
	return CompStatus{Status: statusOK, Entries: &n}
}

func httpStatus(status string) int {
	if status == statusOK {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
