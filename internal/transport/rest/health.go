package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to the storage ping used by health checks.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	db      dbPinger
	driver  string
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler for the given storage driver.
func NewHealthHandler(db dbPinger, driver, version string) *HealthHandler {
	return &HealthHandler{db: db, driver: driver, version: version, now: time.Now}
}

type healthResponse struct {
	Status    string           `json:"status"`
	Version   string           `json:"version,omitempty"`
	Storage   *componentStatus `json:"storage,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

type componentStatus struct {
	Driver  string `json:"driver"`
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live handles GET /live. The process answering is enough.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Timestamp: h.now().UTC()})
}

// Ready handles GET /ready: 200 when storage answers a ping, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	storage := h.check(r.Context())
	status := http.StatusOK
	if storage.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponse{Status: storage.Status, Timestamp: h.now().UTC()})
}

// Health handles GET /health with storage latency and build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	storage := h.check(r.Context())
	status := http.StatusOK
	if storage.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponse{
		Status:    storage.Status,
		Version:   h.version,
		Storage:   &storage,
		Timestamp: h.now().UTC(),
	})
}

func (h *HealthHandler) check(ctx context.Context) componentStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return componentStatus{Driver: h.driver, Status: "down"}
	}
	return componentStatus{Driver: h.driver, Status: "ok", Latency: time.Since(start).String()}
}
