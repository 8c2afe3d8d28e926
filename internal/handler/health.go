package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/aquasales/crm-platform/internal/events"
	"github.com/aquasales/crm-platform/internal/store"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store      *store.RedisStore
	natsClient *events.Client
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(st *store.RedisStore, natsClient *events.Client) *HealthHandler {
	return &HealthHandler{
		store:      st,
		natsClient: natsClient,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.store == nil || h.store.Ping(ctx) != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "store not reachable",
		})
		return
	}

	if h.natsClient == nil || !h.natsClient.IsConnected() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "NATS not connected",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
