// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/aquasales/crm-platform/internal/engine"
	"github.com/aquasales/crm-platform/internal/middleware"
	"github.com/aquasales/crm-platform/internal/model"
	"github.com/aquasales/crm-platform/internal/store"
	"github.com/aquasales/crm-platform/pkg/logger"
)

// EngagementHandler handles engagement endpoints.
type EngagementHandler struct {
	orchestrator *engine.Orchestrator
	engagements  store.EngagementStore
	logger       *logger.Logger
}

// NewEngagementHandler creates a new engagement handler.
func NewEngagementHandler(orch *engine.Orchestrator, engagements store.EngagementStore, log *logger.Logger) *EngagementHandler {
	return &EngagementHandler{
		orchestrator: orch,
		engagements:  engagements,
		logger:       log,
	}
}

// Get handles GET /api/v1/engagements?leadId=
// Read-only; returns an empty-messages placeholder when no engagement
// exists yet for the lead.
func (h *EngagementHandler) Get(w http.ResponseWriter, r *http.Request) {
	leadID := r.URL.Query().Get("leadId")
	if err := middleware.ValidateLeadID(leadID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	eng, err := h.engagements.GetEngagement(r.Context(), leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusOK, map[string]any{"messages": []model.Message{}})
			return
		}
		h.logger.Error("failed to load engagement", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load engagement")
		return
	}

	writeJSON(w, http.StatusOK, eng)
}

// Turn handles POST /api/v1/engagements
func (h *EngagementHandler) Turn(w http.ResponseWriter, r *http.Request) {
	var req model.TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.orchestrator.Turn(r.Context(), &req)
	if err != nil {
		h.writeTurnError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Suggestions handles GET /api/v1/engagements/suggestions?leadId=
// Recomputes suggestions for the current transcript without persisting
// anything.
func (h *EngagementHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	leadID := r.URL.Query().Get("leadId")
	if err := middleware.ValidateLeadID(leadID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	suggestions, err := h.orchestrator.Suggestions(r.Context(), leadID)
	if err != nil {
		h.writeTurnError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &model.SuggestionsResponse{Suggestions: suggestions})
}

// writeTurnError maps the engine failure taxonomy onto HTTP statuses.
// Validation and not-found mean the message was never delivered;
// completion failure means the external model call failed.
func (h *EngagementHandler) writeTurnError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "lead not found")
	case errors.Is(err, engine.ErrCompletion):
		h.logger.Error("completion failure", zap.Error(err))
		writeError(w, http.StatusBadGateway, "completion service unavailable")
	default:
		h.logger.Error("turn failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to process engagement")
	}
}
