package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aquasales/crm-platform/internal/middleware"
	"github.com/aquasales/crm-platform/internal/model"
	"github.com/aquasales/crm-platform/internal/store"
	"github.com/aquasales/crm-platform/pkg/logger"
)

// LeadHandler handles lead intake and CRUD endpoints.
type LeadHandler struct {
	leads  store.LeadStore
	logger *logger.Logger
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(leads store.LeadStore, log *logger.Logger) *LeadHandler {
	return &LeadHandler{
		leads:  leads,
		logger: log,
	}
}

// List handles GET /api/v1/leads
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leads.ListLeads(r.Context())
	if err != nil {
		h.logger.Error("failed to list leads", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list leads")
		return
	}

	writeJSON(w, http.StatusOK, &model.ListLeadsResponse{
		Leads: leads,
		Total: len(leads),
	})
}

// Create handles POST /api/v1/leads
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateLeadName(req.Name); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	status := req.Status
	if status == "" {
		status = model.StatusNewLead
	}
	if !status.Valid() {
		writeError(w, http.StatusBadRequest, "unknown lead status")
		return
	}
	if req.Score < 0 || req.Score > 100 {
		writeError(w, http.StatusBadRequest, "score must be between 0 and 100")
		return
	}

	leadContext := req.Context
	if leadContext == "" {
		leadContext = model.ContextCommercial
	}

	lastContact := req.LastContact
	if lastContact == "" {
		lastContact = time.Now().UTC().Format(time.RFC3339)
	}

	now := time.Now()
	lead := &model.Lead{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Name:        req.Name,
		Contact:     req.Contact,
		Email:       req.Email,
		Region:      req.Region,
		Industry:    req.Industry,
		Notes:       req.Notes,
		Status:      status,
		Score:       req.Score,
		LastContact: lastContact,
		Context:     leadContext,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.leads.PutLead(r.Context(), lead); err != nil {
		h.logger.Error("failed to create lead", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create lead")
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}

// Get handles GET /api/v1/leads/{id}
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")
	if err := middleware.ValidateLeadID(leadID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lead, err := h.leads.GetLead(r.Context(), leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "lead not found")
			return
		}
		h.logger.Error("failed to load lead", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load lead")
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

// Update handles PUT /api/v1/leads/{id}
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")
	if err := middleware.ValidateLeadID(leadID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lead, err := h.leads.GetLead(r.Context(), leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "lead not found")
			return
		}
		h.logger.Error("failed to load lead", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load lead")
		return
	}

	if req.Name != "" {
		if err := middleware.ValidateLeadName(req.Name); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		lead.Name = req.Name
	}
	if req.Contact != "" {
		lead.Contact = req.Contact
	}
	if req.Email != "" {
		lead.Email = req.Email
	}
	if req.Region != "" {
		lead.Region = req.Region
	}
	if req.Notes != "" {
		lead.Notes = req.Notes
	}
	if req.Status != "" {
		if !req.Status.Valid() {
			writeError(w, http.StatusBadRequest, "unknown lead status")
			return
		}
		lead.Status = req.Status
	}
	if req.Score != nil {
		if *req.Score < 0 || *req.Score > 100 {
			writeError(w, http.StatusBadRequest, "score must be between 0 and 100")
			return
		}
		lead.Score = *req.Score
	}
	lead.UpdatedAt = time.Now()

	if err := h.leads.PutLead(r.Context(), lead); err != nil {
		h.logger.Error("failed to update lead", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to update lead")
		return
	}

	writeJSON(w, http.StatusOK, lead)
}
