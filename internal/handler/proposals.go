package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/aquasales/crm-platform/internal/model"
	"github.com/aquasales/crm-platform/internal/store"
	"github.com/aquasales/crm-platform/pkg/logger"
)

// ProposalHandler handles proposal endpoints.
type ProposalHandler struct {
	proposals store.ProposalStore
	logger    *logger.Logger
}

// NewProposalHandler creates a new proposal handler.
func NewProposalHandler(proposals store.ProposalStore, log *logger.Logger) *ProposalHandler {
	return &ProposalHandler{
		proposals: proposals,
		logger:    log,
	}
}

// List handles GET /api/v1/proposals
func (h *ProposalHandler) List(w http.ResponseWriter, r *http.Request) {
	proposals, err := h.proposals.ListProposals(r.Context())
	if err != nil {
		h.logger.Error("failed to list proposals", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list proposals")
		return
	}

	writeJSON(w, http.StatusOK, &model.ListProposalsResponse{
		Proposals: proposals,
		Total:     len(proposals),
	})
}
