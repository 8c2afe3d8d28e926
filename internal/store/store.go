// Package store persists leads, engagements and proposals.
package store

import (
	"context"
	"errors"

	"github.com/aquasales/crm-platform/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// LeadStore persists lead records keyed by lead ID.
type LeadStore interface {
	GetLead(ctx context.Context, id string) (*model.Lead, error)
	PutLead(ctx context.Context, lead *model.Lead) error
	ListLeads(ctx context.Context) ([]model.Lead, error)
}

// EngagementStore persists engagement records, one per lead.
type EngagementStore interface {
	GetEngagement(ctx context.Context, leadID string) (*model.Engagement, error)
	PutEngagement(ctx context.Context, eng *model.Engagement) error
}

// ProposalStore owns the proposal collection. Proposal IDs are allocated
// by callers from the full collection; Append never rewrites existing
// entries.
type ProposalStore interface {
	ListProposals(ctx context.Context) ([]model.Proposal, error)
	AppendProposal(ctx context.Context, p *model.Proposal) error
}

// Store combines the three collections behind one backend.
type Store interface {
	LeadStore
	EngagementStore
	ProposalStore
}
