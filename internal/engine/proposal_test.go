package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aquasales/crm-platform/internal/model"
)

func TestShouldSpawnProposal(t *testing.T) {
	tests := []struct {
		name        string
		status      model.LeadStatus
		lastMessage string
		want        bool
	}{
		{"proposal sent status", model.StatusProposalSent, "thanks, talk soon", true},
		{"pricing language", model.StatusQualified, "What would the total cost be?", true},
		{"quote keyword", model.StatusContacted, "Can you send a quote", true},
		{"proposal keyword uppercase", model.StatusContacted, "SEND THE PROPOSAL", true},
		{"price embedded in word", model.StatusContacted, "your pricing tiers", true},
		{"neither trigger", model.StatusQualified, "we are still evaluating vendors", false},
		{"empty message", model.StatusNewLead, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldSpawnProposal(tt.status, tt.lastMessage))
		})
	}
}

func TestNextProposalID(t *testing.T) {
	assert.Equal(t, 1, nextProposalID(nil))
	assert.Equal(t, 1, nextProposalID([]model.Proposal{}))
	assert.Equal(t, 4, nextProposalID([]model.Proposal{{ID: 1}, {ID: 3}, {ID: 2}}))
	assert.Equal(t, 8, nextProposalID([]model.Proposal{{ID: 7}}))
}

func TestBuildProposal(t *testing.T) {
	lead := &model.Lead{
		ID:      "lead-42",
		Name:    "Nairobi Waterworks",
		Contact: "+254 700 000000",
	}
	now := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)

	p := buildProposal(9, lead, now)

	assert.Equal(t, 9, p.ID)
	assert.Equal(t, "Nairobi Waterworks - Auto Proposal", p.Name)
	assert.Equal(t, "lead-42", p.LeadID)
	assert.Equal(t, "Nairobi Waterworks", p.Client)
	assert.Equal(t, "+254 700 000000", p.Contact)
	assert.Equal(t, "3/5/2025", p.Date)
	assert.Equal(t, model.ProposalStatusDraft, p.Status)
	assert.Equal(t, "KES 0.00", p.Value)
	assert.Empty(t, p.Products)
	assert.Empty(t, p.Services)
	assert.Equal(t, "Auto-generated proposal based on engagement.", p.Notes)
}
