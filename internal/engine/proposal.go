package engine

import (
	"fmt"
	"regexp"
	"time"

	"github.com/aquasales/crm-platform/internal/model"
)

var proposalKeywords = regexp.MustCompile(`(?i)proposal|quote|cost|price`)

const (
	proposalPlaceholderValue = "KES 0.00"
	proposalNote             = "Auto-generated proposal based on engagement."
)

// shouldSpawnProposal reports whether the post-turn state calls for a
// draft proposal: either the analyzer moved the lead to Proposal Sent, or
// the latest message carries proposal/pricing language.
func shouldSpawnProposal(status model.LeadStatus, lastMessage string) bool {
	return status == model.StatusProposalSent || proposalKeywords.MatchString(lastMessage)
}

// nextProposalID allocates the next collection-wide ID: max(existing)+1,
// or 1 for an empty collection.
func nextProposalID(proposals []model.Proposal) int {
	next := 1
	for _, p := range proposals {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

// buildProposal constructs the draft record spawned for a lead. Products
// and services stay empty; the draft only flags a sales-ready moment.
func buildProposal(id int, lead *model.Lead, now time.Time) *model.Proposal {
	return &model.Proposal{
		ID:       id,
		Name:     fmt.Sprintf("%s - Auto Proposal", lead.Name),
		LeadID:   lead.ID,
		Client:   lead.Name,
		Contact:  lead.Contact,
		Date:     now.Format("1/2/2006"),
		Status:   model.ProposalStatusDraft,
		Value:    proposalPlaceholderValue,
		Products: []string{},
		Services: []string{},
		Notes:    proposalNote,
	}
}
