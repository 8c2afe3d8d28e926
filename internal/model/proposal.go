package model

// ProposalStatusDraft is the status every auto-spawned proposal starts in.
const ProposalStatusDraft = "Draft"

// Proposal is a draft sales proposal record. IDs are integers allocated
// monotonically across the whole proposal collection.
type Proposal struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	LeadID   string   `json:"lead_id"`
	Client   string   `json:"client"`
	Contact  string   `json:"contact"`
	Date     string   `json:"date"`
	Status   string   `json:"status"`
	Value    string   `json:"value"`
	Products []string `json:"products"`
	Services []string `json:"services"`
	Notes    string   `json:"notes"`
}

// ListProposalsResponse is the response for listing proposals.
type ListProposalsResponse struct {
	Proposals []Proposal `json:"proposals"`
	Total     int        `json:"total"`
}
