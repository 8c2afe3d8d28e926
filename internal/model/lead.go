// Package model defines data structures for the CRM platform.
package model

import (
	"time"
)

// LeadStatus is the pipeline status of a lead.
type LeadStatus string

const (
	StatusNewLead      LeadStatus = "New Lead"
	StatusContacted    LeadStatus = "Contacted"
	StatusQualified    LeadStatus = "Qualified"
	StatusProposalSent LeadStatus = "Proposal Sent"
	StatusNegotiation  LeadStatus = "Negotiation"
	StatusWon          LeadStatus = "Won"
	StatusLost         LeadStatus = "Lost"
	StatusNurturing    LeadStatus = "Nurturing"
	StatusFollowUp     LeadStatus = "Follow-up"
	StatusHotLead      LeadStatus = "Hot Lead"
)

var leadStatuses = map[LeadStatus]struct{}{
	StatusNewLead:      {},
	StatusContacted:    {},
	StatusQualified:    {},
	StatusProposalSent: {},
	StatusNegotiation:  {},
	StatusWon:          {},
	StatusLost:         {},
	StatusNurturing:    {},
	StatusFollowUp:     {},
	StatusHotLead:      {},
}

// Valid reports whether s is one of the known pipeline statuses.
func (s LeadStatus) Valid() bool {
	_, ok := leadStatuses[s]
	return ok
}

// LeadContext is the commercial context a lead operates in.
type LeadContext string

const (
	ContextCommercial    LeadContext = "commercial"
	ContextIndustrial    LeadContext = "industrial"
	ContextManufacturing LeadContext = "manufacturing"
	ContextResidential   LeadContext = "residential"
)

// Lead represents one prospective customer.
type Lead struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Contact     string      `json:"contact"`
	Email       string      `json:"email"`
	Region      string      `json:"region"`
	Industry    string      `json:"industry,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	Status      LeadStatus  `json:"status"`
	Score       int         `json:"score"`
	LastContact string      `json:"last_contact"`
	Context     LeadContext `json:"context"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// LeadSummary is the slice of lead state returned after a turn.
type LeadSummary struct {
	Score       int        `json:"score"`
	Status      LeadStatus `json:"status"`
	LastContact string     `json:"last_contact"`
}

// CreateLeadRequest is the request to register a new lead.
type CreateLeadRequest struct {
	Name        string      `json:"name"`
	Contact     string      `json:"contact"`
	Email       string      `json:"email"`
	Region      string      `json:"region"`
	Industry    string      `json:"industry,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	Status      LeadStatus  `json:"status,omitempty"`
	Score       int         `json:"score"`
	LastContact string      `json:"last_contact,omitempty"`
	Context     LeadContext `json:"context,omitempty"`
}

// UpdateLeadRequest is the request to update lead attributes.
type UpdateLeadRequest struct {
	Name    string     `json:"name,omitempty"`
	Contact string     `json:"contact,omitempty"`
	Email   string     `json:"email,omitempty"`
	Region  string     `json:"region,omitempty"`
	Notes   string     `json:"notes,omitempty"`
	Status  LeadStatus `json:"status,omitempty"`
	Score   *int       `json:"score,omitempty"`
}

// ListLeadsResponse is the response for listing leads.
type ListLeadsResponse struct {
	Leads []Lead `json:"leads"`
	Total int    `json:"total"`
}
