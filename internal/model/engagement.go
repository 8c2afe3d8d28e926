package model

import (
	"time"
)

// MessageRole identifies which side of the conversation sent a message.
type MessageRole string

const (
	RoleSales    MessageRole = "sales"
	RoleCustomer MessageRole = "customer"
)

// Stage is the conversation stage derived from the latest message.
type Stage string

const (
	StageInitial      Stage = "initial"
	StageRequirements Stage = "requirements"
	StageProposal     Stage = "proposal"
	StageClosing      Stage = "closing"
)

// Message is one turn in an engagement conversation.
type Message struct {
	Content   string      `json:"content"`
	Role      MessageRole `json:"role"`
	Timestamp time.Time   `json:"timestamp"`
}

// SuggestionBatch records the follow-up questions generated for a stage.
// Batches are append-only; prior suggestions are retained.
type SuggestionBatch struct {
	Stage       Stage    `json:"stage"`
	Suggestions []string `json:"suggestions"`
}

// Engagement is the conversation ledger for exactly one lead.
type Engagement struct {
	LeadID       string            `json:"lead_id"`
	Messages     []Message         `json:"messages"`
	Context      LeadContext       `json:"context"`
	Requirements string            `json:"requirements"`
	CurrentStage Stage             `json:"current_stage"`
	Suggestions  []SuggestionBatch `json:"suggestions"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// DefaultRequirements seeds a lazily created engagement.
const DefaultRequirements = "Basic water treatment needs"

// NewEngagement creates an empty engagement for a lead with default context.
func NewEngagement(leadID string) *Engagement {
	now := time.Now()
	return &Engagement{
		LeadID:       leadID,
		Messages:     []Message{},
		Context:      ContextCommercial,
		Requirements: DefaultRequirements,
		CurrentStage: StageInitial,
		Suggestions:  []SuggestionBatch{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Append adds a message to the end of the log.
func (e *Engagement) Append(role MessageRole, content string, at time.Time) {
	e.Messages = append(e.Messages, Message{
		Content:   content,
		Role:      role,
		Timestamp: at,
	})
	e.UpdatedAt = at
}

// LastMessage returns the most recent message, or nil for an empty log.
func (e *Engagement) LastMessage() *Message {
	if len(e.Messages) == 0 {
		return nil
	}
	return &e.Messages[len(e.Messages)-1]
}

// TurnRequest is the request to process one sales-rep message.
type TurnRequest struct {
	LeadID  string `json:"leadId"`
	Message string `json:"message"`
}

// TurnResponse is the state returned after a completed turn.
type TurnResponse struct {
	Engagement *Engagement `json:"engagement"`
	Lead       LeadSummary `json:"lead"`
	Proposal   *Proposal   `json:"proposal"`
}

// SuggestionsResponse is the response for a stateless suggestion refresh.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}
